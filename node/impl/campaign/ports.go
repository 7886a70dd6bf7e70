package campaign

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Borja291/Blockchain/storage/ipfs"
)

//go:generate go run github.com/golang/mock/mockgen -destination=mock_ports_test.go -package=campaign -self_package github.com/Borja291/Blockchain/node/impl/campaign . Store,Registry,Signer

// Store is the content-addressed storage node.
type Store interface {
	Add(ctx context.Context, r io.Reader) (ipfs.AddResult, error)
	FilesCp(ctx context.Context, src, dst string) error
}

// Registry is the crowdfunding contract on chain.
type Registry interface {
	CreateCampaign(ctx context.Context, signer *bind.TransactOpts, title, contentID string, goal *big.Int) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// Signer hands out transaction signers for the active wallet account.
type Signer interface {
	Signer(ctx context.Context) (*bind.TransactOpts, error)
}
