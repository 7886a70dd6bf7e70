package crowdfunding

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"
)

var log = logging.Logger("crowdfunding")

var ErrReverted = errors.New("transaction reverted")

// Backend is what the registry needs from a chain node: contract calls plus
// receipt lookups.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Registry registers campaigns on chain and waits for their confirmation.
type Registry struct {
	backend Backend
	binding *Crowdfunding
}

func NewRegistry(address common.Address, backend Backend) (*Registry, error) {
	b, err := NewCrowdfunding(address, backend)
	if err != nil {
		return nil, err
	}
	return &Registry{backend: backend, binding: b}, nil
}

// Dial connects to the chain node at rpcAddr and binds the contract at address.
func Dial(ctx context.Context, rpcAddr string, address common.Address) (*Registry, *ethclient.Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcAddr)
	if err != nil {
		return nil, nil, xerrors.Errorf("dialing eth rpc %s: %w", rpcAddr, err)
	}

	r, err := NewRegistry(address, ec)
	if err != nil {
		ec.Close()
		return nil, nil, err
	}
	return r, ec, nil
}

func (r *Registry) Address() common.Address {
	return r.binding.Address()
}

func (r *Registry) CreateCampaign(ctx context.Context, signer *bind.TransactOpts, title, contentID string, goal *big.Int) (*types.Transaction, error) {
	opts := *signer
	opts.Context = ctx

	tx, err := r.binding.CreateCampaign(&opts, title, contentID, goal)
	if err != nil {
		return nil, xerrors.Errorf("calling %s: %w", MethodCreateCampaign, err)
	}

	log.Infow("submitted campaign transaction", "tx", tx.Hash().Hex(), "from", signer.From.Hex(), "nonce", tx.Nonce())
	return tx, nil
}

// WaitConfirmed blocks until tx is included in a block. A receipt with a
// failed status is reported as ErrReverted.
func (r *Registry) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	rcpt, err := bind.WaitMined(ctx, r.backend, tx)
	if err != nil {
		return nil, xerrors.Errorf("waiting for %s: %w", tx.Hash().Hex(), err)
	}

	if rcpt.Status != types.ReceiptStatusSuccessful {
		return rcpt, xerrors.Errorf("tx %s in block %s: %w", tx.Hash().Hex(), rcpt.BlockNumber, ErrReverted)
	}

	log.Infow("campaign transaction confirmed", "tx", tx.Hash().Hex(), "block", rcpt.BlockNumber, "gasUsed", rcpt.GasUsed)
	return rcpt, nil
}
