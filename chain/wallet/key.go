package wallet

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

// KeyProvider signs with a raw secp256k1 private key. Meant for development
// chains where a funded key is handed out in the clear.
type KeyProvider struct {
	key     *ecdsa.PrivateKey
	chainID *big.Int

	lk         sync.Mutex
	authorized bool
}

func NewKeyProvider(hexKey string, chainID *big.Int) (*KeyProvider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, xerrors.Errorf("parsing private key: %w", err)
	}
	return &KeyProvider{key: key, chainID: chainID}, nil
}

func (p *KeyProvider) address() common.Address {
	return crypto.PubkeyToAddress(p.key.PublicKey)
}

func (p *KeyProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	p.lk.Lock()
	defer p.lk.Unlock()

	p.authorized = true
	return []common.Address{p.address()}, nil
}

func (p *KeyProvider) Accounts() []common.Address {
	p.lk.Lock()
	defer p.lk.Unlock()

	if !p.authorized {
		return nil
	}
	return []common.Address{p.address()}
}

func (p *KeyProvider) Signer(ctx context.Context) (*bind.TransactOpts, error) {
	p.lk.Lock()
	defer p.lk.Unlock()

	if !p.authorized {
		return nil, xerrors.Errorf("acquiring signer: %w", ErrNotAuthorized)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(p.key, p.chainID)
	if err != nil {
		return nil, xerrors.Errorf("acquiring signer: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

var _ Provider = (*KeyProvider)(nil)
