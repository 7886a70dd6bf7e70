package wallet

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// OpenKeystore opens (creating if needed) an encrypted keystore directory.
func OpenKeystore(dir string) *keystore.KeyStore {
	return keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
}

func NewAccount(ks *keystore.KeyStore, passphrase string) (common.Address, error) {
	acc, err := ks.NewAccount(passphrase)
	if err != nil {
		return common.Address{}, xerrors.Errorf("creating account: %w", err)
	}
	return acc.Address, nil
}

func ListAccounts(ks *keystore.KeyStore) []common.Address {
	return lo.Map(ks.Accounts(), func(a accounts.Account, _ int) common.Address {
		return a.Address
	})
}

// KeystoreProvider signs with an account of an encrypted keystore. Unlocking
// the account is the authorization step.
type KeystoreProvider struct {
	ks         *keystore.KeyStore
	account    common.Address
	passphrase string
	chainID    *big.Int

	lk         sync.Mutex
	authorized *accounts.Account
	authErr    error
}

// NewKeystoreProvider uses account, or the first keystore account when
// account is the zero address.
func NewKeystoreProvider(ks *keystore.KeyStore, account common.Address, passphrase string, chainID *big.Int) *KeystoreProvider {
	return &KeystoreProvider{
		ks:         ks,
		account:    account,
		passphrase: passphrase,
		chainID:    chainID,
	}
}

func (p *KeystoreProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	p.lk.Lock()
	defer p.lk.Unlock()

	acc, err := p.find()
	if err != nil {
		p.authErr = &AuthError{Err: err}
		return nil, p.authErr
	}

	if err := p.ks.Unlock(acc, p.passphrase); err != nil {
		p.authErr = &AuthError{Err: xerrors.Errorf("unlocking %s: %w", acc.Address.Hex(), err)}
		return nil, p.authErr
	}

	p.authorized = &acc
	p.authErr = nil

	log.Infow("wallet account unlocked", "account", acc.Address.Hex())
	return []common.Address{acc.Address}, nil
}

func (p *KeystoreProvider) find() (accounts.Account, error) {
	if p.account == (common.Address{}) {
		all := p.ks.Accounts()
		if len(all) == 0 {
			return accounts.Account{}, ErrNoAccounts
		}
		return all[0], nil
	}

	acc, err := p.ks.Find(accounts.Account{Address: p.account})
	if err != nil {
		return accounts.Account{}, xerrors.Errorf("finding account %s: %w", p.account.Hex(), err)
	}
	return acc, nil
}

func (p *KeystoreProvider) Accounts() []common.Address {
	p.lk.Lock()
	defer p.lk.Unlock()

	if p.authorized == nil {
		return nil
	}
	return []common.Address{p.authorized.Address}
}

func (p *KeystoreProvider) Signer(ctx context.Context) (*bind.TransactOpts, error) {
	p.lk.Lock()
	defer p.lk.Unlock()

	if p.authErr != nil {
		return nil, xerrors.Errorf("acquiring signer: %w", p.authErr)
	}
	if p.authorized == nil {
		return nil, xerrors.Errorf("acquiring signer: %w", ErrNotAuthorized)
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(p.ks, *p.authorized, p.chainID)
	if err != nil {
		return nil, xerrors.Errorf("acquiring signer: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

var _ Provider = (*KeystoreProvider)(nil)
