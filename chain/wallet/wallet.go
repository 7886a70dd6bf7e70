// Package wallet supplies transaction signers for the active account. Access
// is authorized once, at startup, and signers are resolved at call time.
package wallet

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("wallet")

var (
	// ErrNotAuthorized is returned by Signer when account access was refused
	// or never requested.
	ErrNotAuthorized = errors.New("wallet access not authorized")
	ErrNoAccounts    = errors.New("no accounts in wallet")
)

// AuthError is a refused request for account access. It matches
// ErrNotAuthorized and unwraps to the cause of the refusal.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return ErrNotAuthorized.Error() + ": " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool {
	return target == ErrNotAuthorized
}

type Provider interface {
	// RequestAccounts asks for access to the wallet's accounts. A refusal is
	// remembered and returned again by Signer.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Accounts lists the accounts access was granted to.
	Accounts() []common.Address
	// Signer returns transact options signing for the active account.
	Signer(ctx context.Context) (*bind.TransactOpts, error)
}
