package repo

import (
	"github.com/multiformats/go-multiaddr"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/node/config"
)

var (
	ErrNoAPIEndpoint     = xerrors.New("API not running (no endpoint)")
	ErrNoAPIToken        = xerrors.New("API token not set")
	ErrRepoAlreadyLocked = xerrors.New("repo is already locked (crowdfund daemon already running)")
	ErrClosedRepo        = xerrors.New("repo is no longer open")
)

type Repo interface {
	// APIEndpoint returns multiaddress for communication with the daemon API
	APIEndpoint() (multiaddr.Multiaddr, error)

	// APIToken returns JWT API Token for use in operations that require auth
	APIToken() ([]byte, error)

	// Lock locks the repo for exclusive use.
	Lock() (LockedRepo, error)
}

type LockedRepo interface {
	// Close closes repo and removes lock.
	Close() error

	// Returns config in this repo
	Config() (*config.Config, error)
	SetConfig(func(*config.Config)) error

	// SetAPIEndpoint sets the endpoint of the current API
	// so it can be read by API clients
	SetAPIEndpoint(multiaddr.Multiaddr) error

	// SetAPIToken sets JWT API Token for CLI
	SetAPIToken([]byte) error

	// JWTSecret returns the key API tokens are signed with, creating it on
	// first use.
	JWTSecret() ([]byte, error)

	// KeystorePath is the directory of the encrypted wallet keys.
	KeystorePath() string

	// Path returns absolute path of the repo
	Path() string
}
