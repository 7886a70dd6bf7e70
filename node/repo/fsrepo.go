package repo

import (
	"bytes"
	"crypto/rand"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	fslock "github.com/ipfs/go-fs-lock"
	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/multiformats/go-multiaddr"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/node/config"
)

const (
	fsAPI       = "api"
	fsAPIToken  = "token"
	fsConfig    = "config.toml"
	fsJWTSecret = "jwt-secret"
	fsLock      = "repo.lock"
	fsKeystore  = "keystore"
)

// EnvPath overrides the repo location.
const EnvPath = "CROWDFUND_PATH"

// DefaultPath is used when neither a flag nor EnvPath names a repo.
const DefaultPath = "~/.crowdfund"

var log = logging.Logger("repo")

var ErrRepoExists = xerrors.New("repo exists")

// FsRepo is struct for repo, use NewFS to create
type FsRepo struct {
	path       string
	configPath string
}

var _ Repo = &FsRepo{}

// NewFS creates a repo instance based on a path on file system
func NewFS(path string) (*FsRepo, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	return &FsRepo{
		path:       path,
		configPath: filepath.Join(path, fsConfig),
	}, nil
}

func (fsr *FsRepo) SetConfigPath(cfgPath string) {
	fsr.configPath = cfgPath
}

func (fsr *FsRepo) Path() string {
	return fsr.path
}

// KeystorePath is the directory of the encrypted wallet keys. Go-ethereum
// keystores tolerate concurrent readers, so it is usable without the lock.
func (fsr *FsRepo) KeystorePath() string {
	return filepath.Join(fsr.path, fsKeystore)
}

// Config reads the config without locking the repo.
func (fsr *FsRepo) Config() (*config.Config, error) {
	return config.FromFile(fsr.configPath, config.Default())
}

func (fsr *FsRepo) Exists() (bool, error) {
	_, err := os.Stat(filepath.Join(fsr.path, fsKeystore))
	notexist := os.IsNotExist(err)
	if notexist {
		err = nil
	}
	return !notexist, err
}

// Init creates the repo directory with a default config and an empty
// keystore. It returns ErrRepoExists when the repo was already initialized.
func (fsr *FsRepo) Init() error {
	exist, err := fsr.Exists()
	if err != nil {
		return err
	}
	if exist {
		return ErrRepoExists
	}

	log.Infof("Initializing repo at '%s'", fsr.path)
	err = os.MkdirAll(fsr.path, 0755) //nolint: gosec
	if err != nil && !os.IsExist(err) {
		return err
	}

	if err := fsr.initConfig(); err != nil {
		return xerrors.Errorf("init config: %w", err)
	}

	return os.Mkdir(filepath.Join(fsr.path, fsKeystore), 0700)
}

func (fsr *FsRepo) initConfig() error {
	_, err := os.Stat(fsr.configPath)
	if err == nil {
		// exists
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	comm, err := config.ConfigComment(config.Default())
	if err != nil {
		return xerrors.Errorf("comment: %w", err)
	}

	if err := os.WriteFile(fsr.configPath, comm, 0644); err != nil { //nolint: gosec
		return xerrors.Errorf("write config: %w", err)
	}
	return nil
}

// APIEndpoint returns endpoint of API in this repo
func (fsr *FsRepo) APIEndpoint() (multiaddr.Multiaddr, error) {
	p := filepath.Join(fsr.path, fsAPI)

	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, ErrNoAPIEndpoint
	} else if err != nil {
		return nil, xerrors.Errorf("failed to read %q: %w", p, err)
	}

	apima, err := multiaddr.NewMultiaddr(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, xerrors.Errorf("parsing api endpoint %q: %w", p, err)
	}
	return apima, nil
}

func (fsr *FsRepo) APIToken() ([]byte, error) {
	tb, err := os.ReadFile(filepath.Join(fsr.path, fsAPIToken))
	if os.IsNotExist(err) {
		return nil, ErrNoAPIToken
	} else if err != nil {
		return nil, err
	}

	return bytes.TrimSpace(tb), nil
}

// Lock acquires exclusive lock on this repo
func (fsr *FsRepo) Lock() (LockedRepo, error) {
	locked, err := fslock.Locked(fsr.path, fsLock)
	if err != nil {
		return nil, xerrors.Errorf("could not check lock status: %w", err)
	}
	if locked {
		return nil, ErrRepoAlreadyLocked
	}

	closer, err := fslock.Lock(fsr.path, fsLock)
	if err != nil {
		return nil, xerrors.Errorf("could not lock the repo: %w", err)
	}
	return &fsLockedRepo{
		path:       fsr.path,
		configPath: fsr.configPath,
		closer:     closer,
	}, nil
}

type fsLockedRepo struct {
	path       string
	configPath string
	closer     io.Closer

	configLk sync.Mutex
	secretLk sync.Mutex
}

func (fsr *fsLockedRepo) Path() string {
	return fsr.path
}

func (fsr *fsLockedRepo) Close() error {
	err := os.Remove(fsr.join(fsAPI))
	if err != nil && !os.IsNotExist(err) {
		return xerrors.Errorf("could not remove API file: %w", err)
	}

	err = fsr.closer.Close()
	fsr.closer = nil
	return err
}

// join joins path elements with fsr.path
func (fsr *fsLockedRepo) join(paths ...string) string {
	return filepath.Join(append([]string{fsr.path}, paths...)...)
}

func (fsr *fsLockedRepo) stillValid() error {
	if fsr.closer == nil {
		return ErrClosedRepo
	}
	return nil
}

func (fsr *fsLockedRepo) Config() (*config.Config, error) {
	fsr.configLk.Lock()
	defer fsr.configLk.Unlock()

	return fsr.loadConfigFromDisk()
}

func (fsr *fsLockedRepo) loadConfigFromDisk() (*config.Config, error) {
	return config.FromFile(fsr.configPath, config.Default())
}

func (fsr *fsLockedRepo) SetConfig(c func(*config.Config)) error {
	if err := fsr.stillValid(); err != nil {
		return err
	}

	fsr.configLk.Lock()
	defer fsr.configLk.Unlock()

	cfg, err := fsr.loadConfigFromDisk()
	if err != nil {
		return err
	}

	// mutate in-memory representation of config
	c(cfg)

	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return xerrors.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(fsr.configPath, buf.Bytes(), 0644) //nolint: gosec
}

func (fsr *fsLockedRepo) SetAPIEndpoint(ma multiaddr.Multiaddr) error {
	if err := fsr.stillValid(); err != nil {
		return err
	}
	return os.WriteFile(fsr.join(fsAPI), []byte(ma.String()), 0644) //nolint: gosec
}

func (fsr *fsLockedRepo) SetAPIToken(token []byte) error {
	if err := fsr.stillValid(); err != nil {
		return err
	}
	return os.WriteFile(fsr.join(fsAPIToken), token, 0600)
}

func (fsr *fsLockedRepo) JWTSecret() ([]byte, error) {
	if err := fsr.stillValid(); err != nil {
		return nil, err
	}

	fsr.secretLk.Lock()
	defer fsr.secretLk.Unlock()

	p := fsr.join(fsJWTSecret)
	sk, err := os.ReadFile(p)
	switch {
	case err == nil:
		if len(sk) < 32 {
			return nil, xerrors.Errorf("jwt secret in %q is too short", p)
		}
		return sk, nil
	case !os.IsNotExist(err):
		return nil, xerrors.Errorf("reading jwt secret: %w", err)
	}

	log.Warn("Generating new API secret")

	sk = make([]byte, 32)
	if _, err := rand.Read(sk); err != nil {
		return nil, xerrors.Errorf("generating jwt secret: %w", err)
	}
	if err := os.WriteFile(p, sk, 0600); err != nil {
		return nil, xerrors.Errorf("writing jwt secret: %w", err)
	}
	return sk, nil
}

func (fsr *fsLockedRepo) KeystorePath() string {
	return fsr.join(fsKeystore)
}
