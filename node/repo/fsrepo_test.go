package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/multiformats/go-multiaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Borja291/Blockchain/node/config"
)

func genFsRepo(t *testing.T) *FsRepo {
	repo, err := NewFS(filepath.Join(t.TempDir(), "crowdfund"))
	require.NoError(t, err)

	require.NoError(t, repo.Init())
	return repo
}

func TestFsInit(t *testing.T) {
	repo := genFsRepo(t)

	exists, err := repo.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	require.ErrorIs(t, repo.Init(), ErrRepoExists)

	fi, err := os.Stat(filepath.Join(repo.Path(), fsKeystore))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	assert.Equal(t, os.FileMode(0700), fi.Mode().Perm())

	_, err = os.Stat(filepath.Join(repo.Path(), fsConfig))
	require.NoError(t, err)
}

func TestFsBasic(t *testing.T) {
	repo := genFsRepo(t)

	_, err := repo.APIEndpoint()
	assert.ErrorIs(t, err, ErrNoAPIEndpoint)

	lrepo, err := repo.Lock()
	require.NoError(t, err, "should be able to lock once")
	require.NotNil(t, lrepo)

	{
		lrepo2, err := repo.Lock()
		require.ErrorIs(t, err, ErrRepoAlreadyLocked)
		assert.Nil(t, lrepo2)
	}

	ma, err := multiaddr.NewMultiaddr("/ip4/127.0.0.1/tcp/43244")
	require.NoError(t, err)
	require.NoError(t, lrepo.SetAPIEndpoint(ma))

	apima, err := repo.APIEndpoint()
	require.NoError(t, err)
	assert.True(t, ma.Equal(apima))

	require.NoError(t, lrepo.SetAPIToken([]byte("token\n")))
	tok, err := repo.APIToken()
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), tok)

	require.NoError(t, lrepo.Close())

	_, err = repo.APIEndpoint()
	assert.ErrorIs(t, err, ErrNoAPIEndpoint, "endpoint is removed on close")

	require.ErrorIs(t, lrepo.SetAPIEndpoint(ma), ErrClosedRepo)

	lrepo, err = repo.Lock()
	require.NoError(t, err, "should be able to relock")
	require.NoError(t, lrepo.Close())
}

func TestFsConfig(t *testing.T) {
	repo := genFsRepo(t)

	lrepo, err := repo.Lock()
	require.NoError(t, err)
	defer lrepo.Close() //nolint:errcheck

	cfg, err := lrepo.Config()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	err = lrepo.SetConfig(func(c *config.Config) {
		c.Chain.ContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	})
	require.NoError(t, err)

	cfg, err = lrepo.Config()
	require.NoError(t, err)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Chain.ContractAddress)
}

func TestJWTSecretStable(t *testing.T) {
	repo := genFsRepo(t)

	lrepo, err := repo.Lock()
	require.NoError(t, err)
	defer lrepo.Close() //nolint:errcheck

	sk, err := lrepo.JWTSecret()
	require.NoError(t, err)
	assert.Len(t, sk, 32)

	sk2, err := lrepo.JWTSecret()
	require.NoError(t, err)
	assert.Equal(t, sk, sk2)

	fi, err := os.Stat(filepath.Join(repo.Path(), fsJWTSecret))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}
