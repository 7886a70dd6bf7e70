package wallet

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var chainID = big.NewInt(1337)

func testKeystore(t *testing.T) *keystore.KeyStore {
	return keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
}

func TestKeystoreProvider(t *testing.T) {
	ctx := context.Background()
	ks := testKeystore(t)

	addr, err := NewAccount(ks, "hunter2")
	require.NoError(t, err)
	require.Equal(t, []common.Address{addr}, ListAccounts(ks))

	p := NewKeystoreProvider(ks, common.Address{}, "hunter2", chainID)
	require.Empty(t, p.Accounts())

	_, err = p.Signer(ctx)
	require.ErrorIs(t, err, ErrNotAuthorized)

	accts, err := p.RequestAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, []common.Address{addr}, accts)
	require.Equal(t, accts, p.Accounts())

	opts, err := p.Signer(ctx)
	require.NoError(t, err)
	require.Equal(t, addr, opts.From)
}

func TestKeystoreProviderRejected(t *testing.T) {
	ctx := context.Background()
	ks := testKeystore(t)

	addr, err := NewAccount(ks, "hunter2")
	require.NoError(t, err)

	p := NewKeystoreProvider(ks, addr, "wrong", chainID)

	_, err = p.RequestAccounts(ctx)
	require.ErrorIs(t, err, ErrNotAuthorized)
	require.ErrorIs(t, err, keystore.ErrDecrypt)

	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	require.Contains(t, aerr.Error(), "wallet access not authorized: unlocking "+addr.Hex())

	_, err = p.Signer(ctx)
	require.ErrorIs(t, err, ErrNotAuthorized)
	require.Contains(t, err.Error(), "acquiring signer")
}

func TestKeystoreProviderNoAccounts(t *testing.T) {
	p := NewKeystoreProvider(testKeystore(t), common.Address{}, "", chainID)

	_, err := p.RequestAccounts(context.Background())
	require.ErrorIs(t, err, ErrNoAccounts)
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestKeystoreProviderUnknownAccount(t *testing.T) {
	ks := testKeystore(t)
	_, err := NewAccount(ks, "pw")
	require.NoError(t, err)

	other := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	p := NewKeystoreProvider(ks, other, "pw", chainID)

	_, err = p.RequestAccounts(context.Background())
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestKeyProvider(t *testing.T) {
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey)

	p, err := NewKeyProvider("0x"+hex.EncodeToString(crypto.FromECDSA(key)), chainID)
	require.NoError(t, err)

	_, err = p.Signer(ctx)
	require.ErrorIs(t, err, ErrNotAuthorized)

	accts, err := p.RequestAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, []common.Address{want}, accts)

	opts, err := p.Signer(ctx)
	require.NoError(t, err)
	require.Equal(t, want, opts.From)
}

func TestKeyProviderBadKey(t *testing.T) {
	_, err := NewKeyProvider("not-a-key", chainID)
	require.Error(t, err)
}
