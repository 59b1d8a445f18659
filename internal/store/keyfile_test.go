package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloak/internal/domain"
	"cloak/internal/store"
)

func sampleKeys() map[string]domain.KeyMaterial {
	now := time.Now().UTC().Truncate(time.Second)
	return map[string]domain.KeyMaterial{
		"dev-1": {
			KeyID:        uuid.New(),
			DeviceID:     "dev-1",
			UserID:       "user-1",
			PublicKey:    []byte{0x30, 0x82, 0x01, 0x0a},
			PrivateKey:   []byte{0x30, 0x82, 0x04, 0xa4},
			SymmetricKey: []byte(strings.Repeat("k", domain.SymmetricKeySize)),
			CreatedAt:    now,
			ExpiresAt:    now.Add(time.Hour),
		},
	}
}

func TestKeyFile_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	kf, err := store.NewKeyFile(dir)
	require.NoError(t, err)

	want := sampleKeys()
	require.NoError(t, kf.SaveKeys(want))

	got, err := kf.LoadKeys()
	require.NoError(t, err)
	assert.Equal(t, want["dev-1"].KeyID, got["dev-1"].KeyID)
	assert.Equal(t, want["dev-1"].SymmetricKey, got["dev-1"].SymmetricKey)
	assert.True(t, want["dev-1"].ExpiresAt.Equal(got["dev-1"].ExpiresAt))
}

func TestKeyFile_FreshStoreLoadsEmpty(t *testing.T) {
	kf, err := store.NewKeyFile(t.TempDir())
	require.NoError(t, err)

	got, err := kf.LoadKeys()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKeyFile_SealedAtRest(t *testing.T) {
	dir := t.TempDir()
	kf, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	require.NoError(t, kf.SaveKeys(sampleKeys()))

	raw, err := os.ReadFile(filepath.Join(dir, "keys.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dev-1", "key material must not be readable in the clear")
}

func TestKeyFile_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	kf, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	require.NoError(t, kf.SaveKeys(sampleKeys()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "keys.json"), []byte(`{"v":1,"cipher":"AAAA"}`), 0o600))
	_, err = kf.LoadKeys()
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestKeyFile_ReopenUsesSameSecret(t *testing.T) {
	dir := t.TempDir()

	first, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.SaveKeys(sampleKeys()))

	second, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	got, err := second.LoadKeys()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestKeyFile_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	kf, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	require.NoError(t, kf.SaveKeys(sampleKeys()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "atomic write must clean up temp files")
	}
}

func TestKeyFile_RestrictivePermissions(t *testing.T) {
	dir := t.TempDir()
	kf, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	require.NoError(t, kf.SaveKeys(sampleKeys()))

	for _, name := range []string{"keys.json", ".secret"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), name)
	}
}
