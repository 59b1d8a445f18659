package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloak/internal/domain"
	"cloak/internal/store"
)

func TestTrustFile_SaveLoadRoundTrip(t *testing.T) {
	tf, err := store.NewTrustFile(t.TempDir())
	require.NoError(t, err)

	want := map[string]domain.TrustedDevice{
		"dev-42": {
			RecordID:    uuid.New(),
			DeviceID:    "dev-42",
			PublicKey:   []byte("remote-der"),
			Fingerprint: "ab12cd34ef56ab12cd34",
			VerifiedAt:  time.Now().UTC().Truncate(time.Second),
			TrustLevel:  domain.TrustVerified,
		},
	}
	require.NoError(t, tf.SaveTrusted(want))

	got, err := tf.LoadTrusted()
	require.NoError(t, err)
	assert.Equal(t, want["dev-42"].RecordID, got["dev-42"].RecordID)
	assert.Equal(t, want["dev-42"].TrustLevel, got["dev-42"].TrustLevel)
}

func TestTrustFile_FreshStoreLoadsEmpty(t *testing.T) {
	tf, err := store.NewTrustFile(t.TempDir())
	require.NoError(t, err)

	got, err := tf.LoadTrusted()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTrustFile_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	tf, err := store.NewTrustFile(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "trust.json"), []byte("{not json"), 0o600))
	_, err = tf.LoadTrusted()
	require.ErrorIs(t, err, domain.ErrStorage)
}
