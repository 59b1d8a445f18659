package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloak/internal/app"
	"cloak/internal/domain"
)

func TestNew_StatusOnFreshStore(t *testing.T) {
	a, err := app.New(app.Config{
		StorageDir:       t.TempDir(),
		DeviceID:         "dev-1",
		UserID:           "user-1",
		RotationInterval: time.Hour,
		MaxMessageAge:    5 * time.Minute,
	})
	require.NoError(t, err)

	st := a.Status()
	assert.Equal(t, "dev-1", st.DeviceID)
	assert.Equal(t, 0, st.KeysLoaded)
	assert.Equal(t, 0, st.TrustedDevices)
	assert.True(t, st.RotationDue, "a fresh store has no keys yet")
	assert.Equal(t, domain.AllLevels(), st.SupportedLevels)
}

func TestNew_StatusAfterUse(t *testing.T) {
	a, err := app.New(app.Config{
		StorageDir: t.TempDir(),
		DeviceID:   "dev-1",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	_, err = a.Keys.EnsureFresh("dev-1")
	require.NoError(t, err)
	_, err = a.Trust.VerifyDevice("dev-42", []byte("remote-key"))
	require.NoError(t, err)

	st := a.Status()
	assert.Equal(t, 1, st.KeysLoaded)
	assert.Equal(t, 1, st.TrustedDevices)
	assert.False(t, st.RotationDue)
}

func TestSealOpen_ThroughWiredApp(t *testing.T) {
	a, err := app.New(app.Config{
		StorageDir: t.TempDir(),
		DeviceID:   "dev-1",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	env, err := a.Envelopes.Seal([]byte("wired"), "dev-2", domain.MessageSystemStatus, domain.LevelBasic)
	require.NoError(t, err)

	msg, err := a.Envelopes.Open(env)
	require.NoError(t, err)
	assert.Equal(t, []byte("wired"), msg.Plaintext)
	assert.Equal(t, domain.MessageSystemStatus, msg.MessageType)
}
