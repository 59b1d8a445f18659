package keys_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloak/internal/domain"
	"cloak/internal/services/keys"
	"cloak/internal/store"
)

func newService(t *testing.T, dir string, interval time.Duration) *keys.Service {
	t.Helper()
	kf, err := store.NewKeyFile(dir)
	require.NoError(t, err)
	svc, err := keys.New(kf, "user-1", interval)
	require.NoError(t, err)
	return svc
}

func TestEnsureFresh_StableWithinWindow(t *testing.T) {
	svc := newService(t, t.TempDir(), time.Hour)

	first, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)
	require.Len(t, first.SymmetricKey, domain.SymmetricKeySize)

	second, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)

	assert.Equal(t, first.KeyID, second.KeyID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, first.SymmetricKey, second.SymmetricKey)
	assert.False(t, svc.RotationDue("dev-1"))
}

func TestEnsureFresh_RotatesPastExpiry(t *testing.T) {
	svc := newService(t, t.TempDir(), 10*time.Millisecond)

	first, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)
	require.True(t, svc.RotationDue("dev-1"))

	second, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.KeyID, second.KeyID)
	assert.True(t, second.CreatedAt.After(first.CreatedAt),
		"rotated material must carry a strictly later creation time")
	assert.NotEqual(t, first.SymmetricKey, second.SymmetricKey)
}

func TestRotate_Forced(t *testing.T) {
	svc := newService(t, t.TempDir(), time.Hour)

	first, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)

	second, err := svc.Rotate("dev-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.KeyID, second.KeyID)

	current, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)
	assert.Equal(t, second.KeyID, current.KeyID)
}

func TestEnsureFresh_ConcurrentSingleRotation(t *testing.T) {
	svc := newService(t, t.TempDir(), time.Hour)

	const callers = 8
	results := make([]domain.KeyMaterial, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.EnsureFresh("dev-1")
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
	}
	for i := 1; i < callers; i++ {
		assert.Equal(t, results[0].KeyID, results[i].KeyID,
			"concurrent callers must observe one rotation")
	}
	assert.Equal(t, 1, svc.Count())
}

func TestEnsureFresh_ConcurrentDevicesKeepBothRecords(t *testing.T) {
	// Two different devices rotating at the same time each hold their
	// own per-device lock; the shared map update must still be atomic
	// so neither install erases the other's record.
	for i := 0; i < 3; i++ {
		dir := t.TempDir()
		svc := newService(t, dir, time.Hour)

		var wg sync.WaitGroup
		var errA, errB error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errA = svc.EnsureFresh("dev-a")
		}()
		go func() {
			defer wg.Done()
			_, errB = svc.EnsureFresh("dev-b")
		}()
		wg.Wait()

		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, 2, svc.Count(), "iteration %d: a device's record was lost", i)

		// Both records must also have survived on disk.
		reloaded := newService(t, dir, time.Hour)
		require.Equal(t, 2, reloaded.Count(), "iteration %d: persisted map lost a device", i)
		require.False(t, reloaded.RotationDue("dev-a"))
		require.False(t, reloaded.RotationDue("dev-b"))
	}
}

func TestEnsureFresh_IndependentDevices(t *testing.T) {
	svc := newService(t, t.TempDir(), time.Hour)

	a, err := svc.EnsureFresh("dev-a")
	require.NoError(t, err)
	b, err := svc.EnsureFresh("dev-b")
	require.NoError(t, err)

	assert.NotEqual(t, a.KeyID, b.KeyID)
	assert.NotEqual(t, a.SymmetricKey, b.SymmetricKey)
	assert.Equal(t, 2, svc.Count())
}

func TestKeys_PersistAcrossReconstruction(t *testing.T) {
	dir := t.TempDir()

	first, err := newService(t, dir, time.Hour).EnsureFresh("dev-1")
	require.NoError(t, err)

	reloaded, err := newService(t, dir, time.Hour).EnsureFresh("dev-1")
	require.NoError(t, err)
	assert.Equal(t, first.KeyID, reloaded.KeyID)
	assert.Equal(t, first.SymmetricKey, reloaded.SymmetricKey)
	assert.Equal(t, first.PublicKey, reloaded.PublicKey)
}

func TestFingerprint_DeterministicAndShort(t *testing.T) {
	svc := newService(t, t.TempDir(), time.Hour)
	km, err := svc.EnsureFresh("dev-1")
	require.NoError(t, err)

	fp := svc.Fingerprint(km.PublicKey)
	assert.Equal(t, fp, svc.Fingerprint(km.PublicKey))
	assert.Len(t, string(fp), 20)
}
