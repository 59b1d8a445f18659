package suite_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloak/internal/crypto"
	"cloak/internal/domain"
	"cloak/internal/protocol/suite"
)

var (
	keysOnce sync.Once
	keysVal  domain.KeyMaterial
	keysErr  error
)

// testKeys generates one RSA-4096 key set for the whole package; the
// generation is too slow to repeat per test.
func testKeys(t *testing.T) domain.KeyMaterial {
	t.Helper()
	keysOnce.Do(func() {
		pub, priv, err := crypto.GenerateKeyPair()
		if err != nil {
			keysErr = err
			return
		}
		sym, err := crypto.NewSymmetricKey()
		if err != nil {
			keysErr = err
			return
		}
		now := time.Now().UTC()
		keysVal = domain.KeyMaterial{
			KeyID:        uuid.New(),
			DeviceID:     "dev-1",
			UserID:       "user-1",
			PublicKey:    pub,
			PrivateKey:   priv,
			SymmetricKey: sym,
			CreatedAt:    now,
			ExpiresAt:    now.Add(time.Hour),
		}
	})
	require.NoError(t, keysErr)
	return keysVal
}

func TestRoundTrip_AllLevels(t *testing.T) {
	km := testKeys(t)
	payloads := [][]byte{
		[]byte("x"),
		[]byte("hello, device"),
		bytes.Repeat([]byte{0xA5}, 64<<10),
	}
	for _, level := range domain.AllLevels() {
		for _, pt := range payloads {
			blob, err := suite.Encrypt(level, pt, km)
			require.NoError(t, err, "encrypt %s", level)
			require.NotEqual(t, pt, blob)

			got, err := suite.Decrypt(level, blob, km)
			require.NoError(t, err, "decrypt %s", level)
			assert.Equal(t, pt, got, "round trip %s", level)
		}
	}
}

func TestEncrypt_FreshRandomnessPerMessage(t *testing.T) {
	km := testKeys(t)
	for _, level := range domain.AllLevels() {
		a, err := suite.Encrypt(level, []byte("same input"), km)
		require.NoError(t, err)
		b, err := suite.Encrypt(level, []byte("same input"), km)
		require.NoError(t, err)
		assert.NotEqual(t, a, b, "two encryptions under %s must differ", level)
	}
}

func TestEncrypt_RejectsEmptyAndUnknownLevel(t *testing.T) {
	km := testKeys(t)

	_, err := suite.Encrypt(domain.LevelBasic, nil, km)
	require.ErrorIs(t, err, domain.ErrCiphertextInvalid)

	_, err = suite.Encrypt(domain.EncryptionLevel(42), []byte("p"), km)
	require.ErrorIs(t, err, domain.ErrUnsupportedLevel)

	_, err = suite.Decrypt(domain.EncryptionLevel(42), []byte("junk"), km)
	require.ErrorIs(t, err, domain.ErrUnsupportedLevel)
}

func TestDecrypt_TruncatedInput(t *testing.T) {
	km := testKeys(t)
	for _, level := range domain.AllLevels() {
		blob, err := suite.Encrypt(level, []byte("truncate me"), km)
		require.NoError(t, err)

		for _, n := range []int{0, 1, 5, 16} {
			_, err := suite.Decrypt(level, blob[:n], km)
			require.ErrorIs(t, err, domain.ErrCiphertextInvalid, "%s truncated to %d", level, n)
		}
	}
}

func TestDecrypt_LevelIsolation(t *testing.T) {
	km := testKeys(t)
	pt := []byte("level-bound payload with enough length to parse")

	basic, err := suite.Encrypt(domain.LevelBasic, pt, km)
	require.NoError(t, err)
	enhanced, err := suite.Encrypt(domain.LevelEnhanced, pt, km)
	require.NoError(t, err)

	_, err = suite.Decrypt(domain.LevelBasic, enhanced, km)
	require.Error(t, err)
	assert.True(t,
		isCryptoFailure(err),
		"enhanced blob under basic dispatch: got %v", err)

	_, err = suite.Decrypt(domain.LevelEnhanced, basic, km)
	require.Error(t, err)
	assert.True(t,
		isCryptoFailure(err),
		"basic blob under enhanced dispatch: got %v", err)
}

func isCryptoFailure(err error) bool {
	return errors.Is(err, domain.ErrDecryptionFailed) || errors.Is(err, domain.ErrCiphertextInvalid)
}

func TestMilitary_SessionKeyOverhead(t *testing.T) {
	km := testKeys(t)
	pt := []byte("ping")

	blob, err := suite.Encrypt(domain.LevelMilitary, pt, km)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(blob)-len(pt), crypto.WrappedKeySize,
		"military output must carry at least the wrapped session key")
}

func TestQuantumPrep_DigestTamper(t *testing.T) {
	km := testKeys(t)
	blob, err := suite.Encrypt(domain.LevelQuantumPrep, []byte("wrapped"), km)
	require.NoError(t, err)

	for _, idx := range []int{0, len(blob) - 1, len(blob) / 2} {
		tampered := append([]byte(nil), blob...)
		tampered[idx] ^= 0x01
		_, err := suite.Decrypt(domain.LevelQuantumPrep, tampered, km)
		require.ErrorIs(t, err, domain.ErrCiphertextInvalid, "flip at %d", idx)
	}
}
