package suite

import (
	"fmt"

	"cloak/internal/domain"
)

// MaxPlaintextSize caps a single message at 1 MiB to bound memory use.
const MaxPlaintextSize = 1 << 20

// Encrypt runs the tier selected by level over plaintext using the
// device's key material and fresh randomness.
func Encrypt(level domain.EncryptionLevel, plaintext []byte, keys domain.KeyMaterial) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", domain.ErrCiphertextInvalid)
	}
	if len(plaintext) > MaxPlaintextSize {
		return nil, fmt.Errorf("%w: plaintext exceeds %d bytes", domain.ErrCiphertextInvalid, MaxPlaintextSize)
	}

	switch level {
	case domain.LevelBasic:
		return encryptBasic(plaintext, keys)
	case domain.LevelEnhanced:
		return encryptEnhanced(plaintext, keys)
	case domain.LevelMilitary:
		return encryptMilitary(plaintext, keys)
	case domain.LevelQuantumPrep:
		return encryptQuantumPrep(plaintext, keys)
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnsupportedLevel, uint8(level))
	}
}

// Decrypt is the structural inverse of Encrypt. Malformed or truncated
// input yields ErrCiphertextInvalid; an authentication or unwrap
// failure yields ErrDecryptionFailed. No partial plaintext is returned.
func Decrypt(level domain.EncryptionLevel, blob []byte, keys domain.KeyMaterial) ([]byte, error) {
	switch level {
	case domain.LevelBasic:
		return decryptBasic(blob, keys)
	case domain.LevelEnhanced:
		return decryptEnhanced(blob, keys)
	case domain.LevelMilitary:
		return decryptMilitary(blob, keys)
	case domain.LevelQuantumPrep:
		return decryptQuantumPrep(blob, keys)
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnsupportedLevel, uint8(level))
	}
}
