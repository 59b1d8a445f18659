package suite

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"cloak/internal/crypto"
	"cloak/internal/domain"
	"cloak/internal/util/memzero"
)

const (
	// enhancedInfo fixes the HKDF purpose for the derived message key.
	enhancedInfo = "cloak/enhanced/v1"

	gcmNonceSize = 16
	gcmTagSize   = 16
)

// encryptEnhanced derives a per-purpose key from the root secret and
// seals with AES-256-GCM under a fresh random nonce. Deriving limits
// the blast radius of root key reuse compared to Basic.
func encryptEnhanced(plaintext []byte, keys domain.KeyMaterial) ([]byte, error) {
	key, err := crypto.DeriveKey(keys.SymmetricKey, enhancedInfo)
	if err != nil {
		return nil, fmt.Errorf("derive enhanced key: %w", err)
	}
	defer memzero.Zero(key)
	return sealGCM(key, plaintext)
}

func decryptEnhanced(blob []byte, keys domain.KeyMaterial) ([]byte, error) {
	key, err := crypto.DeriveKey(keys.SymmetricKey, enhancedInfo)
	if err != nil {
		return nil, fmt.Errorf("derive enhanced key: %w", err)
	}
	defer memzero.Zero(key)
	return openGCM(key, blob)
}

// sealGCM produces the enhanced framing: nonce || tag || ciphertext.
// Military reuses it with a fresh session key in place of the derived
// key.
func sealGCM(key, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcmNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	ct, tag := sealed[:len(sealed)-gcmTagSize], sealed[len(sealed)-gcmTagSize:]

	out := make([]byte, 0, gcmNonceSize+len(sealed))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ct...)
	return out, nil
}

func openGCM(key, blob []byte) ([]byte, error) {
	if len(blob) <= gcmNonceSize+gcmTagSize {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", domain.ErrCiphertextInvalid, len(blob))
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := blob[:gcmNonceSize]
	tag := blob[gcmNonceSize : gcmNonceSize+gcmTagSize]
	ct := blob[gcmNonceSize+gcmTagSize:]

	sealed := make([]byte, 0, len(ct)+gcmTagSize)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: aead open", domain.ErrDecryptionFailed)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes cipher: %w", err)
	}
	return cipher.NewGCMWithNonceSize(block, gcmNonceSize)
}
