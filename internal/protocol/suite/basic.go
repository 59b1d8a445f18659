package suite

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"cloak/internal/domain"
)

// encryptBasic seals plaintext with ChaCha20-Poly1305 directly under
// the root symmetric key. The output is self-contained: nonce first,
// then the sealed bytes (tag appended by the AEAD).
func encryptBasic(plaintext []byte, keys domain.KeyMaterial) ([]byte, error) {
	aead, err := chacha20poly1305.New(keys.SymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("basic aead: %w", err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptBasic(blob []byte, keys domain.KeyMaterial) ([]byte, error) {
	if len(blob) <= chacha20poly1305.NonceSize+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: basic blob too short (%d bytes)", domain.ErrCiphertextInvalid, len(blob))
	}
	aead, err := chacha20poly1305.New(keys.SymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("basic aead: %w", err)
	}
	nonce, sealed := blob[:chacha20poly1305.NonceSize], blob[chacha20poly1305.NonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: basic", domain.ErrDecryptionFailed)
	}
	return plaintext, nil
}
