package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"cloak/internal/domain"
)

// NewSymmetricKey returns a fresh 256-bit random secret.
func NewSymmetricKey() ([]byte, error) {
	key := make([]byte, domain.SymmetricKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey derives a 256-bit per-purpose key from a root secret via
// HKDF-SHA256. The info string fixes the purpose so distinct contexts
// never share derived keys.
func DeriveKey(root []byte, info string) ([]byte, error) {
	out := make([]byte, domain.SymmetricKeySize)
	r := hkdf.New(sha256.New, root, nil, []byte(info))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
