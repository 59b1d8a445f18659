package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"cloak/internal/domain"
	"cloak/internal/util/memzero"
)

// The current supported version of the sealed blob format on disk.
const sealedFormatVersion = 1

// blob is the on-disk JSON structure holding the ciphertext and KDF
// parameters for the sealed key file.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from secret and a fresh salt, then encrypts raw
// into a JSON blob. The nonce is zero; the salt-bound key guarantees
// uniqueness, and the salt rides along as associated data.
func seal(secret, raw []byte) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", domain.ErrStorage, err)
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key(secret, salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: derive seal key: %v", domain.ErrStorage, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: seal aead: %v", domain.ErrStorage, err)
	}
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// unseal opens a JSON blob produced by seal. Any parse or decrypt
// failure reads as corruption of the key file.
func unseal(secret, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("%w: parse sealed blob: %v", domain.ErrStorage, err)
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("%w: unsupported key file version %d", domain.ErrStorage, bl.V)
	}
	key, err := scrypt.Key(secret, bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: derive seal key: %v", domain.ErrStorage, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: seal aead: %v", domain.ErrStorage, err)
	}
	var nonce [chacha20poly1305.NonceSize]byte
	raw, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: key file corrupt or wrong machine secret", domain.ErrStorage)
	}
	return raw, nil
}
