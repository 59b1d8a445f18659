package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"cloak/internal/domain"
)

// RSAKeyBits is the modulus size for device key pairs.
const RSAKeyBits = 4096

// WrappedKeySize is the OAEP ciphertext size for an RSAKeyBits modulus.
const WrappedKeySize = RSAKeyBits / 8

// GenerateKeyPair returns a fresh RSA-4096 key pair as DER bytes:
// PKCS#1 for the public key, PKCS#8 for the private key.
func GenerateKeyPair() (publicDER, privateDER []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, RSAKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("generate rsa key: %w", err)
	}
	privateDER, err = x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal private key: %w", err)
	}
	return x509.MarshalPKCS1PublicKey(&key.PublicKey), privateDER, nil
}

// WrapKey encrypts a session key to the given PKCS#1 DER public key
// using RSA-OAEP with SHA-256.
func WrapKey(publicDER, sessionKey []byte) ([]byte, error) {
	pub, err := x509.ParsePKCS1PublicKey(publicDER)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %v", domain.ErrCiphertextInvalid, err)
	}
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, sessionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("wrap session key: %w", err)
	}
	return wrapped, nil
}

// UnwrapKey recovers a session key wrapped with WrapKey, given the
// PKCS#8 DER private key.
func UnwrapKey(privateDER, wrapped []byte) ([]byte, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(privateDER)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %v", domain.ErrStorage, err)
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not RSA", domain.ErrStorage)
	}
	session, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, wrapped, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap session key", domain.ErrDecryptionFailed)
	}
	return session, nil
}
