package suite

import (
	"crypto/rand"
	"fmt"

	"cloak/internal/crypto"
	"cloak/internal/domain"
	"cloak/internal/util/memzero"
)

// encryptMilitary generates a fresh session key, bulk-encrypts with the
// enhanced framing under it, and wraps the session key RSA-OAEP to the
// device's public key. The wrapped key leads the output so decrypt can
// recover the session key before touching the payload.
func encryptMilitary(plaintext []byte, keys domain.KeyMaterial) ([]byte, error) {
	session := make([]byte, domain.SymmetricKeySize)
	if _, err := rand.Read(session); err != nil {
		return nil, err
	}
	defer memzero.Zero(session)

	payload, err := sealGCM(session, plaintext)
	if err != nil {
		return nil, err
	}
	wrapped, err := crypto.WrapKey(keys.PublicKey, session)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(wrapped)+len(payload))
	out = append(out, wrapped...)
	out = append(out, payload...)
	return out, nil
}

func decryptMilitary(blob []byte, keys domain.KeyMaterial) ([]byte, error) {
	if len(blob) <= crypto.WrappedKeySize+gcmNonceSize+gcmTagSize {
		return nil, fmt.Errorf("%w: military blob too short (%d bytes)", domain.ErrCiphertextInvalid, len(blob))
	}
	session, err := crypto.UnwrapKey(keys.PrivateKey, blob[:crypto.WrappedKeySize])
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(session)
	return openGCM(session, blob[crypto.WrappedKeySize:])
}
