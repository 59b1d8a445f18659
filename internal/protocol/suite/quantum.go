package suite

import (
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/sha3"

	"cloak/internal/crypto"
	"cloak/internal/domain"
)

const digestSize = 64

// encryptQuantumPrep wraps a Military payload in two cascaded digests:
// h1 = SHA-512(payload), h2 = SHA3-512(h1 || payload), laid out as
// h2 || payload || h1.
//
// This is a placeholder format reserved for a future post-quantum
// algorithm substitution. Hash wrapping adds tamper evidence only; it
// is not quantum resistance and callers must not treat it as such.
func encryptQuantumPrep(plaintext []byte, keys domain.KeyMaterial) ([]byte, error) {
	payload, err := encryptMilitary(plaintext, keys)
	if err != nil {
		return nil, err
	}
	h1, h2 := cascade(payload)

	out := make([]byte, 0, 2*digestSize+len(payload))
	out = append(out, h2...)
	out = append(out, payload...)
	out = append(out, h1...)
	return out, nil
}

func decryptQuantumPrep(blob []byte, keys domain.KeyMaterial) ([]byte, error) {
	if len(blob) <= 2*digestSize+minMilitarySize {
		return nil, fmt.Errorf("%w: quantum-prep blob too short (%d bytes)", domain.ErrCiphertextInvalid, len(blob))
	}
	h2 := blob[:digestSize]
	payload := blob[digestSize : len(blob)-digestSize]
	h1 := blob[len(blob)-digestSize:]

	wantH1, wantH2 := cascade(payload)
	ok := subtle.ConstantTimeCompare(h1, wantH1) & subtle.ConstantTimeCompare(h2, wantH2)
	if ok != 1 {
		return nil, fmt.Errorf("%w: quantum-prep digest mismatch", domain.ErrCiphertextInvalid)
	}
	return decryptMilitary(payload, keys)
}

// minMilitarySize is the smallest possible military payload: the
// wrapped session key plus the enhanced framing.
const minMilitarySize = crypto.WrappedKeySize + gcmNonceSize + gcmTagSize

func cascade(payload []byte) (h1, h2 []byte) {
	first := sha512.Sum512(payload)
	second := sha3.New512()
	second.Write(first[:])
	second.Write(payload)
	return first[:], second.Sum(nil)
}
