package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintBytes fixes the display length: 10 bytes, 20 hex chars.
const fingerprintBytes = 10

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the DER encoding with SHA-256 and truncates for display.
// The same key always yields the same fingerprint.
func Fingerprint(publicKey []byte) string {
	sum := sha256.Sum256(publicKey)
	return hex.EncodeToString(sum[:fingerprintBytes])
}
