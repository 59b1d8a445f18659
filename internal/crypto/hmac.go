package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Sign computes an HMAC-SHA256 tag over data.
func Sign(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Verify reports whether sig is a valid tag for data under key. The
// comparison is constant time.
func Verify(key, data, sig []byte) bool {
	return hmac.Equal(Sign(key, data), sig)
}
