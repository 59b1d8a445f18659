package domain

import "errors"

// Error taxonomy. Every failure surfaces as one of these sentinels,
// usually wrapped with call-site context; callers test with errors.Is.
// The subsystem performs no retries and never falls back to a weaker
// level on failure.
var (
	// ErrStorage covers an unreadable, unwritable or corrupt key file.
	// Fatal to the calling operation.
	ErrStorage = errors.New("key storage failure")

	// ErrCiphertextInvalid covers malformed, truncated or wrong-level
	// input to a decrypt routine, before any key is applied.
	ErrCiphertextInvalid = errors.New("malformed ciphertext")

	// ErrDecryptionFailed is an AEAD or session-key unwrap failure. No
	// partial plaintext is ever returned alongside it.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrAuthenticationFailed is an envelope signature mismatch,
	// reported distinctly from ciphertext corruption so callers can
	// tell tampering apart.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrReplayOrExpired marks an envelope outside the freshness window.
	ErrReplayOrExpired = errors.New("envelope replayed or expired")

	// ErrUnknownDevice means no trust record exists for the device.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrUnsupportedLevel rejects a level outside the closed enum.
	ErrUnsupportedLevel = errors.New("unsupported encryption level")
)
