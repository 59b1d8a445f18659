package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fingerprint is a short hex digest of a public key, used for
// human-checkable device identity and trust lookups.
type Fingerprint string

// SymmetricKeySize is the size of the root symmetric secret in bytes.
const SymmetricKeySize = 32

// KeyMaterial is the full key set for one local device identity. Exactly
// one active record exists per device ID; expiry triggers regeneration
// of the whole record, never incremental re-keying.
type KeyMaterial struct {
	KeyID    uuid.UUID `json:"key_id"`
	DeviceID string    `json:"device_id"`
	UserID   string    `json:"user_id"`

	// PublicKey is a PKCS#1 DER encoding of the 4096-bit RSA public key.
	PublicKey []byte `json:"public_key"`
	// PrivateKey is a PKCS#8 DER encoding of the matching private key.
	// It never leaves the key store's ownership.
	PrivateKey []byte `json:"private_key"`
	// SymmetricKey is the 256-bit root secret: Basic encrypts under it
	// directly, Enhanced derives from it, and envelope signatures key
	// their HMAC with it.
	SymmetricKey []byte `json:"symmetric_key"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the record is past its validity window at now.
func (k KeyMaterial) Expired(now time.Time) bool {
	return now.After(k.ExpiresAt)
}

// Envelope is the authenticated, encrypted unit that crosses the
// subsystem boundary. It is immutable once sealed; Open never mutates
// it. The transport layer chooses its own wire encoding for these
// fields (the JSON tags serve the CLI and any JSON-based transport).
type Envelope struct {
	Ciphertext        []byte          `json:"ciphertext"`
	MessageType       MessageType     `json:"message_type"`
	Level             EncryptionLevel `json:"encryption_level"`
	SenderDeviceID    string          `json:"sender_device_id"`
	RecipientDeviceID string          `json:"recipient_device_id"`
	Timestamp         time.Time       `json:"timestamp"`
	// Signature is an HMAC-SHA256 over Ciphertext under the sender's
	// symmetric key.
	Signature []byte `json:"signature"`
	// KeyFingerprint identifies the sender's public key for trust lookups.
	KeyFingerprint Fingerprint `json:"key_fingerprint"`
}

// OpenedMessage is returned by EnvelopeService.Open.
type OpenedMessage struct {
	Plaintext      []byte
	MessageType    MessageType
	SenderDeviceID string
	Timestamp      time.Time
}

// TrustLevel records how far a remote device's key has been verified.
type TrustLevel string

const (
	TrustUnverified TrustLevel = "unverified"
	TrustVerified   TrustLevel = "verified"
)

// TrustedDevice is a trust record for a remote device, keyed by device
// ID. Trust level changes only through an explicit verify operation.
type TrustedDevice struct {
	RecordID    uuid.UUID   `json:"record_id"`
	DeviceID    string      `json:"device_id"`
	PublicKey   []byte      `json:"public_key"`
	Fingerprint Fingerprint `json:"fingerprint"`
	VerifiedAt  time.Time   `json:"verified_at"`
	TrustLevel  TrustLevel  `json:"trust_level"`
}

// Status is the introspection snapshot exposed to callers.
type Status struct {
	DeviceID        string            `json:"device_id"`
	KeysLoaded      int               `json:"keys_loaded_count"`
	TrustedDevices  int               `json:"trusted_device_count"`
	RotationDue     bool              `json:"rotation_due"`
	SupportedLevels []EncryptionLevel `json:"supported_levels"`
}
