package domain

// KeyFileStore persists the full device-ID -> KeyMaterial map.
type KeyFileStore interface {
	SaveKeys(keys map[string]KeyMaterial) error
	LoadKeys() (map[string]KeyMaterial, error)
}

// TrustFileStore persists the device-ID -> TrustedDevice map.
type TrustFileStore interface {
	SaveTrusted(devices map[string]TrustedDevice) error
	LoadTrusted() (map[string]TrustedDevice, error)
}

// KeyService owns key material generation, lazy expiry-driven rotation
// and fingerprints.
type KeyService interface {
	// EnsureFresh returns the current keys for the device, regenerating
	// and persisting them first if they have expired. Rotation is atomic
	// per device: callers never observe a partially rotated record.
	EnsureFresh(deviceID string) (KeyMaterial, error)

	// Rotate regenerates immediately, regardless of expiry.
	Rotate(deviceID string) (KeyMaterial, error)

	// RotationDue reports whether the device's keys are past expiry.
	RotationDue(deviceID string) bool

	// Fingerprint returns the short digest of a public key.
	Fingerprint(publicKey []byte) Fingerprint

	// Count returns the number of loaded key records.
	Count() int
}

// EnvelopeService seals plaintext into authenticated envelopes and
// opens received ones.
type EnvelopeService interface {
	Seal(plaintext []byte, recipientDeviceID string, msgType MessageType, level EncryptionLevel) (Envelope, error)
	Open(env Envelope) (OpenedMessage, error)
}

// TrustService records and queries trusted remote devices. Trust is
// advisory metadata for the caller; the seal/open path never consults
// it.
type TrustService interface {
	VerifyDevice(deviceID string, publicKey []byte) (TrustedDevice, error)
	IsTrusted(deviceID string) bool
	Get(deviceID string) (TrustedDevice, error)
	Count() int
}
