package app

import "time"

// Config holds the explicit construction-time parameters.
type Config struct {
	// StorageDir roots the key and trust files, e.g. $HOME/.cloak.
	StorageDir string
	// DeviceID identifies the local device; UserID its owner.
	DeviceID string
	UserID   string
	// RotationInterval is the key validity window (default 1h).
	RotationInterval time.Duration
	// MaxMessageAge is the envelope freshness window (default 5m).
	MaxMessageAge time.Duration
}
