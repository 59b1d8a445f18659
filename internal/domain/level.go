package domain

import "fmt"

// EncryptionLevel selects one of the four cipher suite tiers, ordered by
// cost and strength. The set is closed: dispatch on it is exhaustive and
// an unknown value is rejected with ErrUnsupportedLevel.
type EncryptionLevel uint8

const (
	// LevelBasic is a single AEAD pass under the root symmetric key.
	LevelBasic EncryptionLevel = iota
	// LevelEnhanced encrypts under an HKDF-derived per-purpose key with a
	// fresh random nonce per message.
	LevelEnhanced
	// LevelMilitary wraps a fresh session key to the device's asymmetric
	// key and bulk-encrypts under that session key.
	LevelMilitary
	// LevelQuantumPrep wraps a Military payload in two cascaded hash
	// digests. It is a tamper-evidence placeholder reserved for a future
	// post-quantum algorithm substitution; it is NOT quantum-resistant
	// cryptography and must not be presented as such.
	LevelQuantumPrep
)

// AllLevels returns the supported levels in ascending strength order.
func AllLevels() []EncryptionLevel {
	return []EncryptionLevel{LevelBasic, LevelEnhanced, LevelMilitary, LevelQuantumPrep}
}

func (l EncryptionLevel) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelEnhanced:
		return "enhanced"
	case LevelMilitary:
		return "military"
	case LevelQuantumPrep:
		return "quantum-prep"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// ParseLevel maps a textual level name back to its enum value.
func ParseLevel(s string) (EncryptionLevel, error) {
	for _, l := range AllLevels() {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLevel, s)
}

// MarshalText encodes the level by name for JSON/YAML envelopes.
func (l EncryptionLevel) MarshalText() ([]byte, error) {
	switch l {
	case LevelBasic, LevelEnhanced, LevelMilitary, LevelQuantumPrep:
		return []byte(l.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, uint8(l))
}

// UnmarshalText mirrors MarshalText.
func (l *EncryptionLevel) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
