package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cloak/internal/domain"
)

const (
	keysFile   = "keys.json"
	secretFile = ".secret"

	secretSize = 32
)

// KeyFile stores the device-ID -> KeyMaterial map on disk, sealed under
// a key derived from a per-store machine secret. The file is
// single-writer: one process owns it, and multiple logical devices on
// the same machine share it, distinguished by map key.
type KeyFile struct {
	dir    string
	secret []byte
	mu     sync.Mutex
}

// NewKeyFile opens (or initialises) a key store rooted at dir. The
// directory and the machine secret are created on first use with
// owner-only permissions.
func NewKeyFile(dir string) (*KeyFile, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create store dir: %v", domain.ErrStorage, err)
	}
	secret, err := loadOrCreateSecret(filepath.Join(dir, secretFile))
	if err != nil {
		return nil, err
	}
	return &KeyFile{dir: dir, secret: secret}, nil
}

// SaveKeys seals and atomically replaces the whole map. It never
// partially overwrites an existing valid file.
func (s *KeyFile) SaveKeys(keys map[string]domain.KeyMaterial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("%w: encode key material: %v", domain.ErrStorage, err)
	}
	sealed, err := seal(s.secret, raw)
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.dir, keysFile), sealed, 0o600)
}

// LoadKeys returns all persisted key material. A store that has never
// been written loads as an empty map.
func (s *KeyFile) LoadKeys() (map[string]domain.KeyMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(filepath.Join(s.dir, keysFile))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]domain.KeyMaterial{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, keysFile, err)
	}
	raw, err := unseal(s.secret, sealed)
	if err != nil {
		return nil, err
	}
	keys := map[string]domain.KeyMaterial{}
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("%w: parse key material: %v", domain.ErrStorage, err)
	}
	return keys, nil
}

// loadOrCreateSecret reads the machine secret, generating and
// persisting a fresh one on first use.
func loadOrCreateSecret(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		if len(b) != secretSize {
			return nil, fmt.Errorf("%w: machine secret has %d bytes, want %d", domain.ErrStorage, len(b), secretSize)
		}
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: read machine secret: %v", domain.ErrStorage, err)
	}
	secret := make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("%w: generate machine secret: %v", domain.ErrStorage, err)
	}
	if err := writeAtomic(path, secret, 0o600); err != nil {
		return nil, err
	}
	return secret, nil
}

// Compile-time assertion that KeyFile implements domain.KeyFileStore.
var _ domain.KeyFileStore = (*KeyFile)(nil)
