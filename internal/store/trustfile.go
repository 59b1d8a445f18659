package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cloak/internal/domain"
)

const trustFile = "trust.json"

// TrustFile stores trust records as plain JSON; they hold public
// material only.
type TrustFile struct {
	dir string
	mu  sync.Mutex
}

func NewTrustFile(dir string) (*TrustFile, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create store dir: %v", domain.ErrStorage, err)
	}
	return &TrustFile{dir: dir}, nil
}

func (s *TrustFile) SaveTrusted(devices map[string]domain.TrustedDevice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, trustFile), devices, 0o600)
}

func (s *TrustFile) LoadTrusted() (map[string]domain.TrustedDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	devices := map[string]domain.TrustedDevice{}
	if err := readJSON(filepath.Join(s.dir, trustFile), &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Compile-time assertion that TrustFile implements domain.TrustFileStore.
var _ domain.TrustFileStore = (*TrustFile)(nil)
