package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cloak/internal/domain"
)

// readJSON reads path into out; a missing file is not an error so that
// a fresh store starts empty.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: parse %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	return nil
}

// writeJSON marshals v and hands off to writeAtomic.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	return writeAtomic(path, b, mode)
}

// writeAtomic writes via a temp file in the same directory then
// renames, so a crash never leaves a partially written file in place
// of a valid one.
func writeAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: temp file: %v", domain.ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: chmod %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", domain.ErrStorage, filepath.Base(path), err)
	}
	return nil
}
