package kv

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// FileSlot persists the blob to a single file. Saves are atomic: the data
// is written to a temp file in the same directory and renamed over the
// target, so a crashed save never leaves a half-written snapshot behind.
type FileSlot struct {
	path string
}

// NewFileSlot creates a FileSlot backed by the given path. The parent
// directory is created on first save.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Load reads the slot contents. A missing file maps to ErrNotFound.
func (s *FileSlot) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "read slot file")
	}
	return data, nil
}

// Save atomically replaces the slot contents.
func (s *FileSlot) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create slot directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "rename temp file")
	}
	return nil
}
