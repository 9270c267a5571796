package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilePersister keeps the snapshot in a single file on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written
// snapshot behind.
type FilePersister struct {
	path string
}

// NewFilePersister constructs a file-backed persister.
func NewFilePersister(path string) (*FilePersister, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FilePersister{path: path}, nil
}

// Save writes the snapshot payload atomically.
func (p *FilePersister) Save(_ context.Context, payload []byte) error {
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot payload, or ErrNotFound when no file exists.
func (p *FilePersister) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return payload, nil
}
