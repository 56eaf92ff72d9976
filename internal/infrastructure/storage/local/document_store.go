// internal/infrastructure/storage/local/document_store.go
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

// DocumentStore keeps the pantry snapshot in a JSON file on disk
type DocumentStore struct {
	path string
}

func NewDocumentStore(path string) *DocumentStore {
	return &DocumentStore{path: path}
}

// Path returns the file backing the store
func (s *DocumentStore) Path() string {
	return s.path
}

// Load returns nil when the file does not exist yet
func (s *DocumentStore) Load(ctx context.Context) (*pantry.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pantry file: %w", err)
	}

	var snap pantry.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode pantry file %s: %w", s.path, err)
	}
	return &snap, nil
}

// Save writes to a temporary file and renames it over the previous one so a
// crash never leaves a truncated document.
func (s *DocumentStore) Save(ctx context.Context, snap *pantry.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode pantry file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".pantry-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write pantry file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write pantry file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace pantry file: %w", err)
	}
	return nil
}

// Ping checks that the directory holding the file is reachable
func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(filepath.Dir(s.path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(s.path))
	}
	return nil
}
