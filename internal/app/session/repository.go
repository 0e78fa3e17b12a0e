package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// NamespaceKey is the fixed identifier under which the session snapshot is
// stored, regardless of backend.
const NamespaceKey = "snookerhub_auth"

// Repository persists session snapshots across process restarts.
// Load returns (nil, nil) when no snapshot has been stored.
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Clear(ctx context.Context) error
}

// FileRepository stores the session snapshot as a JSON file in a local
// directory. It is the default backend on platforms with a writable data dir.
type FileRepository struct {
	path string
}

// NewFileRepository creates a FileRepository rooted at dir. The directory is
// created if it does not exist.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	return &FileRepository{
		path: filepath.Join(dir, NamespaceKey+".json"),
	}, nil
}

// Load reads the stored snapshot, or returns (nil, nil) when none exists.
func (f *FileRepository) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	return &snap, nil
}

// Save writes the snapshot atomically (write to temp file, then rename).
func (f *FileRepository) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session snapshot: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace session snapshot: %w", err)
	}

	return nil
}

// Clear removes the stored snapshot. A missing snapshot is not an error.
func (f *FileRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session snapshot: %w", err)
	}

	return nil
}
