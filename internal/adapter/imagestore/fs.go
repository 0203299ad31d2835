// Package imagestore persists processed item photos on the local
// filesystem. Keys are opaque to callers; items reference photos by key
// only, never by path.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/novahq/nova-backend/internal/domain"
)

// Store is a filesystem-backed image store rooted at a single directory.
type Store struct {
	dir string
}

// New creates the store, making the root directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes processed JPEG bytes under a fresh key and returns the key.
func (s *Store) Save(_ context.Context, data []byte) (string, error) {
	key := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", key, err)
	}
	return key, nil
}

// Open returns a reader for the stored image. The caller owns closing it.
// Returns domain.ErrNotFound for unknown keys.
func (s *Store) Open(_ context.Context, key string) (io.ReadCloser, error) {
	// Keys never contain path separators; strip any to keep reads inside
	// the root directory.
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open image %s: %w", key, err)
	}
	return f, nil
}

// Delete removes a stored image. Missing keys are not an error; delete is
// used for best-effort cleanup.
func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete image %s: %w", key, err)
	}
	return nil
}
