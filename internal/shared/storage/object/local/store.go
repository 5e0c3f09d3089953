package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"portfolio-web/internal/shared/storage/object"
)

// Store implements ObjectStore on top of a local directory.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir returns the directory the store is rooted at.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path appends key to the store root exactly as configured, without cleaning
// and without touching the filesystem. A relative root such as "./media"
// stays relative in the result.
func (s *Store) Path(storageKey string) string {
	if s.baseDir == "" {
		return storageKey
	}
	if strings.HasSuffix(s.baseDir, string(filepath.Separator)) || strings.HasSuffix(s.baseDir, "/") {
		return s.baseDir + storageKey
	}
	return s.baseDir + string(filepath.Separator) + storageKey
}

// Stat reports size and modification time for a stored regular file.
func (s *Store) Stat(ctx context.Context, storageKey string) (object.Info, error) {
	if err := ctx.Err(); err != nil {
		return object.Info{}, err
	}

	fullPath, err := s.resolve(storageKey)
	if err != nil {
		return object.Info{}, err
	}

	fi, err := os.Stat(fullPath)
	if err != nil {
		return object.Info{}, mapError(storageKey, err)
	}
	if fi.IsDir() {
		return object.Info{}, fmt.Errorf("stat %s: %w", storageKey, object.ErrNotFound)
	}
	return infoFor(storageKey, s.Path(storageKey), fi), nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (*object.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := s.resolve(storageKey)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, mapError(storageKey, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", storageKey, err)
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", storageKey, object.ErrNotFound)
	}

	return &object.Object{
		Info: infoFor(storageKey, s.Path(storageKey), fi),
		Body: f,
	}, nil
}

func (s *Store) resolve(storageKey string) (string, error) {
	clean := filepath.Clean(storageKey)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("%q: %w", storageKey, object.ErrInvalidKey)
	}
	return filepath.Join(s.baseDir, clean), nil
}

func infoFor(storageKey, path string, fi fs.FileInfo) object.Info {
	return object.Info{
		Key:       storageKey,
		Path:      path,
		SizeBytes: fi.Size(),
		ModTime:   fi.ModTime().UTC(),
	}
}

func mapError(storageKey string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", storageKey, object.ErrNotFound)
	}
	return err
}
