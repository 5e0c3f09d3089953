package object

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNotFound is returned when no object exists for a key.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that escape the store root.
	ErrInvalidKey = errors.New("invalid storage key")
)

// Info describes a stored object.
type Info struct {
	Key       string
	Path      string
	SizeBytes int64
	ModTime   time.Time
}

// Object is an opened object. Callers own Body and must close it.
type Object struct {
	Info
	Body io.ReadCloser
}

// ObjectStore defines the read-only contract for locating and streaming binary objects.
type ObjectStore interface {
	// Path returns the location the store resolves key to, whether or not it exists.
	Path(storageKey string) string
	Stat(ctx context.Context, storageKey string) (Info, error)
	Open(ctx context.Context, storageKey string) (*Object, error)
}
