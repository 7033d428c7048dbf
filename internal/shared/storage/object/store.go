package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("object not found")

// Store is a minimal blob store used for uploaded resume files.
type Store interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}
