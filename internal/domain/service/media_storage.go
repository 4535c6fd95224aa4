package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for storing uploaded gallery media.
// Implementations return a public URL for the stored object.
type MediaStorage interface {
	// Save writes the object under key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the object previously stored under key.
	Delete(ctx context.Context, key string) error
}
