package ports

import (
	"context"
	"io"
)

// FileStore lands uploaded bytes on durable storage and returns a
// public retrieval URL for the stored file.
type FileStore interface {
	Store(ctx context.Context, originalFilename string, r io.Reader) (string, error)
}
