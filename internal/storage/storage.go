package storage

import (
	"context"
	"io"
)

// ObjectStorage captures the minimal operations the image upload flow needs
// against an S3-compatible bucket.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}
