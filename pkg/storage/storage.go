// Package storage defines the object storage used for published environment manifests.
// Backends are the local filesystem and S3-compatible services (AWS S3, Aliyun OSS, MinIO).
package storage

import (
	"context"
	"io"
)

// Storage is implemented by every manifest storage backend.
// Missing objects are reported with errors wrapping fs.ErrNotExist, keys the
// backend refuses with errors wrapping fs.ErrInvalid.
type Storage interface {
	// PutObject stores data under key, replacing any previous object.
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error

	// GetObject returns a reader the caller must close.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	DeleteObject(ctx context.Context, key string) error

	ObjectExists(ctx context.Context, key string) (bool, error)

	// GenerateURL returns where clients can fetch the object: a /manifests/ path
	// served by this service, or a presigned URL for S3.
	GenerateURL(ctx context.Context, key string) (string, error)

	// Type returns "local" or "s3".
	Type() string
}

// ProxyPath is the service path that streams the object stored under key.
func ProxyPath(key string) string {
	return "/manifests/" + key
}
