package contracts

import (
	"context"
	"io"
	"time"
)

type StorageObject struct {
	Key       string
	URL       string
	ETag      string
	SizeBytes int64
}

type Storage interface {
	Upload(ctx context.Context, reader io.Reader, key string, size int64, contentType string) (*StorageObject, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, key string, expiryTime time.Duration) (string, error)
}
