// Package storage persists uploaded images behind a small Store interface so
// the rest of the service never cares whether objects land on local disk or
// in an S3 bucket.
package storage

import (
	"context"
	"fmt"
	"io"

	"inventori/internal/config"
)

type Store interface {
	// Put writes the object under key and returns a URL the client can
	// load the image from.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL reverses Put's key-to-URL mapping. Returns false for URLs
	// that do not point into this store.
	KeyFromURL(imageURL string) (string, bool)
}

func NewStore(cfg *config.Configuration) (Store, error) {
	switch cfg.Storage.Backend {
	case "local":
		return NewLocalStore(cfg.Storage.Path, cfg.Storage.BaseURL)
	case "s3":
		return NewS3Store(cfg.Storage.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
