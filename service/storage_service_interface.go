package service

import "context"

// StorageClientInterface defines the contract for the managed object store
type StorageClientInterface interface {
	// EnsureBucket checks that the public bucket exists, creating it if
	// absent. Returns whether it already existed. "Already exists" from a
	// concurrent create counts as success.
	EnsureBucket(ctx context.Context) (bool, error)
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}
