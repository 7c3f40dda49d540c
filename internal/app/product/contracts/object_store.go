package contracts

import "context"

// ObjectStore holds named binary blobs grouped in containers.
// Names form a flat, non-versioned key space; uploading an existing name replaces it.
type ObjectStore interface {
	// EnsureContainer creates the container if it does not exist yet.
	EnsureContainer(ctx context.Context, container string) error

	// Upload stores data under blobName and returns a URL that resolves to it.
	Upload(ctx context.Context, container, blobName string, data []byte, contentType string) (string, error)

	// Delete removes the named blob.
	Delete(ctx context.Context, container, blobName string) error
}
