// Package blobstore implements the product image object store on Google Cloud
// Storage, NATS JetStream object buckets, and process memory.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrContainerNotFound is returned when uploading into a container that was never created.
	ErrContainerNotFound = errors.New("blobstore: container not found")

	// ErrBlobNotFound is returned when deleting a blob that does not exist.
	ErrBlobNotFound = errors.New("blobstore: blob not found")
)

// Store is an object store that holds connections which must be released.
type Store interface {
	EnsureContainer(ctx context.Context, container string) error
	Upload(ctx context.Context, container, blobName string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, container, blobName string) error
	Close() error
}

// Open selects a backend from the connection string scheme:
//
//	gs://<project>[?endpoint=<url>]   Google Cloud Storage
//	nats://<host>:<port>              NATS JetStream object store
//	mem://                            process memory
//
// publicBaseURL overrides the prefix of returned blob URLs.
func Open(ctx context.Context, dsn, publicBaseURL string) (Store, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("blobstore: parse connection string: %w", err)
	}

	switch u.Scheme {
	case "gs":
		return NewGCSStore(ctx, GCSConfig{
			ProjectID:     u.Host,
			Endpoint:      u.Query().Get("endpoint"),
			PublicBaseURL: publicBaseURL,
		})
	case "nats", "tls":
		return NewJetStreamStore(dsn, publicBaseURL)
	case "mem":
		return NewMemoryStore(publicBaseURL), nil
	default:
		return nil, fmt.Errorf("blobstore: unsupported scheme %q", u.Scheme)
	}
}

// objectURL joins the public prefix, container and blob name into a resolvable URL.
// A bare scheme prefix such as mem:// is kept intact.
func objectURL(base, container, blobName string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(container) + "/" + url.PathEscape(blobName)
}
