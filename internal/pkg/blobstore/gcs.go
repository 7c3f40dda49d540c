package blobstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultGCSBaseURL = "https://storage.googleapis.com"

// GCSConfig configures the Cloud Storage backend.
type GCSConfig struct {
	// ProjectID owns buckets created by EnsureContainer.
	ProjectID string
	// Endpoint points the client at an emulator; empty uses the real service.
	Endpoint string
	// PublicBaseURL prefixes returned URLs; empty uses storage.googleapis.com.
	PublicBaseURL string
}

// GCSStore keeps blobs as objects in Cloud Storage buckets. A container is a bucket.
type GCSStore struct {
	client        *storage.Client
	projectID     string
	publicBaseURL string
}

func NewGCSStore(ctx context.Context, cfg GCSConfig) (*GCSStore, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("blobstore: storage client: %w", err)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		base = defaultGCSBaseURL
	}

	return &GCSStore{
		client:        client,
		projectID:     cfg.ProjectID,
		publicBaseURL: base,
	}, nil
}

// EnsureContainer creates the bucket with publicly readable objects when it is missing.
func (s *GCSStore) EnsureContainer(ctx context.Context, container string) error {
	bkt := s.client.Bucket(container)

	_, err := bkt.Attrs(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("blobstore: bucket %s attrs: %w", container, err)
	}

	err = bkt.Create(ctx, s.projectID, &storage.BucketAttrs{
		PredefinedDefaultObjectACL: "publicRead",
	})
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
		// created concurrently
		return nil
	}
	if err != nil {
		return fmt.Errorf("blobstore: create bucket %s: %w", container, err)
	}
	return nil
}

func (s *GCSStore) Upload(ctx context.Context, container, blobName string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(container).Object(blobName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		// cancelling the context aborts the upload
		cancel()
		_ = w.Close()
		return "", fmt.Errorf("blobstore: write %s/%s: %w", container, blobName, err)
	}
	if err := w.Close(); err != nil {
		if errors.Is(err, storage.ErrBucketNotExist) {
			return "", fmt.Errorf("blobstore: %s: %w", container, ErrContainerNotFound)
		}
		return "", fmt.Errorf("blobstore: upload %s/%s: %w", container, blobName, err)
	}

	return objectURL(s.publicBaseURL, container, blobName), nil
}

func (s *GCSStore) Delete(ctx context.Context, container, blobName string) error {
	err := s.client.Bucket(container).Object(blobName).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("blobstore: %s/%s: %w", container, blobName, ErrBlobNotFound)
	}
	if err != nil {
		return fmt.Errorf("blobstore: delete %s/%s: %w", container, blobName, err)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
