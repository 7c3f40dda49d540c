package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamStore implements the object store using NATS JetStream object buckets.
// A container is a bucket.
type JetStreamStore struct {
	conn          *nats.Conn
	js            jetstream.JetStream
	publicBaseURL string

	mu      sync.Mutex
	buckets map[string]jetstream.ObjectStore
}

// NewJetStreamStore connects to NATS. Returned URLs use publicBaseURL, or the
// NATS URL itself when empty.
func NewJetStreamStore(natsURL, publicBaseURL string) (*JetStreamStore, error) {
	conn, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("blobstore: connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("blobstore: create JetStream context: %w", err)
	}

	if publicBaseURL == "" {
		publicBaseURL = natsURL
	}

	return &JetStreamStore{
		conn:          conn,
		js:            js,
		publicBaseURL: publicBaseURL,
		buckets:       make(map[string]jetstream.ObjectStore),
	}, nil
}

func (s *JetStreamStore) EnsureContainer(ctx context.Context, container string) error {
	_, err := s.bucket(ctx, container, true)
	return err
}

func (s *JetStreamStore) Upload(ctx context.Context, container, blobName string, data []byte, contentType string) (string, error) {
	store, err := s.bucket(ctx, container, false)
	if err != nil {
		return "", err
	}

	meta := jetstream.ObjectMeta{
		Name: blobName,
		Headers: nats.Header{
			"Content-Type": []string{contentType},
		},
	}
	if _, err := store.Put(ctx, meta, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("blobstore: put %s/%s: %w", container, blobName, err)
	}

	return objectURL(s.publicBaseURL, container, blobName), nil
}

func (s *JetStreamStore) Delete(ctx context.Context, container, blobName string) error {
	store, err := s.bucket(ctx, container, false)
	if err != nil {
		return err
	}

	err = store.Delete(ctx, blobName)
	if errors.Is(err, jetstream.ErrObjectNotFound) {
		return fmt.Errorf("blobstore: %s/%s: %w", container, blobName, ErrBlobNotFound)
	}
	if err != nil {
		return fmt.Errorf("blobstore: delete %s/%s: %w", container, blobName, err)
	}
	return nil
}

// bucket returns a handle to the named bucket, creating it when create is set.
func (s *JetStreamStore) bucket(ctx context.Context, name string, create bool) (jetstream.ObjectStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.buckets[name]; ok {
		return store, nil
	}

	store, err := s.js.ObjectStore(ctx, name)
	switch {
	case err == nil:
	case errors.Is(err, jetstream.ErrBucketNotFound) && create:
		store, err = s.js.CreateObjectStore(ctx, jetstream.ObjectStoreConfig{
			Bucket:      name,
			Description: "Product image storage bucket",
		})
		if err != nil {
			return nil, fmt.Errorf("blobstore: create bucket %s: %w", name, err)
		}
	case errors.Is(err, jetstream.ErrBucketNotFound):
		return nil, fmt.Errorf("blobstore: %s: %w", name, ErrContainerNotFound)
	default:
		return nil, fmt.Errorf("blobstore: open bucket %s: %w", name, err)
	}

	s.buckets[name] = store
	return store, nil
}

func (s *JetStreamStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	return nil
}
