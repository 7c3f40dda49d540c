package blobstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryObject is a blob held by MemoryStore.
type MemoryObject struct {
	Data        []byte
	ContentType string
}

// MemoryStore keeps blobs in process memory.
type MemoryStore struct {
	publicBaseURL string

	mu         sync.Mutex
	containers map[string]map[string]MemoryObject
}

// NewMemoryStore returns an empty store whose URLs start with publicBaseURL, or mem:// when empty.
func NewMemoryStore(publicBaseURL string) *MemoryStore {
	if publicBaseURL == "" {
		publicBaseURL = "mem://"
	}
	return &MemoryStore{
		publicBaseURL: publicBaseURL,
		containers:    make(map[string]map[string]MemoryObject),
	}
}

func (s *MemoryStore) EnsureContainer(_ context.Context, container string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.containers[container]; !ok {
		s.containers[container] = make(map[string]MemoryObject)
	}
	return nil
}

func (s *MemoryStore) Upload(_ context.Context, container, blobName string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	objects, ok := s.containers[container]
	if !ok {
		return "", fmt.Errorf("blobstore: %s: %w", container, ErrContainerNotFound)
	}
	objects[blobName] = MemoryObject{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	return objectURL(s.publicBaseURL, container, blobName), nil
}

func (s *MemoryStore) Delete(_ context.Context, container, blobName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	objects, ok := s.containers[container]
	if !ok {
		return fmt.Errorf("blobstore: %s: %w", container, ErrContainerNotFound)
	}
	if _, ok := objects[blobName]; !ok {
		return fmt.Errorf("blobstore: %s/%s: %w", container, blobName, ErrBlobNotFound)
	}
	delete(objects, blobName)
	return nil
}

// Object returns a stored blob.
func (s *MemoryStore) Object(container, blobName string) (MemoryObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.containers[container][blobName]
	return obj, ok
}

// Names lists blob names in a container in lexical order.
func (s *MemoryStore) Names(container string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.containers[container]))
	for name := range s.containers[container] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *MemoryStore) Close() error {
	return nil
}
