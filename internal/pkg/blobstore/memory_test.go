package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_UploadRequiresContainer(t *testing.T) {
	s := NewMemoryStore("")

	_, err := s.Upload(context.Background(), "product-images", "a.jpg", []byte{1}, "image/jpeg")
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestMemoryStore_UploadDeleteLifecycle(t *testing.T) {
	s := NewMemoryStore("")
	ctx := context.Background()

	require.NoError(t, s.EnsureContainer(ctx, "product-images"))
	// idempotent
	require.NoError(t, s.EnsureContainer(ctx, "product-images"))

	url, err := s.Upload(ctx, "product-images", "product-1-abc.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "mem://product-images/product-1-abc.png", url)

	obj, ok := s.Object("product-images", "product-1-abc.png")
	require.True(t, ok)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, []byte("png"), obj.Data)

	require.NoError(t, s.Delete(ctx, "product-images", "product-1-abc.png"))
	assert.Empty(t, s.Names("product-images"))

	err = s.Delete(ctx, "product-images", "product-1-abc.png")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestObjectURL_EscapesName(t *testing.T) {
	got := objectURL("https://storage.googleapis.com/", "product-images", "a b.jpg")
	assert.Equal(t, "https://storage.googleapis.com/product-images/a%20b.jpg", got)

	got = objectURL("https://storage.googleapis.com", "product-images", "a.jpg")
	assert.Equal(t, "https://storage.googleapis.com/product-images/a.jpg", got)
}

func TestObjectURL_KeepsBareScheme(t *testing.T) {
	assert.Equal(t, "mem://product-images/product-1-abc.png", objectURL("mem://", "product-images", "product-1-abc.png"))
	assert.Equal(t, "nats://localhost:4222/c/x.jpg", objectURL("nats://localhost:4222", "c", "x.jpg"))
}

func TestOpen_RejectsUnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "ftp://host", "")
	assert.Error(t, err)

	s, err := Open(context.Background(), "mem://", "https://cdn.example.test")
	require.NoError(t, err)
	require.NoError(t, s.EnsureContainer(context.Background(), "c"))
	url, err := s.Upload(context.Background(), "c", "x.jpg", nil, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.test/c/x.jpg", url)
}
