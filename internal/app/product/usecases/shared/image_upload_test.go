package shared

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murkotick/product-media-catalog/internal/pkg/blobstore"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestDetectImageType(t *testing.T) {
	ct, ext := DetectImageType(pngHeader, "/tmp/photo")
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, ".png", ext)

	ct, ext = DetectImageType(pngHeader, "/tmp/photo.PNG")
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, ".PNG", ext)

	ct, ext = DetectImageType([]byte("not an image"), "/tmp/notes.txt")
	assert.Equal(t, DefaultContentType, ct)
	assert.Equal(t, ".txt", ext)
}

func TestImageStore_Upload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "laptop.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	store := blobstore.NewMemoryStore("")
	require.NoError(t, store.EnsureContainer(context.Background(), "product-images"))

	images := NewImageStore(store, "product-images")
	images.NewToken = func() string { return "tok" }

	up, err := images.Upload(context.Background(), 7, path)
	require.NoError(t, err)
	assert.Equal(t, "product-7-tok.png", up.BlobName)
	assert.Equal(t, "mem://product-images/product-7-tok.png", up.URL)

	obj, ok := store.Object("product-images", "product-7-tok.png")
	require.True(t, ok)
	assert.Equal(t, "image/png", obj.ContentType)
}

func TestImageStore_UploadUnreadableFile(t *testing.T) {
	store := blobstore.NewMemoryStore("")
	images := NewImageStore(store, "product-images")

	_, err := images.Upload(context.Background(), 1, filepath.Join(t.TempDir(), "missing.jpg"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestImageStore_DeleteQuietlyLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := blobstore.NewMemoryStore("")
	require.NoError(t, store.EnsureContainer(context.Background(), "product-images"))

	images := NewImageStore(store, "product-images")
	images.DeleteQuietly(context.Background(), zap.New(core), "product-1-gone.jpg", 1)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "product-1-gone.jpg", logs.All()[0].ContextMap()["blob"])
}
