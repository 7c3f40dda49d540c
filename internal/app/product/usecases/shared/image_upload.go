package shared

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

// DefaultContentType is recorded when the image bytes match no known signature.
const DefaultContentType = "image/jpeg"

// ImageStore uploads product images into one container of an object store.
type ImageStore struct {
	Store     contracts.ObjectStore
	Container string
	// NewToken returns the unique part of a blob name. Defaults to a random UUID.
	NewToken func() string
}

func NewImageStore(store contracts.ObjectStore, container string) *ImageStore {
	return &ImageStore{
		Store:     store,
		Container: container,
		NewToken:  func() string { return uuid.New().String() },
	}
}

// UploadedImage describes a blob written by Upload.
type UploadedImage struct {
	BlobName    string
	URL         string
	ContentType string
}

// Upload reads the local file and stores it as product-<id>-<token><ext>.
func (s *ImageStore) Upload(ctx context.Context, productID int64, imagePath string) (*UploadedImage, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", imagePath, err)
	}

	contentType, ext := DetectImageType(data, imagePath)
	name := domain.BlobName(productID, s.NewToken(), ext)

	url, err := s.Store.Upload(ctx, s.Container, name, data, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadedImage{BlobName: name, URL: url, ContentType: contentType}, nil
}

// DeleteQuietly removes a blob and logs, rather than returns, any failure.
func (s *ImageStore) DeleteQuietly(ctx context.Context, logger *zap.Logger, blobName string, productID int64) {
	if blobName == "" {
		return
	}
	if err := s.Store.Delete(ctx, s.Container, blobName); err != nil {
		logger.Warn("blob cleanup failed",
			zap.Int64("product_id", productID),
			zap.String("blob", blobName),
			zap.Error(err))
	}
}

// DetectImageType returns the content type sniffed from data and the blob
// extension: the path's own extension, or the sniffed one when the path has none.
func DetectImageType(data []byte, imagePath string) (contentType, ext string) {
	ext = filepath.Ext(imagePath)
	contentType = DefaultContentType

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return contentType, ext
	}

	contentType = kind.MIME.Value
	if ext == "" {
		ext = "." + kind.Extension
	}
	return contentType, ext
}
