package attach_image

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	shared "github.com/murkotick/product-media-catalog/internal/app/product/usecases/shared"
)

type Request struct {
	ProductID int64
	ImagePath string
}

// Interactor uploads a new image for an existing product and repoints the row at it.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	ReadModel   contracts.ReadModel
	Images      *shared.ImageStore
	Logger      *zap.Logger
}

func NewInteractor(repo contracts.ProductRepo, readModel contracts.ReadModel, images *shared.ImageStore, logger *zap.Logger) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		ReadModel:   readModel,
		Images:      images,
		Logger:      logger,
	}
}

// Execute returns the new image URL, or false when the product does not exist.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, bool, error) {
	// 1. Load the row
	product, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		it.Logger.Error("load product for image failed", zap.Int64("product_id", req.ProductID), zap.Error(err))
		return "", false, err
	}
	if product == nil {
		return "", false, nil
	}
	previous := domain.BlobNameFromURL(product.ImageURL())

	// 2. Upload the new blob
	img, err := it.Images.Upload(ctx, req.ProductID, req.ImagePath)
	if err != nil {
		it.Logger.Error("upload product image failed",
			zap.Int64("product_id", req.ProductID),
			zap.String("path", req.ImagePath),
			zap.Error(err))
		return "", false, err
	}
	if err := product.AttachImage(img.URL); err != nil {
		it.Images.DeleteQuietly(ctx, it.Logger, img.BlobName, req.ProductID)
		return "", false, err
	}

	// 3. Patch the row
	ok, err := it.ProductRepo.SetImageURL(ctx, req.ProductID, img.URL)
	if err != nil {
		it.Logger.Warn("image uploaded but row not patched; blob is orphaned",
			zap.Int64("product_id", req.ProductID),
			zap.String("blob", img.BlobName),
			zap.Error(err))
		return "", false, err
	}
	if !ok {
		// row vanished between read and patch
		it.Images.DeleteQuietly(ctx, it.Logger, img.BlobName, req.ProductID)
		return "", false, nil
	}

	// 4. Drop the image the row pointed at before
	if previous != "" && previous != img.BlobName {
		it.Images.DeleteQuietly(ctx, it.Logger, previous, req.ProductID)
	}
	return img.URL, true, nil
}
