package create_product

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	shared "github.com/murkotick/product-media-catalog/internal/app/product/usecases/shared"
)

// Request is the application-level create-product request.
type Request struct {
	Name        string
	Description string
	Price       *domain.Money
	// ImagePath is a local file to upload; empty creates the product without an image.
	ImagePath string
}

// Interactor writes the row first, then the image blob, then patches the row
// with the blob URL. The three steps are not atomic.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	Images      *shared.ImageStore
	Logger      *zap.Logger
}

// NewInteractor constructs the interactor.
func NewInteractor(repo contracts.ProductRepo, images *shared.ImageStore, logger *zap.Logger) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		Images:      images,
		Logger:      logger,
	}
}

// Execute creates the product and returns its identifier. Once the row exists
// the identifier is returned even when a later step fails, so the caller can
// retry the image with the attach-image usecase.
func (it *Interactor) Execute(ctx context.Context, req Request) (int64, error) {
	// 1. Build and validate the domain entity
	product, err := domain.NewProduct(req.Name, req.Description, req.Price)
	if err != nil {
		return 0, err
	}

	// 2. Insert the row; the store assigns the identifier
	id, err := it.ProductRepo.Insert(ctx, product)
	if err != nil {
		it.Logger.Error("insert product failed", zap.Error(err))
		return 0, err
	}
	product.AssignID(id)

	if req.ImagePath == "" {
		return id, nil
	}

	// 3. Upload the image
	img, err := it.Images.Upload(ctx, id, req.ImagePath)
	if err != nil {
		it.Logger.Error("upload product image failed",
			zap.Int64("product_id", id),
			zap.String("path", req.ImagePath),
			zap.Error(err))
		return id, err
	}

	// 4. Patch the row with the blob URL
	if err := product.AttachImage(img.URL); err != nil {
		it.logOrphan(id, img.BlobName, err)
		return id, err
	}
	if _, err := it.ProductRepo.SetImageURL(ctx, id, img.URL); err != nil {
		it.logOrphan(id, img.BlobName, err)
		return id, err
	}

	return id, nil
}

func (it *Interactor) logOrphan(id int64, blobName string, err error) {
	it.Logger.Warn("image uploaded but row not patched; blob is orphaned",
		zap.Int64("product_id", id),
		zap.String("blob", blobName),
		zap.Error(err))
}
