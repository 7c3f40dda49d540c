package delete_product

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	shared "github.com/murkotick/product-media-catalog/internal/app/product/usecases/shared"
)

type Request struct {
	ProductID int64
}

// Interactor deletes the row, then its image blob on a best-effort basis.
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

// Execute reports false when no row was deleted. A failed blob deletion is
// logged and does not change the result.
func (it *Interactor) Execute(ctx context.Context, req Request) (bool, error) {
	// 1. Load the row to learn its image reference
	existing, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		it.Logger.Error("load product for delete failed", zap.Int64("product_id", req.ProductID), zap.Error(err))
		return false, err
	}

	// 2. Delete the row
	deleted, err := it.ProductRepo.Delete(ctx, req.ProductID)
	if err != nil {
		it.Logger.Error("delete product failed", zap.Int64("product_id", req.ProductID), zap.Error(err))
		return false, err
	}
	if !deleted {
		return false, nil
	}

	// 3. Remove the blob
	if existing != nil && existing.HasImage() {
		it.Images.DeleteQuietly(ctx, it.Logger, domain.BlobNameFromURL(existing.ImageURL()), req.ProductID)
	}
	return true, nil
}
