package update_product

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

// Request carries the full new state of an existing product.
type Request struct {
	Product *domain.Product
}

// Interactor overwrites name, description, price and image reference of a row.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	Logger      *zap.Logger
}

func NewInteractor(repo contracts.ProductRepo, logger *zap.Logger) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		Logger:      logger,
	}
}

// Execute reports false when no row has the product's identifier.
// The creation timestamp is never written.
func (it *Interactor) Execute(ctx context.Context, req Request) (bool, error) {
	p := req.Product
	if p == nil || p.ID() == 0 {
		return false, domain.ErrMissingProductID
	}
	if err := p.Validate(); err != nil {
		return false, err
	}

	ok, err := it.ProductRepo.Update(ctx, p)
	if err != nil {
		it.Logger.Error("update product failed", zap.Int64("product_id", p.ID()), zap.Error(err))
		return false, err
	}
	return ok, nil
}
