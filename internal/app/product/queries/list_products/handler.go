package list_products

import (
	"context"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

// DefaultLimit is used when the caller does not bound the listing.
const DefaultLimit = 50

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute lists at most limit products, newest first. A non-positive limit means DefaultLimit.
func (h *Handler) Execute(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return h.readModel.ListProducts(ctx, limit)
}
