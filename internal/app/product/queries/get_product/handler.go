package get_product

import (
	"context"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns nil, nil when the product does not exist.
func (h *Handler) Execute(ctx context.Context, productID int64) (*domain.Product, error) {
	return h.readModel.GetProduct(ctx, productID)
}
