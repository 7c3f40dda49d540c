package contracts

import (
	"context"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

// ReadModel is the read side of the relational store.
type ReadModel interface {
	// GetProduct returns nil, nil when no row matches.
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts returns at most limit products, newest first.
	ListProducts(ctx context.Context, limit int) ([]*domain.Product, error)
}
