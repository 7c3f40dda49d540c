package contracts

import (
	"context"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

// ProductRepo is the write-side repository interface for products.
// Row-matching methods report whether a row was affected; "no such product"
// is a false result, never an error.
type ProductRepo interface {
	// Insert writes a new row with the product's current fields and returns
	// the identifier the store generated.
	Insert(ctx context.Context, p *domain.Product) (int64, error)

	// SetImageURL patches only the image reference of a row.
	SetImageURL(ctx context.Context, productID int64, imageURL string) (bool, error)

	// Update overwrites name, description, price and image reference.
	Update(ctx context.Context, p *domain.Product) (bool, error)

	// Delete removes the row.
	Delete(ctx context.Context, productID int64) (bool, error)
}
