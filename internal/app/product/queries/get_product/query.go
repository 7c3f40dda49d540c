package get_product

import (
	"context"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/models/m_product"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches one product row. A missing row is nil, nil.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	iter := q.Client.Single().Query(ctx, m_product.GetStatement(productID))
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ScanRow(row)
}

// ScanRow maps a row selected with m_product.SelectColumns to a Product.
func ScanRow(row *spanner.Row) (*domain.Product, error) {
	var (
		id          int64
		name        string
		description spanner.NullString
		price       big.Rat
		imageURL    spanner.NullString
		createdAt   time.Time
	)

	if err := row.Columns(&id, &name, &description, &price, &imageURL, &createdAt); err != nil {
		return nil, err
	}

	return domain.ReconstructProduct(
		id,
		name,
		description.StringVal,
		domain.NewMoneyFromRat(&price),
		imageURL.StringVal,
		createdAt.UTC(),
	), nil
}
