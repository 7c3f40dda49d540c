package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/app/product/queries/get_product"
	"github.com/murkotick/product-media-catalog/internal/models/m_product"
)

// SpannerListProductsQuery lists the newest products.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	iter := q.Client.Single().Query(ctx, m_product.ListStatement(limit))
	defer iter.Stop()

	out := make([]*domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		p, err := get_product.ScanRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
