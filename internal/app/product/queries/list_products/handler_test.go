package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

type recordingReadModel struct {
	limits []int
}

func (r *recordingReadModel) GetProduct(context.Context, int64) (*domain.Product, error) {
	return nil, nil
}

func (r *recordingReadModel) ListProducts(_ context.Context, limit int) ([]*domain.Product, error) {
	r.limits = append(r.limits, limit)
	return nil, nil
}

func TestExecute_DefaultsNonPositiveLimit(t *testing.T) {
	rm := &recordingReadModel{}
	h := NewHandler(rm)

	for _, limit := range []int{0, -3, 7} {
		_, err := h.Execute(context.Background(), limit)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{DefaultLimit, DefaultLimit, 7}, rm.limits)
}
