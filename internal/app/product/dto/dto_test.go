package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

func TestFromDomain_JSONShape(t *testing.T) {
	p := domain.ReconstructProduct(5, "Sample Laptop", "desc", domain.MustMoney("1299.99"), "",
		time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))

	data, err := json.Marshal(FromDomain(p))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"product_id":5,"name":"Sample Laptop","description":"desc","price":"1299.99","created_at":"2026-10-18T09:30:00Z"}`,
		string(data))
}

func TestFromDomainList_EmptyIsNotNull(t *testing.T) {
	data, err := json.Marshal(FromDomainList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
