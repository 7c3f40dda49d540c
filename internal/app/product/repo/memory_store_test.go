package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/pkg/clock"
)

func mustProduct(t *testing.T, name, price string) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(name, "desc", domain.MustMoney(price))
	require.NoError(t, err)
	return p
}

func TestMemoryStore_InsertAssignsIDAndCreatedAt(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(clock.NewFake(now))
	ctx := context.Background()

	id, err := s.Insert(ctx, mustProduct(t, "A", "1.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := s.GetProduct(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, now, got.CreatedAt())
	assert.Equal(t, "1.00", got.Price().String())
}

func TestMemoryStore_GetMissingIsNil(t *testing.T) {
	s := NewMemoryStore(nil)

	got, err := s.GetProduct(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ListNewestFirstWithLimit(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewMemoryStore(clk)
	ctx := context.Background()

	first, err := s.Insert(ctx, mustProduct(t, "first", "1"))
	require.NoError(t, err)
	clk.Advance(time.Second)
	second, err := s.Insert(ctx, mustProduct(t, "second", "2"))
	require.NoError(t, err)
	// same timestamp as second: insert order decides
	third, err := s.Insert(ctx, mustProduct(t, "third", "3"))
	require.NoError(t, err)

	all, err := s.ListProducts(ctx, 50)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{third, second, first}, []int64{all[0].ID(), all[1].ID(), all[2].ID()})

	one, err := s.ListProducts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, third, one[0].ID())
}

func TestMemoryStore_UpdateAndDeleteReportMatches(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	id, err := s.Insert(ctx, mustProduct(t, "A", "1"))
	require.NoError(t, err)

	stored, err := s.GetProduct(ctx, id)
	require.NoError(t, err)
	require.NoError(t, stored.UpdateDetails("B", "d2", domain.MustMoney("2.00"), ""))

	ok, err := s.Update(ctx, stored)
	require.NoError(t, err)
	assert.True(t, ok)

	ghost := domain.ReconstructProduct(99, "ghost", "", domain.MustMoney("1"), "", time.Time{})
	ok, err = s.Update(ctx, ghost)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.SetImageURL(ctx, 99, "mem://c/x")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
