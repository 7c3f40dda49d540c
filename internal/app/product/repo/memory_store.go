package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/pkg/clock"
)

// MemoryStore is an in-process relational store used for local runs and tests.
// Identifiers come from a counter and creation times from the injected clock.
type MemoryStore struct {
	mu     sync.Mutex
	clock  clock.Clock
	nextID int64
	rows   map[int64]memoryRow
}

type memoryRow struct {
	id          int64
	name        string
	description string
	price       *domain.Money
	imageURL    string
	createdAt   time.Time
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &MemoryStore{
		clock: clk,
		rows:  make(map[int64]memoryRow),
	}
}

func (s *MemoryStore) Insert(_ context.Context, p *domain.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.rows[id] = memoryRow{
		id:          id,
		name:        p.Name(),
		description: p.Description(),
		price:       p.Price(),
		imageURL:    p.ImageURL(),
		createdAt:   s.clock.Now().UTC(),
	}
	return id, nil
}

func (s *MemoryStore) SetImageURL(_ context.Context, productID int64, imageURL string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[productID]
	if !ok {
		return false, nil
	}
	row.imageURL = imageURL
	s.rows[productID] = row
	return true, nil
}

func (s *MemoryStore) Update(_ context.Context, p *domain.Product) (bool, error) {
	if p.ID() == 0 {
		return false, domain.ErrMissingProductID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[p.ID()]
	if !ok {
		return false, nil
	}
	row.name = p.Name()
	row.description = p.Description()
	row.price = p.Price()
	row.imageURL = p.ImageURL()
	s.rows[p.ID()] = row
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[productID]; !ok {
		return false, nil
	}
	delete(s.rows, productID)
	return true, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, productID int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[productID]
	if !ok {
		return nil, nil
	}
	return row.toDomain(), nil
}

func (s *MemoryStore) ListProducts(_ context.Context, limit int) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]memoryRow, 0, len(s.rows))
	for _, r := range s.rows {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].createdAt.After(rows[j].createdAt)
		}
		// ids grow with insert order
		return rows[i].id > rows[j].id
	})
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]*domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Len returns the number of stored rows.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (r memoryRow) toDomain() *domain.Product {
	return domain.ReconstructProduct(r.id, r.name, r.description, r.price, r.imageURL, r.createdAt)
}
