package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/models/m_product"
)

// PgConn is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type PgConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps products in PostgreSQL. It serves both the write-side
// repository and the read model.
type PostgresStore struct {
	db PgConn
}

func NewPostgresStore(db PgConn) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, p *domain.Product) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, m_product.PgInsertSQL,
		p.Name(), p.Description(), p.Price().String(), p.ImageURL()).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *PostgresStore) SetImageURL(ctx context.Context, productID int64, imageURL string) (bool, error) {
	return s.exec(ctx, m_product.PgSetImageURLSQL, imageURL, productID)
}

func (s *PostgresStore) Update(ctx context.Context, p *domain.Product) (bool, error) {
	if p.ID() == 0 {
		return false, domain.ErrMissingProductID
	}
	return s.exec(ctx, m_product.PgUpdateSQL,
		p.Name(), p.Description(), p.Price().String(), p.ImageURL(), p.ID())
}

func (s *PostgresStore) Delete(ctx context.Context, productID int64) (bool, error) {
	return s.exec(ctx, m_product.PgDeleteSQL, productID)
}

func (s *PostgresStore) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx, m_product.PgGetSQL, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresStore) ListProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	rows, err := s.db.Query(ctx, m_product.PgListSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) exec(ctx context.Context, sql string, args ...any) (bool, error) {
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		id          int64
		name        string
		description string
		priceText   string
		imageURL    string
		createdAt   time.Time
	)
	if err := row.Scan(&id, &name, &description, &priceText, &imageURL, &createdAt); err != nil {
		return nil, err
	}

	price, err := domain.NewMoneyFromDecimal(priceText)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return domain.ReconstructProduct(id, name, description, price, imageURL, createdAt.UTC()), nil
}
