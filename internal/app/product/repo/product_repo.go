package repo

import (
	"context"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/models/m_product"
	commitplan "github.com/murkotick/product-media-catalog/internal/pkg/committer"
)

// statementApplier is the part of committer.Adapter the repository needs.
type statementApplier interface {
	Apply(ctx context.Context, plan *commitplan.Plan) ([]int64, error)
	ApplyReturning(ctx context.Context, stmt spanner.Statement, dst ...interface{}) error
}

// ProductRepo is the Spanner implementation of the write-side repository.
// Every method is a single DML round trip in its own read-write transaction.
type ProductRepo struct {
	committer statementApplier
}

func NewProductRepo(committer statementApplier) *ProductRepo {
	return &ProductRepo{committer: committer}
}

// buildWriteValues constructs the parameter map used for insert and update.
// It's unexported so tests in the same package can inspect the map without
// running a transaction.
func buildWriteValues(p *domain.Product) map[string]interface{} {
	return m_product.BuildWriteParams(p.Name(), p.Description(), p.Price().Rat(), p.ImageURL())
}

// Insert writes the product and returns the id the products sequence assigned.
func (r *ProductRepo) Insert(ctx context.Context, p *domain.Product) (int64, error) {
	var id int64
	stmt := m_product.InsertStatement(buildWriteValues(p))
	if err := r.committer.ApplyReturning(ctx, stmt, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepo) SetImageURL(ctx context.Context, productID int64, imageURL string) (bool, error) {
	return r.applyOne(ctx, m_product.SetImageURLStatement(productID, imageURL))
}

func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) (bool, error) {
	if p.ID() == 0 {
		return false, domain.ErrMissingProductID
	}
	return r.applyOne(ctx, m_product.UpdateStatement(p.ID(), buildWriteValues(p)))
}

func (r *ProductRepo) Delete(ctx context.Context, productID int64) (bool, error) {
	return r.applyOne(ctx, m_product.DeleteStatement(productID))
}

func (r *ProductRepo) applyOne(ctx context.Context, stmt spanner.Statement) (bool, error) {
	plan := commitplan.NewPlan()
	plan.Add(stmt)

	counts, err := r.committer.Apply(ctx, plan)
	if err != nil {
		return false, err
	}
	return len(counts) > 0 && counts[0] > 0, nil
}
