// Package catalog sequences writes across the relational store and the image
// object store so that a product row and its image blob stay consistent.
package catalog

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/app/product/queries/get_product"
	"github.com/murkotick/product-media-catalog/internal/app/product/queries/list_products"
	"github.com/murkotick/product-media-catalog/internal/app/product/usecases/attach_image"
	"github.com/murkotick/product-media-catalog/internal/app/product/usecases/create_product"
	"github.com/murkotick/product-media-catalog/internal/app/product/usecases/delete_product"
	shared "github.com/murkotick/product-media-catalog/internal/app/product/usecases/shared"
	"github.com/murkotick/product-media-catalog/internal/app/product/usecases/update_product"
)

// DefaultListLimit bounds List when the caller passes a non-positive limit.
const DefaultListLimit = list_products.DefaultLimit

// Coordinator is the entry point for product operations.
// It is not safe for concurrent use across overlapping writes to the same product.
type Coordinator struct {
	create *create_product.Interactor
	update *update_product.Interactor
	delete *delete_product.Interactor
	attach *attach_image.Interactor
	get    *get_product.Handler
	list   *list_products.Handler
}

// Option customises a Coordinator.
type Option func(*shared.ImageStore)

// WithTokenSource replaces the random UUID used in blob names.
func WithTokenSource(next func() string) Option {
	return func(s *shared.ImageStore) { s.NewToken = next }
}

// New wires the usecases over one relational store (write and read side) and
// one object store container. A nil logger disables logging.
func New(repo contracts.ProductRepo, reads contracts.ReadModel, blobs contracts.ObjectStore, container string, logger *zap.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	images := shared.NewImageStore(blobs, container)
	for _, opt := range opts {
		opt(images)
	}

	return &Coordinator{
		create: create_product.NewInteractor(repo, images, logger),
		update: update_product.NewInteractor(repo, logger),
		delete: delete_product.NewInteractor(repo, reads, images, logger),
		attach: attach_image.NewInteractor(repo, reads, images, logger),
		get:    get_product.NewHandler(reads),
		list:   list_products.NewHandler(reads),
	}
}

// Create inserts the product, then uploads the image at imagePath (when set)
// and records its URL. A non-zero id is returned whenever the row was
// inserted, even if err reports a failed upload or patch.
func (c *Coordinator) Create(ctx context.Context, name, description string, price *domain.Money, imagePath string) (int64, error) {
	return c.create.Execute(ctx, create_product.Request{
		Name:        name,
		Description: description,
		Price:       price,
		ImagePath:   imagePath,
	})
}

// Read returns nil, nil when the product does not exist.
func (c *Coordinator) Read(ctx context.Context, id int64) (*domain.Product, error) {
	return c.get.Execute(ctx, id)
}

// List returns at most limit products, newest first.
func (c *Coordinator) List(ctx context.Context, limit int) ([]*domain.Product, error) {
	return c.list.Execute(ctx, limit)
}

// Update overwrites the stored fields of p. It reports false when no row matched.
func (c *Coordinator) Update(ctx context.Context, p *domain.Product) (bool, error) {
	return c.update.Execute(ctx, update_product.Request{Product: p})
}

// Delete removes the row and then its image blob. The blob deletion is best-effort.
func (c *Coordinator) Delete(ctx context.Context, id int64) (bool, error) {
	return c.delete.Execute(ctx, delete_product.Request{ProductID: id})
}

// AttachImage uploads a new image for an existing product and returns its URL.
func (c *Coordinator) AttachImage(ctx context.Context, id int64, imagePath string) (string, bool, error) {
	return c.attach.Execute(ctx, attach_image.Request{ProductID: id, ImagePath: imagePath})
}
