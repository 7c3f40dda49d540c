package dto

import (
	"time"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

// ProductDTO is the printable form of a product. Price is a decimal string so
// it never passes through a binary float.
type ProductDTO struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func FromDomain(p *domain.Product) ProductDTO {
	return ProductDTO{
		ProductID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		ImageURL:    p.ImageURL(),
		CreatedAt:   p.CreatedAt().UTC().Format(time.RFC3339),
	}
}

func FromDomainList(ps []*domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromDomain(p))
	}
	return out
}
