package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxNameLength is the maximum product name length in characters.
	MaxNameLength = 100

	// MaxImageURLLength is the maximum stored image reference length.
	MaxImageURLLength = 255
)

// Product is the single entity of the catalog: one relational row plus an
// optional image blob referenced by URL.
type Product struct {
	id          int64
	name        string
	description string
	price       *Money
	imageURL    string
	createdAt   time.Time
}

// NewProduct creates a Product that has not been persisted yet.
// Its identifier and creation time are assigned by the relational store.
func NewProduct(name, description string, price *Money) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
	}, nil
}

// ReconstructProduct reconstructs a Product from persisted state.
// Used by stores when loading from the database.
func ReconstructProduct(id int64, name, description string, price *Money, imageURL string, createdAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		createdAt:   createdAt,
	}
}

// Getters

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() *Money {
	return p.price
}

func (p *Product) ImageURL() string {
	return p.imageURL
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// HasImage reports whether the product references a blob.
func (p *Product) HasImage() bool {
	return p.imageURL != ""
}

// Business Methods

// AssignID records the identifier the relational store generated on insert.
// An identifier, once assigned, never changes.
func (p *Product) AssignID(id int64) {
	if p.id == 0 {
		p.id = id
	}
}

// UpdateDetails overwrites name, description, price and image reference.
// Unlike a partial patch every field is replaced; the creation time is kept.
func (p *Product) UpdateDetails(name, description string, price *Money, imageURL string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := validateImageURL(imageURL); err != nil {
		return err
	}

	p.name = strings.TrimSpace(name)
	p.description = strings.TrimSpace(description)
	p.price = price
	p.imageURL = imageURL
	return nil
}

// AttachImage points the product at a freshly uploaded blob.
func (p *Product) AttachImage(url string) error {
	if err := validateImageURL(url); err != nil {
		return err
	}
	p.imageURL = url
	return nil
}

// Validate checks the invariants a product must hold before it is written.
func (p *Product) Validate() error {
	if err := validateProductName(p.name); err != nil {
		return err
	}
	if err := validatePrice(p.price); err != nil {
		return err
	}
	return validateImageURL(p.imageURL)
}

// Validation helpers

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrMissingPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.FitsScale() {
		return ErrPriceScale
	}
	return nil
}

func validateImageURL(url string) error {
	if len(url) > MaxImageURLLength {
		return ErrImageURLTooLong
	}
	return nil
}
