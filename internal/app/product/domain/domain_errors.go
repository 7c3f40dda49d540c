package domain

import "errors"

// Domain errors for Money value object
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrPriceScale indicates a price with more fractional digits than the catalog stores.
	ErrPriceScale = errors.New("price cannot have more than 2 decimal places")

	// ErrMissingPrice indicates a product without a price.
	ErrMissingPrice = errors.New("price is required")
)

// Domain errors for Product validation
var (
	// ErrEmptyProductName indicates an attempt to create/update a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 100 characters")

	// ErrImageURLTooLong indicates the image reference exceeds the stored column width.
	ErrImageURLTooLong = errors.New("image url exceeds maximum length of 255 characters")

	// ErrMissingProductID indicates an operation that needs a store-assigned identifier got none.
	ErrMissingProductID = errors.New("product id is required")
)
