package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	domain "github.com/murkotick/product-media-catalog/internal/app/product/domain"
)

var (
	// ErrProductNotFound is reported by commands that need an existing product.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidArgument wraps malformed command arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: product id %q", ErrInvalidArgument, arg)
	}
	return id, nil
}

func parsePrice(s string) (*domain.Money, error) {
	if s == "" {
		return nil, domain.ErrMissingPrice
	}
	m, err := domain.NewMoneyFromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: price %q: %v", ErrInvalidArgument, s, err)
	}
	return m, nil
}
