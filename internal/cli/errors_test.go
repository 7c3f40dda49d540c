package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/config"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{fmt.Errorf("product 9: %w", ErrProductNotFound), codes.NotFound},
		{domain.ErrPriceScale, codes.InvalidArgument},
		{config.ErrMissingVaultURL, codes.FailedPrecondition},
		{fmt.Errorf("read: %w", context.Canceled), codes.Canceled},
		{status.Error(codes.Unavailable, "spanner down"), codes.Unavailable},
		{errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.err), "%v", tc.err)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(domain.ErrNegativePrice))
	assert.Equal(t, 3, ExitCode(ErrProductNotFound))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(config.ErrMissingVaultURL))
}

func TestExitCode_MalformedArguments(t *testing.T) {
	_, err := parseID("abc")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 2, ExitCode(err))

	_, err = parseID("0")
	assert.Equal(t, 2, ExitCode(err))

	_, err = parsePrice("12,50")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 2, ExitCode(err))

	_, err = parsePrice("")
	assert.ErrorIs(t, err, domain.ErrMissingPrice)
	assert.Equal(t, 2, ExitCode(err))
}
