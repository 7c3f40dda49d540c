package cli

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/product-media-catalog/internal/app/product/domain"
	"github.com/murkotick/product-media-catalog/internal/config"
	"github.com/murkotick/product-media-catalog/internal/pkg/secrets"
)

// classify translates errors into a status code. Errors already carrying a
// gRPC status (Spanner, Secret Manager) keep their code; unknown errors
// become codes.Internal.
func classify(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	if errors.Is(err, context.Canceled) {
		return codes.Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return codes.DeadlineExceeded
	}

	// Not found
	if errors.Is(err, ErrProductNotFound) || errors.Is(err, secrets.ErrSecretNotFound) {
		return codes.NotFound
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductNameTooLong),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrPriceScale),
		errors.Is(err, domain.ErrMissingPrice),
		errors.Is(err, domain.ErrImageURLTooLong),
		errors.Is(err, domain.ErrMissingProductID):
		return codes.InvalidArgument
	}

	// Failed precondition (configuration)
	switch {
	case errors.Is(err, config.ErrMissingVaultURL),
		errors.Is(err, config.ErrMissingContainer),
		errors.Is(err, config.ErrInvalidListLimit):
		return codes.FailedPrecondition
	}

	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return s.Code()
	}
	return codes.Internal
}

// ExitCode maps a command error to a process exit status. Configuration
// errors are fatal at startup and exit 1 like any other unclassified failure.
func ExitCode(err error) int {
	switch classify(err) {
	case codes.OK:
		return 0
	case codes.InvalidArgument:
		return 2
	case codes.NotFound:
		return 3
	case codes.Unavailable, codes.DeadlineExceeded:
		return 5
	case codes.Canceled:
		return 130
	default:
		return 1
	}
}
