// Package secrets resolves connection strings from a secret vault.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSecretNotFound is returned when the vault has no secret with the requested name.
var ErrSecretNotFound = errors.New("secrets: secret not found")

// Provider returns the current value of a named secret.
type Provider interface {
	GetSecret(ctx context.Context, name string) (string, error)
	Close() error
}

// Open selects a provider from the vault URL:
//
//	env://                     process environment
//	projects/<project>         GCP Secret Manager
func Open(ctx context.Context, vaultURL string) (Provider, error) {
	switch {
	case vaultURL == "":
		return nil, errors.New("secrets: vault url is empty")
	case strings.HasPrefix(vaultURL, "env://"):
		return NewEnvProvider(), nil
	case strings.HasPrefix(vaultURL, "projects/"):
		return NewSecretManagerProvider(ctx, vaultURL)
	default:
		return nil, fmt.Errorf("secrets: unsupported vault url %q", vaultURL)
	}
}
