package contracts

import "context"

// SecretProvider resolves named secrets such as store connection strings.
type SecretProvider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
