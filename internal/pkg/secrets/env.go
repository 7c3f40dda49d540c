package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvProvider reads secrets from environment variables. The secret
// sql-connection-string is read from SQL_CONNECTION_STRING.
type EnvProvider struct {
	lookup func(string) (string, bool)
}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv}
}

func (p *EnvProvider) GetSecret(_ context.Context, name string) (string, error) {
	key := EnvKey(name)
	v, ok := p.lookup(key)
	if !ok || v == "" {
		return "", fmt.Errorf("secrets: %s (env %s): %w", name, key, ErrSecretNotFound)
	}
	return v, nil
}

func (p *EnvProvider) Close() error { return nil }

// EnvKey maps a secret name to its environment variable.
func EnvKey(name string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}
