package secrets

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SecretManagerProvider reads the latest version of secrets from GCP Secret Manager.
type SecretManagerProvider struct {
	client *secretmanager.Client
	parent string
}

// NewSecretManagerProvider creates a provider for parent, which has the form projects/<project>.
func NewSecretManagerProvider(ctx context.Context, parent string) (*SecretManagerProvider, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("secrets: secret manager client: %w", err)
	}
	return &SecretManagerProvider{
		client: client,
		parent: strings.TrimRight(parent, "/"),
	}, nil
}

func (p *SecretManagerProvider) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := p.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: VersionName(p.parent, name),
	})
	if status.Code(err) == codes.NotFound {
		return "", fmt.Errorf("secrets: %s: %w", name, ErrSecretNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("secrets: access %s: %w", name, err)
	}
	return string(resp.GetPayload().GetData()), nil
}

func (p *SecretManagerProvider) Close() error {
	return p.client.Close()
}

// VersionName returns the resource name of the latest version of a secret.
func VersionName(parent, name string) string {
	return fmt.Sprintf("%s/secrets/%s/versions/latest", parent, name)
}
