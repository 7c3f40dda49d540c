package cli

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/murkotick/product-media-catalog/internal/app/product/catalog"
	contracts "github.com/murkotick/product-media-catalog/internal/app/product/contracts"
	"github.com/murkotick/product-media-catalog/internal/app/product/queries"
	"github.com/murkotick/product-media-catalog/internal/app/product/repo"
	"github.com/murkotick/product-media-catalog/internal/config"
	"github.com/murkotick/product-media-catalog/internal/pkg/blobstore"
	committer "github.com/murkotick/product-media-catalog/internal/pkg/committer"
	"github.com/murkotick/product-media-catalog/internal/pkg/logging"
	"github.com/murkotick/product-media-catalog/internal/pkg/secrets"
)

// wire resolves configuration and secrets and opens both stores.
func (a *app) wire(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			_ = a.close()
		}
	}()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})
	a.listLimit = cfg.ListLimit

	sqlDSN, blobDSN, err := resolveDSNs(ctx, cfg)
	if err != nil {
		return err
	}

	rows, reads, closeSQL, err := openRelational(ctx, sqlDSN)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, closeSQL)

	blobs, err := blobstore.Open(ctx, blobDSN, cfg.BlobPublicBaseURL)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, blobs.Close)

	if err := blobs.EnsureContainer(ctx, cfg.Container); err != nil {
		return fmt.Errorf("ensure container %s: %w", cfg.Container, err)
	}

	a.catalog = catalog.New(rows, reads, blobs, cfg.Container, logger)
	logger.Debug("catalog wired",
		zap.String("sql_backend", backendName(sqlDSN)),
		zap.String("blob_backend", backendName(blobDSN)),
		zap.String("container", cfg.Container))
	return nil
}

// resolveDSNs returns the configured DSNs, reading missing ones from the vault.
func resolveDSNs(ctx context.Context, cfg *config.Config) (string, string, error) {
	sqlDSN, blobDSN := cfg.SQLDSN, cfg.BlobDSN
	if !cfg.NeedsVault() {
		return sqlDSN, blobDSN, nil
	}

	provider, err := secrets.Open(ctx, cfg.VaultURL)
	if err != nil {
		return "", "", err
	}
	defer provider.Close()

	if sqlDSN == "" {
		if sqlDSN, err = provider.GetSecret(ctx, config.SQLConnectionSecret); err != nil {
			return "", "", err
		}
	}
	if blobDSN == "" {
		if blobDSN, err = provider.GetSecret(ctx, config.BlobConnectionSecret); err != nil {
			return "", "", err
		}
	}
	return sqlDSN, blobDSN, nil
}

// openRelational selects the relational backend from the DSN.
func openRelational(ctx context.Context, dsn string) (contracts.ProductRepo, contracts.ReadModel, func() error, error) {
	switch {
	case strings.HasPrefix(dsn, "mem://"):
		store := repo.NewMemoryStore(nil)
		return store, store, noClose, nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres pool: %w", err)
		}
		store := repo.NewPostgresStore(pool)
		return store, store, func() error { pool.Close(); return nil }, nil

	case strings.HasPrefix(dsn, "projects/"):
		client, err := spanner.NewClient(ctx, dsn)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("spanner.NewClient: %w", err)
		}
		rows := repo.NewProductRepo(committer.NewAdapter(client))
		return rows, queries.NewSpannerReadModel(client), func() error { client.Close(); return nil }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported sql connection string %q", backendName(dsn))
	}
}

func (a *app) close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func noClose() error { return nil }

// backendName strips credentials from a DSN for logging.
func backendName(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	if strings.HasPrefix(dsn, "projects/") {
		return "spanner"
	}
	return "unknown"
}
