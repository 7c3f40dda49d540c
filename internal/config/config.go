// Package config resolves process configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/murkotick/product-media-catalog/internal/pkg/logging"
)

const (
	DefaultContainer = "product-images"
	DefaultListLimit = 50

	// Secret names consulted when a DSN is not configured directly.
	SQLConnectionSecret  = "sql-connection-string"
	BlobConnectionSecret = "blob-connection-string"
)

var (
	// ErrMissingVaultURL is returned when a DSN must come from the vault but no vault is configured.
	ErrMissingVaultURL = errors.New("config: vault url is required when sql_dsn or blob_dsn is not set")

	ErrMissingContainer = errors.New("config: container is required")
	ErrInvalidListLimit = errors.New("config: list_limit must be positive")
)

type Config struct {
	VaultURL          string         `yaml:"vault_url"`
	SQLDSN            string         `yaml:"sql_dsn"`
	BlobDSN           string         `yaml:"blob_dsn"`
	Container         string         `yaml:"container"`
	BlobPublicBaseURL string         `yaml:"blob_public_base_url"`
	ListLimit         int            `yaml:"list_limit"`
	Log               logging.Config `yaml:"log"`
}

// Load reads the optional YAML file at path, applies environment overrides
// and defaults, then validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.VaultURL, "KEY_VAULT_URL")
	setString(&c.VaultURL, "CATALOG_VAULT_URL")
	setString(&c.SQLDSN, "CATALOG_SQL_DSN")
	setString(&c.BlobDSN, "CATALOG_BLOB_DSN")
	setString(&c.Container, "BLOB_CONTAINER_NAME")
	setString(&c.Container, "CATALOG_CONTAINER")
	setString(&c.BlobPublicBaseURL, "CATALOG_BLOB_PUBLIC_BASE_URL")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Mode, "LOG_MODE")
	setString(&c.Log.File, "LOG_FILE")

	if v, ok := os.LookupEnv("CATALOG_LIST_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: CATALOG_LIST_LIMIT: %w", err)
		}
		c.ListLimit = n
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Container == "" {
		c.Container = DefaultContainer
	}
	if c.ListLimit == 0 {
		c.ListLimit = DefaultListLimit
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "production"
	}
}

func (c *Config) Validate() error {
	if c.VaultURL == "" && (c.SQLDSN == "" || c.BlobDSN == "") {
		return ErrMissingVaultURL
	}
	if c.Container == "" {
		return ErrMissingContainer
	}
	if c.ListLimit < 0 {
		return ErrInvalidListLimit
	}
	return nil
}

// NeedsVault reports whether any DSN must be resolved through the secret provider.
func (c *Config) NeedsVault() bool {
	return c.SQLDSN == "" || c.BlobDSN == ""
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
