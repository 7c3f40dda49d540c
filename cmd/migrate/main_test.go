package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDDLStatements_ProjectFiles(t *testing.T) {
	for _, backend := range []string{"spanner", "postgres"} {
		stmts, err := readDDLStatements(filepath.Join("..", "..", "migrations", backend, "001_products.sql"))
		require.NoError(t, err, backend)
		require.NotEmpty(t, stmts, backend)
		for _, s := range stmts {
			assert.NotContains(t, s, ";")
		}
	}
}

func TestReadDDLStatements_SplitsAndTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ddl.sql")
	require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE a (x INT64);\r\n\r\n  CREATE INDEX i ON a (x);\n"), 0o644))

	stmts, err := readDDLStatements(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CREATE TABLE a (x INT64)", "CREATE INDEX i ON a (x)"}, stmts)
}

func TestBackendFor(t *testing.T) {
	b, err := backendFor("projects/p/instances/i/databases/d")
	require.NoError(t, err)
	assert.Equal(t, "spanner", b)

	b, err = backendFor("postgresql://localhost/catalog")
	require.NoError(t, err)
	assert.Equal(t, "postgres", b)

	_, err = backendFor("mem://")
	assert.Error(t, err)
}
