package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.True(t, cfg.Database.AutoCreate)
	assert.Equal(t, DefaultSchema(), cfg.Schema)
	assert.Empty(t, cfg.Audit.Dir)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/books")
	t.Setenv("DATABASE_USERNAME", "root")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("TITLES_TABLE", "book_titles")

	cfg := NewConfig()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost:5432/books", cfg.Database.DSN)
	assert.Equal(t, "root", cfg.Database.Username)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "book_titles", cfg.Schema.TitlesTable)
	assert.Equal(t, DefaultAuthorsTable, cfg.Schema.AuthorsTable)
}

func TestNewConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "database_path: /tmp/library.db\naudit_dir: /tmp/audit\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("CATALOG_CONFIG", path)

	cfg := NewConfig()

	assert.Equal(t, "/tmp/library.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/audit", cfg.Audit.Dir)
}
