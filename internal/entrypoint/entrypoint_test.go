package entrypoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Database: config.Database{
			Driver:     config.DriverSQLite,
			Path:       filepath.Join(dir, "books.db"),
			AutoCreate: true,
		},
		Schema: config.DefaultSchema(),
		Audit:  config.Audit{Dir: filepath.Join(dir, "audit")},
	}
}

func TestOpen_SQLite(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	c, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer c.Close()

	res := c.Service.AddAuthor(ctx, entities.Author{AuthorID: 1, FirstName: "Jane", LastName: "Doe"})
	require.True(t, res.OK, res.Message)
	assert.NotNil(t, c.Audit)

	// a second open sees the persisted author
	c2, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer c2.Close()
	assert.Len(t, c2.Service.Authors(), 1)
}

func TestOpen_NoAuditDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Audit.Dir = ""

	c, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Audit)
}

func TestOpenGateway_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "oracle"

	_, _, err := OpenGateway(context.Background(), cfg)

	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}
