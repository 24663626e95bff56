package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/config"
)

const seedFile = `
authors:
  - {id: 1, first_name: Jane, last_name: Doe}
  - {id: 12, first_name: John, last_name: Roe}
books:
  - {isbn: "0132856204", title: Networks, edition: 1, copyright: "2012", authors: [1]}
  - {isbn: "0134444302", title: Compilers, edition: 2, copyright: "2006", authors: [12]}
  - {isbn: "0000000000", title: Orphan, edition: 1, copyright: "1999", authors: [99]}
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Database: config.Database{Driver: config.DriverSQLite, Path: filepath.Join(dir, "books.db"), AutoCreate: true},
		Schema:   config.DefaultSchema(),
		Export:   config.Export{Dir: filepath.Join(dir, "export")},
	}
}

func seed(t *testing.T, cfg *config.Config, verbose bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedFile), 0644))

	cmd := NewSeedCommand(cfg)
	var out bytes.Buffer
	cmd.out = &out
	args := []string{"-file", path}
	if verbose {
		args = append(args, "-verbose")
	}
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, cmd.Run())
	return out.String()
}

func TestSeedCommand_RequiresFile(t *testing.T) {
	err := NewSeedCommand(testConfig(t)).ParseFlags(nil)
	assert.ErrorContains(t, err, "required flag -file not provided")
}

func TestSeedCommand_Run(t *testing.T) {
	cfg := testConfig(t)

	out := seed(t, cfg, true)

	assert.Contains(t, out, "Authors added: 2/2")
	assert.Contains(t, out, "Books added: 2/3")
	assert.Contains(t, out, "[ERROR] Could not add Orphan")
}

func TestSeedCommand_DryRun(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedFile), 0644))

	cmd := NewSeedCommand(cfg)
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-file", path, "-dry-run"}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Dry run complete")
	_, err := os.Stat(cfg.Database.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestListCommand_Books(t *testing.T) {
	cfg := testConfig(t)
	seed(t, cfg, false)

	cmd := NewListCommand(cfg, ListBooks)
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Networks Edition: 1 | ISBN: 0132856204 - Copyright: 2012\nAuthors: Jane Doe\n")
	assert.Contains(t, out.String(), "Compilers Edition: 2 | ISBN: 0134444302 - Copyright: 2006\nAuthors: John Roe\n")
	assert.NotContains(t, out.String(), "Orphan")
}

func TestListCommand_Authors(t *testing.T) {
	cfg := testConfig(t)
	seed(t, cfg, false)

	cmd := NewListCommand(cfg, ListAuthors)
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Author: Jane Doe\nBooks: \nNetworks Edition: 1")
}

func TestExportCommand_Run(t *testing.T) {
	cfg := testConfig(t)
	seed(t, cfg, false)

	cmd := NewExportCommand(cfg)
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Exported 2 books to markdown")
	_, err := os.Stat(filepath.Join(cfg.Export.Dir, "index.md"))
	assert.NoError(t, err)
}
