package exporters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

var _ CatalogExporter = (*MarkdownExporter)(nil)

func networksListing() catalog.BookListing {
	return catalog.BookListing{
		Book: entities.Book{ISBN: "0132856204", Title: "Networks", EditionNumber: 3, Copyright: "2012"},
		Authors: []entities.Author{
			{AuthorID: 1, FirstName: "Jane", LastName: "Doe"},
			{AuthorID: 12, FirstName: "John", LastName: "Roe"},
		},
	}
}

func TestGenerateMarkdown(t *testing.T) {
	t.Run("generates front matter and author list", func(t *testing.T) {
		markdown := GenerateMarkdown(networksListing(), time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

		assert.Contains(t, markdown, "created_at: 2024-06-15")
		assert.Contains(t, markdown, "title: \"Networks\"")
		assert.Contains(t, markdown, "isbn: \"0132856204\"")
		assert.Contains(t, markdown, "edition: 3")
		assert.Contains(t, markdown, "  - \"Jane Doe\"")
		assert.Contains(t, markdown, "- John Roe (ID 12)")
		assert.Contains(t, markdown, "Networks Edition: 3 | ISBN: 0132856204 - Copyright: 2012")
	})

	t.Run("escapes quotes in title", func(t *testing.T) {
		listing := catalog.BookListing{Book: entities.Book{ISBN: "1", Title: `The "Quoted" Book`}}

		markdown := GenerateMarkdown(listing, time.Now())

		assert.Contains(t, markdown, `title: "The \"Quoted\" Book"`)
		assert.Contains(t, markdown, "_No linked authors._")
	})
}

func TestBookFileName(t *testing.T) {
	listing := catalog.BookListing{Book: entities.Book{ISBN: "0132856204", Title: "TCP/IP: Illustrated"}}

	assert.Equal(t, "TCPIP Illustrated (0132856204).md", BookFileName(listing))
}

func TestMarkdownExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	exporter := NewMarkdownExporter(dir)

	result, err := exporter.Export([]catalog.BookListing{
		networksListing(),
		{Book: entities.Book{ISBN: "0134444302", Title: "Compilers", EditionNumber: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.BooksProcessed)
	assert.Equal(t, 2, result.AuthorsLinked)
	assert.Zero(t, result.BooksFailed)

	_, err = os.Stat(filepath.Join(dir, "Networks (0132856204).md"))
	assert.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "- [[Networks (0132856204)]]")
	assert.Contains(t, string(index), "- [[Compilers (0134444302)]]")
}

func TestMarkdownExporter_ResetsResultBetweenRuns(t *testing.T) {
	exporter := NewMarkdownExporter(t.TempDir())

	_, err := exporter.Export([]catalog.BookListing{networksListing()})
	require.NoError(t, err)
	result, err := exporter.Export([]catalog.BookListing{networksListing()})
	require.NoError(t, err)

	assert.Equal(t, 1, result.BooksProcessed)
}
