package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/utils"
)

// MarkdownExporter writes one markdown note per book plus an index.
type MarkdownExporter struct {
	ExportDir     string
	IndexFileName string
	Result        ExportResult
	now           func() time.Time
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir:     exportDir,
		IndexFileName: "index.md",
		Result:        ExportResult{},
		now:           time.Now,
	}
}

func (exporter *MarkdownExporter) ensureDir() error {
	if err := os.MkdirAll(exporter.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}

// BookFileName is the note name for a book; the ISBN keeps same-titled books apart.
func BookFileName(listing catalog.BookListing) string {
	return fmt.Sprintf("%s (%s).md", utils.SanitizeFilename(listing.Book.Title), utils.SanitizeFilename(listing.Book.ISBN))
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

// GenerateMarkdown renders a single book note with YAML front matter.
func GenerateMarkdown(listing catalog.BookListing, createdAt time.Time) string {
	var builder strings.Builder
	book := listing.Book

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: book\n")
	fmt.Fprintf(&builder, "created_at: %s\n", createdAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "title: %s\n", quote(book.Title))
	fmt.Fprintf(&builder, "isbn: %s\n", quote(book.ISBN))
	fmt.Fprintf(&builder, "edition: %d\n", book.EditionNumber)
	fmt.Fprintf(&builder, "copyright: %s\n", quote(book.Copyright))
	if len(listing.Authors) > 0 {
		fmt.Fprintf(&builder, "authors:\n")
		for _, a := range listing.Authors {
			fmt.Fprintf(&builder, "  - %s\n", quote(a.FullName()))
		}
	}
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", book.Title)
	fmt.Fprintf(&builder, "%s\n\n", catalog.FormatBook(book))
	fmt.Fprintf(&builder, "## Authors\n\n")
	if len(listing.Authors) == 0 {
		fmt.Fprintf(&builder, "_No linked authors._\n")
	}
	for _, a := range listing.Authors {
		fmt.Fprintf(&builder, "- %s (ID %d)\n", a.FullName(), a.AuthorID)
	}

	return builder.String()
}

func (exporter *MarkdownExporter) exportBook(listing catalog.BookListing) (string, error) {
	name := BookFileName(listing)
	outputPath := filepath.Join(exporter.ExportDir, name)

	content := GenerateMarkdown(listing, exporter.now())
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", err
	}
	exporter.Result.AuthorsLinked += len(listing.Authors)
	return name, nil
}

func (exporter *MarkdownExporter) writeIndex(names []string) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# Catalog\n\n")
	for _, name := range names {
		fmt.Fprintf(&builder, "- [[%s]]\n", strings.TrimSuffix(name, ".md"))
	}
	return os.WriteFile(filepath.Join(exporter.ExportDir, exporter.IndexFileName), []byte(builder.String()), 0644)
}

// Export writes every listing. A book that fails to write is counted and
// skipped; only directory or index failures abort the export.
func (exporter *MarkdownExporter) Export(listings []catalog.BookListing) (ExportResult, error) {
	// Reset result state for each export
	exporter.Result = ExportResult{}

	if err := exporter.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	var names []string
	for _, listing := range listings {
		name, err := exporter.exportBook(listing)
		if err != nil {
			log.Printf("Failed to export %s: %v", listing.Book.Title, err)
			exporter.Result.BooksFailed++
			continue
		}
		names = append(names, name)
		exporter.Result.BooksProcessed++
	}

	if err := exporter.writeIndex(names); err != nil {
		return exporter.Result, fmt.Errorf("failed to write index: %w", err)
	}

	return exporter.Result, nil
}
