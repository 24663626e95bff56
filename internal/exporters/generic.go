package exporters

import "github.com/mrlokans/bookcatalog/internal/catalog"

type CatalogExporter interface {
	Export(listings []catalog.BookListing) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed int `json:"books_processed"`
	AuthorsLinked  int `json:"authors_linked"`
	BooksFailed    int `json:"books_failed"`
}
