package catalog

import (
	"context"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Gateway is the relational store behind the catalog. Implementations
// acquire one connection per call and release it before returning.
type Gateway interface {
	// FetchAllBooks returns every row of the titles table.
	FetchAllBooks(ctx context.Context) ([]entities.Book, error)
	// FetchAllAuthors returns every row of the authors table.
	FetchAllAuthors(ctx context.Context) ([]entities.Author, error)
	// FetchRelationshipRows returns (title, authorID) for the inner join of
	// titles, authorisbn and authors.
	FetchRelationshipRows(ctx context.Context) ([]entities.RelationshipRow, error)
	// InsertBook writes the title row and one join row per author ID in a
	// single transaction. Either everything is persisted or nothing is.
	// An empty authorIDs is rejected with ErrNoAuthors.
	InsertBook(ctx context.Context, book entities.Book, authorIDs []int) error
	// InsertAuthor writes one authors row. IDs are not checked beforehand.
	InsertAuthor(ctx context.Context, author entities.Author) error
}

// Recorder receives the outcome of every add operation.
type Recorder interface {
	LogAddBook(isbn, title string, err error)
	LogAddAuthor(authorKey, name string, err error)
}
