// Package books provides the relational gateway for the catalog: the titles,
// authors and authorisbn tables.
//
// Two implementations of catalog.Gateway live here: Repository on top of gorm
// (SQLite by default) and PostgresRepository on top of a pgx pool. Both take
// the table names from config.Schema.
//
// # Interface Implementation
//
//	var _ catalog.Gateway = (*Repository)(nil)
//	var _ catalog.Gateway = (*PostgresRepository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db, cfg.Schema)
//	rows, err := repo.FetchRelationshipRows(ctx)
package books

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

var _ catalog.Gateway = (*Repository)(nil)

// Repository handles all catalog table operations through gorm. Each call
// runs on one dedicated connection that is returned to the pool on exit.
type Repository struct {
	db     *gorm.DB
	schema config.Schema
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB, schema config.Schema) *Repository {
	return &Repository{db: db, schema: schema}
}

// FetchAllBooks retrieves every title ordered by ISBN.
func (r *Repository) FetchAllBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Table(r.schema.TitlesTable).Order("isbn ASC").Find(&books).Error
	})
	return books, err
}

// FetchAllAuthors retrieves every author ordered by ID.
func (r *Repository) FetchAllAuthors(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Table(r.schema.AuthorsTable).Order("authorID ASC").Find(&authors).Error
	})
	return authors, err
}

// FetchRelationshipRows joins titles, authorisbn and authors on ISBN and
// author ID and returns the (title, authorID) pairs.
func (r *Repository) FetchRelationshipRows(ctx context.Context) ([]entities.RelationshipRow, error) {
	var rows []entities.RelationshipRow
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Table(r.schema.TitlesTable + " AS t").
			Select("t.title AS title, a.authorID AS authorID").
			Joins(fmt.Sprintf("JOIN %s AS ai ON t.isbn = ai.isbn", r.schema.AuthorISBNTable)).
			Joins(fmt.Sprintf("JOIN %s AS a ON a.authorID = ai.authorID", r.schema.AuthorsTable)).
			Order("t.title ASC, a.authorID ASC").
			Scan(&rows).Error
	})
	return rows, err
}

// InsertBook writes the title row and its author links in one transaction.
func (r *Repository) InsertBook(ctx context.Context, book entities.Book, authorIDs []int) error {
	if len(authorIDs) == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrNoAuthors, book.ISBN)
	}
	return r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			var existing int64
			if err := tx.Table(r.schema.TitlesTable).Where("isbn = ?", book.ISBN).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to check isbn %s: %w", book.ISBN, err)
			}
			if existing > 0 {
				return fmt.Errorf("%w: %s", catalog.ErrBookExists, book.ISBN)
			}

			if err := tx.Table(r.schema.TitlesTable).Create(&book).Error; err != nil {
				return fmt.Errorf("failed to insert book %s: %w", book.ISBN, err)
			}

			for _, id := range authorIDs {
				var found int64
				if err := tx.Table(r.schema.AuthorsTable).Where("authorID = ?", id).Count(&found).Error; err != nil {
					return fmt.Errorf("failed to check author %d: %w", id, err)
				}
				if found == 0 {
					return fmt.Errorf("%w: %d", catalog.ErrAuthorNotFound, id)
				}

				link := entities.AuthorISBN{AuthorID: id, ISBN: book.ISBN}
				if err := tx.Table(r.schema.AuthorISBNTable).Create(&link).Error; err != nil {
					return fmt.Errorf("failed to link author %d to %s: %w", id, book.ISBN, err)
				}
			}
			return nil
		})
	})
}

// InsertAuthor writes one author row.
func (r *Repository) InsertAuthor(ctx context.Context, author entities.Author) error {
	return r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := conn.Table(r.schema.AuthorsTable).Create(&author).Error; err != nil {
			return fmt.Errorf("failed to insert author %d: %w", author.AuthorID, err)
		}
		return nil
	})
}
