package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

var _ catalog.Gateway = (*PostgresRepository)(nil)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// OpenPostgres creates a pgx pool from the configured DSN. Username and
// Password, when set, override whatever the DSN carries.
func OpenPostgres(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	if cfg.Username != "" {
		poolCfg.ConnConfig.User = cfg.Username
	}
	if cfg.Password != "" {
		poolCfg.ConnConfig.Password = cfg.Password
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return pool, nil
}

// PostgresRepository implements the catalog gateway with hand-written SQL
// over pgx. Every call acquires a pool connection and releases it on return.
type PostgresRepository struct {
	db     *pgxpool.Pool
	schema config.Schema
}

func NewPostgresRepository(db *pgxpool.Pool, schema config.Schema) *PostgresRepository {
	return &PostgresRepository{db: db, schema: schema}
}

// EnsureSchema creates the catalog tables when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		for _, stmt := range database.SchemaStatements(r.schema) {
			if _, err := conn.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresRepository) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()
	return fn(conn)
}

func (r *PostgresRepository) FetchAllBooks(ctx context.Context) ([]entities.Book, error) {
	query := fmt.Sprintf(`
	SELECT isbn, title, editionNumber, COALESCE(copyright, '')
	FROM %s
	ORDER BY isbn
	`, r.schema.TitlesTable)

	var books []entities.Book
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var b entities.Book
			if err := rows.Scan(&b.ISBN, &b.Title, &b.EditionNumber, &b.Copyright); err != nil {
				return err
			}
			books = append(books, b)
		}
		return rows.Err()
	})
	return books, err
}

func (r *PostgresRepository) FetchAllAuthors(ctx context.Context) ([]entities.Author, error) {
	query := fmt.Sprintf(`
	SELECT authorID, COALESCE(firstName, ''), COALESCE(lastName, '')
	FROM %s
	ORDER BY authorID
	`, r.schema.AuthorsTable)

	var authors []entities.Author
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var a entities.Author
			if err := rows.Scan(&a.AuthorID, &a.FirstName, &a.LastName); err != nil {
				return err
			}
			authors = append(authors, a)
		}
		return rows.Err()
	})
	return authors, err
}

func (r *PostgresRepository) FetchRelationshipRows(ctx context.Context) ([]entities.RelationshipRow, error) {
	query := fmt.Sprintf(`
	SELECT t.title, a.authorID
	FROM %s t
	JOIN %s ai ON t.isbn = ai.isbn
	JOIN %s a ON a.authorID = ai.authorID
	ORDER BY t.title, a.authorID
	`, r.schema.TitlesTable, r.schema.AuthorISBNTable, r.schema.AuthorsTable)

	var out []entities.RelationshipRow
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row entities.RelationshipRow
			if err := rows.Scan(&row.Title, &row.AuthorID); err != nil {
				return err
			}
			out = append(out, row)
		}
		return rows.Err()
	})
	return out, err
}

func (r *PostgresRepository) InsertBook(ctx context.Context, book entities.Book, authorIDs []int) error {
	if len(authorIDs) == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrNoAuthors, book.ISBN)
	}
	insertBook := fmt.Sprintf(`INSERT INTO %s (isbn, title, editionNumber, copyright) VALUES ($1, $2, $3, $4)`, r.schema.TitlesTable)
	authorExists := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE authorID = $1)`, r.schema.AuthorsTable)
	insertLink := fmt.Sprintf(`INSERT INTO %s (authorID, isbn) VALUES ($1, $2)`, r.schema.AuthorISBNTable)

	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, insertBook, book.ISBN, book.Title, book.EditionNumber, book.Copyright); err != nil {
				return fmt.Errorf("failed to insert book %s: %w", book.ISBN, translatePgError(err))
			}
			for _, id := range authorIDs {
				var exists bool
				if err := tx.QueryRow(ctx, authorExists, id).Scan(&exists); err != nil {
					return fmt.Errorf("failed to check author %d: %w", id, err)
				}
				if !exists {
					return fmt.Errorf("%w: %d", catalog.ErrAuthorNotFound, id)
				}
				if _, err := tx.Exec(ctx, insertLink, id, book.ISBN); err != nil {
					return fmt.Errorf("failed to link author %d to %s: %w", id, book.ISBN, translatePgError(err))
				}
			}
			return nil
		})
	})
}

func (r *PostgresRepository) InsertAuthor(ctx context.Context, author entities.Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (authorID, firstName, lastName) VALUES ($1, $2, $3)`, r.schema.AuthorsTable)

	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		if _, err := conn.Exec(ctx, query, author.AuthorID, author.FirstName, author.LastName); err != nil {
			return fmt.Errorf("failed to insert author %d: %w", author.AuthorID, err)
		}
		return nil
	})
}

// translatePgError maps constraint violations on the catalog tables to the
// catalog sentinel errors.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w (%s)", catalog.ErrBookExists, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w (%s)", catalog.ErrAuthorNotFound, pgErr.ConstraintName)
	}
	return err
}
