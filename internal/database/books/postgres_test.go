package books

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

func setupPostgresTestDB(t *testing.T) (*PostgresRepository, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("CATALOG_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping test: CATALOG_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := OpenPostgres(ctx, config.Database{DSN: dsn})
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}

	// unique table names per test so runs don't collide
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	schema := config.Schema{
		TitlesTable:     "titles_" + suffix,
		AuthorsTable:    "authors_" + suffix,
		AuthorISBNTable: "authorisbn_" + suffix,
	}
	repo := NewPostgresRepository(pool, schema)
	require.NoError(t, repo.EnsureSchema(ctx))

	t.Cleanup(func() {
		pool.Exec(ctx, "DROP TABLE IF EXISTS "+schema.AuthorISBNTable)
		pool.Exec(ctx, "DROP TABLE IF EXISTS "+schema.TitlesTable)
		pool.Exec(ctx, "DROP TABLE IF EXISTS "+schema.AuthorsTable)
		pool.Close()
	})
	return repo, pool
}

func TestPostgresRepository_RoundTrip(t *testing.T) {
	repo, _ := setupPostgresTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertAuthor(ctx, entities.Author{AuthorID: 1, FirstName: "Jane", LastName: "Doe"}))
	book := entities.Book{ISBN: "0132856204", Title: "Networks", EditionNumber: 1, Copyright: "2012"}
	require.NoError(t, repo.InsertBook(ctx, book, []int{1}))

	books, err := repo.FetchAllBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Book{book}, books)

	rows, err := repo.FetchRelationshipRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.RelationshipRow{{Title: "Networks", AuthorID: 1}}, rows)
}

func TestPostgresRepository_InsertBook_Atomic(t *testing.T) {
	repo, pool := setupPostgresTestDB(t)
	ctx := context.Background()

	err := repo.InsertBook(ctx, entities.Book{ISBN: "0132856204", Title: "Networks", EditionNumber: 1}, []int{99})
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	err = repo.InsertBook(ctx, entities.Book{ISBN: "0134444302", Title: "Compilers", EditionNumber: 1}, nil)
	assert.ErrorIs(t, err, catalog.ErrNoAuthors)

	var n int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+repo.schema.TitlesTable).Scan(&n))
	assert.Zero(t, n)
}

func TestTranslatePgError(t *testing.T) {
	err := translatePgError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "authorisbn_authorid_fkey"})
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	err = translatePgError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "titles_pkey"})
	assert.ErrorIs(t, err, catalog.ErrBookExists)

	plain := fmt.Errorf("boom")
	assert.Equal(t, plain, translatePgError(plain))
}
