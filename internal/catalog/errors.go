package catalog

import "errors"

var (
	// ErrAuthorNotFound is returned by Gateway.InsertBook when a linked
	// author ID has no row in the authors table.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrNoAuthors is returned by Gateway.InsertBook when no author ID is given.
	ErrNoAuthors = errors.New("a book needs at least one existing author")

	// ErrBookExists is returned by Gateway.InsertBook when the ISBN is taken.
	ErrBookExists = errors.New("book with this ISBN already exists")
)
