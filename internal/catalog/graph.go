package catalog

import "github.com/mrlokans/bookcatalog/internal/entities"

// Graph stores books and authors by value and the association between
// them as key sets in both directions.
type Graph struct {
	books   []entities.Book
	authors []entities.Author

	bookAuthors map[string]map[int]struct{} // isbn -> author IDs
	authorBooks map[int]map[string]struct{} // author ID -> isbns
}

// NewGraph creates a graph with no associations.
func NewGraph(books []entities.Book, authors []entities.Author) *Graph {
	g := &Graph{
		bookAuthors: make(map[string]map[int]struct{}),
		authorBooks: make(map[int]map[string]struct{}),
	}
	g.books = append(g.books, books...)
	g.authors = append(g.authors, authors...)
	return g
}

func (g *Graph) AddBook(book entities.Book) {
	g.books = append(g.books, book)
}

func (g *Graph) AddAuthor(author entities.Author) {
	g.authors = append(g.authors, author)
}

// Books returns a copy of the loaded books in load order.
func (g *Graph) Books() []entities.Book {
	return append([]entities.Book(nil), g.books...)
}

// Authors returns a copy of the loaded authors in load order.
func (g *Graph) Authors() []entities.Author {
	return append([]entities.Author(nil), g.authors...)
}

// BooksByTitle returns every book whose title equals title exactly.
func (g *Graph) BooksByTitle(title string) []entities.Book {
	var out []entities.Book
	for _, b := range g.books {
		if b.Title == title {
			out = append(out, b)
		}
	}
	return out
}

// Link records the association in both directions. It reports whether the
// pair was new; linking an existing pair is a no-op.
func (g *Graph) Link(isbn string, authorID int) bool {
	if g.HasLink(isbn, authorID) {
		return false
	}
	if g.bookAuthors[isbn] == nil {
		g.bookAuthors[isbn] = make(map[int]struct{})
	}
	if g.authorBooks[authorID] == nil {
		g.authorBooks[authorID] = make(map[string]struct{})
	}
	g.bookAuthors[isbn][authorID] = struct{}{}
	g.authorBooks[authorID][isbn] = struct{}{}
	return true
}

func (g *Graph) HasLink(isbn string, authorID int) bool {
	_, ok := g.bookAuthors[isbn][authorID]
	return ok
}

// LinkCount returns the number of distinct (book, author) pairs.
func (g *Graph) LinkCount() int {
	n := 0
	for _, ids := range g.bookAuthors {
		n += len(ids)
	}
	return n
}

// AuthorsOf returns the authors linked to isbn, once each, in load order.
func (g *Graph) AuthorsOf(isbn string) []entities.Author {
	ids := g.bookAuthors[isbn]
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(ids))
	var out []entities.Author
	for _, a := range g.authors {
		if _, ok := ids[a.AuthorID]; ok && !seen[a.AuthorID] {
			seen[a.AuthorID] = true
			out = append(out, a)
		}
	}
	return out
}

// BooksOf returns the books linked to authorID, once each, in load order.
func (g *Graph) BooksOf(authorID int) []entities.Book {
	isbns := g.authorBooks[authorID]
	if len(isbns) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(isbns))
	var out []entities.Book
	for _, b := range g.books {
		if _, ok := isbns[b.ISBN]; ok && !seen[b.ISBN] {
			seen[b.ISBN] = true
			out = append(out, b)
		}
	}
	return out
}
