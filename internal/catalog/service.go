package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// BookListing is a book with its linked authors.
type BookListing struct {
	Book    entities.Book
	Authors []entities.Author
}

// AuthorListing is an author with their linked books.
type AuthorListing struct {
	Author entities.Author
	Books  []entities.Book
}

// Service is the catalog façade. It is not safe for concurrent use.
type Service struct {
	gateway  Gateway
	recorder Recorder
	graph    *Graph
}

// NewService creates a catalog service. recorder may be nil.
func NewService(gateway Gateway, recorder Recorder) *Service {
	return &Service{
		gateway:  gateway,
		recorder: recorder,
		graph:    NewGraph(nil, nil),
	}
}

// Load reads books, authors and join rows and replaces the in-memory
// graph. On error the previous graph is kept.
func (s *Service) Load(ctx context.Context) error {
	books, err := s.gateway.FetchAllBooks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	authors, err := s.gateway.FetchAllAuthors(ctx)
	if err != nil {
		return fmt.Errorf("failed to load authors: %w", err)
	}
	rows, err := s.gateway.FetchRelationshipRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to load relationships: %w", err)
	}

	graph := NewGraph(books, authors)
	linked := Link(graph, rows)
	s.graph = graph

	log.Printf("Loaded %d books, %d authors, %d associations", len(books), len(authors), linked)
	return nil
}

// RefreshLinks re-reads the join rows and links them into the current
// graph without reloading books or authors. Pairs already linked are kept
// once, so the association count only grows by genuinely new pairs.
func (s *Service) RefreshLinks(ctx context.Context) (int, error) {
	rows, err := s.gateway.FetchRelationshipRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load relationships: %w", err)
	}
	return Link(s.graph, rows), nil
}

// Graph exposes the current in-memory graph.
func (s *Service) Graph() *Graph {
	return s.graph
}

// Books lists every loaded book once, with its authors.
func (s *Service) Books() []BookListing {
	books := s.graph.Books()
	out := make([]BookListing, 0, len(books))
	for _, b := range books {
		out = append(out, BookListing{Book: b, Authors: s.graph.AuthorsOf(b.ISBN)})
	}
	return out
}

// Authors lists every loaded author once, with their books.
func (s *Service) Authors() []AuthorListing {
	authors := s.graph.Authors()
	out := make([]AuthorListing, 0, len(authors))
	for _, a := range authors {
		out = append(out, AuthorListing{Author: a, Books: s.graph.BooksOf(a.AuthorID)})
	}
	return out
}

// AddBook persists book linked to the given existing author IDs. Only the
// IDs are sent; author names are not looked up. On success the book joins
// the in-memory list, but its author links only appear after Load.
func (s *Service) AddBook(ctx context.Context, book entities.Book, authorIDs []int) Result {
	err := s.gateway.InsertBook(ctx, book, authorIDs)
	if s.recorder != nil {
		s.recorder.LogAddBook(book.ISBN, book.Title, err)
	}
	if err != nil {
		log.Printf("Failed to add book %s (%s): %v", book.Title, book.ISBN, err)
		return Result{
			Message: fmt.Sprintf("Could not add %s: %v", book.Title, err),
			Err:     err,
		}
	}

	s.graph.AddBook(book)
	return Result{OK: true, Message: book.Title + " was added to the database."}
}

// AddAuthor persists author as given.
func (s *Service) AddAuthor(ctx context.Context, author entities.Author) Result {
	err := s.gateway.InsertAuthor(ctx, author)
	if s.recorder != nil {
		s.recorder.LogAddAuthor(strconv.Itoa(author.AuthorID), author.FullName(), err)
	}
	if err != nil {
		log.Printf("Failed to add author %d (%s): %v", author.AuthorID, author.FullName(), err)
		return Result{
			Message: fmt.Sprintf("Could not add %s: %v", author.FullName(), err),
			Err:     err,
		}
	}

	s.graph.AddAuthor(author)
	return Result{OK: true, Message: author.FullName() + " was added to the database."}
}
