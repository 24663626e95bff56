package loader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// SeedYAML represents the seed file structure
type SeedYAML struct {
	Authors []AuthorYAML `yaml:"authors"`
	Books   []BookYAML   `yaml:"books"`
}

// AuthorYAML represents one author entry
type AuthorYAML struct {
	ID        int    `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// BookYAML represents one book entry with the IDs of its authors
type BookYAML struct {
	ISBN      string `yaml:"isbn"`
	Title     string `yaml:"title"`
	Edition   int    `yaml:"edition"`
	Copyright string `yaml:"copyright"`
	Authors   []int  `yaml:"authors"`
}

// Adder is the part of the catalog service a seed is applied through.
type Adder interface {
	AddAuthor(ctx context.Context, author entities.Author) catalog.Result
	AddBook(ctx context.Context, book entities.Book, authorIDs []int) catalog.Result
}

// Summary counts the outcome of applying a seed.
type Summary struct {
	AuthorsAdded int
	BooksAdded   int
	Failures     []string
}

// LoadFromFile reads and parses a seed file
func LoadFromFile(path string) (*SeedYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Only structural problems are rejected;
// ISBN format and duplicate IDs are left to the database.
func Parse(data []byte) (*SeedYAML, error) {
	var seed SeedYAML
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var problems []string
	for i, b := range seed.Books {
		if b.ISBN == "" {
			problems = append(problems, fmt.Sprintf("books[%d]: isbn is required", i))
		}
		if b.Title == "" {
			problems = append(problems, fmt.Sprintf("books[%d]: title is required", i))
		}
		if len(b.Authors) == 0 {
			problems = append(problems, fmt.Sprintf("books[%d]: at least one author id is required", i))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid seed file: %s", strings.Join(problems, "; "))
	}
	return &seed, nil
}

// Apply inserts all authors first, then all books, so books can reference
// authors from the same file. Each failure is recorded and the rest continue.
func Apply(ctx context.Context, svc Adder, seed *SeedYAML) Summary {
	var summary Summary

	for _, a := range seed.Authors {
		res := svc.AddAuthor(ctx, entities.Author{AuthorID: a.ID, FirstName: a.FirstName, LastName: a.LastName})
		if !res.OK {
			summary.Failures = append(summary.Failures, res.Message)
			continue
		}
		summary.AuthorsAdded++
	}

	for _, b := range seed.Books {
		book := entities.Book{ISBN: b.ISBN, Title: b.Title, EditionNumber: b.Edition, Copyright: b.Copyright}
		res := svc.AddBook(ctx, book, b.Authors)
		if !res.OK {
			summary.Failures = append(summary.Failures, res.Message)
			continue
		}
		summary.BooksAdded++
	}

	return summary
}
