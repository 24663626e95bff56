// Package shell is the interactive menu over the catalog service.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Catalog is what the shell needs from catalog.Service.
type Catalog interface {
	Books() []catalog.BookListing
	Authors() []catalog.AuthorListing
	AddBook(ctx context.Context, book entities.Book, authorIDs []int) catalog.Result
	AddAuthor(ctx context.Context, author entities.Author) catalog.Result
}

const (
	choicePrintBooks = iota + 1
	choicePrintAuthors
	choiceAddBook
	choiceAddAuthor
	choiceQuit
)

// scanned is one line, or the terminal error, from the input reader.
type scanned struct {
	text string
	err  error
}

type Shell struct {
	in      io.Reader
	out     io.Writer
	catalog Catalog
	name    string

	lines     chan scanned
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

func New(in io.Reader, out io.Writer, c Catalog, libraryName string) *Shell {
	return &Shell{
		in:      in,
		out:     out,
		catalog: c,
		name:    libraryName,
		lines:   make(chan scanned),
		done:    make(chan struct{}),
	}
}

// Run loops over the menu until the user quits, input ends, or ctx is done.
// End of input is treated like Quit. Cancelling ctx returns immediately,
// even while a prompt is waiting for input. A Shell runs at most once.
func (s *Shell) Run(ctx context.Context) error {
	s.startOnce.Do(func() { go s.scan() })
	defer s.stopOnce.Do(func() { close(s.done) })

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, err := s.readLine(ctx, "Enter choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(s.out, "Incorrect number entered")
			continue
		}

		switch choice {
		case choicePrintBooks:
			catalog.WriteBooks(s.out, s.catalog.Books())
		case choicePrintAuthors:
			catalog.WriteAuthors(s.out, s.catalog.Authors())
		case choiceAddBook:
			err = s.addBook(ctx)
		case choiceAddAuthor:
			err = s.addAuthor(ctx)
		case choiceQuit:
			return nil
		default:
			fmt.Fprintln(s.out, "Incorrect number entered")
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// scan feeds input lines to readLine until the input ends or Run returns.
// A read already blocked on the input when Run returns ends with the process.
func (s *Shell) scan() {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case s.lines <- scanned{text: scanner.Text()}:
		case <-s.done:
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case s.lines <- scanned{err: err}:
	case <-s.done:
	}
	close(s.lines)
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	fmt.Fprintf(s.out, "\nWelcome to %s!\n", s.name)
	fmt.Fprintln(s.out, "1) Print all the books from the database (showing the authors)")
	fmt.Fprintln(s.out, "2) Print all the authors from the database (showing the books)")
	fmt.Fprintln(s.out, "3) Add a book to the database for an existing author")
	fmt.Fprintln(s.out, "4) Add a new author")
	fmt.Fprintln(s.out, "5) Quit application")
	fmt.Fprintln(s.out)
}

func (s *Shell) addBook(ctx context.Context) error {
	isbn, err := s.readLine(ctx, "Enter ISBN (10 numbers): ")
	if err != nil {
		return err
	}
	title, err := s.readLine(ctx, "Enter title: ")
	if err != nil {
		return err
	}
	edition, err := s.readInt(ctx, "Enter edition number: ", 1)
	if err != nil {
		return err
	}
	year, err := s.readLine(ctx, "Enter year: ")
	if err != nil {
		return err
	}
	authorIDs, err := s.readIDs(ctx, "Enter author ID: ")
	if err != nil {
		return err
	}

	book := entities.Book{
		ISBN:          strings.TrimSpace(isbn),
		Title:         strings.TrimSpace(title),
		EditionNumber: edition,
		Copyright:     strings.TrimSpace(year),
	}
	s.report(s.catalog.AddBook(ctx, book, authorIDs))
	return nil
}

func (s *Shell) addAuthor(ctx context.Context) error {
	id, err := s.readInt(ctx, "Enter author ID: ", 0)
	if err != nil {
		return err
	}
	first, err := s.readLine(ctx, "Enter first name: ")
	if err != nil {
		return err
	}
	last, err := s.readLine(ctx, "Enter last name: ")
	if err != nil {
		return err
	}

	author := entities.Author{
		AuthorID:  id,
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
	}
	s.report(s.catalog.AddAuthor(ctx, author))
	return nil
}

func (s *Shell) report(res catalog.Result) {
	fmt.Fprintln(s.out, res.Message)
}

func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// readInt re-prompts until the input is an integer >= min.
func (s *Shell) readInt(ctx context.Context, prompt string, min int) (int, error) {
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < min {
			fmt.Fprintf(s.out, "Please enter a whole number of at least %d.\n", min)
			continue
		}
		return n, nil
	}
}

// readIDs re-prompts until the input is one or more comma separated integers.
func (s *Shell) readIDs(ctx context.Context, prompt string) ([]int, error) {
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return nil, err
		}
		ids, parseErr := parseIDs(line)
		if parseErr != nil {
			fmt.Fprintf(s.out, "%v\n", parseErr)
			continue
		}
		return ids, nil
	}
}

func parseIDs(line string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid author ID", field)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one author ID is required")
	}
	return ids, nil
}
