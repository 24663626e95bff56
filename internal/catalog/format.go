package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// FormatBook renders the one-line book summary used by every listing.
func FormatBook(b entities.Book) string {
	return fmt.Sprintf("%s Edition: %d | ISBN: %s - Copyright: %s", b.Title, b.EditionNumber, b.ISBN, b.Copyright)
}

// WriteBooks prints each book followed by its authors.
func WriteBooks(w io.Writer, listings []BookListing) {
	for _, l := range listings {
		fmt.Fprintln(w, FormatBook(l.Book))
		names := make([]string, 0, len(l.Authors))
		for _, a := range l.Authors {
			names = append(names, a.FullName())
		}
		if len(names) == 0 {
			fmt.Fprintln(w, "Authors: (none)")
		} else {
			fmt.Fprintf(w, "Authors: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintln(w)
	}
}

// WriteAuthors prints each author followed by their books.
func WriteAuthors(w io.Writer, listings []AuthorListing) {
	for _, l := range listings {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Author: %s\n", l.Author.FullName())
		fmt.Fprintln(w, "Books: ")
		for _, b := range l.Books {
			fmt.Fprintln(w, FormatBook(b))
		}
	}
}
