package config

// Default paths and table names
const (
	// DefaultDatabasePath is the default path for the SQLite catalog database
	DefaultDatabasePath = "./books.db"

	DefaultTitlesTable     = "titles"
	DefaultAuthorsTable    = "authors"
	DefaultAuthorISBNTable = "authorisbn"
)
