package config

import (
	"log"

	"github.com/spf13/viper"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // Local file via gorm (default)
	DriverPostgres Driver = "postgres" // Remote server via pgx
)

type (
	Config struct {
		Database
		Schema
		Audit
		Export
		Logging
	}

	Database struct {
		Driver     Driver
		Path       string // SQLite file path
		DSN        string // Postgres connection string, e.g. postgres://localhost:5432/books
		Username   string
		Password   string
		AutoCreate bool // Create the three catalog tables when missing
	}
	Schema struct {
		TitlesTable     string
		AuthorsTable    string
		AuthorISBNTable string
	}
	Audit struct {
		Dir string // Empty disables the audit trail
	}
	Export struct {
		Dir string
	}
	Logging struct {
		Verbose bool
	}
)

// DefaultSchema returns the table names used when nothing is configured.
func DefaultSchema() Schema {
	return Schema{
		TitlesTable:     DefaultTitlesTable,
		AuthorsTable:    DefaultAuthorsTable,
		AuthorISBNTable: DefaultAuthorISBNTable,
	}
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_username", "")
	v.SetDefault("database_password", "")
	v.SetDefault("database_auto_create", true)
	v.SetDefault("titles_table", DefaultTitlesTable)
	v.SetDefault("authors_table", DefaultAuthorsTable)
	v.SetDefault("author_isbn_table", DefaultAuthorISBNTable)
	v.SetDefault("audit_dir", "")
	v.SetDefault("export_dir", "./export")
	v.SetDefault("verbose", false)

	// Optional config file, env vars still win
	if path := v.GetString("CATALOG_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("WARNING: could not read config file %s: %v", path, err)
		}
	}

	return &Config{
		Database: Database{
			Driver:     Driver(v.GetString("DATABASE_DRIVER")),
			Path:       v.GetString("DATABASE_PATH"),
			DSN:        v.GetString("DATABASE_DSN"),
			Username:   v.GetString("DATABASE_USERNAME"),
			Password:   v.GetString("DATABASE_PASSWORD"),
			AutoCreate: v.GetBool("DATABASE_AUTO_CREATE"),
		},
		Schema: Schema{
			TitlesTable:     v.GetString("TITLES_TABLE"),
			AuthorsTable:    v.GetString("AUTHORS_TABLE"),
			AuthorISBNTable: v.GetString("AUTHOR_ISBN_TABLE"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
		Logging: Logging{
			Verbose: v.GetBool("VERBOSE"),
		},
	}
}
