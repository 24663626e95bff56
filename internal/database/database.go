package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookcatalog/internal/config"
)

type Database struct {
	DB     *gorm.DB
	Schema config.Schema
}

type Options struct {
	Schema     config.Schema
	AutoCreate bool
	LogLevel   logger.LogLevel // zero means logger.Warn
}

func NewDatabase(dbPath string, opts Options) (*Database, error) {
	if opts.Schema == (config.Schema{}) {
		opts.Schema = config.DefaultSchema()
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, Schema: opts.Schema}

	if opts.AutoCreate {
		if err := database.EnsureSchema(); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// sqliteDSN turns on foreign key enforcement for every pooled connection.
func sqliteDSN(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_foreign_keys=on"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema creates the catalog tables if they do not exist. Existing
// tables are left untouched; there is no migration of older layouts.
func (d *Database) EnsureSchema() error {
	for _, stmt := range SchemaStatements(d.Schema) {
		if err := d.DB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// SchemaStatements returns the DDL for the three catalog tables. The
// statements are plain SQL accepted by both SQLite and Postgres.
func SchemaStatements(s config.Schema) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			isbn VARCHAR(10) PRIMARY KEY,
			title VARCHAR(512) NOT NULL,
			editionNumber INTEGER NOT NULL,
			copyright VARCHAR(16)
		)`, s.TitlesTable),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			authorID INTEGER PRIMARY KEY,
			firstName VARCHAR(128),
			lastName VARCHAR(128)
		)`, s.AuthorsTable),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			authorID INTEGER NOT NULL REFERENCES %s (authorID),
			isbn VARCHAR(10) NOT NULL REFERENCES %s (isbn)
		)`, s.AuthorISBNTable, s.AuthorsTable, s.TitlesTable),
	}
}
