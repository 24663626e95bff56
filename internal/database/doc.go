// Package database opens the SQLite catalog store through gorm and creates the
// three catalog tables (titles, authors, authorisbn) when asked to.
//
// Table access lives in the books subpackage, which implements catalog.Gateway
// on top of the *gorm.DB held here (and on top of pgx for Postgres).
//
// # Usage
//
//	db, err := database.NewDatabase(cfg.Database.Path, database.Options{Schema: cfg.Schema, AutoCreate: true})
//	defer db.Close()
//	repo := books.NewRepository(db.DB, cfg.Schema)
package database
