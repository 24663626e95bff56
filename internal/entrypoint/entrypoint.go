package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookcatalog/internal/audit"
	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/shell"
)

// LibraryName is shown in the shell greeting.
const LibraryName = "the Book Catalog"

// Catalog bundles the loaded service with the resources behind it.
type Catalog struct {
	Service *catalog.Service
	Audit   *audit.Service
	closers []func()
}

// Close releases the database handles.
func (c *Catalog) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// OpenGateway connects to the configured store and returns its gateway.
func OpenGateway(ctx context.Context, cfg *config.Config) (catalog.Gateway, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite, "":
		level := logger.Warn
		if cfg.Logging.Verbose {
			level = logger.Info
		}
		db, err := database.NewDatabase(cfg.Database.Path, database.Options{
			Schema:     cfg.Schema,
			AutoCreate: cfg.Database.AutoCreate,
			LogLevel:   level,
		})
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}
		return books.NewRepository(db.DB, db.Schema), closeDB, nil

	case config.DriverPostgres:
		pool, err := books.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := books.NewPostgresRepository(pool, cfg.Schema)
		if cfg.Database.AutoCreate {
			if err := repo.EnsureSchema(ctx); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("failed to create schema: %w", err)
			}
		}
		log.Printf("Connected to postgres as %s", pool.Config().ConnConfig.User)
		return repo, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

// Open wires gateway, audit trail and service, then loads the catalog.
func Open(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	gateway, closeGateway, err := OpenGateway(ctx, cfg)
	if err != nil {
		return nil, err
	}

	auditService := audit.NewService(cfg.Audit.Dir)
	var recorder catalog.Recorder
	if auditService != nil {
		recorder = auditService
	}

	c := &Catalog{
		Service: catalog.NewService(gateway, recorder),
		Audit:   auditService,
		closers: []func(){closeGateway},
	}
	if err := c.Service.Load(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Run starts the interactive shell on stdin/stdout until the user quits
// or the process receives SIGINT/SIGTERM.
func Run(cfg *config.Config, version string) error {
	log.Printf("Starting Book Catalog v%s", version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer c.Close()

	err = shell.New(os.Stdin, os.Stdout, c.Service, LibraryName).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Println("Interrupted, exiting")
		return nil
	}
	return err
}
