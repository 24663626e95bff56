package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entrypoint"
	"github.com/mrlokans/bookcatalog/internal/loader"
)

// SeedCommand bulk-inserts authors and books from a YAML file
type SeedCommand struct {
	SeedPath     string
	DatabasePath string
	Verbose      bool
	DryRun       bool

	cfg *config.Config
	out io.Writer
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.SeedPath, "file", "", "Path to the YAML seed file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the SQLite catalog database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every failed insert")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse the file and show what would be inserted")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert authors and books from a YAML file. Authors are inserted first,\n")
		fmt.Fprintf(os.Stderr, "so books may reference authors defined in the same file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample file:\n")
		fmt.Fprintf(os.Stderr, "  authors:\n    - {id: 1, first_name: Jane, last_name: Doe}\n")
		fmt.Fprintf(os.Stderr, "  books:\n    - {isbn: \"0132856204\", title: Networks, edition: 1, copyright: \"2012\", authors: [1]}\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.SeedPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *SeedCommand) Run() error {
	seed, err := loader.LoadFromFile(cmd.SeedPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Found %d authors and %d books in %s\n", len(seed.Authors), len(seed.Books), cmd.SeedPath)

	if cmd.DryRun {
		for _, b := range seed.Books {
			fmt.Fprintf(cmd.out, "  -> %s (%s) authors %v\n", b.Title, b.ISBN, b.Authors)
		}
		fmt.Fprintln(cmd.out, "\nDry run complete. Use without -dry-run to insert.")
		return nil
	}

	cfg := *cmd.cfg
	cfg.Database.Path = cmd.DatabasePath

	c, err := entrypoint.Open(context.Background(), &cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer c.Close()

	summary := loader.Apply(context.Background(), c.Service, seed)

	fmt.Fprintln(cmd.out, "\n=== Seed Summary ===")
	fmt.Fprintf(cmd.out, "Authors added: %d/%d\n", summary.AuthorsAdded, len(seed.Authors))
	fmt.Fprintf(cmd.out, "Books added: %d/%d\n", summary.BooksAdded, len(seed.Books))

	var seedErr error
	if len(summary.Failures) > 0 {
		seedErr = fmt.Errorf("%d inserts failed", len(summary.Failures))
		fmt.Fprintf(cmd.out, "\n%d inserts failed\n", len(summary.Failures))
		if cmd.Verbose {
			for _, msg := range summary.Failures {
				fmt.Fprintf(cmd.out, "  [ERROR] %s\n", msg)
			}
		}
	}
	c.Audit.LogSeed(fmt.Sprintf("Seeded %d authors and %d books from %s", summary.AuthorsAdded, summary.BooksAdded, cmd.SeedPath), seedErr)

	return nil
}
