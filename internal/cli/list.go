package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entrypoint"
)

type ListKind string

const (
	ListBooks   ListKind = "books"
	ListAuthors ListKind = "authors"
)

// ListCommand prints the catalog the same way menu options 1 and 2 do.
type ListCommand struct {
	Kind         ListKind
	DatabasePath string

	cfg *config.Config
	out io.Writer
}

func NewListCommand(cfg *config.Config, kind ListKind) *ListCommand {
	return &ListCommand{Kind: kind, cfg: cfg, out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet(string(cmd.Kind), flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the SQLite catalog database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [options]\n\n", os.Args[0], cmd.Kind)
		fmt.Fprintf(os.Stderr, "Print all %s with their linked entries.\n\n", cmd.Kind)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	cfg := *cmd.cfg
	cfg.Database.Path = cmd.DatabasePath

	c, err := entrypoint.Open(context.Background(), &cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer c.Close()

	switch cmd.Kind {
	case ListBooks:
		catalog.WriteBooks(cmd.out, c.Service.Books())
	case ListAuthors:
		catalog.WriteAuthors(cmd.out, c.Service.Authors())
	default:
		return fmt.Errorf("unknown listing %q", cmd.Kind)
	}
	return nil
}
