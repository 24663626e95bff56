package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entrypoint"
	"github.com/mrlokans/bookcatalog/internal/exporters"
)

// ExportCommand writes the catalog as markdown notes
type ExportCommand struct {
	OutputDir    string
	DatabasePath string

	cfg *config.Config
	out io.Writer
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.OutputDir, "dir", cmd.cfg.Export.Dir, "Output directory for markdown files")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the SQLite catalog database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write one markdown note per book, listing its authors, plus an index.md.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	cfg := *cmd.cfg
	cfg.Database.Path = cmd.DatabasePath

	c, err := entrypoint.Open(context.Background(), &cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer c.Close()

	fmt.Fprintf(cmd.out, "Exporting to markdown: %s\n", absOutputDir)

	result, err := exporters.NewMarkdownExporter(absOutputDir).Export(c.Service.Books())
	c.Audit.LogExport(fmt.Sprintf("Exported %d books to %s", result.BooksProcessed, absOutputDir), err)
	if err != nil {
		return fmt.Errorf("failed to export to markdown: %w", err)
	}

	fmt.Fprintf(cmd.out, "Exported %d books to markdown\n", result.BooksProcessed)
	if result.BooksFailed > 0 {
		fmt.Fprintf(cmd.out, "%d books failed to export\n", result.BooksFailed)
	}
	return nil
}
