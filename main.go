package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mrlokans/bookcatalog/internal/cli"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// Command is implemented by everything in internal/cli.
type Command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load(".env")
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.NewConfig()

	// If no arguments or "shell" command, run the interactive menu
	if len(os.Args) < 2 || os.Args[1] == "shell" {
		if err := entrypoint.Run(cfg, Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	var cmd Command
	switch command {
	case "books":
		cmd = cli.NewListCommand(cfg, cli.ListBooks)
	case "authors":
		cmd = cli.NewListCommand(cfg, cli.ListAuthors)
	case "seed":
		cmd = cli.NewSeedCommand(cfg)
	case "export":
		cmd = cli.NewExportCommand(cfg)
	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  shell     Interactive menu (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  books     Print all books with their authors\n")
	fmt.Fprintf(os.Stderr, "  authors   Print all authors with their books\n")
	fmt.Fprintf(os.Stderr, "  seed      Insert authors and books from a YAML file\n")
	fmt.Fprintf(os.Stderr, "  export    Write the catalog as markdown notes\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration comes from environment variables (DATABASE_DRIVER, DATABASE_PATH,\n")
	fmt.Fprintf(os.Stderr, "DATABASE_DSN, DATABASE_USERNAME, DATABASE_PASSWORD, AUDIT_DIR, ...), an optional\n")
	fmt.Fprintf(os.Stderr, ".env file, or a config file named by CATALOG_CONFIG.\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
