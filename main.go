package main

import (
	"fmt"
	"os"

	"github.com/yomu/bookshelf/internal/config"
	"github.com/yomu/bookshelf/internal/entrypoint"
)

// Set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Bare invocation serves; "serve" is accepted for explicitness.
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("bookshelf %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve    Start the catalog server (the default)\n")
	fmt.Fprintf(os.Stderr, "  version  Print version information\n")
}
