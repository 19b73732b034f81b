package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/enbridge/internal/cli"
	"github.com/alexanderramin/enbridge/internal/config"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env may set ENBRIDGE_* variables; it is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	app := &cli.App{
		Config:    config.Load(),
		LogOutput: os.Stderr,
	}

	// Detect interactive terminal for the walkthrough entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
