package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"todoscan/internal/config"
	"todoscan/internal/report"
	"todoscan/internal/scan"
)

func main() {
	var verbose bool

	app := &cli.App{
		Name:      "todos",
		Usage:     "summarize TODO-like comments in a source tree",
		ArgsUsage: "path/to/file/tree",
		Description: "Scans source files in the given tree for TODO-like comments\n" +
			"and prints all such comments, grouped by the TODO-like label\n" +
			"(e.g., TODO-security).",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Value:       false,
				Usage:       "Print each file as it is read",
				Destination: &verbose,
			},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return cli.Exit("usage: todos path/to/file/tree", 2)
			}
			return run(cCtx.Args().First(), verbose, os.Stdout, os.Stderr)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(root string, verbose bool, stdout, stderr io.Writer) error {
	cfg, err := config.Read(root)
	if err != nil {
		fmt.Fprintf(stderr, "warn: %v - using default config\n", err)
	}

	progress := io.Discard
	if verbose {
		progress = stdout
	}

	scanner := scan.New(root, cfg, stderr, progress)
	if err := scanner.Run(); err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	report.Write(stdout, scanner.Tracker())
	return nil
}
