// Cinesim - Title Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesim

// Package main is the recommend command: a one-shot query against a catalog
// file, without the HTTP server.
//
//	recommend "Toy Story" -n 5
//	recommend --catalog movies.parquet --json "Heat"
//	recommend search story
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitError       = 1 // bad arguments, unreadable catalog, failed build
	ExitConfigError = 2 // configuration could not be loaded
	ExitNotFound    = 3 // the title has no exact match
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errTitleNotFound is returned after the suggestions have been printed.
var errTitleNotFound = errors.New("title not found")

// configError marks failures to load configuration.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// options are the flags shared by every subcommand.
type options struct {
	catalogPath string
	format      string
	delimiter   string
	n           int
	limit       int
	json        bool
	verbose     bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and maps the outcome to an exit code.
func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	var cfgErr *configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errTitleNotFound):
		return ExitNotFound
	case errors.As(err, &cfgErr):
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitConfigError
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitError
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend catalog items similar to a title",
		Long: `recommend loads a catalog, builds the TF-IDF similarity model and prints
the items most similar to the given title.

Titles match exactly, ignoring case. When nothing matches, up to ten titles
containing the query are printed instead and the exit code is 3.

Catalog settings default to the server configuration (config.yaml and
CATALOG_* environment variables); flags override them.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, opts, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.catalogPath, "catalog", "c", "", "catalog file (.csv, .tsv or .parquet)")
	pf.StringVar(&opts.format, "format", "", "catalog format: auto, csv or duckdb")
	pf.StringVar(&opts.delimiter, "delimiter", "", "CSV field delimiter; \"tab\" for tabs")
	pf.BoolVar(&opts.json, "json", false, "print JSON instead of text")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log build progress to stderr")

	root.Flags().IntVarP(&opts.n, "num", "n", 10, "number of recommendations")

	root.AddCommand(newSearchCmd(opts))
	return root
}
