// Package config provides shared configuration constants and the
// command-line resolution logic for the taxonomy importer
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

const (
	// AutoSentinel is the default value of the --table and --database flags.
	// It marks a field as "not yet resolved". Resolution never relies on the
	// literal value: a table genuinely named "auto" is still usable because
	// flag presence is tracked separately (see Options.TableSet).
	AutoSentinel = "auto"

	// DefaultDatabase is the database name used when --database is omitted
	DefaultDatabase = "dwca_taxons"

	// DefaultMergedTable is the destination table name offered first when
	// --merge is requested without an explicit --table
	DefaultMergedTable = "merged_table"

	// TableDescription is the help text description for the table flag
	TableDescription = "Name of the table in the database (omit to choose interactively)"

	// DatabaseDescription is the help text description for the database flag
	DatabaseDescription = "Name of the database"

	// MergeDescription is the help text description for the merge flag
	MergeDescription = "Merge all provider tables into one"

	// SourceTablePattern matches the per-provider tables considered as merge
	// sources and as interactive selection candidates
	SourceTablePattern = "taxon_%"

	// PromptTitle is shown above the interactive table selection
	PromptTitle = "Please choose your nomenclature:"

	// InsertBatchSize is the number of rows written per bulk insert statement
	InsertBatchSize = 100
)

// Nomenclatures are the built-in provider choices offered when the database
// has no provider tables to list yet. Each maps to the table "taxon_<lower>".
var Nomenclatures = []string{"taxon_ncbi", "taxon_col", "taxon_gbif"}

// Prompter is the capability needed to resolve a missing table name
// interactively. The terminal implementation lives in internal/prompt; tests
// substitute a non-interactive stub.
type Prompter interface {
	// Select blocks until the user picks one of options and returns it.
	Select(title string, options []string, defaultIndex int) (string, error)
}

// Options holds the raw flag values gathered by the CLI layer before
// resolution. TableSet and DatabaseSet record whether the user supplied the
// flag at all, so resolution does not depend on the sentinel string.
type Options struct {
	Table       string
	TableSet    bool
	Database    string
	DatabaseSet bool
	Merge       bool
	File        string
}

// Config is the resolved, immutable configuration for one invocation.
// After Resolve neither Table nor Database holds the unresolved sentinel.
type Config struct {
	Table    string
	Database string
	Merge    bool
	FilePath string
}

// HasInputFile reports whether FilePath references an existing regular file.
// A missing or unreadable file is not an error: downstream code treats the
// configuration as having no input file.
func (c Config) HasInputFile() bool {
	if c.FilePath == "" {
		return false
	}
	info, err := os.Stat(c.FilePath)
	return err == nil && info.Mode().IsRegular()
}

// DatabasePath returns the SQLite file backing the configured database name
func (c Config) DatabasePath() string {
	return c.Database + ".db"
}

// Resolve turns raw flag values into a complete Config.
//
// The database name falls back to DefaultDatabase when the flag was omitted.
// A missing table name is resolved through the prompter: candidates come from
// the supplied listing function, falling back to the built-in nomenclature
// tables when the listing is empty. In merge mode DefaultMergedTable is
// offered as the preselected first candidate.
//
// An invalid positional file produces a printed warning, never an error.
// Resolve has no hidden state: the same options and prompter answer always
// yield the same Config.
func Resolve(opts Options, prompter Prompter, listTables func() []string) (Config, error) {
	cfg := Config{
		Table:    opts.Table,
		Database: opts.Database,
		Merge:    opts.Merge,
		FilePath: opts.File,
	}

	if !opts.DatabaseSet {
		cfg.Database = DefaultDatabase
	}

	if !opts.TableSet {
		candidates := candidateTables(opts.Merge, listTables)
		defaultIndex := 0
		if !opts.Merge && len(candidates) > 1 {
			defaultIndex = 1
		}
		choice, err := prompter.Select(PromptTitle, candidates, defaultIndex)
		if err != nil {
			if opts.Merge {
				// Merging without a terminal still has a sensible destination.
				cfg.Table = DefaultMergedTable
			} else {
				return Config{}, fmt.Errorf("table selection failed: %w", err)
			}
		} else {
			cfg.Table = choice
		}
	}

	if opts.File != "" && !cfg.HasInputFile() {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: file does not exist: %s\n", opts.File)
	} else if cfg.HasInputFile() {
		if abs, err := filepath.Abs(cfg.FilePath); err == nil {
			cfg.FilePath = abs
		}
	}

	return cfg, nil
}

// candidateTables assembles the interactive selection candidates
func candidateTables(merge bool, listTables func() []string) []string {
	var candidates []string
	if listTables != nil {
		candidates = listTables()
	}
	if len(candidates) == 0 {
		candidates = append(candidates, Nomenclatures...)
	}
	if merge {
		candidates = append([]string{DefaultMergedTable}, candidates...)
	}
	return candidates
}
