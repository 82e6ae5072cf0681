// Package commands implements the CLI surface of the taxonomy importer
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taxonomy-importer/internal/config"
	"taxonomy-importer/internal/database"
	"taxonomy-importer/internal/prompt"
)

// NewRootCommand creates the importer command
// Usage: taxonomy-importer [--table name] [--database name] [--merge] [file]
func NewRootCommand() *cobra.Command {
	var tableName string
	var databaseName string
	var merge bool

	cmd := &cobra.Command{
		Use:   "taxonomy-importer [flags] [file]",
		Short: "Load Darwin Core taxonomy exports into a database",
		Long: `Taxonomy Importer loads checklist exports (NCBI, COL, GBIF, ...) into a
database and can merge the per-provider tables into one consolidated table.

Without --merge the positional file is parsed, a taxonomy tree is built from
its parent and accepted-name columns, and the records are written into the
destination table together with their classification paths.

With --merge all provider tables (taxon_*) are combined into the destination
table and the rank, source and kingdom columns are resolved.

When --table is omitted the destination is chosen interactively.

Example:
  taxonomy-importer --database my_database --table taxon_col Taxon.tsv
  taxonomy-importer --database my_database --merge --table merged_table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.Options{
				Table:       tableName,
				TableSet:    cmd.Flags().Changed("table"),
				Database:    databaseName,
				DatabaseSet: cmd.Flags().Changed("database"),
				Merge:       merge,
			}
			if len(args) > 0 {
				opts.File = args[0]
			}
			return Run(opts, prompt.Terminal{})
		},
	}

	// Define command flags
	cmd.Flags().StringVarP(&tableName, "table", "t", config.AutoSentinel, config.TableDescription)
	cmd.Flags().StringVarP(&databaseName, "database", "d", config.AutoSentinel, config.DatabaseDescription)
	cmd.Flags().BoolVarP(&merge, "merge", "m", false, config.MergeDescription)

	return cmd
}

// Run resolves the configuration and dispatches to the requested workflow.
// The prompter is injected so tests can resolve the table name without a
// terminal.
func Run(opts config.Options, prompter config.Prompter) error {
	cfg, err := config.Resolve(opts, prompter, func() []string {
		return existingSourceTables(opts)
	})
	if err != nil {
		return err
	}

	if !cfg.Merge && !cfg.HasInputFile() {
		fmt.Println("Nothing to do: no input file given and no merge requested.")
		return nil
	}

	db, err := database.Initialize(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if cfg.Merge {
		return runMerge(db, cfg)
	}
	return runLoad(db, cfg)
}

// existingSourceTables lists the provider tables already present in the
// database so the interactive selection can offer them. A missing or
// unreadable database is not an error: the prompt falls back to the built-in
// nomenclature list.
func existingSourceTables(opts config.Options) []string {
	databaseName := opts.Database
	if !opts.DatabaseSet {
		databaseName = config.DefaultDatabase
	}
	path := config.Config{Database: databaseName}.DatabasePath()

	if _, err := os.Stat(path); err != nil {
		return nil
	}

	db, err := database.Initialize(path)
	if err != nil {
		return nil
	}
	defer db.Close()

	tables, err := database.ListTables(db, config.SourceTablePattern)
	if err != nil {
		return nil
	}
	return tables
}
