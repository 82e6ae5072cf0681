package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"taxonomy-importer/internal/config"
	"taxonomy-importer/internal/database"
	"taxonomy-importer/internal/parser"
)

// runMerge executes the merge workflow: recreate the destination table, seed
// the reference tables, copy every provider table into the destination and
// resolve the derived rank, source and kingdom columns.
//
// The configured table names the DESTINATION; every taxon_* table except the
// destination itself is a source. Database errors abort the merge and
// propagate unmodified.
func runMerge(db database.DB, cfg config.Config) error {
	fmt.Printf("Target database: %s\n", cfg.DatabasePath())
	fmt.Printf("Destination table: %s\n", cfg.Table)

	if err := database.DropTables(db, cfg.Table); err != nil {
		return err
	}
	if err := database.SeedReferenceTables(db); err != nil {
		return err
	}

	schema := parser.MergedSchema(cfg.Table)
	if err := database.CreateTable(db, schema.GenerateCreateTableSQL(), schema.GenerateIndexSQL()); err != nil {
		return fmt.Errorf("failed to create table %s: %w", cfg.Table, err)
	}

	tables, err := database.ListTables(db, config.SourceTablePattern)
	if err != nil {
		return err
	}

	var sources []string
	for _, table := range tables {
		if table != cfg.Table {
			sources = append(sources, table)
		}
	}
	if len(sources) == 0 {
		return fmt.Errorf("no source tables matching %q found in %s", config.SourceTablePattern, cfg.DatabasePath())
	}

	fmt.Println("Start processing to merge follow tables:")
	fmt.Println(strings.Join(sources, ", "))

	results, err := database.MergeTables(db, sources, cfg.Table)
	if err != nil {
		return err
	}

	fmt.Printf("Resolving ranks, sources and kingdoms in %s\n", cfg.Table)
	if err := database.ResolveRankIDs(db, cfg.Table); err != nil {
		return err
	}
	if err := database.ResolveSourceIDs(db, cfg.Table); err != nil {
		return err
	}
	if err := database.ResolveKingdoms(db, cfg.Table); err != nil {
		return err
	}

	printMergeSummary(db, cfg.Table, results)
	fmt.Println("Command executed successfully.")
	return nil
}

// printMergeSummary renders the per-source row counts and the destination total
func printMergeSummary(db database.DB, destination string, results []database.MergeResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Source", "Rows"})

	var total int64
	for _, result := range results {
		table.Append([]string{result.Source, strconv.FormatInt(result.Rows, 10)})
		total += result.Rows
	}
	table.SetFooter([]string{destination, strconv.FormatInt(total, 10)})
	table.Render()

	rows, err := database.ExecuteQuery(db, fmt.Sprintf("SELECT COUNT(*) AS total FROM %s", destination))
	if err == nil && len(rows) == 1 {
		fmt.Printf("Destination table now holds %v rows\n", rows[0]["total"])
	}
}
