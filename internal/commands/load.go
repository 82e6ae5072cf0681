package commands

import (
	"fmt"

	"taxonomy-importer/internal/config"
	"taxonomy-importer/internal/database"
	"taxonomy-importer/internal/parser"
	"taxonomy-importer/internal/tree"
)

// runLoad executes the import workflow: parse the taxonomy file, build the
// hierarchy, create the destination table and bulk insert the records
func runLoad(db database.DB, cfg config.Config) error {
	fmt.Printf("Loading taxonomy file: %s\n", cfg.FilePath)
	fmt.Printf("Target database: %s\n", cfg.DatabasePath())
	fmt.Printf("Destination table: %s\n", cfg.Table)

	doc, err := parser.ReadTaxa(cfg.FilePath)
	if err != nil {
		return fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	fmt.Printf("Parsed %d taxon records\n", len(doc.Taxa))

	t, dropped, err := tree.Build(doc.Taxa)
	if err != nil {
		return fmt.Errorf("failed to build taxonomy tree: %w", err)
	}
	if dropped > 0 {
		fmt.Printf("Warning: %d records could not be placed in the tree and were skipped\n", dropped)
	}

	schema, err := parser.BuildSchema(doc.Headers, cfg.Table)
	if err != nil {
		return fmt.Errorf("failed to build table schema: %w", err)
	}
	if err := database.CreateTable(db, schema.GenerateCreateTableSQL(), schema.GenerateIndexSQL()); err != nil {
		return fmt.Errorf("failed to create table %s: %w", cfg.Table, err)
	}

	// Insert columns mirror the file headers with provider prefixes removed,
	// matching the column names BuildSchema produced.
	columns := make([]string, len(doc.Headers))
	for i, header := range doc.Headers {
		columns[i] = parser.StripProviderPrefix(header)
	}

	count, err := database.InsertNodes(db, cfg.Table, columns, t.Nodes(), config.InsertBatchSize)
	if err != nil {
		return fmt.Errorf("failed to insert taxon records: %w", err)
	}

	fmt.Printf("Successfully loaded %d records into %s\n", count, cfg.Table)
	return nil
}
