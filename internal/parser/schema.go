// Package parser provides tab-separated parsing and schema generation
// functionality
package parser

import (
	"fmt"
	"strings"
)

// ColumnSchema represents the schema for a single column
type ColumnSchema struct {
	Name  string
	Type  string
	Index bool // Whether to create an index on this column
}

// TableSchema represents the complete schema for a table
type TableSchema struct {
	Name    string
	Columns []ColumnSchema
}

// BuildSchema derives the provider table schema from slugged file headers.
// Every source column is stored as TEXT; the classification columns hold JSON
// arrays and created_at records the import time.
func BuildSchema(headers []string, tableName string) (*TableSchema, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("no headers found")
	}

	schema := &TableSchema{Name: tableName}
	for _, header := range headers {
		name := StripProviderPrefix(header)
		schema.Columns = append(schema.Columns, ColumnSchema{
			Name:  name,
			Type:  "TEXT",
			Index: shouldIndex(name),
		})
	}

	schema.Columns = append(schema.Columns,
		ColumnSchema{Name: "label", Type: "TEXT"},
		ColumnSchema{Name: "parents", Type: "TEXT"},    // JSON array of ancestor labels
		ColumnSchema{Name: "parent_ids", Type: "TEXT"}, // JSON array of ancestor row ids
		ColumnSchema{Name: "created_at", Type: "DATETIME DEFAULT CURRENT_TIMESTAMP"},
	)

	return schema, nil
}

// MergedSchema returns the fixed schema of the consolidated destination table
func MergedSchema(tableName string) *TableSchema {
	return &TableSchema{
		Name: tableName,
		Columns: []ColumnSchema{
			{Name: "tid", Type: "INTEGER", Index: true},
			{Name: "taxonid", Type: "TEXT", Index: true},
			{Name: "label", Type: "TEXT", Index: true},
			{Name: "scientificnameauthorship", Type: "TEXT"},
			{Name: "taxonrank", Type: "TEXT", Index: true},
			{Name: "taxonrank_id", Type: "INTEGER"},
			{Name: "taxonomicstatus", Type: "TEXT"},
			{Name: "parents", Type: "TEXT", Index: true},
			{Name: "parent_ids", Type: "TEXT"},
			{Name: "source", Type: "TEXT"},
			{Name: "source_id", Type: "INTEGER"},
			{Name: "kingdom", Type: "TEXT"},
		},
	}
}

// ColumnNames returns the column names in declaration order,
// excluding the implicit id primary key
func (ts *TableSchema) ColumnNames() []string {
	names := make([]string, len(ts.Columns))
	for i, col := range ts.Columns {
		names[i] = col.Name
	}
	return names
}

// GenerateCreateTableSQL generates the SQL CREATE TABLE statement for the schema
func (ts *TableSchema) GenerateCreateTableSQL() string {
	columns := []string{"id INTEGER PRIMARY KEY AUTOINCREMENT"}

	for _, col := range ts.Columns {
		columns = append(columns, fmt.Sprintf("%q %s", col.Name, col.Type))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)",
		ts.Name,
		strings.Join(columns, ",\n  "))
}

// GenerateIndexSQL generates the SQL statements to create indexes for marked columns
func (ts *TableSchema) GenerateIndexSQL() []string {
	var indexStatements []string

	for _, col := range ts.Columns {
		if col.Index {
			indexSQL := fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%q)",
				ts.Name, col.Name, ts.Name, col.Name,
			)
			indexStatements = append(indexStatements, indexSQL)
		}
	}

	return indexStatements
}

// shouldIndex determines if a column should be automatically indexed based on its name
func shouldIndex(columnName string) bool {
	switch columnName {
	case "taxonid", "label", "taxonrank", "taxonomicstatus", "scientificname":
		return true
	}
	return strings.HasSuffix(columnName, "usageid")
}
