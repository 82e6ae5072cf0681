// Package database provides SQLite database operations for the taxonomy importer
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"taxonomy-importer/internal/tree"
)

// DB interface defines database operations for easier testing and extensibility
// This interface could be extended to support other database backends (PostgreSQL, MySQL, etc.)
type DB interface {
	Close() error
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// sqliteDB implements the DB interface for SQLite
type sqliteDB struct {
	*sql.DB
}

// Initialize creates a new SQLite database connection.
// The file is created if it doesn't exist. Tables are created per workflow,
// not here, because their schemas depend on the input file headers.
func Initialize(dbPath string) (DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &sqliteDB{sqlDB}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// ListTables returns the names of all tables matching the LIKE pattern,
// ordered by name
func ListTables(db DB, pattern string) ([]string, error) {
	rows, err := db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE ? ORDER BY name",
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during table listing: %w", err)
	}

	return tables, nil
}

// TableExists reports whether a table with the given name exists
func TableExists(db DB, name string) (bool, error) {
	rows, err := db.Query(
		"SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?",
		name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return exists, nil
}

// CreateTable executes the CREATE TABLE statement followed by its index statements
func CreateTable(db DB, createSQL string, indexSQL []string) error {
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	for _, stmt := range indexSQL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// DropTables removes the given tables if they exist
func DropTables(db DB, names ...string) error {
	for _, name := range names {
		if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", name, err)
		}
	}
	return nil
}

// InsertNodes bulk inserts tree nodes into a provider table.
// Row ids are written explicitly so the parent_ids arrays stay valid, and the
// classification slices are stored as JSON arrays. Rows are grouped into
// multi-row insert statements of batchSize; each statement is atomic.
func InsertNodes(db DB, table string, headers []string, nodes []*tree.Node, batchSize int) (int64, error) {
	if len(nodes) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	columns := []string{"id"}
	for _, header := range headers {
		columns = append(columns, fmt.Sprintf("%q", header))
	}
	columns = append(columns, "parents", "parent_ids")
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var inserted int64
	for start := 0; start < len(nodes); start += batchSize {
		end := start + batchSize
		if end > len(nodes) {
			end = len(nodes)
		}
		batch := nodes[start:end]

		var args []interface{}
		for _, node := range batch {
			labels, ids := node.Classification()
			if labels == nil {
				labels = []string{}
			}
			if ids == nil {
				ids = []int64{}
			}
			parents, err := json.Marshal(labels)
			if err != nil {
				return inserted, fmt.Errorf("failed to encode classification: %w", err)
			}
			parentIDs, err := json.Marshal(ids)
			if err != nil {
				return inserted, fmt.Errorf("failed to encode classification ids: %w", err)
			}

			args = append(args, node.ID)
			for i := range headers {
				if i < len(node.Taxon.Values) {
					args = append(args, node.Taxon.Values[i])
				} else {
					args = append(args, "")
				}
			}
			args = append(args, string(parents), string(parentIDs))
		}

		insertSQL := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES %s",
			table,
			strings.Join(columns, ", "),
			strings.TrimSuffix(strings.Repeat(placeholders+", ", len(batch)), ", "),
		)
		if _, err := db.Exec(insertSQL, args...); err != nil {
			return inserted, fmt.Errorf("failed to insert batch at row %d: %w", start+1, err)
		}
		inserted += int64(len(batch))
	}

	return inserted, nil
}

// MergeResult records how many rows one source table contributed to a merge
type MergeResult struct {
	Source string
	Rows   int64
}

// mergedColumns are the destination columns filled from each source table
// during a merge. The source's row id becomes tid so parent_ids arrays keep
// pointing at rows of the same provider.
const mergedColumns = "tid, taxonid, label, scientificnameauthorship, taxonrank, taxonomicstatus, parents, parent_ids, source"

// MergeTables copies the rows of every source table into the destination.
// Each source's label column is normalized first by stripping the authorship
// from the scientific name. Database errors propagate unmodified.
func MergeTables(db DB, sources []string, destination string) ([]MergeResult, error) {
	var results []MergeResult

	for _, source := range sources {
		normalizeSQL := fmt.Sprintf(
			"UPDATE %s SET label = trim(replace(scientificname, scientificnameauthorship, ''))",
			source,
		)
		if _, err := db.Exec(normalizeSQL); err != nil {
			return results, fmt.Errorf("failed to normalize labels in %s: %w", source, err)
		}

		copySQL := fmt.Sprintf(
			"INSERT INTO %s (%s) SELECT id, taxonid, label, scientificnameauthorship, taxonrank, taxonomicstatus, parents, parent_ids, '%s' FROM %s",
			destination, mergedColumns, source, source,
		)
		result, err := db.Exec(copySQL)
		if err != nil {
			return results, fmt.Errorf("failed to copy %s into %s: %w", source, destination, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			rows = 0
		}
		results = append(results, MergeResult{Source: source, Rows: rows})
	}

	return results, nil
}

// ResolveRankIDs fills taxonrank_id from the taxonranks reference table
func ResolveRankIDs(db DB, table string) error {
	updateSQL := fmt.Sprintf(`
	UPDATE %s
	SET taxonrank_id = (SELECT id FROM taxonranks WHERE taxonranks.name = %s.taxonrank)
	WHERE taxonrank IS NOT NULL
	`, table, table)

	if _, err := db.Exec(updateSQL); err != nil {
		return fmt.Errorf("failed to resolve rank ids: %w", err)
	}
	return nil
}

// ResolveSourceIDs fills source_id from the source_ranking reference table
func ResolveSourceIDs(db DB, table string) error {
	updateSQL := fmt.Sprintf(`
	UPDATE %s
	SET source_id = (SELECT id FROM source_ranking WHERE source_ranking.name = %s.source)
	WHERE source IS NOT NULL
	`, table, table)

	if _, err := db.Exec(updateSQL); err != nil {
		return fmt.Errorf("failed to resolve source ids: %w", err)
	}
	return nil
}

// ResolveKingdoms fills the kingdom column by looking up, within the same
// source, the ancestor row of rank 'kingdom' through the parent_ids JSON array
func ResolveKingdoms(db DB, table string) error {
	updateSQL := fmt.Sprintf(`
	UPDATE %s
	SET kingdom = (
		SELECT k.label FROM %s AS k
		WHERE k.source = %s.source
		  AND k.taxonrank = 'kingdom'
		  AND EXISTS (
			SELECT 1 FROM json_each(%s.parent_ids) WHERE json_each.value = k.tid
		  )
		LIMIT 1
	)
	`, table, table, table, table)

	if _, err := db.Exec(updateSQL); err != nil {
		return fmt.Errorf("failed to resolve kingdoms: %w", err)
	}
	return nil
}

// ExecuteQuery executes a SQL query and returns results as a slice of maps
// This generic approach allows for flexible query results without predefined structs
func ExecuteQuery(db DB, query string) ([]map[string]interface{}, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []map[string]interface{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))

		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{})
		for i, column := range columns {
			// Handle NULL values and convert byte slices to strings
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[column] = val
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return results, nil
}
