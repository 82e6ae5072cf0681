// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
	"strings"
)

// Taxon represents a single record from a Darwin Core taxonomy export.
// The first three columns of every checklist export are the record identifier,
// its parent and the accepted-name indirection; the remaining columns vary by
// provider and are kept as raw values aligned with the file headers.
type Taxon struct {
	TaxonID             string   // Record identifier, unique within the file
	ParentNameUsageID   string   // Identifier of the parent record, empty for roots
	AcceptedNameUsageID string   // Identifier of the accepted synonym, usually empty
	Values              []string // All column values in file order
	Line                int      // 1-based line number in the source file
}

// Key returns the normalized identifier used for tree lookups
func (t Taxon) Key() string {
	return strings.ToLower(t.TaxonID)
}

// ParentKey returns the normalized parent identifier
func (t Taxon) ParentKey() string {
	return strings.ToLower(t.ParentNameUsageID)
}

// AcceptedKey returns the normalized accepted-name identifier
func (t Taxon) AcceptedKey() string {
	return strings.ToLower(t.AcceptedNameUsageID)
}

// String returns a human-readable representation of the taxon record
func (t Taxon) String() string {
	return fmt.Sprintf("line %d: %s (parent %s)", t.Line, t.TaxonID, t.ParentNameUsageID)
}
