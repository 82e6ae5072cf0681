// Package parser provides tab-separated parsing functionality for Darwin Core
// taxonomy exports
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"taxonomy-importer/internal/models"
)

// Column prefixes added by the checklist providers. They are stripped before
// column names reach the database so the merged tables line up.
var providerPrefixes = []string{"dwc_", "col_", "dcterms_"}

var slugPattern = regexp.MustCompile(`[\W_]+`)

// Document holds a fully parsed taxonomy export
type Document struct {
	Headers         []string // Slugged column names, provider prefixes intact
	HeadersOriginal []string // Column names exactly as they appear in the file
	Taxa            []models.Taxon
}

// ReadTaxa reads and parses a tab-separated taxonomy export.
// The first row is always the header row; every following row becomes a Taxon
// with its identifier columns split out and all values kept in file order.
func ReadTaxa(filePath string) (*Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // Provider exports occasionally drop trailing columns

	doc := &Document{}
	lineNumber := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading taxonomy file at line %d: %w", lineNumber+1, err)
		}

		lineNumber++

		if lineNumber == 1 {
			doc.HeadersOriginal = record
			doc.Headers = make([]string, len(record))
			for i, header := range record {
				doc.Headers[i] = Slug(header)
			}
			continue
		}

		taxon, err := parseTaxon(record, lineNumber)
		if err != nil {
			return nil, fmt.Errorf("error parsing line %d: %w", lineNumber, err)
		}

		doc.Taxa = append(doc.Taxa, taxon)
	}

	if len(doc.Headers) == 0 {
		return nil, fmt.Errorf("no header row found in taxonomy file")
	}
	if len(doc.Taxa) == 0 {
		return nil, fmt.Errorf("no taxon records found in taxonomy file")
	}

	return doc, nil
}

// parseTaxon converts a raw record into a Taxon struct.
// The identifier columns are positional: taxonID, parentNameUsageID,
// acceptedNameUsageID. Records shorter than three columns are padded so a
// truncated trailing row does not abort the whole import.
func parseTaxon(record []string, lineNumber int) (models.Taxon, error) {
	padded := record
	if len(padded) < 3 {
		padded = append(append([]string{}, record...), make([]string, 3-len(record))...)
	}

	taxonID := strings.TrimSpace(padded[0])
	if taxonID == "" {
		return models.Taxon{}, fmt.Errorf("taxonID cannot be empty")
	}

	return models.Taxon{
		TaxonID:             taxonID,
		ParentNameUsageID:   strings.TrimSpace(padded[1]),
		AcceptedNameUsageID: strings.TrimSpace(padded[2]),
		Values:              record,
		Line:                lineNumber,
	}, nil
}

// Slug sanitizes a value into a SQL-safe lowercase identifier.
// Runs of non-word characters collapse into a single underscore.
func Slug(value string) string {
	name := slugPattern.ReplaceAllString(value, "_")
	name = strings.ToLower(strings.Trim(name, "_"))

	// Identifiers must not start with a digit
	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		name = "col_" + name
	}

	if name == "" {
		name = "unnamed_column"
	}

	return name
}

// StripProviderPrefix removes the checklist provider prefix from a slugged
// column name, if present
func StripProviderPrefix(name string) string {
	for _, prefix := range providerPrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
