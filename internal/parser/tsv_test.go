package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTSV creates a temporary tab-separated file with the given lines
func writeTSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxa.tsv")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestReadTaxa(t *testing.T) {
	path := writeTSV(t,
		"taxonID\tparentNameUsageID\tacceptedNameUsageID\tdwc:scientificName",
		"k1\t\t\tAnimalia",
		"p1\tk1\t\tChordata",
		"s1\tp1\t\tFelis catus",
	)

	doc, err := ReadTaxa(path)
	if err != nil {
		t.Fatalf("ReadTaxa() failed: %v", err)
	}

	wantHeaders := []string{"taxonid", "parentnameusageid", "acceptednameusageid", "dwc_scientificname"}
	if !reflect.DeepEqual(doc.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", doc.Headers, wantHeaders)
	}
	if doc.HeadersOriginal[3] != "dwc:scientificName" {
		t.Errorf("Original header not preserved: %v", doc.HeadersOriginal)
	}

	if len(doc.Taxa) != 3 {
		t.Fatalf("Expected 3 taxa, got %d", len(doc.Taxa))
	}

	second := doc.Taxa[1]
	if second.TaxonID != "p1" {
		t.Errorf("TaxonID = %s, want p1", second.TaxonID)
	}
	if second.ParentNameUsageID != "k1" {
		t.Errorf("ParentNameUsageID = %s, want k1", second.ParentNameUsageID)
	}
	if second.Line != 3 {
		t.Errorf("Line = %d, want 3", second.Line)
	}
	if second.Values[3] != "Chordata" {
		t.Errorf("Values[3] = %s, want Chordata", second.Values[3])
	}
}

func TestReadTaxaShortRecord(t *testing.T) {
	// A truncated trailing row must not abort the import
	path := writeTSV(t,
		"taxonID\tparentNameUsageID\tacceptedNameUsageID\tscientificName",
		"k1\t\t\tAnimalia",
		"orphan",
	)

	doc, err := ReadTaxa(path)
	if err != nil {
		t.Fatalf("ReadTaxa() failed: %v", err)
	}

	last := doc.Taxa[len(doc.Taxa)-1]
	if last.TaxonID != "orphan" {
		t.Errorf("TaxonID = %s, want orphan", last.TaxonID)
	}
	if last.ParentNameUsageID != "" || last.AcceptedNameUsageID != "" {
		t.Error("Short records should have empty identifier columns")
	}
}

func TestReadTaxaErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"header only", []string{"taxonID\tparentNameUsageID\tacceptedNameUsageID"}},
		{"empty taxonID", []string{"taxonID\tparentNameUsageID\tacceptedNameUsageID", "\tk1\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTSV(t, tt.lines...)
			if _, err := ReadTaxa(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestReadTaxaMissingFile(t *testing.T) {
	if _, err := ReadTaxa(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"taxonID", "taxonid"},
		{"dwc:scientificName", "dwc_scientificname"},
		{"Taxon Rank", "taxon_rank"},
		{"a--b__c", "a_b_c"},
		{"1name", "col_1name"},
		{"", "unnamed_column"},
		{"***", "unnamed_column"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripProviderPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dwc_scientificname", "scientificname"},
		{"col_id", "id"},
		{"dcterms_modified", "modified"},
		{"taxonid", "taxonid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripProviderPrefix(tt.input); got != tt.want {
				t.Errorf("StripProviderPrefix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
