package models

import (
	"strings"
	"testing"
)

func TestTaxonKeys(t *testing.T) {
	taxon := Taxon{
		TaxonID:             "NCBI:9685",
		ParentNameUsageID:   "NCBI:9682",
		AcceptedNameUsageID: "NCBI:9999",
	}

	if taxon.Key() != "ncbi:9685" {
		t.Errorf("Key() = %s, want ncbi:9685", taxon.Key())
	}
	if taxon.ParentKey() != "ncbi:9682" {
		t.Errorf("ParentKey() = %s, want ncbi:9682", taxon.ParentKey())
	}
	if taxon.AcceptedKey() != "ncbi:9999" {
		t.Errorf("AcceptedKey() = %s, want ncbi:9999", taxon.AcceptedKey())
	}
}

func TestTaxonEmptyKeys(t *testing.T) {
	taxon := Taxon{TaxonID: "x1"}

	if taxon.ParentKey() != "" {
		t.Errorf("ParentKey() should be empty, got %s", taxon.ParentKey())
	}
	if taxon.AcceptedKey() != "" {
		t.Errorf("AcceptedKey() should be empty, got %s", taxon.AcceptedKey())
	}
}

func TestTaxonString(t *testing.T) {
	taxon := Taxon{
		TaxonID:           "t1",
		ParentNameUsageID: "k1",
		Line:              7,
	}

	s := taxon.String()
	if !strings.Contains(s, "t1") || !strings.Contains(s, "k1") || !strings.Contains(s, "7") {
		t.Errorf("String() missing fields: %s", s)
	}
}
