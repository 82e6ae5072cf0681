package database

import "fmt"

// sourceRanking orders the checklist providers by how authoritative they are
// for each discipline. Lower numbers win when consolidated records conflict.
type sourceRanking struct {
	id          int
	name        string
	forZoology  int
	forBotany   int
	forMycology int
	general     int
}

var sourceRankings = []sourceRanking{
	{1, "taxon_worms", 2, 7, 7, 5},
	{2, "taxon_col", 1, 4, 4, 1},
	{3, "taxon_sfp", 8, 3, 1, 4},
	{4, "taxon_gbif", 4, 5, 5, 6},
	{5, "taxon_ncbi", 5, 6, 6, 7},
	{6, "taxon_zoobank", 3, 8, 8, 8},
	{7, "taxon_wfo", 7, 2, 3, 3},
	{8, "taxon_ipni", 6, 1, 2, 2},
}

// taxonRank gives each nomenclatural rank a sort weight so consolidated
// records can be ordered from kingdom down to subform
type taxonRank struct {
	id   int
	name string
	ord  int
}

var taxonRanks = []taxonRank{
	{1, "unranked", 0},
	{2, "realm", 1},
	{3, "superkingdom", 5},
	{4, "kingdom", 10},
	{5, "subkingdom", 15},
	{6, "infrakingdom", 20},
	{7, "division", 25},
	{8, "subdivision", 30},
	{9, "superphylum", 35},
	{10, "infradivision", 35},
	{11, "parvphylum", 40},
	{12, "phylum", 45},
	{13, "subphylum", 50},
	{14, "infraphylum", 55},
	{15, "megaclass", 60},
	{16, "superclass", 65},
	{17, "gigaclass", 65},
	{18, "class", 70},
	{19, "subclass", 75},
	{20, "subterclass", 80},
	{21, "infraclass", 85},
	{22, "parvorder", 90},
	{23, "superorder", 95},
	{24, "order", 100},
	{25, "nanorder", 105},
	{26, "suborder", 110},
	{27, "infraorder", 115},
	{28, "cohort", 120},
	{29, "subcohort", 125},
	{30, "superfamily", 130},
	{31, "epifamily", 135},
	{32, "family", 140},
	{33, "subfamily", 145},
	{34, "infrafamily", 150},
	{35, "supertribe", 155},
	{36, "tribe", 160},
	{37, "subtribe", 165},
	{38, "infratribe", 170},
	{39, "suprageneric name", 171},
	{40, "genus", 175},
	{41, "subgenus", 180},
	{42, "supersection botany", 185},
	{43, "section botany", 190},
	{44, "subsection botany", 195},
	{45, "section zoology", 200},
	{46, "subsection zoology", 205},
	{47, "superseries", 210},
	{48, "series", 215},
	{49, "subseries", 220},
	{50, "infrageneric name", 225},
	{51, "species aggregate", 230},
	{52, "species", 235},
	{53, "subspecies", 240},
	{54, "variety", 245},
	{55, "subvariety", 250},
	{56, "form", 255},
	{57, "subform", 260},
	{58, "forma specialis", 265},
	{59, "chemoform", 270},
	{60, "cultivar", 275},
	{61, "cultivar group", 280},
	{62, "strain", 285},
	{63, "morph", 290},
	{64, "grex", 295},
	{65, "klepton", 300},
	{66, "biovar", 305},
	{67, "pathovar", 310},
	{68, "chemovar", 315},
	{69, "natio", 320},
	{70, "morphovar", 320},
	{71, "serovar", 321},
	{72, "proles", 325},
	{73, "convariety", 330},
	{74, "mutatio", 335},
	{75, "lusus", 340},
	{76, "aberration", 345},
	{77, "infraspecific name", 350},
	{78, "infrasubspecific name", 355},
	{79, "other", 500},
}

// SeedReferenceTables recreates and fills the source_ranking and taxonranks
// tables used by the merge workflow to resolve source_id and taxonrank_id
func SeedReferenceTables(db DB) error {
	if err := DropTables(db, "source_ranking", "taxonranks"); err != nil {
		return err
	}

	createRanking := `
	CREATE TABLE IF NOT EXISTS source_ranking (
		id INTEGER PRIMARY KEY,
		name TEXT,
		for_zoology INTEGER,
		for_botany INTEGER,
		for_mycology INTEGER,
		general INTEGER
	)`
	if err := CreateTable(db, createRanking, nil); err != nil {
		return err
	}

	createRanks := `
	CREATE TABLE IF NOT EXISTS taxonranks (
		id INTEGER PRIMARY KEY,
		name TEXT,
		ord INTEGER
	)`
	if err := CreateTable(db, createRanks, []string{
		"CREATE INDEX IF NOT EXISTS idx_taxonranks_name ON taxonranks (name)",
	}); err != nil {
		return err
	}

	for _, r := range sourceRankings {
		_, err := db.Exec(
			"INSERT INTO source_ranking (id, name, for_zoology, for_botany, for_mycology, general) VALUES (?, ?, ?, ?, ?, ?)",
			r.id, r.name, r.forZoology, r.forBotany, r.forMycology, r.general,
		)
		if err != nil {
			return fmt.Errorf("failed to seed source_ranking: %w", err)
		}
	}

	for _, r := range taxonRanks {
		_, err := db.Exec(
			"INSERT INTO taxonranks (id, name, ord) VALUES (?, ?, ?)",
			r.id, r.name, r.ord,
		)
		if err != nil {
			return fmt.Errorf("failed to seed taxonranks: %w", err)
		}
	}

	return nil
}
