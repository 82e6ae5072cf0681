// Package tree builds the in-memory taxonomy hierarchy used to compute
// classification paths before records are written to the database
package tree

import (
	"fmt"

	"taxonomy-importer/internal/models"
)

// Node is a single taxon placed in the hierarchy.
// ID is the stable row id assigned in insertion order, starting at 1.
type Node struct {
	Taxon  models.Taxon
	ID     int64
	parent *Node
}

// Parent returns the parent node, nil for top-level taxa
func (n *Node) Parent() *Node {
	return n.parent
}

// Classification walks the ancestor chain and returns the ancestor labels and
// row ids ordered from immediate parent upward. Top-level taxa return empty
// slices.
func (n *Node) Classification() (labels []string, ids []int64) {
	for p := n.parent; p != nil; p = p.parent {
		labels = append(labels, p.Taxon.TaxonID)
		ids = append(ids, p.ID)
	}
	return labels, ids
}

// Tree is the assembled taxonomy hierarchy
type Tree struct {
	nodes map[string]*Node
	order []*Node
}

// Build assembles the hierarchy from parsed taxa.
//
// A taxon's parent is its parentNameUsageID; when acceptedNameUsageID is set
// the record is a synonym and attaches next to its accepted name, under that
// name's parent. Records whose parent has not been seen yet are deferred and
// retried once after the first pass, matching the out-of-order rows checklist
// exports contain. Rows still unresolvable after the retry are dropped and
// counted.
func Build(taxa []models.Taxon) (*Tree, int, error) {
	t := &Tree{nodes: make(map[string]*Node, len(taxa))}

	var deferred []models.Taxon
	for _, taxon := range taxa {
		if err := t.add(taxon); err != nil {
			deferred = append(deferred, taxon)
		}
	}

	dropped := 0
	for _, taxon := range deferred {
		if err := t.add(taxon); err != nil {
			dropped++
		}
	}

	if len(t.order) == 0 {
		return nil, dropped, fmt.Errorf("no taxa could be placed in the tree")
	}

	return t, dropped, nil
}

// add places one taxon, returning an error when its parent is not yet known
func (t *Tree) add(taxon models.Taxon) error {
	key := taxon.Key()
	if _, exists := t.nodes[key]; exists {
		return nil // duplicate identifier, first record wins
	}

	parentKey := taxon.ParentKey()
	if accepted := taxon.AcceptedKey(); accepted != "" {
		acceptedNode, ok := t.nodes[accepted]
		if !ok {
			return fmt.Errorf("accepted name %q not seen yet", accepted)
		}
		if acceptedNode.parent != nil {
			parentKey = acceptedNode.parent.Taxon.Key()
		} else {
			parentKey = ""
		}
	}

	var parent *Node
	if parentKey != "" {
		var ok bool
		parent, ok = t.nodes[parentKey]
		if !ok {
			return fmt.Errorf("parent %q not seen yet", parentKey)
		}
	}

	node := &Node{
		Taxon:  taxon,
		ID:     int64(len(t.order) + 1),
		parent: parent,
	}
	t.nodes[key] = node
	t.order = append(t.order, node)
	return nil
}

// Get looks up a node by taxon identifier
func (t *Tree) Get(taxonID string) *Node {
	return t.nodes[models.Taxon{TaxonID: taxonID}.Key()]
}

// Nodes returns all placed nodes in insertion order
func (t *Tree) Nodes() []*Node {
	return t.order
}

// Len returns the number of placed nodes
func (t *Tree) Len() int {
	return len(t.order)
}
