// Package product maps product slugs to the single-letter suffix that
// manufacturing appends to the customer sequence.
package product

import "sort"

// SGRNAScaffold is the guide-RNA scaffold shared by the sgRNA products.
const SGRNAScaffold = "GUUUUAGAGCUAGAAAUAGCAAGUUAAAAUAAGGCUAGUCCGUUAUCAACUUGAAAAAGUGGCACCGAGUCGGUGCUUUU"

// Product slugs that carry the scaffold.
const (
	SGRNACellValidated  = "sgrna-cell-validated"
	SGRNAEditedCells    = "sgrna-edited-cells"
	SGRNAKit            = "sgrna-kit"
	SGRNANoBuffer       = "sgrna-nobuffer"
	SGRNAScreeningPlate = "sgrna-screening-plate"
)

// Suffixes looks up the suffix for a product slug.
type Suffixes interface {
	Lookup(slug string) (string, bool)
}

// Table is a fixed slug → suffix mapping.
type Table map[string]string

func (t Table) Lookup(slug string) (string, bool) {
	if slug == "" {
		return "", false
	}
	s, ok := t[slug]
	return s, ok
}

// Slugs returns the table keys in sorted order.
func (t Table) Slugs() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default returns a fresh copy of the built-in table.
func Default() Table {
	return Table{
		SGRNACellValidated:  SGRNAScaffold,
		SGRNAEditedCells:    SGRNAScaffold,
		SGRNAKit:            SGRNAScaffold,
		SGRNANoBuffer:       SGRNAScaffold,
		SGRNAScreeningPlate: SGRNAScaffold,
	}
}
