// Package modify applies positional stabilization rewrites over validated four-letter sequences.
package modify

import (
	"oligoseq/core/grammar"
	"oligoseq/core/validate"
)

const (
	// Stabilized backbone (2'-O-methyl) and linkage (phosphorothioate) letters.
	StabilizedBackbone = 'm'
	StabilizedLinkage  = 's'

	// StandardEnds is how many nucleotides at each end the standard protocol touches.
	StandardEnds = 3

	// UltraLength is the only nucleotide count the ultra protocol accepts.
	UltraLength = 100
)

// Ultra protocol index sets (1-based nucleotide indices). These are a
// manufacturing recipe and must not be derived from sequence content.
var (
	UltraBackboneIndices = []int{
		1, 2, 3,
		29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
		69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81, 82, 83, 84,
		85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95, 96, 97, 98, 99, 100,
	}
	UltraLinkageIndices = []int{1, 2, 3, 97, 98, 99, 100}
)

// RewriteElement replaces the el slot of every nucleotide whose 1-based index
// is listed in indices with replacement. The input must already be a valid
// four-letter sequence; grammar is not re-checked here.
func RewriteElement(flr string, el grammar.Element, indices []int, replacement rune) string {
	want := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		want[i] = struct{}{}
	}
	s := []rune(grammar.Clean(flr))
	out := make([]rune, len(s))
	nt := 1
	slot := grammar.Modifier
	for i, r := range s {
		if _, hit := want[nt]; hit && slot == el {
			r = replacement
		}
		out[i] = r
		if slot == grammar.Linkage {
			nt++
		}
		slot = slot.Next()
	}
	return string(out)
}

// Indices returns the backbone and linkage index sets kind rewrites on an
// n-nucleotide sequence. None yields nil sets.
func Indices(kind grammar.Modification, n int) (backbone, linkage []int, err error) {
	switch kind {
	case grammar.NoModification:
		return nil, nil, nil
	case grammar.Standard:
		ends := make([]int, 0, 2*StandardEnds)
		for i := 1; i <= StandardEnds; i++ {
			ends = append(ends, i)
		}
		for i := n - StandardEnds + 1; i <= n; i++ {
			ends = append(ends, i)
		}
		return ends, ends, nil
	case grammar.Ultra:
		if n != UltraLength {
			return nil, nil, UltraLengthError(n)
		}
		return UltraBackboneIndices, UltraLinkageIndices, nil
	}
	return nil, nil, grammar.Invalidf("modification %s is not supported", kind)
}

// Apply re-validates flr and rewrites it according to kind.
func Apply(flr string, kind grammar.Modification) (string, error) {
	s, n, err := validate.FourLetterCount(flr, grammar.Custom, true)
	if err != nil {
		return "", err
	}
	if kind == grammar.NoModification {
		return flr, nil
	}
	backbone, linkage, err := Indices(kind, n)
	if err != nil {
		return "", err
	}
	s = RewriteElement(s, grammar.Backbone, backbone, StabilizedBackbone)
	s = RewriteElement(s, grammar.Linkage, linkage, StabilizedLinkage)
	return s, nil
}

// UltraLengthError reports a sequence that cannot take the ultra protocol.
func UltraLengthError(n int) error {
	return grammar.Invalidf("ultra mod is only supported for %dmers, sequence length is %d", UltraLength, n)
}
