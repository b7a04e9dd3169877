package grammar

import "strings"

const (
	// MinimumLength is the smallest nucleotide count accepted by either grammar.
	MinimumLength = 10

	DNABases  = "ACGT"
	RNABases  = "ACGU"
	Modifiers = "-mb"
	Backbones = "rdm"
	Linkages  = "os"

	// ignored characters are dropped by Clean before anything else looks at the text
	ignored = " "
)

// BaseSet is a membership table over upper-case base letters.
type BaseSet [256]bool

// Contains reports whether r (already upper-cased) is a legal base.
func (s *BaseSet) Contains(r rune) bool { return r >= 0 && r < 256 && s[r] }

// String lists the members in alphabetical order.
func (s *BaseSet) String() string {
	var b strings.Builder
	for c := 0; c < 256; c++ {
		if s[c] {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}

var (
	dnaSet, rnaSet, customSet BaseSet

	modifierMask [256]bool
	backboneMask [256]bool
	linkageMask  [256]bool
)

func init() {
	fill := func(dst *[256]bool, chars string) {
		for i := 0; i < len(chars); i++ {
			dst[chars[i]] = true
		}
	}
	fill((*[256]bool)(&dnaSet), DNABases)
	fill((*[256]bool)(&rnaSet), RNABases)
	fill((*[256]bool)(&customSet), DNABases+RNABases)
	fill(&modifierMask, Modifiers)
	fill(&backboneMask, Backbones)
	fill(&linkageMask, Linkages)
}

// Bases returns the legal base set for enc. Custom accepts the DNA/RNA union.
func Bases(enc Encoding) *BaseSet {
	switch enc {
	case DNA:
		return &dnaSet
	case RNA:
		return &rnaSet
	default:
		return &customSet
	}
}

// IsDNABase, IsRNABase and IsBase expect upper-case input.
func IsDNABase(r rune) bool { return dnaSet.Contains(r) }
func IsRNABase(r rune) bool { return rnaSet.Contains(r) }
func IsBase(r rune) bool    { return customSet.Contains(r) }

// IsModifier, IsBackbone and IsLinkage expect lower-case input.
func IsModifier(r rune) bool { return r >= 0 && r < 256 && modifierMask[r] }
func IsBackbone(r rune) bool { return r >= 0 && r < 256 && backboneMask[r] }
func IsLinkage(r rune) bool  { return r >= 0 && r < 256 && linkageMask[r] }

// Clean strips ignorable characters (spaces). No other normalization happens here.
func Clean(s string) string {
	if !strings.ContainsAny(s, ignored) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ignored, r) {
			return -1
		}
		return r
	}, s)
}
