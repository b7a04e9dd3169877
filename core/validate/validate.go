// Package validate checks raw sequence text against the single-letter and
// four-letter grammars and optionally normalizes its case.
package validate

import (
	"strings"
	"unicode"

	"oligoseq/core/grammar"
)

// Sequence dispatches on typ. Blank input means "no sequence" and is valid.
func Sequence(raw string, enc grammar.Encoding, typ grammar.RepresentationType, normalize bool) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	switch typ {
	case grammar.SingleLetter:
		return SingleLetter(raw, enc, normalize)
	case grammar.FourLetter:
		return FourLetter(raw, enc, normalize)
	}
	return "", grammar.Invalidf("sequence_type %s is not supported", typ)
}

// SingleLetter validates one base per character.
func SingleLetter(raw string, enc grammar.Encoding, normalize bool) (string, error) {
	bases := grammar.Bases(enc)
	s := []rune(grammar.Clean(raw))
	if len(s) < grammar.MinimumLength {
		return "", tooShort(len(s))
	}
	out := make([]rune, len(s))
	for i, r := range s {
		up := unicode.ToUpper(r)
		if !bases.Contains(up) {
			return "", grammar.Invalidf("invalid base '%c' found at position %d", r, i)
		}
		if normalize {
			r = up
		}
		out[i] = r
	}
	return string(out), nil
}

// FourLetter validates [modifier][base][backbone][linkage] quads; the final
// nucleotide has no linkage.
func FourLetter(raw string, enc grammar.Encoding, normalize bool) (string, error) {
	s, _, err := FourLetterCount(raw, enc, normalize)
	return s, err
}

// FourLetterCount is FourLetter that also returns the nucleotide count.
func FourLetterCount(raw string, enc grammar.Encoding, normalize bool) (string, int, error) {
	bases := grammar.Bases(enc)
	s := []rune(grammar.Clean(raw))

	// A leading modifier lost in a spreadsheet shifts every quad by one.
	if len(s) > 0 && !grammar.IsModifier(unicode.ToLower(s[0])) && hasModifier(s) {
		return "", 0, grammar.Invalidf("modifier is missing at start of sequence")
	}

	out := make([]rune, len(s))
	n := 0
	el := grammar.Modifier
	for i, r := range s {
		if !el.Accepts(r, bases) {
			return "", 0, grammar.Invalidf("invalid %s '%c' found at position %d", el, r, i)
		}
		if el == grammar.Base {
			n++
		}
		if normalize {
			r = el.Canonical(r)
		}
		out[i] = r
		if i == len(s)-1 && el != grammar.Terminal {
			return "", 0, grammar.Invalidf("linkage found at end of sequence")
		}
		el = el.Next()
	}
	if n < grammar.MinimumLength {
		return "", 0, tooShort(n)
	}
	return string(out), n, nil
}

func hasModifier(s []rune) bool {
	for _, r := range s {
		if grammar.IsModifier(unicode.ToLower(r)) {
			return true
		}
	}
	return false
}

func tooShort(n int) error {
	return grammar.Invalidf("sequence length is %d and is below minimum of %d", n, grammar.MinimumLength)
}
