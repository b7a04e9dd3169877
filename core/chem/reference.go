package chem

import (
	"strings"
	"unicode"

	"oligoseq/core/grammar"
)

// Average residue masses in Da. Residues are monophosphates as they sit in
// a chain; a linear oligo with free 5'/3' hydroxyls loses one phosphate.
const (
	terminalPhosphate = 61.96
	thioateDelta      = 16.07 // O → S on a phosphorothioate linkage
	methylDelta       = 14.03 // CH2
)

var dnaResidue = map[rune]float64{'A': 313.21, 'C': 289.18, 'G': 329.21, 'T': 304.20, 'U': 290.17}
var rnaResidue = map[rune]float64{'A': 329.21, 'C': 305.18, 'G': 345.21, 'U': 306.17, 'T': 320.20}

// modifier contributions; 'b' has no entry in the reference table
var modifierDelta = map[rune]float64{'-': 0, 'm': methylDelta}

// Reference is the built-in Engine. It is stateless.
type Reference struct{}

var _ Engine = Reference{}

type molecule struct {
	flr  string
	n    int
	mass float64
}

func (m molecule) FourLetter() string { return m.flr }
func (m molecule) Length() int { return m.n }
func (m molecule) Mass() float64 { return m.mass }

func (Reference) RNAToFourLetter(slr string) (string, error) {
	for i, r := range slr {
		if !grammar.IsRNABase(unicode.ToUpper(r)) {
			return "", grammar.Invalidf("invalid RNA base '%c' found at position %d", r, i)
		}
	}
	return quads(slr, func(rune) byte { return 'r' }), nil
}

// FromSingleLetter uses the RNA backbone for U and for text that only
// contains RNA bases, the DNA backbone for everything else.
func (e Reference) FromSingleLetter(slr string) (Molecule, error) {
	up := strings.ToUpper(slr)
	def := byte('d')
	if strings.ContainsRune(up, 'U') && !strings.ContainsRune(up, 'T') {
		def = 'r'
	}
	for i, r := range up {
		if !grammar.IsBase(r) {
			return nil, grammar.Invalidf("invalid base '%c' found at position %d", r, i)
		}
	}
	return e.FromFourLetter(quads(up, func(b rune) byte {
		switch b {
		case 'U':
			return 'r'
		case 'T':
			return 'd'
		}
		return def
	}))
}

// FromFourLetter parses flr without a minimum length.
func (Reference) FromFourLetter(flr string) (Molecule, error) {
	s := []rune(grammar.Clean(flr))
	if len(s) == 0 {
		return molecule{}, nil
	}
	bases := grammar.Bases(grammar.Custom)
	out := make([]rune, len(s))
	var (
		n         int
		mass      float64
		mod, base rune
		el        = grammar.Modifier
	)
	for i, r := range s {
		if !el.Accepts(r, bases) {
			return nil, grammar.Invalidf("invalid %s '%c' found at position %d", el, r, i)
		}
		r = el.Canonical(r)
		out[i] = r
		switch el {
		case grammar.Modifier:
			mod = r
		case grammar.Base:
			base = r
			n++
		case grammar.Backbone:
			mass += residueMass(mod, base, r)
		case grammar.Linkage:
			if r == 's' {
				mass += thioateDelta
			}
		}
		el = el.Next()
	}
	if el != grammar.Terminal.Next() {
		return nil, grammar.Invalidf("linkage found at end of sequence")
	}
	return molecule{flr: string(out), n: n, mass: mass - terminalPhosphate}, nil
}

func residueMass(mod, base, backbone rune) float64 {
	var m float64
	switch backbone {
	case 'd':
		m = dnaResidue[base]
	case 'r':
		m = rnaResidue[base]
	case 'm':
		m = rnaResidue[base] + methylDelta
	}
	return m + modifierDelta[mod]
}

func quads(slr string, backbone func(rune) byte) string {
	up := []rune(strings.ToUpper(slr))
	var b strings.Builder
	b.Grow(4 * len(up))
	for i, r := range up {
		b.WriteByte('-')
		b.WriteRune(r)
		b.WriteByte(backbone(r))
		if i < len(up)-1 {
			b.WriteByte('o')
		}
	}
	return b.String()
}
