package grammar

import (
	"fmt"
	"unicode"
)

// Element is one slot of a four-letter nucleotide quad. A four-letter
// sequence walks Modifier → Base → Backbone → Linkage → Modifier ... and
// must stop on Backbone.
type Element uint8

const (
	Modifier Element = iota
	Base
	Backbone
	Linkage
)

// Terminal is the state a complete four-letter sequence ends in.
const Terminal = Backbone

func (e Element) Next() Element { return (e + 1) % 4 }

func (e Element) String() string {
	switch e {
	case Modifier:
		return "modifier"
	case Base:
		return "base"
	case Backbone:
		return "backbone"
	case Linkage:
		return "linkage"
	}
	return fmt.Sprintf("element(%d)", uint8(e))
}

// Accepts reports whether r is legal in this slot. bases is only consulted
// for the Base slot. Case is folded the way each slot is written canonically.
func (e Element) Accepts(r rune, bases *BaseSet) bool {
	switch e {
	case Modifier:
		return IsModifier(unicode.ToLower(r))
	case Base:
		return bases.Contains(unicode.ToUpper(r))
	case Backbone:
		return IsBackbone(unicode.ToLower(r))
	case Linkage:
		return IsLinkage(unicode.ToLower(r))
	}
	return false
}

// Canonical returns r in the case used by normalized output: bases upper,
// everything else lower.
func (e Element) Canonical(r rune) rune {
	if e == Base {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}
