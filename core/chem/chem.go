// Package chem defines the chemistry capability the sequence aggregate
// depends on, plus Reference, a deterministic stand-in engine.
package chem

// Molecule is a canonical chemical form of a sequence.
type Molecule interface {
	FourLetter() string
	Length() int
	Mass() float64
}

// Engine converts customer text into Molecules.
type Engine interface {
	// RNAToFourLetter rewrites RNA single-letter text as four-letter text.
	RNAToFourLetter(slr string) (string, error)
	FromSingleLetter(slr string) (Molecule, error)
	FromFourLetter(flr string) (Molecule, error)
}
