// Package sequence holds the customer sequence aggregate: validated raw
// text, an optional product suffix, and the chemistry engine's canonical
// four-letter form, optionally stabilized.
package sequence

import (
	"fmt"

	"oligoseq/core/chem"
	"oligoseq/core/grammar"
	"oligoseq/core/infer"
	"oligoseq/core/lengthrange"
	"oligoseq/core/modify"
	"oligoseq/core/product"
	"oligoseq/core/validate"
)

// Options configures New. Empty Encoding/Type are inferred from the text;
// an empty Modification means none. Nil collaborators get the built-ins.
type Options struct {
	Encoding     string
	Type         string
	Modification string
	Label        *string
	Product      string

	Engine      chem.Engine
	Suffixes    product.Suffixes
	LengthRange func(int) string
}

func (o Options) withDefaults() Options {
	if o.Engine == nil {
		o.Engine = chem.Reference{}
	}
	if o.Suffixes == nil {
		o.Suffixes = product.Default()
	}
	if o.LengthRange == nil {
		o.LengthRange = lengthrange.Of
	}
	return o
}

// Sequence is immutable once built.
type Sequence struct {
	raw      string
	suffix   string
	enc      grammar.Encoding
	typ      grammar.RepresentationType
	mod      grammar.Modification
	label    *string
	product  string
	mol      chem.Molecule
	bucketOf func(int) string
}

// New validates raw and builds the aggregate.
func New(raw string, opt Options) (*Sequence, error) {
	opt = opt.withDefaults()
	s := &Sequence{label: opt.Label, product: opt.Product, bucketOf: opt.LengthRange}

	var err error
	if opt.Type != "" {
		s.typ, err = grammar.ParseType(opt.Type)
	} else {
		s.typ, err = infer.Type(raw).Unwrap()
	}
	if err != nil {
		return nil, err
	}

	if opt.Encoding != "" {
		s.enc, err = grammar.ParseEncoding(opt.Encoding)
	} else {
		s.enc, err = infer.Encoding(raw).Unwrap()
	}
	if err != nil {
		return nil, err
	}

	if s.raw, err = validate.Sequence(raw, s.enc, s.typ, true); err != nil {
		return nil, err
	}

	if suffix, ok := opt.Suffixes.Lookup(opt.Product); ok {
		if s.typ != grammar.SingleLetter {
			return nil, grammar.Invalidf("sequence must be in single letter format for product %s", opt.Product)
		}
		s.suffix = suffix
	}

	if s.mol, err = s.convert(opt.Engine); err != nil {
		return nil, err
	}

	if s.mod, err = grammar.ParseModification(opt.Modification); err != nil {
		return nil, err
	}
	switch {
	case s.mod == grammar.Ultra && s.Length() != modify.UltraLength:
		return nil, modify.UltraLengthError(s.Length())
	case s.mod == grammar.Standard && s.Length() == 0:
		// nothing to stabilize
		return nil, grammar.Invalidf("sequence length is 0 and is below minimum of %d", grammar.MinimumLength)
	}
	return s, nil
}

func (s *Sequence) convert(eng chem.Engine) (chem.Molecule, error) {
	var (
		mol chem.Molecule
		err error
	)
	switch {
	case s.typ == grammar.SingleLetter && s.enc == grammar.RNA:
		var flr string
		if flr, err = eng.RNAToFourLetter(s.raw + s.suffix); err == nil {
			mol, err = eng.FromFourLetter(flr)
		}
	case s.typ == grammar.SingleLetter:
		mol, err = eng.FromSingleLetter(s.raw + s.suffix)
	default:
		text := s.raw
		if text == "" {
			text = s.suffix
		}
		mol, err = eng.FromFourLetter(text)
	}
	if err != nil {
		return nil, fmt.Errorf("chemistry conversion: %w", err)
	}
	return mol, nil
}

func (s *Sequence) Raw() string { return s.raw }
func (s *Sequence) Encoding() grammar.Encoding { return s.enc }
func (s *Sequence) Type() grammar.RepresentationType { return s.typ }
func (s *Sequence) Modification() grammar.Modification { return s.mod }
func (s *Sequence) Label() *string { return s.label }
func (s *Sequence) Product() string { return s.product }
func (s *Sequence) ProductSequence() string { return s.suffix }
func (s *Sequence) Modified() bool { return s.mod != grammar.NoModification }
func (s *Sequence) Length() int { return s.mol.Length() }
func (s *Sequence) LengthRange() string { return s.bucketOf(s.Length()) }

// Mass is the engine's mass truncated to whole daltons.
func (s *Sequence) Mass() int { return int(s.mol.Mass()) }

// FourLetter returns the canonical four-letter form with the modification
// protocol applied. It is recomputed on every call.
func (s *Sequence) FourLetter() (string, error) {
	flr := s.mol.FourLetter()
	if !s.Modified() {
		return flr, nil
	}
	return modify.Apply(flr, s.mod)
}
