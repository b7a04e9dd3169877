package sequence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oligoseq/core/chem"
	"oligoseq/core/grammar"
	"oligoseq/core/product"
)

// recordingEngine wraps the reference engine and remembers which entry
// point the aggregate used.
type recordingEngine struct {
	chem.Reference
	calls []string
}

func (e *recordingEngine) RNAToFourLetter(s string) (string, error) {
	e.calls = append(e.calls, "rna:"+s)
	return e.Reference.RNAToFourLetter(s)
}

func (e *recordingEngine) FromSingleLetter(s string) (chem.Molecule, error) {
	e.calls = append(e.calls, "slr:"+s)
	return e.Reference.FromSingleLetter(s)
}

func (e *recordingEngine) FromFourLetter(s string) (chem.Molecule, error) {
	e.calls = append(e.calls, "flr:"+s)
	return e.Reference.FromFourLetter(s)
}

const guide = "ACGUACGUACGUACGUACGU" // 20-nt spacer

func TestNewInfersRNASingleLetter(t *testing.T) {
	eng := &recordingEngine{}
	s, err := New("acgu acgu acgu", Options{Engine: eng})
	require.NoError(t, err)
	assert.Equal(t, grammar.SingleLetter, s.Type())
	assert.Equal(t, grammar.RNA, s.Encoding())
	assert.Equal(t, "ACGUACGUACGU", s.Raw())
	assert.Equal(t, 12, s.Length())
	assert.False(t, s.Modified())
	require.Len(t, eng.calls, 2)
	assert.Equal(t, "rna:ACGUACGUACGU", eng.calls[0])
	assert.True(t, strings.HasPrefix(eng.calls[1], "flr:-Aro-Cro"))
}

func TestNewDNASingleLetterPassesThrough(t *testing.T) {
	eng := &recordingEngine{}
	s, err := New("GATTACAGATTACA", Options{Engine: eng})
	require.NoError(t, err)
	assert.Equal(t, grammar.DNA, s.Encoding())
	assert.Equal(t, []string{"slr:GATTACAGATTACA"}, eng.calls)
	flr, err := s.FourLetter()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(flr, "-Gdo-Ado-Tdo"))
}

func TestNewFourLetterPassesThrough(t *testing.T) {
	eng := &recordingEngine{}
	in := "-Gro-Aro-Uro-Uro-Aro-Cro-Aro-Gro-Uro-Ur"
	s, err := New(in, Options{Engine: eng, Modification: "standard"})
	require.NoError(t, err)
	assert.Equal(t, grammar.FourLetter, s.Type())
	assert.Equal(t, []string{"flr:" + in}, eng.calls)

	flr, err := s.FourLetter()
	require.NoError(t, err)
	assert.Equal(t, "-Gms-Ams-Ums-Uro-Aro-Cro-Aro-Gms-Ums-Um", flr)
	assert.True(t, s.Modified())
}

func TestNewEmptyIsAccepted(t *testing.T) {
	s, err := New("  ", Options{Type: "slr", Encoding: "rna"})
	require.NoError(t, err)
	assert.Equal(t, "", s.Raw())
	assert.Equal(t, 0, s.Length())
	assert.Equal(t, "", s.LengthRange())
}

func TestNewEmptyRejectsStandard(t *testing.T) {
	_, err := New("", Options{Type: "slr", Encoding: "rna", Modification: "standard"})
	require.ErrorIs(t, err, grammar.ErrValidation)
	assert.Contains(t, err.Error(), "sequence length is 0")

	// an empty sequence with a product suffix still has something to stabilize
	s, err := New("", Options{Type: "slr", Encoding: "rna", Modification: "standard", Product: product.SGRNAKit})
	require.NoError(t, err)
	_, err = s.Record()
	require.NoError(t, err)
}

func TestNewRejects(t *testing.T) {
	cases := map[string]struct {
		raw string
		opt Options
	}{
		"short":            {"ACGU", Options{}},
		"bad type":         {guide, Options{Type: "qlr"}},
		"bad encoding":     {guide, Options{Encoding: "peptide"}},
		"encoding clash":   {guide, Options{Encoding: "dna"}},
		"ambiguous":        {"ACGU ACGU XX", Options{}},
		"bad modification": {guide, Options{Modification: "heavy"}},
		"ultra short":      {guide, Options{Modification: "ultra"}},
	}
	for name, c := range cases {
		_, err := New(c.raw, c.opt)
		assert.ErrorIs(t, err, grammar.ErrValidation, name)
	}
}

func TestProductSuffix(t *testing.T) {
	s, err := New(guide, Options{Product: product.SGRNAKit, Modification: "ultra"})
	require.NoError(t, err)
	assert.Equal(t, product.SGRNAScaffold, s.ProductSequence())
	assert.Equal(t, guide, s.Raw())
	assert.Equal(t, 100, s.Length())
	assert.Equal(t, "81-100", s.LengthRange())

	flr, err := s.FourLetter()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(flr, "-Ams-Cms-Gms-Uro"))
	assert.True(t, strings.HasSuffix(flr, "-Ums-Ums-Ums-Um"))
}

func TestProductSuffixNeedsSingleLetter(t *testing.T) {
	flr, err := chem.Reference{}.RNAToFourLetter(guide)
	require.NoError(t, err)
	_, err = New(flr, Options{Product: product.SGRNANoBuffer})
	require.Error(t, err)
	assert.ErrorIs(t, err, grammar.ErrValidation)
	assert.Contains(t, err.Error(), "single letter format for product sgrna-nobuffer")
}

func TestUnknownProductHasNoSuffix(t *testing.T) {
	s, err := New(guide, Options{Product: "oligo-pool", Suffixes: product.Table{}})
	require.NoError(t, err)
	assert.Equal(t, "", s.ProductSequence())
	assert.Equal(t, 20, s.Length())
}

func TestMassIsTruncated(t *testing.T) {
	s, err := New("GATTACAGAT", Options{})
	require.NoError(t, err)
	m, err := chem.Reference{}.FromSingleLetter("GATTACAGAT")
	require.NoError(t, err)
	assert.Equal(t, int(m.Mass()), s.Mass())
}

func TestCustomLengthRange(t *testing.T) {
	s, err := New(guide, Options{LengthRange: func(n int) string { return "short" }})
	require.NoError(t, err)
	assert.Equal(t, "short", s.LengthRange())
}
