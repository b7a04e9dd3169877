package sequence

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"

	"oligoseq/core/grammar"
	"oligoseq/core/product"
	"oligoseq/pkg/api"
)

func strptr(s string) *string { return &s }

func TestMarshalJSONFieldNames(t *testing.T) {
	s, err := New(guide, Options{Label: strptr("EMX1"), Product: product.SGRNAKit, Modification: "standard"})
	require.NoError(t, err)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, k := range []string{
		"customer_label", "customer_sequence", "four_letter_sequence", "modified",
		"product_sequence", "sequence_encoding", "sequence_length_range",
		"sequence_length", "sequence_type",
	} {
		assert.Contains(t, m, k)
	}
	assert.Equal(t, "EMX1", m["customer_label"])
	assert.Equal(t, guide, m["customer_sequence"])
	assert.Equal(t, true, m["modified"])
	assert.Equal(t, "rna", m["sequence_encoding"])
	assert.Equal(t, "slr", m["sequence_type"])
	assert.Equal(t, float64(100), m["sequence_length"])
	assert.Equal(t, "standard", m["modification"])
}

func TestNullLabel(t *testing.T) {
	s, err := New(guide, Options{})
	require.NoError(t, err)
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"customer_label":null`)
	assert.NotContains(t, string(raw), `"modification"`)
}

func TestJSONRoundTrip(t *testing.T) {
	orig, err := New(guide, Options{Label: strptr("g1"), Product: product.SGRNAKit, Modification: "ultra"})
	require.NoError(t, err)
	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	back, err := FromJSON(raw, Options{Product: product.SGRNAKit})
	require.NoError(t, err)
	assert.Equal(t, orig.Raw(), back.Raw())
	assert.Equal(t, grammar.Ultra, back.Modification())
	assert.Equal(t, "g1", *back.Label())

	a, err := orig.FourLetter()
	require.NoError(t, err)
	b, err := back.FourLetter()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFromJSONMissingKeys(t *testing.T) {
	full := map[string]any{
		"customer_sequence": guide,
		"sequence_encoding": "rna",
		"sequence_type":     "slr",
		"modified":          false,
		"customer_label":    nil,
	}
	for _, k := range api.RequiredKeys {
		doc := map[string]any{}
		for kk, v := range full {
			if kk != k {
				doc[kk] = v
			}
		}
		raw, err := json.Marshal(doc)
		require.NoError(t, err)
		_, err = FromJSON(raw, Options{})
		require.Error(t, err, k)
		assert.ErrorIs(t, err, grammar.ErrValidation)
		assert.Contains(t, err.Error(), "missing key "+k)
	}

	raw, err := json.Marshal(full)
	require.NoError(t, err)
	s, err := FromJSON(raw, Options{})
	require.NoError(t, err)
	assert.Nil(t, s.Label())
}

func TestFromJSONLegacyModified(t *testing.T) {
	doc := `{"customer_sequence":"ACGUACGUACGU","sequence_encoding":"simple_rna","sequence_type":"SLR","modified":true,"customer_label":"x"}`
	s, err := FromJSON([]byte(doc), Options{})
	require.NoError(t, err)
	assert.Equal(t, grammar.Standard, s.Modification())
	assert.Equal(t, grammar.RNA, s.Encoding())
}

func TestFromJSONRequiresEncodingValue(t *testing.T) {
	doc := `{"customer_sequence":"ACGUACGUACGU","sequence_encoding":"","sequence_type":"slr","modified":false,"customer_label":null}`
	_, err := FromJSON([]byte(doc), Options{})
	assert.ErrorIs(t, err, grammar.ErrValidation)
}

func TestFromJSONContradiction(t *testing.T) {
	doc := `{"customer_sequence":"ACGUACGUACGU","sequence_encoding":"rna","sequence_type":"slr","modified":false,"modification":"standard","customer_label":null}`
	_, err := FromJSON([]byte(doc), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contradicts")
}

func TestFromJSONMalformed(t *testing.T) {
	_, err := FromJSON([]byte("{"), Options{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, grammar.ErrValidation)
}

func TestBSONRoundTrip(t *testing.T) {
	orig, err := New("GATTACAGATTACA", Options{Modification: "standard"})
	require.NoError(t, err)
	raw, err := orig.ToBSON()
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Contains(t, m, "customer_label")
	assert.Nil(t, m["customer_label"])

	back, err := FromBSON(raw, Options{})
	require.NoError(t, err)
	assert.Equal(t, orig.Raw(), back.Raw())
	assert.Equal(t, grammar.DNA, back.Encoding())
	assert.True(t, back.Modified())
}

func TestFromBSONMissingKey(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"customer_sequence": guide,
		"sequence_encoding": "rna",
		"sequence_type":     "slr",
		"customer_label":    nil,
	})
	require.NoError(t, err)
	_, err = FromBSON(raw, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing key modified")
}
