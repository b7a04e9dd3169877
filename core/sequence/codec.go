package sequence

import (
	"encoding/json"
	"fmt"

	"gopkg.in/mgo.v2/bson"

	"oligoseq/core/grammar"
	"oligoseq/pkg/api"
)

// Record renders the stored/wire form.
func (s *Sequence) Record() (api.SequenceV1, error) {
	flr, err := s.FourLetter()
	if err != nil {
		return api.SequenceV1{}, err
	}
	rec := api.SequenceV1{
		CustomerLabel:       s.label,
		CustomerSequence:    s.raw,
		FourLetterSequence:  flr,
		Modified:            s.Modified(),
		ProductSequence:     s.suffix,
		SequenceEncoding:    string(s.enc),
		SequenceLengthRange: s.LengthRange(),
		SequenceLength:      s.Length(),
		SequenceType:        string(s.typ),
	}
	if s.Modified() {
		rec.Modification = string(s.mod)
	}
	return rec, nil
}

func (s *Sequence) MarshalJSON() ([]byte, error) {
	rec, err := s.Record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// ToBSON encodes the record as one BSON document.
func (s *Sequence) ToBSON() ([]byte, error) {
	rec, err := s.Record()
	if err != nil {
		return nil, err
	}
	return bson.Marshal(rec)
}

// FromRecord rebuilds a Sequence from a stored record. Encoding and type
// must be present; everything is re-validated. opt supplies the product
// and collaborators; its Encoding/Type/Modification/Label are ignored.
func FromRecord(rec api.SequenceV1, opt Options) (*Sequence, error) {
	if _, err := grammar.ParseEncoding(rec.SequenceEncoding); err != nil {
		return nil, err
	}
	if _, err := grammar.ParseType(rec.SequenceType); err != nil {
		return nil, err
	}
	mod, err := storedModification(rec)
	if err != nil {
		return nil, err
	}
	opt.Encoding = rec.SequenceEncoding
	opt.Type = rec.SequenceType
	opt.Modification = string(mod)
	opt.Label = rec.CustomerLabel
	return New(rec.CustomerSequence, opt)
}

func storedModification(rec api.SequenceV1) (grammar.Modification, error) {
	if rec.Modification == "" {
		if rec.Modified {
			return grammar.Standard, nil
		}
		return grammar.NoModification, nil
	}
	mod, err := grammar.ParseModification(rec.Modification)
	if err != nil {
		return "", err
	}
	if (mod != grammar.NoModification) != rec.Modified {
		return "", grammar.Invalidf("modification %s contradicts modified=%t", mod, rec.Modified)
	}
	return mod, nil
}

// FromJSON loads one JSON record. Every api.RequiredKeys entry must be present.
func FromJSON(data []byte, opt Options) (*Sequence, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("unable to load sequence from json: %w", err)
	}
	if err := requireKeys(func(k string) bool { _, ok := keys[k]; return ok }); err != nil {
		return nil, err
	}
	var rec api.SequenceV1
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unable to load sequence from json: %w", err)
	}
	return FromRecord(rec, opt)
}

// FromBSON loads one BSON document with the same key rules as FromJSON.
func FromBSON(data []byte, opt Options) (*Sequence, error) {
	var keys bson.M
	if err := bson.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("unable to load sequence from bson: %w", err)
	}
	if err := requireKeys(func(k string) bool { _, ok := keys[k]; return ok }); err != nil {
		return nil, err
	}
	var rec api.SequenceV1
	if err := bson.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unable to load sequence from bson: %w", err)
	}
	return FromRecord(rec, opt)
}

func requireKeys(has func(string) bool) error {
	for _, k := range api.RequiredKeys {
		if !has(k) {
			return grammar.Invalidf("unable to load sequence, missing key %s", k)
		}
	}
	return nil
}
