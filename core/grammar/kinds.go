package grammar

import "strings"

// Encoding selects the base alphabet of a sequence.
type Encoding string

const (
	Custom Encoding = "custom"
	DNA    Encoding = "dna"
	RNA    Encoding = "rna"
)

// RepresentationType is the grammar a raw sequence is written in.
type RepresentationType string

const (
	SingleLetter RepresentationType = "slr"
	FourLetter   RepresentationType = "flr"
)

// Modification names a stabilization protocol.
type Modification string

const (
	NoModification Modification = "none"
	Standard       Modification = "standard"
	Ultra          Modification = "ultra"
)

// ParseEncoding accepts custom/dna/rna in any case plus the legacy
// simple_dna and simple_rna aliases.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case string(Custom):
		return Custom, nil
	case string(DNA), "simple_dna":
		return DNA, nil
	case string(RNA), "simple_rna":
		return RNA, nil
	}
	return "", Invalidf("encoding %s is not supported", s)
}

func ParseType(s string) (RepresentationType, error) {
	switch t := RepresentationType(strings.ToLower(s)); t {
	case SingleLetter, FourLetter:
		return t, nil
	}
	return "", Invalidf("sequence_type %s is not supported", s)
}

// ParseModification treats the empty string as none.
func ParseModification(s string) (Modification, error) {
	if s == "" {
		return NoModification, nil
	}
	switch m := Modification(strings.ToLower(s)); m {
	case NoModification, Standard, Ultra:
		return m, nil
	}
	return "", Invalidf("modification %s is not supported", s)
}
