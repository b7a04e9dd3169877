// pkg/api/sequence_v1.go
package api

// SequenceV1 is the stable JSON/BSON schema for a stored sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SequenceV1 struct {
	CustomerLabel       *string `json:"customer_label" bson:"customer_label"`
	CustomerSequence    string  `json:"customer_sequence" bson:"customer_sequence"`
	FourLetterSequence  string  `json:"four_letter_sequence" bson:"four_letter_sequence"`
	Modified            bool    `json:"modified" bson:"modified"`
	ProductSequence     string  `json:"product_sequence" bson:"product_sequence"`
	SequenceEncoding    string  `json:"sequence_encoding" bson:"sequence_encoding"` // "custom" | "dna" | "rna"
	SequenceLengthRange string  `json:"sequence_length_range" bson:"sequence_length_range"`
	SequenceLength      int     `json:"sequence_length" bson:"sequence_length"`
	SequenceType        string  `json:"sequence_type" bson:"sequence_type"` // "slr" | "flr"

	// Which protocol produced FourLetterSequence; absent on records written
	// before it existed, where Modified=true means "standard".
	Modification string `json:"modification,omitempty" bson:"modification,omitempty"`
}

// RequiredKeys must be present in a stored record for it to load.
var RequiredKeys = []string{
	"customer_sequence",
	"sequence_encoding",
	"sequence_type",
	"modified",
	"customer_label",
}
