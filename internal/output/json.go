package output

import (
	"encoding/json"
	"io"

	"oligoseq/pkg/api"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes the records as one indented JSON array ("[]" when empty).
func WriteJSON(w io.Writer, list []api.SequenceV1) error {
	if list == nil {
		list = []api.SequenceV1{}
	}
	return EncodePretty(w, list)
}
