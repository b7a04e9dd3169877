// pkg/api/check_v1.go
package api

// CheckV1 is one line of oligoseq-check output.
type CheckV1 struct {
	Source           string `json:"source"`
	Label            string `json:"label,omitempty"`
	SequenceType     string `json:"sequence_type,omitempty"`     // inferred or given
	SequenceEncoding string `json:"sequence_encoding,omitempty"` // inferred or given
	Valid            bool   `json:"valid"`
	Length           int    `json:"length"` // nucleotides, 0 when invalid
	Normalized       string `json:"normalized,omitempty"`
	Error            string `json:"error,omitempty"`
}
