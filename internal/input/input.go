// Package input turns order sheets, FASTA files and stored record files
// into work items for the applications.
package input

import (
	"context"
	"fmt"
	"strings"

	"oligoseq/core/fasta"
)

// Order is one customer sequence plus the per-order overrides. Empty
// strings mean "not given" (infer or use the command-line default).
type Order struct {
	Source       string // where it came from, for messages: path:line or flag position
	Raw          string
	Label        *string
	Encoding     string
	Type         string
	Modification string
	Product      string
}

// Inline wraps --sequence values. Labels default to S1, S2, ...
func Inline(seqs []string) []Order {
	out := make([]Order, 0, len(seqs))
	for i, arg := range seqs {
		o := Order{Source: fmt.Sprintf("--sequence #%d", i+1), Raw: arg}
		if k := strings.IndexByte(arg, ':'); k >= 0 {
			o.Raw = arg[k+1:]
			if id := strings.TrimSpace(arg[:k]); id != "" {
				o.Label = &id
			}
		}
		if o.Label == nil {
			id := fmt.Sprintf("S%d", i+1)
			o.Label = &id
		}
		out = append(out, o)
	}
	return out
}

// ReadFASTA emits one Order per FASTA record. The record ID is the label;
// key=value words in the header description set encoding, type,
// modification and product. Other words are free text and ignored.
func ReadFASTA(ctx context.Context, path string, emit func(Order) error) error {
	return fasta.ReadPathCtx(ctx, path, func(r fasta.Record) error {
		id := r.ID
		o := Order{Source: fmt.Sprintf("%s:%d", path, r.Line), Raw: r.Seq, Label: &id}
		for _, w := range strings.Fields(r.Desc) {
			if k, v, ok := strings.Cut(w, "="); ok {
				o.set(k, v)
			}
		}
		return emit(o)
	})
}

// set stores a per-order field and reports whether key is one.
func (o *Order) set(key, val string) bool {
	if val == "-" {
		val = ""
	}
	switch strings.ToLower(key) {
	case "encoding":
		o.Encoding = val
	case "type", "sequence_type":
		o.Type = val
	case "modification", "mod":
		o.Modification = val
	case "product":
		o.Product = val
	default:
		return false
	}
	return true
}
