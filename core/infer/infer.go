// Package infer guesses the encoding and representation type of
// unannotated sequence text. Both guesses are best-effort and report an
// ambiguous input as a failed Result rather than an error return.
package infer

import (
	"strings"
	"unicode"

	"oligoseq/core/grammar"
)

// Result is either a Value (Reason == "") or a failure Reason.
type Result[T any] struct {
	Value  T
	Reason string
}

func (r Result[T]) OK() bool { return r.Reason == "" }

// Err converts a failed result into a validation error; nil on success.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &grammar.ValidationError{Msg: r.Reason}
}

// Unwrap returns (Value, Err()) for callers that just want Go-style returns.
func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err() }

func ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func fail[T any](reason string) Result[T] { return Result[T]{Reason: reason} }

// Encoding counts RNA-alphabet and DNA-alphabet characters in the cleaned,
// upper-cased text. The larger count wins; ties and empty input go to RNA.
func Encoding(raw string) Result[grammar.Encoding] {
	s := strings.ToUpper(grammar.Clean(raw))
	if s == "" {
		return ok(grammar.RNA)
	}
	var rna, dna int
	for _, r := range s {
		if grammar.IsRNABase(r) {
			rna++
		}
		if grammar.IsDNABase(r) {
			dna++
		}
	}
	switch {
	case rna == 0 && dna == 0:
		return fail[grammar.Encoding]("unable to determine encoding from sequence: " + s)
	case dna > rna:
		return ok(grammar.DNA)
	default:
		return ok(grammar.RNA)
	}
}

// Type reports FourLetter as soon as a modifier character shows up.
// Otherwise the text must consist of bases only, and at least one.
func Type(raw string) Result[grammar.RepresentationType] {
	s := grammar.Clean(raw)
	if s == "" {
		return ok(grammar.SingleLetter)
	}
	for _, r := range s {
		if grammar.IsModifier(unicode.ToLower(r)) {
			return ok(grammar.FourLetter)
		}
	}
	var bases, other int
	for _, r := range s {
		if grammar.IsBase(unicode.ToUpper(r)) {
			bases++
		} else {
			other++
		}
	}
	if other > 0 || bases == 0 {
		return fail[grammar.RepresentationType]("unable to determine sequence_type from sequence: " + s)
	}
	return ok(grammar.SingleLetter)
}
