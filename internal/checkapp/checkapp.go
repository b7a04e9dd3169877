// Package checkapp implements oligoseq-check: infer and validate each input
// and report one row per input without building records.
package checkapp

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"oligoseq/core/grammar"
	"oligoseq/core/infer"
	"oligoseq/core/sequence"
	"oligoseq/core/validate"
	"oligoseq/internal/appcore"
	"oligoseq/internal/checkcli"
	"oligoseq/internal/input"
	"oligoseq/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := checkcli.NewFlagSet("oligoseq-check")
	fs.SetOutput(io.Discard)

	opts, err := checkcli.ParseArgs(fs, argv)
	if code, done := appcore.HandleParse("oligoseq-check", fs, err, opts.Version, stdout, stderr, checkcli.PrintExamples); done {
		return code
	}

	c := checker{encoding: opts.Encoding, typ: opts.Type, normalize: !opts.KeepCase}
	coreOpts := appcore.Options{
		Sources: input.Sources{
			Sequences:   opts.Sequences,
			OrderFiles:  opts.OrderFiles,
			FastaFiles:  opts.FastaFiles,
			RecordFiles: opts.RecordFiles,
		},
		Quiet: opts.Quiet,
	}
	code := appcore.Run[api.CheckV1](parent, stdout, stderr, coreOpts, c.visit, appcore.CheckWriterFactory{Format: opts.Output, Header: opts.Header})
	if code == 0 && opts.FailOnInvalid && c.invalid > 0 {
		return 1
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

type checker struct {
	encoding, typ string
	normalize     bool
	invalid       int
}

func (c *checker) visit(it input.Item) (api.CheckV1, error) {
	var row api.CheckV1
	if it.Stored != nil {
		row = checkStored(*it.Stored)
	} else {
		row = c.checkOrder(*it.Order)
	}
	if !row.Valid {
		c.invalid++
	}
	return row, nil
}

func (c *checker) checkOrder(o input.Order) api.CheckV1 {
	row := api.CheckV1{Source: o.Source}
	if o.Label != nil {
		row.Label = *o.Label
	}
	fail := func(err error) api.CheckV1 {
		row.Error = err.Error()
		return row
	}

	typ, err := resolve(o.Type, c.typ, o.Raw, grammar.ParseType, infer.Type)
	if err != nil {
		return fail(err)
	}
	row.SequenceType = string(typ)
	enc, err := resolve(o.Encoding, c.encoding, o.Raw, grammar.ParseEncoding, infer.Encoding)
	if err != nil {
		return fail(err)
	}
	row.SequenceEncoding = string(enc)

	if strings.TrimSpace(o.Raw) != "" {
		switch typ {
		case grammar.FourLetter:
			row.Normalized, row.Length, err = validate.FourLetterCount(o.Raw, enc, c.normalize)
		default:
			row.Normalized, err = validate.SingleLetter(o.Raw, enc, c.normalize)
			row.Length = utf8.RuneCountInString(row.Normalized)
		}
		if err != nil {
			row.Normalized, row.Length = "", 0
			return fail(err)
		}
	}

	// per-order modification and product rules, exactly as oligoseq builds them
	if _, err := sequence.New(o.Raw, sequence.Options{
		Encoding:     string(enc),
		Type:         string(typ),
		Modification: o.Modification,
		Product:      o.Product,
		Label:        o.Label,
	}); err != nil {
		row.Normalized, row.Length = "", 0
		return fail(err)
	}
	row.Valid = true
	return row
}

// resolve parses the per-order value, then the command-line default, and
// infers from raw when neither is set.
func resolve[T any](own, def, raw string, parse func(string) (T, error), guess func(string) infer.Result[T]) (T, error) {
	switch {
	case own != "":
		return parse(own)
	case def != "":
		return parse(def)
	}
	return guess(raw).Unwrap()
}

// checkStored re-validates a stored record with its own encoding and type.
func checkStored(s input.Stored) api.CheckV1 {
	row := api.CheckV1{Source: s.Source}
	var (
		seq *sequence.Sequence
		err error
	)
	if s.BSON {
		seq, err = sequence.FromBSON(s.Data, sequence.Options{})
	} else {
		seq, err = sequence.FromJSON(s.Data, sequence.Options{})
	}
	if err != nil {
		row.Error = err.Error()
		return row
	}
	if l := seq.Label(); l != nil {
		row.Label = *l
	}
	row.SequenceType = string(seq.Type())
	row.SequenceEncoding = string(seq.Encoding())
	row.Length = seq.Length()
	row.Normalized = seq.Raw()
	row.Valid = true
	return row
}
