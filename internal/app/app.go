package app

import (
	"context"
	"fmt"
	"io"

	"oligoseq/core/chem"
	"oligoseq/core/product"
	"oligoseq/core/sequence"
	"oligoseq/internal/appcore"
	"oligoseq/internal/cli"
	"oligoseq/internal/input"
	"oligoseq/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("oligoseq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if code, done := appcore.HandleParse("oligoseq", fs, err, opts.Version, stdout, stderr, cli.PrintExamples); done {
		return code
	}

	var suffixes product.Suffixes = product.Default()
	if opts.ProductsFile != "" {
		tbl, err := product.LoadYAML(opts.ProductsFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		suffixes = tbl
	}

	b := builder{opts: opts, engine: chem.Reference{}, suffixes: suffixes}
	coreOpts := appcore.Options{
		Sources: input.Sources{
			Sequences:   opts.Sequences,
			OrderFiles:  opts.OrderFiles,
			FastaFiles:  opts.FastaFiles,
			RecordFiles: opts.RecordFiles,
		},
		Quiet:     opts.Quiet,
		KeepGoing: opts.KeepGoing,
	}
	writer := appcore.RecordWriterFactory{Format: opts.Output, Header: opts.Header}
	return appcore.Run[api.SequenceV1](parent, stdout, stderr, coreOpts, b.visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// builder turns one input item into a wire record.
type builder struct {
	opts     cli.Options
	engine   chem.Engine
	suffixes product.Suffixes
}

func (b builder) visit(it input.Item) (api.SequenceV1, error) {
	seq, err := b.build(it)
	if err != nil {
		return api.SequenceV1{}, err
	}
	return seq.Record()
}

func (b builder) build(it input.Item) (*sequence.Sequence, error) {
	opt := sequence.Options{
		Encoding:     b.opts.Encoding,
		Type:         b.opts.Type,
		Modification: b.opts.Modification,
		Product:      b.opts.Product,
		Engine:       b.engine,
		Suffixes:     b.suffixes,
	}
	if s := it.Stored; s != nil {
		if s.BSON {
			return sequence.FromBSON(s.Data, opt)
		}
		return sequence.FromJSON(s.Data, opt)
	}

	o := it.Order
	opt.Label = o.Label
	opt.Encoding = pick(o.Encoding, opt.Encoding)
	opt.Type = pick(o.Type, opt.Type)
	opt.Modification = pick(o.Modification, opt.Modification)
	opt.Product = pick(o.Product, opt.Product)
	return sequence.New(o.Raw, opt)
}

func pick(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
