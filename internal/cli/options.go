package cli

import (
	"flag"
	"fmt"
	"io"

	"oligoseq/core/grammar"
	"oligoseq/internal/clibase"
	"oligoseq/internal/cliutil"
)

// Options holds all oligoseq flags and arguments.
type Options struct {
	clibase.Common

	// Defaults applied when an order does not say otherwise
	Modification string
	Product      string
	ProductsFile string // YAML product-suffix table; empty = built-in

	KeepGoing bool
}

// Formats are the record output formats oligoseq accepts.
var Formats = []string{"text", "json", "jsonl", "bson"}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "synthesis sequence records", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -s guide:ACGUACGUACGUACGUACGU\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] orders.tsv guides.fa stored.jsonl\n", name)

		_, _ = fmt.Fprintln(out, "\nRecords:")
		_, _ = fmt.Fprintf(out, "  -m, --modification string   Default modification: none | standard | ultra [%s]\n", def("modification"))
		_, _ = fmt.Fprintln(out, "  -p, --product string        Default product slug; its suffix is appended to slr sequences")
		_, _ = fmt.Fprintln(out, "      --products-file file    YAML product table (products: {slug: suffix}) replacing the built-in one")
		_, _ = fmt.Fprintf(out, "  -k, --keep-going            Warn about invalid orders and continue (exit 1 at the end) [%s]\n", def("keep-going"))
		_, _ = fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | bson [%s]\n", def("output"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for oligoseq.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "oligoseq", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Build an sgRNA kit record with standard end modifications:")
		_, _ = fmt.Fprintln(w, "  oligoseq -s g1:ACGUACGUACGUACGUACGU --product sgrna-kit -m standard -o json")
		_, _ = fmt.Fprintln(w, "\nRe-emit stored records as TSV, skipping broken ones:")
		_, _ = fmt.Fprintln(w, "  oligoseq --keep-going dump.bson")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Modification, "modification", "none", "default modification: none | standard | ultra [none]")
	fs.StringVar(&o.Modification, "m", "none", "alias of --modification")
	fs.StringVar(&o.Product, "product", "", "default product slug")
	fs.StringVar(&o.Product, "p", "", "alias of --product")
	fs.StringVar(&o.ProductsFile, "products-file", "", "YAML product-suffix table")
	fs.BoolVar(&o.KeepGoing, "keep-going", false, "warn about invalid orders and continue [false]")
	fs.BoolVar(&o.KeepGoing, "k", false, "alias of --keep-going")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, noHeader, posArgs, Formats); err != nil {
		return o, err
	}
	if _, err := grammar.ParseModification(o.Modification); err != nil {
		return o, fmt.Errorf("--modification: %v", err)
	}
	o.Common = c
	return o, nil
}

