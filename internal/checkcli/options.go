package checkcli

import (
	"flag"
	"fmt"
	"io"

	"oligoseq/internal/clibase"
	"oligoseq/internal/cliutil"
)

type Options struct {
	clibase.Common

	// KeepCase reports valid sequences with their original case instead
	// of the canonical one (bases upper, other elements lower).
	KeepCase bool
	// FailOnInvalid makes the exit code 1 when any input is invalid.
	FailOnInvalid bool
}

// Formats are the report formats oligoseq-check accepts.
var Formats = []string{"text", "jsonl"}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "sequence grammar checker", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -s ACGUACGUACGU\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] orders.tsv guides.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nCheck:")
		_, _ = fmt.Fprintf(out, "      --keep-case             Report sequences in their original case (jsonl) [%s]\n", def("keep-case"))
		_, _ = fmt.Fprintf(out, "      --fail-on-invalid       Exit 1 when any input is invalid [%s]\n", def("fail-on-invalid"))
		_, _ = fmt.Fprintf(out, "  -o, --output string         Output: text | jsonl [%s]\n", def("output"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for oligoseq-check.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "oligoseq-check", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Infer and validate a few sequences:")
		_, _ = fmt.Fprintln(w, "  oligoseq-check -s ACGTACGTACGT -s -Gdo-Ado-Tdo-Tdo-Ado-Cdo-Ado-Gdo-Ado-Tr")
		_, _ = fmt.Fprintln(w, "\nGate a pipeline on an order sheet:")
		_, _ = fmt.Fprintln(w, "  oligoseq-check --fail-on-invalid -o jsonl orders.tsv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.BoolVar(&o.KeepCase, "keep-case", false, "report sequences in their original case [false]")
	fs.BoolVar(&o.FailOnInvalid, "fail-on-invalid", false, "exit 1 when any input is invalid [false]")

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
	o.Common = c
	return o, nil
}
