package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"oligoseq/core/grammar"
	"oligoseq/internal/cliutil"
)

// Common holds CLI fields shared by oligoseq and oligoseq-check.
type Common struct {
	// Input
	Sequences   []string // inline "label:SEQ" or "SEQ"
	OrderFiles  []string
	FastaFiles  []string
	RecordFiles []string

	// Defaults applied when an order does not say otherwise
	Encoding string
	Type     string

	// Output
	Output string
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// HasInput reports whether any input source was given.
func (c *Common) HasInput() bool {
	return len(c.Sequences)+len(c.OrderFiles)+len(c.FastaFiles)+len(c.RecordFiles) > 0
}

// sliceValue appends each value to a *[]string (for repeatable flags)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	seqVal := &sliceValue{dst: &c.Sequences}
	fs.Var(seqVal, "sequence", "inline sequence, optionally label:SEQ (repeatable)")
	fs.Var(seqVal, "s", "alias of --sequence")
	fs.Var(&sliceValue{dst: &c.OrderFiles}, "orders", "TSV order sheet (repeatable)")
	fs.Var(&sliceValue{dst: &c.FastaFiles}, "fasta", "FASTA file (repeatable) or '-'")
	fs.Var(&sliceValue{dst: &c.RecordFiles}, "records", "stored records, .jsonl, .json or .bson (repeatable)")

	// Grammar
	fs.StringVar(&c.Encoding, "encoding", "", "default encoding: custom | dna | rna (empty = infer)")
	fs.StringVar(&c.Encoding, "e", "", "alias of --encoding")
	fs.StringVar(&c.Type, "type", "", "default sequence type: slr | flr (empty = infer)")
	fs.StringVar(&c.Type, "t", "", "alias of --type")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output format [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, sorts positionals by file kind, then runs
// shared validation against the tool's output formats.
func AfterParse(c *Common, noHeader *bool, posArgs []string, formats []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		for _, p := range exp {
			switch cliutil.KindOf(p) {
			case cliutil.KindOrders:
				c.OrderFiles = append(c.OrderFiles, p)
			case cliutil.KindRecords:
				c.RecordFiles = append(c.RecordFiles, p)
			default:
				c.FastaFiles = append(c.FastaFiles, p)
			}
		}
	}
	return Validate(c, formats)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats []string) error {
	if !c.HasInput() {
		return errors.New("provide --sequence, --orders, --fasta, --records or input files")
	}
	if c.Encoding != "" {
		if _, err := grammar.ParseEncoding(c.Encoding); err != nil {
			return fmt.Errorf("--encoding: %v", err)
		}
	}
	if c.Type != "" {
		if _, err := grammar.ParseType(c.Type); err != nil {
			return fmt.Errorf("--type: %v", err)
		}
	}
	stdin := 0
	for _, f := range c.FastaFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be given only once")
	}
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
}
