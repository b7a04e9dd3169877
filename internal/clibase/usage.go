package clibase

import (
	"flag"
	"fmt"
	"io"

	"oligoseq/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, modification/product blocks, etc.).
func UsageCommon(fs *flag.FlagSet, name, blurb string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s: %s\n\n", name, blurb)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequence string       Inline sequence, optionally label:SEQ (repeatable)")
		fmt.Fprintln(out, "      --orders file           TSV order sheet: label seq [encoding] [type] [modification] [product]")
		fmt.Fprintln(out, "      --fasta file            FASTA file(s) or '-' for STDIN; header words key=value set per-order fields")
		fmt.Fprintln(out, "      --records file          Stored records (.jsonl lines, .json array or .bson)")
		fmt.Fprintln(out, "  Positional files are sorted by extension: .tsv/.txt orders, .jsonl/.json/.bson records, else FASTA.")

		fmt.Fprintln(out, "\nGrammar:")
		fmt.Fprintln(out, "  -e, --encoding string       Default encoding: custom | dna | rna (empty = infer)")
		fmt.Fprintln(out, "  -t, --type string           Default sequence type: slr | flr (empty = infer)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
