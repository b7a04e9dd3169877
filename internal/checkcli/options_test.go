package checkcli

import (
	"flag"
	"io"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseCheckFlags(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--keep-case", "-s", "ACGU", "--fail-on-invalid", "-o", "jsonl", "orders.tsv"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !o.KeepCase || !o.FailOnInvalid || o.Output != "jsonl" {
		t.Errorf("flags lost: %+v", o)
	}
	if len(o.Sequences) != 1 || len(o.OrderFiles) != 1 {
		t.Errorf("inputs lost: %+v", o.Common)
	}
}

func TestCheckRejectsBSONOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-s", "ACGU", "-o", "bson"}); err == nil {
		t.Fatalf("bson is not a check format")
	}
}
