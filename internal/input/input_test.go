package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/mgo.v2/bson"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestInlineLabels(t *testing.T) {
	got := Inline([]string{"EMX1:ACGU ACGU AC", "GATTACAGATTACA"})
	if len(got) != 2 {
		t.Fatalf("want 2 orders, got %d", len(got))
	}
	if *got[0].Label != "EMX1" || got[0].Raw != "ACGU ACGU AC" {
		t.Errorf("bad labelled order %+v", got[0])
	}
	if *got[1].Label != "S2" || got[1].Raw != "GATTACAGATTACA" || got[1].Source != "--sequence #2" {
		t.Errorf("bad unlabelled order %+v", got[1])
	}
}

func TestLoadOrdersTSV(t *testing.T) {
	p := write(t, "orders.tsv", "# label\tseq\n"+
		"g1\tACGU ACGUAC\n"+
		"\n"+
		"-\t-Gdo-Ado-Tdo-Tdo-Ado-Cdo-Ado-Gdo-Ado-Td\tdna\tflr\tstandard\n"+
		"g3\tACGUACGUACGUACGUACGU\t-\t-\t-\tsgrna-kit\n")
	got, err := LoadOrdersTSV(p)
	if err != nil {
		t.Fatalf("LoadOrdersTSV: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 orders, got %+v", got)
	}
	if *got[0].Label != "g1" || got[0].Raw != "ACGU ACGUAC" || got[0].Encoding != "" {
		t.Errorf("order 1: %+v", got[0])
	}
	if got[1].Label != nil || got[1].Encoding != "dna" || got[1].Type != "flr" || got[1].Modification != "standard" {
		t.Errorf("order 2: %+v", got[1])
	}
	if got[2].Product != "sgrna-kit" || got[2].Modification != "" || got[2].Source != p+":5" {
		t.Errorf("order 3: %+v", got[2])
	}
}

func TestLoadOrdersTSVBadFieldCount(t *testing.T) {
	p := write(t, "orders.tsv", "onlyone\n")
	if _, err := LoadOrdersTSV(p); err == nil {
		t.Fatalf("expected field count error")
	}
}

func TestReadFASTAHeaderKeys(t *testing.T) {
	p := write(t, "g.fa", ">g1 modification=ultra product=sgrna-kit\nACGUACGUACGUACGUACGU\n>g2 encoding=dna\nGATTACAGATTACA\n")
	var got []Order
	err := ReadFASTA(context.Background(), p, func(o Order) error {
		got = append(got, o)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadFASTA: %v", err)
	}
	if len(got) != 2 || got[0].Modification != "ultra" || got[0].Product != "sgrna-kit" || *got[0].Label != "g1" {
		t.Fatalf("bad orders %+v", got)
	}
	if got[1].Encoding != "dna" || got[1].Source != p+":3" {
		t.Errorf("bad second order %+v", got[1])
	}
}

func TestReadFASTAIgnoresUnknownKeys(t *testing.T) {
	p := write(t, "g.fa", ">g1 colour=blue note=x product=sgrna-kit\nACGUACGUAC\n")
	var got []Order
	if err := ReadFASTA(context.Background(), p, func(o Order) error { got = append(got, o); return nil }); err != nil {
		t.Fatalf("ReadFASTA: %v", err)
	}
	if len(got) != 1 || got[0].Product != "sgrna-kit" || *got[0].Label != "g1" {
		t.Fatalf("bad order %+v", got)
	}
}

func TestReadRecordsJSONL(t *testing.T) {
	p := write(t, "r.jsonl", "{\"a\":1}\n\n{\"a\":2}\n")
	var got []Stored
	if err := ReadRecords(context.Background(), p, func(s Stored) error { got = append(got, s); return nil }); err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(got) != 2 || got[1].Source != p+":3" || got[1].BSON {
		t.Fatalf("bad records %+v", got)
	}
}

func TestReadRecordsJSONArray(t *testing.T) {
	p := write(t, "r.json", "\n  [\n  {\"a\": 1},\n  {\"a\": [2, 3]}\n]\n")
	var got []Stored
	if err := ReadRecords(context.Background(), p, func(s Stored) error { got = append(got, s); return nil }); err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(got) != 2 || got[0].Source != p+"#1" || string(got[1].Data) != `{"a": [2, 3]}` {
		t.Fatalf("bad records %+v", got)
	}

	bad := write(t, "bad.json", `[{"a": 1}, {"a":`)
	if err := ReadRecords(context.Background(), bad, func(Stored) error { return nil }); err == nil {
		t.Fatalf("expected error for truncated array")
	}
}

func TestReadRecordsBSON(t *testing.T) {
	var data []byte
	for _, v := range []string{"x", "y"} {
		doc, err := bson.Marshal(bson.M{"customer_sequence": v})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		data = append(data, doc...)
	}
	p := write(t, "r.bson", string(data))

	var got []Stored
	if err := ReadRecords(context.Background(), p, func(s Stored) error { got = append(got, s); return nil }); err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(got) != 2 || !got[0].BSON {
		t.Fatalf("bad records %+v", got)
	}
	var m bson.M
	if err := bson.Unmarshal(got[1].Data, &m); err != nil || m["customer_sequence"] != "y" {
		t.Fatalf("second doc: %v %v", m, err)
	}
}

func TestReadRecordsBSONTruncated(t *testing.T) {
	doc, _ := bson.Marshal(bson.M{"k": "v"})
	p := write(t, "r.bson", string(doc[:len(doc)-2]))
	if err := ReadRecords(context.Background(), p, func(Stored) error { return nil }); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestWalkOrder(t *testing.T) {
	tsv := write(t, "o.tsv", "t1\tACGUACGUACGU\n")
	fa := write(t, "g.fa", ">f1\nACGTACGTACGT\n")
	jl := write(t, "r.jsonl", `{"customer_sequence":"ACGU"}`+"\n")
	src := Sources{Sequences: []string{"ACGU"}, OrderFiles: []string{tsv}, FastaFiles: []string{fa}, RecordFiles: []string{jl}}

	var seen []string
	err := Walk(context.Background(), src, func(it Item) error {
		switch {
		case it.Order != nil:
			seen = append(seen, *it.Order.Label)
		case it.Stored != nil:
			seen = append(seen, "stored")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	want := []string{"S1", "t1", "f1", "stored"}
	if len(seen) != len(want) {
		t.Fatalf("got %v want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v want %v", seen, want)
		}
	}
}

func TestWalkMissingFile(t *testing.T) {
	err := Walk(context.Background(), Sources{OrderFiles: []string{filepath.Join(t.TempDir(), "nope.tsv")}}, func(Item) error { return nil })
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestWalkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Walk(ctx, Sources{Sequences: []string{"ACGU"}}, func(Item) error { return nil })
	if err != context.Canceled {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
