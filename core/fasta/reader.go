package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
)

// Record is one FASTA entry. Sequence lines are joined with their
// surrounding whitespace trimmed; inner spaces are kept for the validators.
type Record struct {
	ID   string
	Desc string // header text after the ID
	Seq  string
	Line int // header line number (1-based)
}

// ReadPathCtx opens path ("-" is stdin, gzip is detected) and emits each
// record in file order. Cancellation via ctx is checked between lines.
// emit may return an error to stop early; it is returned unchanged.
func ReadPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur  Record
		have bool
		seq  bytes.Buffer
		ln   int
	)
	flush := func() error {
		if !have {
			return nil
		}
		cur.Seq = seq.String()
		seq.Reset()
		return emit(cur)
	}

	for sc.Scan() {
		ln++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := splitHeader(line[1:])
			cur = Record{ID: id, Desc: desc, Line: ln}
			have = true
			continue
		}
		if !have {
			return fmt.Errorf("%s:%d sequence data before first header", path, ln)
		}
		seq.Write(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadPath collects every record with a background context.
func ReadPath(path string) ([]Record, error) {
	var out []Record
	err := ReadPathCtx(context.Background(), path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func splitHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
