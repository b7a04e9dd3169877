package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"oligoseq/internal/output"
	"oligoseq/pkg/api"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe,
// which happens when a consumer such as `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Format handlers. Batch formats see every record at once; streaming
// formats see them one at a time as they are produced.
var (
	batchWriters  = map[string]func(w io.Writer, recs []api.SequenceV1, header bool) error{}
	streamWriters = map[string]func(w io.Writer, in <-chan api.SequenceV1, header bool) error{}
)

// RegisterBatch and RegisterStream are last-wins.
func RegisterBatch(format string, fn func(io.Writer, []api.SequenceV1, bool) error) {
	batchWriters[format] = fn
}
func RegisterStream(format string, fn func(io.Writer, <-chan api.SequenceV1, bool) error) {
	streamWriters[format] = fn
}

// Formats lists every registered record format.
func Formats() []string {
	var out []string
	for f := range batchWriters {
		out = append(out, f)
	}
	for f := range streamWriters {
		out = append(out, f)
	}
	return out
}

func init() {
	RegisterBatch("json", func(w io.Writer, recs []api.SequenceV1, _ bool) error {
		return output.WriteJSON(w, recs)
	})
	RegisterStream("text", func(w io.Writer, in <-chan api.SequenceV1, header bool) error {
		hdr := ""
		if header {
			hdr = output.TSVHeader
		}
		return output.StreamText(w, in, hdr, output.FormatRecordTSV)
	})
	RegisterStream("bson", func(w io.Writer, in <-chan api.SequenceV1, _ bool) error {
		for r := range in {
			if err := output.WriteBSON(w, r); err != nil {
				return err
			}
		}
		return nil
	})
}

// StartRecordWriter spins up a writer goroutine for format. Close the
// returned channel and read the error channel once to finish.
func StartRecordWriter(out io.Writer, format string, header bool, bufSize int) (chan<- api.SequenceV1, <-chan error) {
	if format == "jsonl" {
		return StartRecordJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.SequenceV1, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if fn, ok := streamWriters[format]; ok {
			err = fn(out, in, header)
		} else if fn, ok := batchWriters[format]; ok {
			var buf []api.SequenceV1
			for r := range in {
				buf = append(buf, r)
			}
			err = fn(out, buf, header)
		} else {
			err = fmt.Errorf("unknown record format %q (no writer registered)", format)
		}
		// keep draining so senders never block on a failed writer
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
