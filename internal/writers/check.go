package writers

import (
	"fmt"
	"io"

	"oligoseq/internal/output"
	"oligoseq/pkg/api"
)

// StartCheckWriter streams check results as text rows or JSON lines (jsonl).
func StartCheckWriter(out io.Writer, format string, header bool, bufSize int) (chan<- api.CheckV1, <-chan error) {
	switch format {
	case "jsonl":
		return StartCheckJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.CheckV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if format == "text" {
			hdr := ""
			if header {
				hdr = output.CheckTSVHeader
			}
			err = output.StreamText(out, in, hdr, output.FormatCheckTSV)
		} else {
			err = fmt.Errorf("unknown check format %q", format)
		}
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
