package writers

import (
	"encoding/json"
	"io"

	"oligoseq/internal/jsonlutil"
	"oligoseq/pkg/api"
)

// StartRecordJSONLWriter streams each record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- api.SequenceV1, <-chan error) {
	return jsonlutil.Start[api.SequenceV1](out, bufSize,
		func(enc *json.Encoder, r api.SequenceV1) error { return enc.Encode(r) },
		IsBrokenPipe,
	)
}

// StartCheckJSONLWriter streams oligoseq-check results as JSON lines.
func StartCheckJSONLWriter(out io.Writer, bufSize int) (chan<- api.CheckV1, <-chan error) {
	return jsonlutil.Start[api.CheckV1](out, bufSize,
		func(enc *json.Encoder, c api.CheckV1) error { return enc.Encode(c) },
		IsBrokenPipe,
	)
}
