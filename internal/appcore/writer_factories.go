package appcore

import (
	"io"

	"oligoseq/internal/writers"
	"oligoseq/pkg/api"
)

// ---------------- Record writer ----------------

type RecordWriterFactory struct {
	Format string
	Header bool
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.SequenceV1, <-chan error) {
	return writers.StartRecordWriter(out, w.Format, w.Header, bufSize)
}

// ---------------- Check writer ----------------

type CheckWriterFactory struct {
	Format string
	Header bool
}

func (w CheckWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.CheckV1, <-chan error) {
	return writers.StartCheckWriter(out, w.Format, w.Header, bufSize)
}
