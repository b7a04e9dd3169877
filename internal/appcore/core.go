package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"oligoseq/internal/cmdutil"
	"oligoseq/internal/input"
	"oligoseq/internal/writers"
)

type Options struct {
	Sources   input.Sources
	Quiet     bool
	KeepGoing bool
	BufSize   int
}

type VisitorFunc[T any] func(input.Item) (out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// errItem marks a per-item failure that stopped the run.
type errItem struct {
	source string
	err    error
}

func (e *errItem) Error() string { return e.source + ": " + e.err.Error() }
func (e *errItem) Unwrap() error { return e.err }

// Run streams every input through visit into the writer.
// Exit codes: 0 ok, 1 item failures, 2 unreadable input, 3 output error,
// 130 cancelled.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	bufSize := o.BufSize
	if bufSize <= 0 {
		bufSize = 64
	}
	inCh, writeErr := wf.Start(outw, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	_, skipped, perr := cmdutil.RunStream[T](
		ctx,
		o.Sources,
		visit,
		func(it input.Item, err error) error {
			if !o.KeepGoing {
				return &errItem{source: it.Source(), err: err}
			}
			cmdutil.Warnf(stderr, o.Quiet, "%s: %v", it.Source(), err)
			return nil
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		var ie *errItem
		switch {
		case errors.Is(perr, context.Canceled):
			return 130
		case errors.As(perr, &ie):
			fmt.Fprintln(stderr, "error:", perr)
			return 1
		}
		fmt.Fprintln(stderr, "error:", perr)
		return 2
	}
	if skipped > 0 {
		cmdutil.Warnf(stderr, o.Quiet, "%d input(s) skipped", skipped)
		return 1
	}
	return 0
}
