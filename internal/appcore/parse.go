package appcore

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"oligoseq/internal/clibase"
	"oligoseq/internal/version"
	"oligoseq/internal/writers"
)

// Flush finishes outw and maps the result to an exit code; broken pipes
// count as success.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

// HandleParse deals with help, examples, version and usage errors after
// ParseArgs. done is false when the tool should go on and run.
func HandleParse(name string, fs *flag.FlagSet, err error, showVersion bool, stdout, stderr io.Writer, examples func(io.Writer)) (code int, done bool) {
	outw := bufio.NewWriter(stdout)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		examples(outw)
		return Flush(outw, stderr, 0), true
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, 0), true
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, 2), true
	case showVersion:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return Flush(outw, stderr, 0), true
	}
	return 0, false
}
