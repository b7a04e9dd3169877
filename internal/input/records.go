package input

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stored is one serialized record read back from disk.
type Stored struct {
	Source string
	Data   []byte
	BSON   bool
}

// maxDocSize matches the BSON document limit used by MongoDB.
const maxDocSize = 16 << 20

// IsBSONPath reports whether path names a BSON dump (by extension).
func IsBSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".bson")
}

// ReadRecords streams records from a JSON file (one object per line, or one
// array of objects as written by -o json) or a .bson file (concatenated
// documents).
func ReadRecords(ctx context.Context, path string, emit func(Stored) error) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()
	if IsBSONPath(path) {
		return readBSON(ctx, path, bufio.NewReader(fh), emit)
	}
	br := bufio.NewReader(fh)
	if startsArray(br) {
		return readJSONArray(ctx, path, br, emit)
	}
	return readJSONL(ctx, path, br, emit)
}

// startsArray peeks past leading whitespace for '['.
func startsArray(br *bufio.Reader) bool {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return false
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		_ = br.UnreadByte()
		return b == '['
	}
}

func readJSONArray(ctx context.Context, path string, r io.Reader, emit func(Stored) error) error {
	dec := json.NewDecoder(r)
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for n := 1; dec.More(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%s: element %d: %w", path, n, err)
		}
		if err := emit(Stored{Source: fmt.Sprintf("%s#%d", path, n), Data: raw}); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func readJSONL(ctx context.Context, path string, r io.Reader, emit func(Stored) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxDocSize)
	ln := 0
	for sc.Scan() {
		ln++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		rec := Stored{Source: fmt.Sprintf("%s:%d", path, ln), Data: append([]byte(nil), line...)}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return sc.Err()
}

func readBSON(ctx context.Context, path string, r io.Reader, emit func(Stored) error) error {
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var hdr [4]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%s: document %d: %w", path, n, err)
		}
		size := int(binary.LittleEndian.Uint32(hdr[:]))
		if size < 5 || size > maxDocSize {
			return fmt.Errorf("%s: document %d: bad length %d", path, n, size)
		}
		doc := make([]byte, size)
		copy(doc, hdr[:])
		if _, err := io.ReadFull(r, doc[4:]); err != nil {
			return fmt.Errorf("%s: document %d: %w", path, n, err)
		}
		if err := emit(Stored{Source: fmt.Sprintf("%s#%d", path, n), Data: doc, BSON: true}); err != nil {
			return err
		}
	}
}
