package output

import (
	"fmt"
	"io"
	"strconv"

	"oligoseq/pkg/api"
)

// FormatRecordTSV returns one record row (no trailing newline). A null
// label prints as "-".
func FormatRecordTSV(r api.SequenceV1) string {
	label := "-"
	if r.CustomerLabel != nil {
		label = *r.CustomerLabel
	}
	mod := strconv.FormatBool(r.Modified)
	if r.Modification != "" {
		mod = r.Modification
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s",
		label, r.SequenceType, r.SequenceEncoding,
		r.SequenceLength, dash(r.SequenceLengthRange), mod,
		dash(r.ProductSequence), dash(r.CustomerSequence), dash(r.FourLetterSequence),
	)
}

// FormatCheckTSV returns one oligoseq-check row.
func FormatCheckTSV(c api.CheckV1) string {
	msg := "ok"
	if !c.Valid {
		msg = c.Error
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%t\t%d\t%s",
		c.Source, dash(c.Label), dash(c.SequenceType), dash(c.SequenceEncoding),
		c.Valid, c.Length, msg,
	)
}

// StreamText writes rows as they arrive on in.
func StreamText[T any](w io.Writer, in <-chan T, header string, row func(T) string) error {
	if header != "" {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}
	for v := range in {
		if _, err := fmt.Fprintln(w, row(v)); err != nil {
			return err
		}
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
