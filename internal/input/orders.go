package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// orderColumns after label and sequence, in file order.
var orderColumns = []string{"encoding", "type", "modification", "product"}

// LoadOrdersTSV reads a tab-separated order sheet:
//
//	label <TAB> sequence [<TAB> encoding [<TAB> type [<TAB> modification [<TAB> product]]]]
//
// Blank lines and lines starting with '#' are skipped. "-" or an empty cell
// leaves a column unset. Sequences may contain spaces.
func LoadOrdersTSV(path string) ([]Order, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Order
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 || len(f) > 2+len(orderColumns) {
			return nil, fmt.Errorf("%s:%d bad field count %d", path, ln, len(f))
		}
		o := Order{Source: fmt.Sprintf("%s:%d", path, ln), Raw: f[1]}
		if lbl := strings.TrimSpace(f[0]); lbl != "" && lbl != "-" {
			o.Label = &lbl
		}
		for i, v := range f[2:] {
			o.set(orderColumns[i], strings.TrimSpace(v))
		}
		list = append(list, o)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
