// Package lengthrange buckets nucleotide counts into the price/QC ranges
// stored next to each sequence record.
package lengthrange

import "fmt"

// Bucket is an inclusive nucleotide range; Max == 0 means unbounded.
type Bucket struct {
	Min, Max int
}

func (b Bucket) String() string {
	if b.Max == 0 {
		return fmt.Sprintf("%d+", b.Min)
	}
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}

// Buckets in ascending order, contiguous from 10.
var Buckets = []Bucket{
	{10, 40},
	{41, 60},
	{61, 80},
	{81, 100},
	{101, 120},
	{121, 0},
}

// Of returns the range label for n. Zero (no sequence) has no range.
func Of(n int) string {
	if n <= 0 {
		return ""
	}
	for _, b := range Buckets {
		if n >= b.Min && (b.Max == 0 || n <= b.Max) {
			return b.String()
		}
	}
	return fmt.Sprintf("<%d", Buckets[0].Min)
}
