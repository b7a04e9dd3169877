package input

import "context"

// Sources lists every input an application was given.
type Sources struct {
	Sequences   []string
	OrderFiles  []string
	FastaFiles  []string
	RecordFiles []string
}

// Item is either an Order or a Stored record; exactly one is set.
type Item struct {
	Order  *Order
	Stored *Stored
}

// Source names where the item came from.
func (it Item) Source() string {
	if it.Stored != nil {
		return it.Stored.Source
	}
	if it.Order != nil {
		return it.Order.Source
	}
	return ""
}

// Walk emits inline sequences, then order sheets, FASTA files and record
// files, each in the order given. It stops at the first error from emit
// or from reading an input.
func Walk(ctx context.Context, src Sources, emit func(Item) error) error {
	for _, o := range Inline(src.Sequences) {
		if err := ctx.Err(); err != nil {
			return err
		}
		o := o
		if err := emit(Item{Order: &o}); err != nil {
			return err
		}
	}
	for _, path := range src.OrderFiles {
		list, err := LoadOrdersTSV(path)
		if err != nil {
			return err
		}
		for i := range list {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(Item{Order: &list[i]}); err != nil {
				return err
			}
		}
	}
	for _, path := range src.FastaFiles {
		if err := ReadFASTA(ctx, path, func(o Order) error {
			return emit(Item{Order: &o})
		}); err != nil {
			return err
		}
	}
	for _, path := range src.RecordFiles {
		if err := ReadRecords(ctx, path, func(s Stored) error {
			return emit(Item{Stored: &s})
		}); err != nil {
			return err
		}
	}
	return nil
}
