package cmdutil

import (
	"context"

	"oligoseq/internal/input"
)

// RunStream walks every input, applies visit, and streams results via send.
// A visit error goes to onFail; if onFail returns nil the item is skipped,
// otherwise the walk stops with that error. It returns the number of sent
// outputs and skipped items.
func RunStream[T any](
	ctx context.Context,
	src input.Sources,
	visit func(input.Item) (T, error),
	onFail func(input.Item, error) error,
	send func(T) error,
) (sent, skipped int, err error) {
	err = input.Walk(ctx, src, func(it input.Item) error {
		out, vErr := visit(it)
		if vErr != nil {
			if fErr := onFail(it, vErr); fErr != nil {
				return fErr
			}
			skipped++
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		sent++
		return nil
	})
	return sent, skipped, err
}
