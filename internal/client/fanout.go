package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOut runs fn for every item concurrently, at most limit at a time
// (limit <= 0 means unbounded), and returns the results in input order.
// An item whose call fails is replaced by fallback(item, err); the batch as
// a whole never fails.
func FanOut[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error), fallback func(T, error) R) []R {
	results := make([]R, len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				r = fallback(item, err)
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	return results
}
