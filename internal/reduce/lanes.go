package reduce

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn once for every lane index in [0, n).
//
// With parallelism <= 1 lanes run in index order on the calling goroutine.
// Otherwise the lanes are split into at most parallelism contiguous blocks
// that run on an errgroup; fn must only write state owned by its own lane.
// The first error returned by fn, or the context error, is returned.
func Map(ctx context.Context, n, parallelism int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	if parallelism <= 1 || n == 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	if parallelism > n {
		parallelism = n
	}
	block := (n + parallelism - 1) / parallelism

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for start := 0; start < n; start += block {
		end := min(start+block, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
