package bigcoll

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is how many elements each worker processes between
// context checks. Checking per element would cost more than the visit on
// small element types.
const ctxCheckInterval = 1024

// ForEachParallel fans the enumeration of src out across worker
// goroutines. The container is partitioned into contiguous stripes and
// each worker runs its own independent cursor, so src only needs to
// tolerate concurrent readers: it must not be modified for the duration of
// the call. workers < 1 means one worker per available CPU.
//
// The first error from fn cancels the remaining workers via the group
// context; fn must not itself mutate src.
func ForEachParallel[T any](ctx context.Context, src Indexed[T], workers int, fn func(index int64, value T) error) error {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	count := src.Count()
	if count == 0 {
		return ctx.Err()
	}
	if int64(workers) > count {
		workers = int(count)
	}

	g, ctx := errgroup.WithContext(ctx)
	stripe := (count + int64(workers) - 1) / int64(workers)
	for w := 0; w < workers; w++ {
		lo := int64(w) * stripe
		hi := min(lo+stripe, count)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				v, err := src.Get(i)
				if err != nil {
					return err
				}
				if err := fn(i, v); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
