// SPDX-License-Identifier: MIT

package lucky

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/luckyticket/radix"
)

// ctxCheckEvery is how many values a worker scans between context checks.
const ctxCheckEvery = 1 << 12

// ParallelBruteForce is the data-parallel oracle for Count.
//
// The integer range [0, base^digits) is split into Workers contiguous
// chunks. Each worker converts its values with radix.FromUint64 and tests
// them independently; the only shared state is one match counter guarded by
// a mutex. The result does not depend on scheduling.
//
// The first worker error, or ctx cancellation, aborts the remaining workers
// and is returned.
func ParallelBruteForce(ctx context.Context, a *radix.Alphabet, digits, checked int, opts ...Option) (uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validate(a, digits, checked); err != nil {
		return 0, err
	}
	total, err := SpaceSize(a, digits)
	if err != nil {
		return 0, err
	}

	workers := uint64(o.Workers)
	if workers > total {
		workers = total
	}
	chunk := total / workers
	if total%workers != 0 {
		chunk++
	}

	var (
		mu    sync.Mutex
		count uint64
	)
	g, gctx := errgroup.WithContext(ctx)
	for lo := uint64(0); lo < total; {
		hi := total
		if chunk < total-lo {
			hi = lo + chunk
		}
		start, end := lo, hi
		g.Go(func() error {
			for v := start; v < end; v++ {
				if (v-start)%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				n, err := radix.FromUint64(v, a)
				if err != nil {
					return fmt.Errorf("convert %d: %w", v, err)
				}
				if isLucky(n, digits, checked) {
					mu.Lock()
					count++
					mu.Unlock()
				}
			}
			return nil
		})
		lo = hi
	}
	if err = g.Wait(); err != nil {
		return 0, err
	}
	o.Logger.Printf("parallel oracle (%d workers): %d of %d %d-digit numbers in base %d are lucky",
		workers, count, total, digits, a.Base())

	return count, nil
}
