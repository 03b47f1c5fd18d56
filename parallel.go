package rijndael

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// maxWorkers bounds ParallelConfig.MaxWorkers
const maxWorkers = 1024

// ParallelConfig controls parallel block processing
type ParallelConfig struct {
	// Enabled enables parallel block processing
	Enabled bool

	// MaxWorkers is the maximum number of worker goroutines
	// If 0, defaults to runtime.NumCPU()
	MaxWorkers int

	// MinBlocksForParallel is the minimum number of blocks to use parallel processing
	// Below this threshold, sequential processing is used
	MinBlocksForParallel int
}

// Validate checks if the parallel configuration is valid
func (p *ParallelConfig) Validate() error {
	if !p.Enabled {
		return nil
	}

	if err := ValidateWorkers(p.MaxWorkers); err != nil {
		return err
	}
	if p.MinBlocksForParallel < 1 {
		return &ConfigurationError{
			Field:   "parallel.min_blocks",
			Value:   p.MinBlocksForParallel,
			Message: "must be at least 1",
			Err:     ErrInvalidConfig,
		}
	}
	return nil
}

// DefaultParallelConfig returns the default parallel processing configuration
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Enabled:              true,
		MaxWorkers:           runtime.NumCPU(),
		MinBlocksForParallel: 64,
	}
}

// workers returns how many goroutines to use for n blocks; 1 means sequential
func (p *ParallelConfig) workers(n int) int {
	if !p.Enabled || n < p.MinBlocksForParallel {
		return 1
	}
	w := p.MaxWorkers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	return w
}

// blockFunc encrypts the single block src into dst
type blockFunc func(dst, src []byte)

// encryptBlocks runs fn over every 16-byte block of src, writing into the
// matching block of dst. Each worker owns a contiguous run of blocks so no
// two goroutines touch the same bytes. The call stops handing out blocks once
// ctx is done.
func encryptBlocks(ctx context.Context, dst, src []byte, workers int, fn blockFunc) error {
	n := len(src) / BlockSize
	if n == 0 {
		return nil
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			off := i * BlockSize
			fn(dst[off:off+BlockSize], src[off:off+BlockSize])
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	per := (n + workers - 1) / workers
	for start := 0; start < n; start += per {
		end := start + per
		if end > n {
			end = n
		}
		start := start
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					// Convert panic to error
					err = fmt.Errorf("panic in encryption worker: %v", r)
				}
			}()
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				off := i * BlockSize
				fn(dst[off:off+BlockSize], src[off:off+BlockSize])
			}
			return nil
		})
	}

	return g.Wait()
}
