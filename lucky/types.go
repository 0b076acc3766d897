// SPDX-License-Identifier: MIT
// Package lucky provides tunable options, error definitions and result
// types for lucky-ticket counting.
package lucky

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"runtime"
)

// Sentinel errors for counting and verification.
var (
	// ErrConfiguration is returned when the digit length and the checked
	// prefix length are inconsistent (2*checked > digits, or negatives).
	ErrConfiguration = errors.New("lucky: invalid configuration")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lucky: invalid option supplied")

	// ErrMismatch is returned by Verify when an oracle disagrees with Count.
	ErrMismatch = errors.New("lucky: oracle disagrees with engine")
)

// Option configures counting and verification via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// operation runs.
type Option func(*Options)

// Options holds the parameters shared by Count, the oracles and Verify.
type Options struct {
	// Logger receives one diagnostic line per step. Never nil after
	// DefaultOptions; the default discards.
	Logger *log.Logger

	// Workers is the goroutine count of ParallelBruteForce.
	Workers int

	// Sequential and Parallel select the oracles Verify runs.
	Sequential bool
	Parallel   bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a discarding logger
//   - runtime.NumCPU() workers
//   - both oracles enabled for Verify.
func DefaultOptions() Options {
	return Options{
		Logger:     log.New(io.Discard, "", 0),
		Workers:    runtime.NumCPU(),
		Sequential: true,
		Parallel:   true,
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the parallel oracle's worker count.
//
//	n > 0: exactly n workers
//	n == 0: runtime.NumCPU()
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = n
		}
	}
}

// WithOracles selects which oracles Verify runs.
func WithOracles(sequential, parallel bool) Option {
	return func(o *Options) {
		o.Sequential = sequential
		o.Parallel = parallel
	}
}

// buildOptions applies opts over DefaultOptions and returns the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Report holds the outcome of Verify.
//   - Count: the engine result.
//   - Sequential / Parallel: oracle results, nil when that oracle did not run.
type Report struct {
	Count      *big.Int
	Sequential *uint64
	Parallel   *uint64
}
