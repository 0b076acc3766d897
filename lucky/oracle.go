// SPDX-License-Identifier: MIT

package lucky

import (
	"context"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/luckyticket/radix"
)

// BruteForce counts lucky tickets by walking the whole base^digits space
// with radix.Number.IncrementAbs and testing every value directly.
//
// It is an oracle for Count: exact, single-threaded and exponential in
// digits. Only use it on small spaces.
func BruteForce(a *radix.Alphabet, digits, checked int, opts ...Option) (uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validate(a, digits, checked); err != nil {
		return 0, err
	}

	n, err := radix.NewZero(a, digits)
	if err != nil {
		return 0, err
	}

	var count, seen uint64
	for n.Width() == digits {
		if isLucky(n, digits, checked) {
			count++
		}
		seen++
		n.IncrementAbs()
	}
	o.Logger.Printf("sequential oracle: %d of %d %d-digit numbers in base %d are lucky", count, seen, digits, a.Base())

	return count, nil
}

// SpaceSize returns base^digits, the number of digits-wide values.
// Both oracles address the space with machine integers, so a space that
// does not fit a uint64 is reported as radix.ErrOverflow.
func SpaceSize(a *radix.Alphabet, digits int) (uint64, error) {
	if a == nil || a.Base() == 0 {
		return 0, radix.ErrInvalidAlphabet
	}
	if digits < 0 {
		return 0, fmt.Errorf("%w: digits cannot be negative (%d)", ErrConfiguration, digits)
	}

	base := uint64(a.Base())
	size := uint64(1)
	for i := 0; i < digits; i++ {
		hi, lo := bits.Mul64(size, base)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d^%d does not fit 64 bits", radix.ErrOverflow, base, digits)
		}
		size = lo
	}

	return size, nil
}

// isLucky compares the digit sums of the first and last checked digits of
// a digits-wide ticket. Ranks past n.MaxRank() read as zero, so n need not
// carry its leading zeros.
func isLucky(n *radix.Number, digits, checked int) bool {
	return n.RangeSum(0, checked-1) == n.RangeSum(digits-checked, digits-1)
}

// Verify runs Count and cross-checks it against the oracles selected with
// WithOracles (both by default). The returned Report is filled as far as
// the run got; any disagreement is ErrMismatch.
func Verify(ctx context.Context, a *radix.Alphabet, digits, checked int, opts ...Option) (Report, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	if rep.Count, err = Count(a, digits, checked, opts...); err != nil {
		return rep, err
	}

	if o.Sequential {
		seq, err := BruteForce(a, digits, checked, opts...)
		if err != nil {
			return rep, fmt.Errorf("sequential oracle: %w", err)
		}
		rep.Sequential = &seq
		if !agrees(rep.Count, seq) {
			return rep, fmt.Errorf("%w: sequential oracle counted %d, engine %s", ErrMismatch, seq, rep.Count)
		}
	}

	if o.Parallel {
		par, err := ParallelBruteForce(ctx, a, digits, checked, opts...)
		if err != nil {
			return rep, fmt.Errorf("parallel oracle: %w", err)
		}
		rep.Parallel = &par
		if !agrees(rep.Count, par) {
			return rep, fmt.Errorf("%w: parallel oracle counted %d, engine %s", ErrMismatch, par, rep.Count)
		}
	}
	o.Logger.Printf("verified: %s", rep.Count)

	return rep, nil
}

func agrees(count *big.Int, oracle uint64) bool {
	return count.IsUint64() && count.Uint64() == oracle
}
