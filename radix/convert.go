// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// magnitude evaluates the digits most-significant first (Horner) into a
// uint64, reporting ErrOverflow as soon as an intermediate step carries out.
// Leading zeros never overflow because the accumulator stays at zero.
func (n *Number) magnitude() (uint64, error) {
	base := uint64(n.alphabet.Base())
	var acc uint64
	for rank := len(n.digits) - 1; rank >= 0; rank-- {
		hi, lo := bits.Mul64(acc, base)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %s exceeds 64 bits", ErrOverflow, n)
		}
		sum, carry := bits.Add64(lo, uint64(n.digits[rank]), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: %s exceeds 64 bits", ErrOverflow, n)
		}
		acc = sum
	}

	return acc, nil
}

// Int64 converts n back to a signed 64-bit integer. The sign is applied
// after the magnitude is checked against the int64 range.
func (n *Number) Int64() (int64, error) {
	mag, err := n.magnitude()
	if err != nil {
		return 0, err
	}
	if n.negative {
		if mag > 1<<63 {
			return 0, fmt.Errorf("%w: %s below math.MinInt64", ErrOverflow, n)
		}
		// mag == 1<<63 wraps to math.MinInt64, which is exactly -mag.
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s above math.MaxInt64", ErrOverflow, n)
	}

	return int64(mag), nil
}

// Uint64 converts n to an unsigned 64-bit integer. A negative non-zero
// value is out of range.
func (n *Number) Uint64() (uint64, error) {
	mag, err := n.magnitude()
	if err != nil {
		return 0, err
	}
	if n.negative && mag != 0 {
		return 0, fmt.Errorf("%w: %s is negative", ErrOverflow, n)
	}

	return mag, nil
}

// Big converts n to an arbitrary-precision integer. It never overflows.
func (n *Number) Big() *big.Int {
	base := big.NewInt(int64(n.alphabet.Base()))
	acc := new(big.Int)
	digit := new(big.Int)
	for rank := len(n.digits) - 1; rank >= 0; rank-- {
		acc.Mul(acc, base)
		acc.Add(acc, digit.SetInt64(int64(n.digits[rank])))
	}
	if n.negative {
		acc.Neg(acc)
	}

	return acc
}

// EqualInt64 reports whether n numerically equals v.
// A value that does not fit an int64 is never equal.
func (n *Number) EqualInt64(v int64) bool {
	x, err := n.Int64()
	return err == nil && x == v
}

// EqualUint64 reports whether n numerically equals v.
func (n *Number) EqualUint64(v uint64) bool {
	x, err := n.Uint64()
	return err == nil && x == v
}

// EqualBig reports whether n numerically equals v.
func (n *Number) EqualBig(v *big.Int) bool {
	return v != nil && n.Big().Cmp(v) == 0
}
