// SPDX-License-Identifier: MIT
// Package radix implements signed positional numbers over an arbitrary,
// caller-supplied digit alphabet.
//
// An Alphabet is an ordered set of unique symbols; its length is the base
// and its first symbol is zero. A Number stores its sign separately from a
// fixed-width digit buffer, so "007" and "7" are different Numbers of equal
// value.
//
// Key operations:
//   - FromInt64 / FromUint64 / Parse / NewZero — construction
//   - Digit / DigitValue — digit access by rank (0 = least significant);
//     ranks past the top read as zero
//   - DigitSum / RangeSum — digit sums
//   - IncrementAbs — in-place arbitrary-precision successor of the magnitude
//   - Int64 / Uint64 / Big — conversion back, with ErrOverflow detection
//   - Equal / Hash — value identity within one base
//
// Usage:
//
//	a := radix.MustAlphabet("0123456789ABC")
//	n, err := radix.Parse("1CCC1", a)
//	if err != nil {
//	  // ErrInvalidFormat or ErrUnknownDigit
//	}
//	n.DigitSum() // 38
//
// Complexity: every operation is O(Width); IncrementAbs is amortized O(1).
package radix
