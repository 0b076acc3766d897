// SPDX-License-Identifier: MIT
// Package radix: sentinel error set.
// Every constructor and conversion returns one of these sentinels (optionally
// wrapped with context via fmt.Errorf("...: %w", ErrX)); callers match them
// with errors.Is. Nothing in this package panics on user input except the
// Must* helpers, which exist for fixtures.

package radix

import "errors"

var (
	// ErrInvalidAlphabet is returned when the digit alphabet is nil, empty,
	// or repeats a symbol.
	ErrInvalidAlphabet = errors.New("radix: invalid digit alphabet")

	// ErrInvalidFormat is returned for empty, whitespace-only or sign-only
	// digit strings, and for non-positive fixed widths.
	ErrInvalidFormat = errors.New("radix: invalid number format")

	// ErrUnknownDigit indicates a symbol (or a computed digit value) that has
	// no counterpart in the alphabet.
	ErrUnknownDigit = errors.New("radix: unknown digit")

	// ErrOverflow indicates that a magnitude does not fit the requested
	// machine integer width.
	ErrOverflow = errors.New("radix: integer overflow")

	// ErrBaseMismatch is returned when two numbers of different bases are
	// compared. Values are never coerced across bases.
	ErrBaseMismatch = errors.New("radix: base mismatch")
)
