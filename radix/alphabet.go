// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"unicode/utf8"
)

// Alphabet is an ordered set of unique digit symbols. Its length is the
// base of the numeral system and the symbol at index 0 denotes zero.
//
// An Alphabet is immutable after construction and safe to share between
// any number of Numbers and goroutines.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from the runes of symbols, in order.
//
// Errors:
//   - ErrInvalidAlphabet if symbols is empty, is not valid UTF-8,
//     or repeats a rune.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidAlphabet)
	}
	if !utf8.ValidString(symbols) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidAlphabet)
	}

	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if prev, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: symbol %q repeated at %d and %d", ErrInvalidAlphabet, r, prev, i)
		}
		index[r] = i
	}

	return &Alphabet{symbols: runes, index: index}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// Intended for fixtures and examples with literal symbol sets.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// Base returns the number of symbols.
func (a *Alphabet) Base() int { return len(a.symbols) }

// Zero returns the symbol of digit value 0.
func (a *Alphabet) Zero() rune { return a.symbols[0] }

// One returns the symbol of digit value 1, or the zero symbol for a
// unary alphabet.
func (a *Alphabet) One() rune {
	if len(a.symbols) < 2 {
		return a.symbols[0]
	}

	return a.symbols[1]
}

// Symbol maps a digit value in [0, Base) to its symbol.
func (a *Alphabet) Symbol(value int) (rune, error) {
	if value < 0 || value >= len(a.symbols) {
		return 0, fmt.Errorf("%w: value %d has no symbol in base %d", ErrUnknownDigit, value, len(a.symbols))
	}

	return a.symbols[value], nil
}

// Value maps a symbol back to its digit value.
func (a *Alphabet) Value(symbol rune) (int, error) {
	v, ok := a.index[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not used in base %d", ErrUnknownDigit, symbol, len(a.symbols))
	}

	return v, nil
}

// Contains reports whether symbol belongs to the alphabet.
func (a *Alphabet) Contains(symbol rune) bool {
	_, ok := a.index[symbol]
	return ok
}

// String returns the symbols in value order.
func (a *Alphabet) String() string { return string(a.symbols) }
