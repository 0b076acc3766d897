// SPDX-License-Identifier: MIT

package radix

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Number is a signed fixed-width value written in the digits of an Alphabet.
//
// Digits are kept as alphabet indices, least-significant first, so rank r
// lives at digits[r]. Leading zero digits are part of the value's width and
// are never trimmed; only IncrementAbs changes the width (by growing it).
type Number struct {
	alphabet *Alphabet
	negative bool
	digits   []int
}

// FromInt64 converts v into the numeral system of a.
// Zero is represented by the single zero symbol.
func FromInt64(v int64, a *Alphabet) (*Number, error) {
	if v < 0 {
		// -(v+1) cannot overflow, even for math.MinInt64.
		return fromMagnitude(uint64(-(v+1))+1, true, a)
	}

	return fromMagnitude(uint64(v), false, a)
}

// FromUint64 converts v into the numeral system of a.
func FromUint64(v uint64, a *Alphabet) (*Number, error) {
	return fromMagnitude(v, false, a)
}

// fromMagnitude collects remainders of repeated division by the base,
// least-significant digit first.
func fromMagnitude(mag uint64, negative bool, a *Alphabet) (*Number, error) {
	if a == nil || a.Base() == 0 {
		return nil, ErrInvalidAlphabet
	}
	if mag == 0 {
		return &Number{alphabet: a, digits: []int{0}}, nil
	}
	if a.Base() == 1 {
		return nil, fmt.Errorf("%w: base 1 represents only zero, got %d", ErrOverflow, mag)
	}

	base := uint64(a.Base())
	digits := make([]int, 0, 16)
	for mag > 0 {
		rem := int(mag % base)
		if _, err := a.Symbol(rem); err != nil {
			return nil, err
		}
		digits = append(digits, rem)
		mag /= base
	}

	return &Number{alphabet: a, negative: negative, digits: digits}, nil
}

// Parse reads a digit string written most-significant first, with an
// optional leading '-'.
//
// Errors:
//   - ErrInvalidAlphabet if a is nil.
//   - ErrInvalidFormat for an empty, whitespace-only or sign-only text.
//   - ErrUnknownDigit if a rune is not part of a.
func Parse(text string, a *Alphabet) (*Number, error) {
	if a == nil || a.Base() == 0 {
		return nil, ErrInvalidAlphabet
	}
	if strings.TrimSpace(text) == "" || text == "-" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	n := &Number{alphabet: a}
	if text[0] == '-' {
		n.negative = true
		text = text[1:]
	}

	runes := []rune(text)
	n.digits = make([]int, len(runes))
	for pos, r := range runes {
		v, err := a.Value(r)
		if err != nil {
			return nil, fmt.Errorf("parse %q at %d: %w", text, pos, err)
		}
		n.digits[len(runes)-1-pos] = v
	}

	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, a *Alphabet) *Number {
	n, err := Parse(text, a)
	if err != nil {
		panic(err)
	}

	return n
}

// NewZero returns a zero of the given width, i.e. width zero symbols.
// Incrementing it walks every width-digit value in increasing order.
func NewZero(a *Alphabet, width int) (*Number, error) {
	if a == nil || a.Base() == 0 {
		return nil, ErrInvalidAlphabet
	}
	if width < 1 {
		return nil, fmt.Errorf("%w: width must be >= 1, got %d", ErrInvalidFormat, width)
	}

	return &Number{alphabet: a, digits: make([]int, width)}, nil
}

// Alphabet returns the shared alphabet of n.
func (n *Number) Alphabet() *Alphabet { return n.alphabet }

// IsNegative reports the sign flag.
func (n *Number) IsNegative() bool { return n.negative }

// Width returns the number of stored digits, leading zeros included.
func (n *Number) Width() int { return len(n.digits) }

// MaxRank returns Width()-1, the rank of the most-significant stored digit.
func (n *Number) MaxRank() int { return len(n.digits) - 1 }

// Digit returns the symbol at rank (0 = least significant). Ranks past
// MaxRank read as the zero symbol, so numbers of different widths line up
// without padding.
func (n *Number) Digit(rank int) rune {
	return n.alphabet.symbols[n.DigitValue(rank)]
}

// DigitValue returns the 0-based value of the digit at rank, or 0 past
// MaxRank.
func (n *Number) DigitValue(rank int) int {
	if rank < 0 || rank >= len(n.digits) {
		return 0
	}

	return n.digits[rank]
}

// DigitSum returns the sum of all digit values.
func (n *Number) DigitSum() int {
	sum := 0
	for _, d := range n.digits {
		sum += d
	}

	return sum
}

// RangeSum returns the sum of digit values over the inclusive rank range
// [from, to]. Ranks past MaxRank contribute zero.
func (n *Number) RangeSum(from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > n.MaxRank() {
		to = n.MaxRank()
	}
	sum := 0
	for rank := from; rank <= to; rank++ {
		sum += n.digits[rank]
	}

	return sum
}

// IncrementAbs adds one to the magnitude in place; the sign is untouched.
// When the carry runs past the top rank the number grows by one digit.
// That is the only way a Number changes width.
func (n *Number) IncrementAbs() {
	base := n.alphabet.Base()
	for rank := range n.digits {
		if n.digits[rank]+1 < base {
			n.digits[rank]++
			return
		}
		n.digits[rank] = 0
	}

	// unary alphabets have no "one" symbol and grow with a zero
	n.digits = append(n.digits, min(1, base-1))
}

// Clone returns an independent copy sharing the same alphabet.
func (n *Number) Clone() *Number {
	c := &Number{alphabet: n.alphabet, negative: n.negative, digits: make([]int, len(n.digits))}
	copy(c.digits, n.digits)

	return c
}

// Equal reports whether n and other have the same sign and the same digit
// string, width included. Comparing numbers of different bases is an error.
func (n *Number) Equal(other *Number) (bool, error) {
	if n == nil || other == nil {
		return n == other, nil
	}
	if n.alphabet.Base() != other.alphabet.Base() {
		return false, fmt.Errorf("%w: %d vs %d", ErrBaseMismatch, n.alphabet.Base(), other.alphabet.Base())
	}
	if n.negative != other.negative || len(n.digits) != len(other.digits) {
		return false, nil
	}

	return n.String() == other.String(), nil
}

// Hash returns a 64-bit hash of the base and the string form, so that
// Equal numbers hash alike.
func (n *Number) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n.alphabet.Base()))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(n.String())

	return d.Sum64()
}

// String renders the number most-significant digit first, with a leading
// '-' when negative.
func (n *Number) String() string {
	var sb strings.Builder
	sb.Grow(len(n.digits) + 1)
	if n.negative {
		sb.WriteByte('-')
	}
	for rank := len(n.digits) - 1; rank >= 0; rank-- {
		sb.WriteRune(n.alphabet.symbols[n.digits[rank]])
	}

	return sb.String()
}
