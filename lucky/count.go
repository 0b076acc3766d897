// SPDX-License-Identifier: MIT

package lucky

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/luckyticket/radix"
)

// Count — lucky tickets via the digit-sum histogram
//
// Description:
//
//	A lucky ticket is a digits-long number (leading zeros counted) whose
//	first `checked` digits sum to the same value as its last `checked`
//	digits. Count derives how many there are without touching the full
//	base^digits space.
//
// Algorithm Outline:
//  1. free = digits - 2*checked. Each checked combination admits base^free
//     choices of the unconstrained middle digits.
//  2. Walk every checked-wide value 0 .. base^checked-1 and histogram its
//     digit sum: hist[s] = how many prefixes sum to s. There are
//     checked*(base-1)+1 possible sums.
//  3. Left and right sides draw from the same histogram, so sum s yields
//     hist[s]^2 valid (left, right) pairs. total = Σ hist[s]^2.
//  4. result = total * base^free.
//
// Complexity:
//
//	Time   = O(base^checked · checked), independent of digits
//	Memory = O(checked · base)
//
// Errors:
//   - radix.ErrInvalidAlphabet — nil alphabet.
//   - ErrConfiguration         — digits < 1, checked < 0 or 2*checked > digits.
//   - ErrOptionViolation       — an invalid Option.
func Count(a *radix.Alphabet, digits, checked int, opts ...Option) (*big.Int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(a, digits, checked); err != nil {
		return nil, err
	}

	logf := o.Logger.Printf
	base := a.Base()
	logf("counting lucky %d-digit numbers in base %d, checking %d digit(s) on each side", digits, base, checked)

	free := digits - 2*checked
	multiplier := big.NewInt(1)
	if free == 0 {
		logf("every digit is checked, no free middle digits")
	} else {
		multiplier.Exp(big.NewInt(int64(base)), big.NewInt(int64(free)), nil)
		logf("%d digit(s) are never checked: each checked combination admits %d^%d = %s variants",
			free, base, free, multiplier)
	}

	if checked > 0 {
		logf("enumerating %d-digit prefixes from %q to %q",
			checked, strings.Repeat(string(a.Zero()), checked), strings.Repeat(string(lastSymbol(a)), checked))
	}
	hist, err := Histogram(a, checked)
	if err != nil {
		return nil, err
	}
	logf("%d distinct digit sums", len(hist))

	total := new(big.Int)
	sq := new(big.Int)
	for s, c := range hist {
		sq.SetUint64(c)
		total.Add(total, sq.Mul(sq, sq))
		logf("- sum %d: %d", s, c)
	}
	logf("checked combinations: %s", total)

	total.Mul(total, multiplier)
	logf("result: %s", total)

	return total, nil
}

// Histogram counts the checked-digit prefixes by digit sum: hist[s] is the
// number of checked-wide values (leading zeros included) whose digits sum
// to s. len(hist) == checked*(base-1)+1.
//
// A zero-width prefix has the single sum 0, so Histogram(a, 0) is [1].
func Histogram(a *radix.Alphabet, checked int) ([]uint64, error) {
	if a == nil || a.Base() == 0 {
		return nil, radix.ErrInvalidAlphabet
	}
	if checked < 0 {
		return nil, fmt.Errorf("%w: checked cannot be negative (%d)", ErrConfiguration, checked)
	}
	if checked == 0 {
		return []uint64{1}, nil
	}

	hist := make([]uint64, checked*(a.Base()-1)+1)
	n, err := radix.NewZero(a, checked)
	if err != nil {
		return nil, err
	}
	// the width grows exactly once every prefix has been seen
	for n.Width() == checked {
		hist[n.DigitSum()]++
		n.IncrementAbs()
	}

	return hist, nil
}

// validate checks the shared preconditions of Count and the oracles.
func validate(a *radix.Alphabet, digits, checked int) error {
	switch {
	case a == nil || a.Base() == 0:
		return radix.ErrInvalidAlphabet
	case digits < 1:
		return fmt.Errorf("%w: digits must be >= 1, got %d", ErrConfiguration, digits)
	case checked < 0:
		return fmt.Errorf("%w: checked cannot be negative (%d)", ErrConfiguration, checked)
	case 2*checked > digits:
		return fmt.Errorf("%w: digits (%d) must be at least twice checked (%d)", ErrConfiguration, digits, checked)
	}

	return nil
}

// lastSymbol returns the symbol with the greatest digit value.
func lastSymbol(a *radix.Alphabet) rune {
	r, _ := a.Symbol(a.Base() - 1)
	return r
}
