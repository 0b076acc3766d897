package luckytickets

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/luckyticket/lucky"
	"github.com/katalvlaran/luckyticket/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Default prints the base-13 result without oracles or logs.
func TestRun_Default(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Alphabet: "0123456789ABC", Digits: 13, Checked: 6}

	require.NoError(t, Run(context.Background(), cfg, &out, &errOut))
	assert.Equal(t, "lucky 13-digit numbers in base 13 (6 checked digits per side): 9203637295151\n", out.String())
	assert.Empty(t, errOut.String())
}

// TestRun_Oracles verifies oracle results are reported with digit grouping.
func TestRun_Oracles(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Alphabet: "0123456789ABC", Digits: 5, Checked: 2, Verbose: true, Parallel: true, Sequential: true, Workers: 2}

	require.NoError(t, Run(context.Background(), cfg, &out, &errOut))
	assert.Contains(t, out.String(), "): 19097\n")
	assert.Contains(t, out.String(), "sequential oracle: 19,097\n")
	assert.Contains(t, out.String(), "parallel oracle: 19,097\n")
	assert.Contains(t, errOut.String(), "result: 19097")
	assert.Contains(t, errOut.String(), "verified: 19097")
}

// TestRun_Errors propagates configuration and alphabet failures.
func TestRun_Errors(t *testing.T) {
	err := Run(context.Background(), Config{Alphabet: "0123456789ABC", Digits: 5, Checked: 3}, nil, nil)
	assert.ErrorIs(t, err, lucky.ErrConfiguration)

	err = Run(context.Background(), Config{Alphabet: "", Digits: 5, Checked: 2}, nil, nil)
	assert.ErrorIs(t, err, radix.ErrInvalidAlphabet)

	err = Run(context.Background(), Config{Alphabet: "01", Digits: 4, Checked: 2, Workers: -1}, nil, nil)
	assert.ErrorIs(t, err, lucky.ErrOptionViolation)
}
