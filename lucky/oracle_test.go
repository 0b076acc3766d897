package lucky_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/luckyticket/lucky"
	"github.com/katalvlaran/luckyticket/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parityCases are small enough for full enumeration.
var parityCases = []struct {
	symbols         string
	digits, checked int
}{
	{"01", 9, 4},
	{"012", 7, 3},
	{"012", 9, 4},
	{"012", 13, 6},
	{base13, 5, 2},
}

// TestOracles_Parity verifies that both oracles agree with the engine.
func TestOracles_Parity(t *testing.T) {
	for _, tc := range parityCases {
		name := fmt.Sprintf("base%d_L%d_K%d", len(tc.symbols), tc.digits, tc.checked)
		t.Run(name, func(t *testing.T) {
			a := radix.MustAlphabet(tc.symbols)

			want, err := lucky.Count(a, tc.digits, tc.checked)
			require.NoError(t, err)
			require.True(t, want.IsUint64())

			seq, err := lucky.BruteForce(a, tc.digits, tc.checked)
			require.NoError(t, err)
			assert.Equal(t, want.Uint64(), seq, "sequential oracle")

			par, err := lucky.ParallelBruteForce(context.Background(), a, tc.digits, tc.checked, lucky.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, want.Uint64(), par, "parallel oracle")
		})
	}
}

// TestParallelBruteForce_WorkerCounts checks the result is invariant to partitioning.
func TestParallelBruteForce_WorkerCounts(t *testing.T) {
	a := radix.MustAlphabet("012")
	for _, w := range []int{0, 1, 2, 3, 7, 64, 5000} {
		got, err := lucky.ParallelBruteForce(context.Background(), a, 7, 3, lucky.WithWorkers(w))
		require.NoError(t, err, "workers=%d", w)
		assert.Equal(t, uint64(423), got, "workers=%d", w)
	}
}

// TestParallelBruteForce_Cancelled ensures a cancelled context aborts the scan.
func TestParallelBruteForce_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lucky.ParallelBruteForce(ctx, radix.MustAlphabet(base13), 5, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOracles_Errors covers validation and unaddressable spaces.
func TestOracles_Errors(t *testing.T) {
	a := radix.MustAlphabet(base13)

	_, err := lucky.BruteForce(a, 3, 2)
	assert.ErrorIs(t, err, lucky.ErrConfiguration)
	_, err = lucky.ParallelBruteForce(context.Background(), a, 3, 2)
	assert.ErrorIs(t, err, lucky.ErrConfiguration)
	_, err = lucky.ParallelBruteForce(context.Background(), a, 4, 2, lucky.WithWorkers(-3))
	assert.ErrorIs(t, err, lucky.ErrOptionViolation)

	_, err = lucky.ParallelBruteForce(context.Background(), a, 20, 2)
	assert.ErrorIs(t, err, radix.ErrOverflow, "13^20 does not fit 64 bits")
}

// TestSpaceSize checks base^digits and its overflow boundary.
func TestSpaceSize(t *testing.T) {
	size, err := lucky.SpaceSize(radix.MustAlphabet(base13), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(371293), size)

	size, err = lucky.SpaceSize(radix.MustAlphabet("01"), 63)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, size)

	_, err = lucky.SpaceSize(radix.MustAlphabet("01"), 64)
	assert.ErrorIs(t, err, radix.ErrOverflow)

	size, err = lucky.SpaceSize(radix.MustAlphabet("0"), 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), size)
}

// TestVerify runs the engine with both oracles.
func TestVerify(t *testing.T) {
	rep, err := lucky.Verify(context.Background(), radix.MustAlphabet(base13), 5, 2)
	require.NoError(t, err)
	assert.Equal(t, "19097", rep.Count.String())
	require.NotNil(t, rep.Sequential)
	require.NotNil(t, rep.Parallel)
	assert.Equal(t, uint64(19097), *rep.Sequential)
	assert.Equal(t, uint64(19097), *rep.Parallel)
}

// TestVerify_SelectOracles verifies that disabled oracles leave nil results.
func TestVerify_SelectOracles(t *testing.T) {
	rep, err := lucky.Verify(context.Background(), radix.MustAlphabet("01"), 9, 4, lucky.WithOracles(false, true))
	require.NoError(t, err)
	assert.Nil(t, rep.Sequential)
	require.NotNil(t, rep.Parallel)
	assert.Equal(t, uint64(140), *rep.Parallel)

	rep, err = lucky.Verify(context.Background(), radix.MustAlphabet("01"), 9, 4, lucky.WithOracles(false, false))
	require.NoError(t, err)
	assert.Nil(t, rep.Sequential)
	assert.Nil(t, rep.Parallel)
	assert.Equal(t, "140", rep.Count.String())
}

// TestVerify_Configuration surfaces the engine's configuration error.
func TestVerify_Configuration(t *testing.T) {
	_, err := lucky.Verify(context.Background(), radix.MustAlphabet("01"), 3, 2)
	assert.ErrorIs(t, err, lucky.ErrConfiguration)
}
