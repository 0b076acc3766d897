// Package lucky counts "lucky tickets": fixed-length numbers in an
// arbitrary base whose leftmost K digits sum to the same value as their
// rightmost K digits.
//
// 🚀 What is inside?
//
//   - Count — the production engine. It histograms the digit sums of all
//     K-digit prefixes and returns Σ hist[s]² · base^(L−2K) as a *big.Int,
//     in O(base^K) time regardless of L.
//   - BruteForce — sequential oracle that walks all base^L numbers.
//   - ParallelBruteForce — the same enumeration split across goroutines,
//     with one mutex-guarded counter.
//   - Verify — runs Count and the selected oracles and reports ErrMismatch
//     when they disagree.
//
// ⚙️ Usage:
//
//	a := radix.MustAlphabet("0123456789ABC")
//
//	n, err := lucky.Count(a, 13, 6)
//	if err != nil {
//	  // ErrConfiguration when 2K > L
//	}
//	fmt.Println(n) // 9203637295151
//
//	rep, err := lucky.Verify(ctx, a, 7, 3,
//	  lucky.WithWorkers(8),
//	  lucky.WithLogger(log.New(os.Stderr, "", 0)),
//	)
//
// Options are shared by every entry point: WithLogger (diagnostic lines,
// discarded by default), WithWorkers (parallel oracle) and WithOracles
// (Verify).
package lucky
