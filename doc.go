// Package luckyticket counts "lucky tickets" — fixed-length numbers in any
// positional base whose first K digits sum to the same value as their last
// K digits — and proves the count against brute force.
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit:
//		• Arbitrary radix numbers: caller-defined digit alphabets, digit access
//		  by rank, in-place arbitrary-precision increment, overflow-checked
//		  conversion back to machine integers
//		• Counting engine: O(base^K) digit-sum histogram, exact *big.Int result
//		• Oracles: sequential and goroutine-parallel full enumeration
//
// Under the hood, everything is organized under two subpackages:
//
//	radix/ — Alphabet and Number, the positional number representation
//	lucky/ — Count (engine), BruteForce / ParallelBruteForce (oracles), Verify
//
// The luckytickets command (cmd/luckytickets) wires both behind env/flag
// configuration:
//
//	go run ./cmd/luckytickets -digits 13 -checked 6 -verbose
//	go run ./cmd/luckytickets 7 3 1 1 1   # L K log parallel sequential
package luckyticket
