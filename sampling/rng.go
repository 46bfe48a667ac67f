// SPDX-License-Identifier: MIT
// Package: sampling
//
// rng.go: deterministic RNG construction and shuffles.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. A build owns its Rand exclusively.

package sampling

import (
	"math/rand/v2"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// NewRand returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; the second PCG word is deriveSeed(seed, 0).
//
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewPCG(seed, deriveSeed(seed, 0)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// word using the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(n) time, O(1) extra space.
func ShuffleInts(rng *rand.Rand, a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// ChooseK selects k elements of a uniformly without replacement using a
// partial Fisher–Yates pass: after the call a[:k] holds the selection (in
// draw order) and is returned. Exactly k calls to rng.IntN are made.
// k is clamped to [0, len(a)].
//
// Complexity: O(k) time, O(1) extra space.
func ChooseK(rng *rand.Rand, a []int, k int) []int {
	k = max(0, min(k, len(a)))
	n := len(a)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		a[i], a[j] = a[j], a[i]
	}

	return a[:k]
}
