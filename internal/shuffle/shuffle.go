// Package shuffle provides unbiased random permutations of slices.
package shuffle

import "math/rand/v2"

// Shuffle returns a new slice with the elements of items in a uniformly
// random order, using the Fisher-Yates algorithm. The input slice is never
// modified. A nil rng uses the shared package-level source.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Pick returns n elements drawn without replacement from items, in random
// order. When n is non-positive or exceeds len(items), all elements are
// returned. The input slice is never modified.
func Pick[T any](rng *rand.Rand, items []T, n int) []T {
	out := Shuffle(rng, items)
	if n <= 0 || n > len(out) {
		return out
	}
	return out[:n]
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
