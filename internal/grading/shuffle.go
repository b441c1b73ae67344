package grading

import "math/rand/v2"

// Source draws uniform random indexes. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// SystemSource returns the process-wide source seeded from system entropy.
func SystemSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic source for reproducible orders.
func NewSeededSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Shuffle returns a new slice holding the items in uniformly random order.
// The input is never modified. A nil src uses SystemSource.
func Shuffle[T any](items []T, src Source) []T {
	if src == nil {
		src = globalSource{}
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
