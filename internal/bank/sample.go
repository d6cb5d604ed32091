package bank

import (
	"fmt"
	"math/rand/v2"
)

// Sample draws count distinct questions from b without replacement.
// Every ordering of every count-sized subset is equally likely. b is not
// modified.
func Sample(b Bank, count int, rng *rand.Rand) ([]Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: rounds per session must be positive, got %d", ErrInvalidConfiguration, count)
	}
	if count > len(b) {
		return nil, fmt.Errorf("%w: %d rounds requested but bank has %d questions", ErrInvalidConfiguration, count, len(b))
	}

	// Partial Fisher-Yates: after step i, pool[:i+1] is a uniform
	// random ordered sample.
	pool := b.Clone()
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count:count], nil
}
