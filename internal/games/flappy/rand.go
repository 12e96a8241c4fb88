package flappy

import "math/rand"

// RandSource supplies gap anchors. *math/rand.Rand satisfies it; tests pass
// fixed sequences.
type RandSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded source for deterministic gameplay.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}
