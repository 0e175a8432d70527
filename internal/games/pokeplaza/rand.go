package pokeplaza

import (
	"math/rand"
	"time"
)

// Rand is the random source injected into the simulation.
// *rand.Rand satisfies it; tests use scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed is replaced by the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
