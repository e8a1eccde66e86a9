package chip8

import (
	"math/rand"
	"time"
)

// RandomSource provides the random bytes used by the RND instruction.
type RandomSource interface {
	Byte() byte
}

// Random is a seedable RandomSource.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a new random source. A zero seed selects a time based seed,
// any other seed produces a reproducible sequence.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Byte implements the RandomSource interface.
func (r *Random) Byte() byte {
	return byte(r.rng.Intn(256))
}
