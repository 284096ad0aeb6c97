package neuron

import "math/rand/v2"

// Rand is the source of randomness for initialization and mutation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float32() float32
	IntN(n int) int
}

type global struct{}

func (global) Float32() float32 { return rand.Float32() }
func (global) IntN(n int) int   { return rand.IntN(n) }

// Global draws from the process-wide generator. It gives no reproducibility;
// seed a *rand.Rand for that.
var Global Rand = global{}

// NewSeeded returns a deterministic generator for the seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
}

// Bool reports true with probability p.
func Bool(r Rand, p float64) bool {
	return float64(r.Float32()) < p
}
