// Package sample provides deterministic generation of the random
// sample vectors fed into benchmark flowgraphs.
package sample

import "math/rand/v2"

// DefaultSeed seeds generation when the user does not provide one, so
// repeated runs replay identical data.
const DefaultSeed = 1

// NewRand returns a generator for the given seed. Callers own the
// engine and hand it to Uniform; generator state lives with the
// caller, not in package globals.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Uniform returns n float32 samples drawn uniformly from [0, 1). The
// engine is advanced, never reseeded, so consecutive calls continue
// one deterministic stream.
func Uniform(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()
	}
	return out
}
