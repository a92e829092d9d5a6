// Package testutil provides shared helpers for kernel tests: deterministic
// input generation and tolerance-based slice comparison.
package testutil

import "math/rand"

// RandomFloats32 generates uniform float32 values in [-scale, scale] with a
// fixed seed for reproducibility.
func RandomFloats32(n int, seed int64, scale float32) []float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = scale * (2*rng.Float32() - 1)
	}
	return out
}

// RandomComplex64 generates complex64 values whose components are uniform
// in [-scale, scale], with a fixed seed for reproducibility.
func RandomComplex64(n int, seed int64, scale float32) []complex64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex64, n)
	for i := range out {
		re := scale * (2*rng.Float32() - 1)
		im := scale * (2*rng.Float32() - 1)
		out[i] = complex(re, im)
	}
	return out
}
