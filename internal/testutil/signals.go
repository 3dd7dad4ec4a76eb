package testutil

import "math/rand"

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Step generates a step of the given amplitude starting at pos.
func Step(length, pos int, amplitude float64) []float64 {
	out := make([]float64, length)
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < length; i++ {
		out[i] = amplitude
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
