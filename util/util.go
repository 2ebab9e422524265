package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uniform returns a value drawn uniformly from [-scale, scale].
func (r *RNG) Uniform(scale float32) float32 {
	return (r.rand.Float32()*2 - 1) * scale
}

// GenerateRandomVectors generates vectors with components drawn uniformly
// from [-scale, scale] using the given RNG.
func (r *RNG) GenerateRandomVectors(num int, dimensions int, scale float32) [][]float32 {
	vectors := make([][]float32, num)
	for i := range vectors {
		vectors[i] = make([]float32, dimensions)
		for j := range vectors[i] {
			vectors[i][j] = r.Uniform(scale)
		}
	}

	return vectors
}
