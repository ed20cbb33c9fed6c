// Package testutil provides helpers for tests and benchmarks: a seeded
// random generator for reproducible point sets and brute-force searches for
// ground truth.
package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// SearchResult represents a ground-truth search result.
type SearchResult struct {
	ID       uint32
	Distance float32
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := 0; i < num; i++ {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// squaredL2 is a reference implementation kept independent of the packages
// under test.
func squaredL2(a, b []float32) float32 {
	var sum float32
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum
}

// BruteForceKNN performs exact search for ground truth: the k nearest
// vectors to query by exhaustive squared L2 scan, ascending distance with
// equal distances ordered by ascending id.
func BruteForceKNN(vectors [][]float32, query []float32, k int) []SearchResult {
	results := make([]SearchResult, 0, len(vectors))
	for i, vec := range vectors {
		results = append(results, SearchResult{
			ID:       uint32(i),
			Distance: squaredL2(query, vec),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})

	if k < len(results) {
		results = results[:k]
	}

	return results
}

// BruteForceRadius returns all vectors with squared L2 distance to query
// strictly below radius, ordered by ascending id.
func BruteForceRadius(vectors [][]float32, query []float32, radius float32) []SearchResult {
	var results []SearchResult
	for i, vec := range vectors {
		if d := squaredL2(query, vec); d < radius {
			results = append(results, SearchResult{ID: uint32(i), Distance: d})
		}
	}
	return results
}
