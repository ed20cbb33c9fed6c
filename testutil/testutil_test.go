package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG(t *testing.T) {
	t.Run("Reproducible", func(t *testing.T) {
		a := NewRNG(42).UniformVectors(10, 4)
		b := NewRNG(42).UniformVectors(10, 4)
		assert.Equal(t, a, b)
	})

	t.Run("Range", func(t *testing.T) {
		dst := make([]float32, 100)
		NewRNG(1).FillUniformRange(dst, -2, 2)
		for _, v := range dst {
			assert.GreaterOrEqual(t, v, float32(-2))
			assert.Less(t, v, float32(2))
		}
	})
}

func TestBruteForceKNN(t *testing.T) {
	vectors := [][]float32{
		{0, 0},
		{3, 0},
		{1, 0},
		{0, 1},
	}

	results := BruteForceKNN(vectors, []float32{0, 0}, 3)
	require.Len(t, results, 3)
	assert.Equal(t, uint32(0), results[0].ID)
	assert.Equal(t, float32(0), results[0].Distance)

	// Equal distances order by id: points 2 and 3 are both at distance 1.
	assert.Equal(t, uint32(2), results[1].ID)
	assert.Equal(t, uint32(3), results[2].ID)
}

func TestBruteForceRadius(t *testing.T) {
	vectors := [][]float32{
		{0, 0},
		{3, 0},
		{1, 0},
	}

	results := BruteForceRadius(vectors, []float32{0, 0}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, uint32(0), results[0].ID)
	assert.Equal(t, uint32(2), results[1].ID)
}
