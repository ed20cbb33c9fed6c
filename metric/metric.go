// Package metric provides distance functions for float32 coordinate vectors.
//
// All functions assume both arguments have the same length; validating
// dimensionality is the caller's responsibility.
package metric

import "github.com/viant/vec/search"

// SquaredL2 returns the squared Euclidean distance between v1 and v2.
//
// The squared form avoids a square root per comparison and keeps "closer"
// strictly equivalent to "smaller" under the same monotone transform used
// for k-d tree pruning bounds.
func SquaredL2(v1, v2 []float32) float32 {
	var sum float32

	for i, v := range v1 {
		d := v - v2[i]
		sum += d * d
	}

	return sum
}

// SquaredL2Accel returns the squared Euclidean distance between v1 and v2
// using SIMD-accelerated vector primitives. The result may differ from
// SquaredL2 by a small rounding error but remains a valid drop-in metric:
// it is non-negative and monotone in each coordinate's absolute difference.
func SquaredL2Accel(v1, v2 []float32) float32 {
	d := search.Float32s(v1).EuclideanDistance(v2)
	return d * d
}
