package kdgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPointSet is returned when an index is constructed over zero points.
	ErrEmptyPointSet = errors.New("point set is empty")

	// ErrInvalidLeafSize is returned when the leaf size threshold is not positive.
	ErrInvalidLeafSize = errors.New("max leaf size must be positive")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// ErrDimensionMismatch indicates a query/index dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a point set reporting a non-positive
// dimensionality.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
