// Package arena provides a pre-sized, append-only allocation pool.
//
// An Arena is sized once at creation and never grows: Alloc hands out slots
// from a single backing slab, so both the returned index and the returned
// pointer stay valid across later allocations. This is what lets a recursive
// tree builder hold a parent node's address while allocating its children.
package arena

import "fmt"

// Arena is a fixed-capacity append-only pool of T.
type Arena[T any] struct {
	items []T
}

// New returns an arena with room for capacity items.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Alloc appends a zero item and returns its index and address. It panics on
// exhaustion: capacity is an upper bound computed by the caller before any
// allocation, so running out is a programming error rather than a runtime
// condition.
func (a *Arena[T]) Alloc() (int32, *T) {
	if len(a.items) == cap(a.items) {
		panic(fmt.Sprintf("arena: capacity %d exhausted", cap(a.items)))
	}
	var zero T
	a.items = append(a.items, zero)
	idx := int32(len(a.items) - 1)
	return idx, &a.items[idx]
}

// At returns the address of the item at index idx.
func (a *Arena[T]) At(idx int32) *T { return &a.items[idx] }

// Len returns the number of allocated items.
func (a *Arena[T]) Len() int { return len(a.items) }

// Cap returns the fixed capacity.
func (a *Arena[T]) Cap() int { return cap(a.items) }
