package kdgo

import "math"

// maxDistance is the pruning bound before any candidate has been kept.
var maxDistance = float32(math.Inf(1))

// Visitor accumulates candidate points during a traversal and exposes the
// current pruning bound: the squared distance at or beyond which no further
// candidate can improve the result. The traversal reports a candidate only
// when its distance is strictly below Bound, and skips subtrees whose
// minimum possible distance is not below it.
//
// A Visitor holds per-query state and must not be shared between concurrent
// queries.
type Visitor interface {
	// Visit records a candidate point and its squared distance. Visit is
	// only called with dist < Bound().
	Visit(id uint32, dist float32)

	// Bound returns the current worst-acceptable squared distance.
	Bound() float32
}

// Compile-time checks that the three accumulation policies satisfy Visitor.
var (
	_ Visitor = (*nnVisitor)(nil)
	_ Visitor = (*knnVisitor)(nil)
	_ Visitor = (*radiusVisitor)(nil)
)

// nnVisitor keeps the single best candidate seen so far.
type nnVisitor struct {
	id   uint32
	dist float32
}

func newNNVisitor() *nnVisitor {
	return &nnVisitor{dist: maxDistance}
}

// Visit replaces the kept candidate. The traversal only reports candidates
// strictly below Bound, so every replacement is an improvement.
func (v *nnVisitor) Visit(id uint32, dist float32) {
	v.id, v.dist = id, dist
}

func (v *nnVisitor) Bound() float32 { return v.dist }

// knnVisitor keeps up to k candidates in ascending distance order, equal
// distances ordered by ascending id.
type knnVisitor struct {
	k     int
	items []SearchResult
}

func newKNNVisitor(k int) *knnVisitor {
	return &knnVisitor{k: k, items: make([]SearchResult, 0, k)}
}

// Visit inserts the candidate by shifting larger entries one slot toward the
// end, dropping the previous worst once k candidates are held. Insertion is
// O(k), but the traversal's bound check keeps most points from reaching it.
func (v *knnVisitor) Visit(id uint32, dist float32) {
	if len(v.items) < v.k {
		v.items = append(v.items, SearchResult{})
	}

	i := len(v.items) - 1
	for ; i > 0; i-- {
		prev := v.items[i-1]
		if prev.Distance > dist || (prev.Distance == dist && prev.ID > id) {
			v.items[i] = prev
		} else {
			break
		}
	}

	v.items[i] = SearchResult{ID: id, Distance: dist}
}

func (v *knnVisitor) Bound() float32 {
	if len(v.items) < v.k {
		return maxDistance
	}
	return v.items[len(v.items)-1].Distance
}

// radiusVisitor keeps every reported candidate. The bound is the fixed
// squared radius, so the traversal's strict comparison against it is what
// enforces membership.
type radiusVisitor struct {
	radius float32
	items  []SearchResult
}

func (v *radiusVisitor) Visit(id uint32, dist float32) {
	v.items = append(v.items, SearchResult{ID: id, Distance: dist})
}

func (v *radiusVisitor) Bound() float32 { return v.radius }
