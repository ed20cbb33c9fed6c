package kdgo

import (
	"log/slog"

	"github.com/hupe1980/kdgo/internal/arena"
	"github.com/hupe1980/kdgo/metric"
)

// DistanceFunc scores a query point against an indexed point, returning a
// non-negative squared dissimilarity.
type DistanceFunc func(q []float32, id uint32) float32

// SearchResult represents a single query match.
type SearchResult struct {
	// ID is the identifier of the matched point.
	ID uint32

	// Distance is the squared distance between the query and the match.
	Distance float32
}

// noNode marks an absent child link. A node is a leaf iff both links are
// absent; no separate tag is stored.
const noNode int32 = -1

// node is either a branch (a split plane plus two children) or a leaf (a
// contiguous half-open range of permutation positions).
type node struct {
	split       float32 // branch: split coordinate along dim
	dim         int32   // branch: split dimension
	left, right int32   // branch: arena indices of the children
	begin, end  int32   // leaf: half-open range into the permutation
}

func (n *node) isBranch() bool { return n.left != noNode }

// KDTree is a static spatial index over a fixed set of points. It is built
// once by New and is immutable afterwards; see the package documentation for
// the concurrency guarantees.
type KDTree struct {
	ps    PointSet
	dist  DistanceFunc
	dims  int
	perm  []uint32
	nodes *arena.Arena[node]
	root  int32
	opts  Options
}

// New builds an index over ps. It returns an error if ps is nil or empty,
// reports a non-positive dimensionality, or the configured leaf size is
// below 1. Construction partially reorders an internal permutation of point
// identifiers; ps itself is never written to.
func New(ps PointSet, optFns ...func(o *Options)) (*KDTree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxLeafSize < 1 {
		return nil, ErrInvalidLeafSize
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	if ps == nil || ps.Len() == 0 {
		return nil, ErrEmptyPointSet
	}

	dims := ps.Dims()
	if dims < 1 {
		return nil, &ErrInvalidDimension{Dimension: dims}
	}

	dist := opts.DistanceFunc
	if dist == nil {
		dist = squaredL2Distance(ps)
	}

	n := ps.Len()
	t := &KDTree{
		ps:    ps,
		dist:  dist,
		dims:  dims,
		perm:  make([]uint32, n),
		nodes: arena.New[node](maxNodes(n, opts.MaxLeafSize)),
		opts:  opts,
	}

	for i := range t.perm {
		t.perm[i] = uint32(i)
	}

	t.root = t.split(0, n, 0)

	opts.Logger.Debug("kdtree built",
		slog.Int("points", n),
		slog.Int("dimension", dims),
		slog.Int("max_leaf_size", opts.MaxLeafSize),
		slog.Int("nodes", t.nodes.Len()),
	)

	return t, nil
}

// Len returns the number of indexed points.
func (t *KDTree) Len() int { return t.ps.Len() }

// Dims returns the dimensionality of the indexed points.
func (t *KDTree) Dims() int { return t.dims }

// MaxLeafSize returns the configured leaf size threshold.
func (t *KDTree) MaxLeafSize() int { return t.opts.MaxLeafSize }

// split builds the subtree over perm[offset:offset+size), splitting along
// dim, and returns its arena index. The parent pointer stays valid across
// the child recursion because the arena capacity is exact and never grows.
func (t *KDTree) split(offset, size, dim int) int32 {
	idx, n := t.nodes.Alloc()

	if size <= t.opts.MaxLeafSize {
		n.left, n.right = noNode, noNode
		n.begin, n.end = int32(offset), int32(offset+size)
		return idx
	}

	leftSize := size / 2
	mid := offset + leftSize
	selectNth(t.ps, t.perm, offset, offset+size, mid, dim)

	nextDim := dim + 1
	if nextDim == t.dims {
		nextDim = 0
	}

	n.split = t.ps.Coord(t.perm[mid], dim)
	n.dim = int32(dim)
	n.left = t.split(offset, leftSize, nextDim)
	n.right = t.split(mid, size-leftSize, nextDim)

	return idx
}

// squaredL2Distance builds the default metric over ps, preferring
// whole-vector access when the point set provides it.
func squaredL2Distance(ps PointSet) DistanceFunc {
	if va, ok := ps.(VectorAccessor); ok {
		return func(q []float32, id uint32) float32 {
			return metric.SquaredL2(q, va.Vector(id))
		}
	}

	dims := ps.Dims()

	return func(q []float32, id uint32) float32 {
		var sum float32
		for d := 0; d < dims; d++ {
			v := q[d] - ps.Coord(id, d)
			sum += v * v
		}
		return sum
	}
}

// maxNodes returns the exact number of nodes the halving recursion produces
// for n points, computed without building the tree. Sub-range sizes at any
// depth take at most a handful of distinct values, so this runs in O(log n).
func maxNodes(n, maxLeafSize int) int {
	total := 0
	sizes := map[int]int{n: 1}

	for len(sizes) > 0 {
		next := make(map[int]int, 2*len(sizes))
		for size, count := range sizes {
			total += count
			if size <= maxLeafSize {
				continue
			}
			left := size / 2
			next[left] += count
			next[size-left] += count
		}
		sizes = next
	}

	return total
}
