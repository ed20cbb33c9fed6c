package kdgo

// Search walks the tree for query q, reporting candidates to v. It is the
// entry point behind SearchNN, SearchKNN and SearchRadius; custom
// accumulation policies can implement Visitor and ride the same traversal.
func (t *KDTree) Search(q []float32, v Visitor) error {
	if len(q) != t.dims {
		return &ErrDimensionMismatch{Expected: t.dims, Actual: len(q)}
	}

	t.search(q, t.nodes.At(t.root), v)
	return nil
}

// search descends into the half containing q first, then explores the far
// half only while the squared hyperplane distance can still beat the bound.
// At a leaf, each point is scored and reported only when strictly below the
// visitor's current bound.
func (t *KDTree) search(q []float32, n *node, v Visitor) {
	if n.isBranch() {
		d := q[n.dim] - n.split
		if d <= 0 {
			t.search(q, t.nodes.At(n.left), v)
			if v.Bound() > d*d {
				t.search(q, t.nodes.At(n.right), v)
			}
		} else {
			t.search(q, t.nodes.At(n.right), v)
			if v.Bound() > d*d {
				t.search(q, t.nodes.At(n.left), v)
			}
		}
		return
	}

	for i := n.begin; i < n.end; i++ {
		id := t.perm[i]
		if d := t.dist(q, id); d < v.Bound() {
			v.Visit(id, d)
		}
	}
}

// SearchNN returns the single nearest indexed point to q. Over a non-empty
// index it always yields a result.
func (t *KDTree) SearchNN(q []float32) (SearchResult, error) {
	v := newNNVisitor()
	if err := t.Search(q, v); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{ID: v.id, Distance: v.dist}, nil
}

// SearchKNN returns up to k nearest points to q in ascending distance order,
// equal distances ordered by ascending id. Fewer than k results are returned
// only when the index holds fewer than k points.
func (t *KDTree) SearchKNN(q []float32, k int) ([]SearchResult, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	if n := t.Len(); k > n {
		k = n
	}

	v := newKNNVisitor(k)
	if err := t.Search(q, v); err != nil {
		return nil, err
	}
	return v.items, nil
}

// SearchRadius returns every point whose squared distance to q is strictly
// less than radius, in no particular order. An empty result is a normal
// outcome, not an error.
func (t *KDTree) SearchRadius(q []float32, radius float32) ([]SearchResult, error) {
	v := &radiusVisitor{radius: radius}
	if err := t.Search(q, v); err != nil {
		return nil, err
	}
	return v.items, nil
}
