package kdgo

// selectNth partially reorders perm[lo:hi) along dim so that perm[nth] holds
// the identifier a full sort would place there: every earlier position has a
// coordinate no greater than it, every later position no smaller. This is an
// order-statistics step, not a sort; expected cost is linear in hi-lo.
func selectNth(ps PointSet, perm []uint32, lo, hi, nth, dim int) {
	for hi-lo > 1 {
		p := partition(ps, perm, lo, hi, medianOfThree(ps, perm, lo, hi, dim), dim)
		switch {
		case nth == p:
			return
		case nth < p:
			hi = p
		default:
			lo = p + 1
		}
	}
}

// partition moves the pivot identifier to its final ordered position within
// perm[lo:hi): identifiers with a smaller-or-equal coordinate end up before
// it, strictly greater ones after. Returns the pivot's final index.
func partition(ps PointSet, perm []uint32, lo, hi, pivot, dim int) int {
	last := hi - 1
	perm[pivot], perm[last] = perm[last], perm[pivot]
	pv := ps.Coord(perm[last], dim)

	i := lo
	for j := lo; j < last; j++ {
		if ps.Coord(perm[j], dim) <= pv {
			perm[i], perm[j] = perm[j], perm[i]
			i++
		}
	}

	perm[i], perm[last] = perm[last], perm[i]
	return i
}

// medianOfThree returns the index within perm of whichever of the first,
// middle and last coordinates of perm[lo:hi) is the median along dim.
// Deterministic pivoting keeps repeated builds over the same data identical.
func medianOfThree(ps PointSet, perm []uint32, lo, hi, dim int) int {
	mid := lo + (hi-lo)/2
	last := hi - 1

	a := ps.Coord(perm[lo], dim)
	b := ps.Coord(perm[mid], dim)
	c := ps.Coord(perm[last], dim)

	switch {
	case a < b:
		switch {
		case b < c:
			return mid
		case a < c:
			return last
		default:
			return lo
		}
	case a < c:
		return lo
	case b < c:
		return last
	default:
		return mid
	}
}
