// Package kdgo provides a static k-d tree spatial index for Go.
//
// Kdgo builds a balanced binary partition tree once over a fixed point set
// and then answers any number of exact nearest-neighbor, k-nearest-neighbor
// and fixed-radius queries against it. There is no I/O, no persistence and
// no mutation after construction: the index is a pure in-process structure.
//
// # Quick Start
//
//	points := kdgo.Slice{
//		{0, 0},
//		{5, 5},
//		{1, 1},
//		{9, 0},
//	}
//
//	tree, _ := kdgo.New(points, kdgo.WithMaxLeafSize(1))
//
//	nearest, _ := tree.SearchNN([]float32{0, 1})
//	fmt.Println(nearest.ID, nearest.Distance)
//
//	knn, _ := tree.SearchKNN([]float32{0, 1}, 2)
//	within, _ := tree.SearchRadius([]float32{0, 1}, 5)
//
// Points are addressed through the PointSet interface, so the index can sit
// directly on top of an application's own storage without copying
// coordinates. Two ready-made adapters are provided: Slice for [][]float32
// data and Flat for contiguous row-major data.
//
// # Distances
//
// All distances are squared Euclidean by default. The squared form avoids a
// square root per comparison and keeps "closer" strictly equivalent to
// "smaller", which is what the branch-and-bound pruning relies on. A custom
// metric can be supplied with WithDistanceFunc as long as it stays comparable
// with squared-distance bounds.
//
// # Concurrency
//
// A built index is immutable. Any number of goroutines may query the same
// tree concurrently without synchronization; construction must complete
// before the first query and is not itself thread-safe.
package kdgo
