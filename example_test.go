package kdgo_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/kdgo"
)

func Example() {
	points := kdgo.Slice{
		{0, 0},
		{5, 5},
		{1, 1},
		{9, 0},
	}

	tree, err := kdgo.New(points, kdgo.WithMaxLeafSize(1))
	if err != nil {
		log.Fatal(err)
	}

	nearest, err := tree.SearchNN([]float32{0, 1})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("id=%d distance=%.0f\n", nearest.ID, nearest.Distance)
	// Output: id=0 distance=1
}

func ExampleKDTree_SearchKNN() {
	points := kdgo.Slice{
		{0, 0},
		{5, 5},
		{1, 1},
		{9, 0},
	}

	tree, err := kdgo.New(points, kdgo.WithMaxLeafSize(1))
	if err != nil {
		log.Fatal(err)
	}

	results, err := tree.SearchKNN([]float32{0, 1}, 2)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Printf("id=%d distance=%.0f\n", r.ID, r.Distance)
	}
	// Output:
	// id=0 distance=1
	// id=2 distance=1
}

func ExampleKDTree_SearchRadius() {
	points := kdgo.Slice{
		{0, 0},
		{5, 5},
		{1, 1},
		{9, 0},
	}

	tree, err := kdgo.New(points, kdgo.WithMaxLeafSize(1))
	if err != nil {
		log.Fatal(err)
	}

	results, err := tree.SearchRadius([]float32{0, 1}, 5)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(results), "points within radius")
	// Output: 2 points within radius
}

func ExampleNewFlat() {
	// Row-major coordinates, three 2-dimensional points.
	data := []float32{0, 0, 3, 4, 10, 10}

	tree, err := kdgo.New(kdgo.NewFlat(data, 2), kdgo.WithMaxLeafSize(1))
	if err != nil {
		log.Fatal(err)
	}

	nearest, err := tree.SearchNN([]float32{3, 3})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("id=%d distance=%.0f\n", nearest.ID, nearest.Distance)
	// Output: id=1 distance=1
}
