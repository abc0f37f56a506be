// Package hilbert_test demonstrates the exported Hilbert encode/decode and
// sort API via runnable examples.
package hilbert_test

import (
	"fmt"

	"github.com/dmaksimov/hilbertcluster/hilbert"
	"github.com/dmaksimov/hilbertcluster/point"
)

// ExampleIndex_roundTrip shows that Coords(Index(x, B), D, B) recovers x,
// spec.md's property P1.
func ExampleIndex_roundTrip() {
	// 1) A 4-dimensional point, each coordinate fitting in 6 bits.
	coords := []uint32{5, 17, 23, 2}

	// 2) Encode to its Hilbert index at 6 bits/dimension.
	idx, err := hilbert.Index(coords, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Decode back; the 24-bit index (6 bits * 4 dims) must recover the
	//    original tuple exactly.
	back, err := hilbert.Coords(idx, len(coords), 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(back)
	// Output: [5 17 23 2]
}

// ExampleIndex_zeroBits shows that bits=0 always collapses to index 0.
func ExampleIndex_zeroBits() {
	idx, err := hilbert.Index([]uint32{5, 9, 100}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(idx)
	// Output: 0
}

// ExampleSort orders a handful of 2-D points by their Hilbert index.
func ExampleSort() {
	// 1) Four points placed at the corners of a unit square in 2-bit space.
	pts := make([]*point.Point, 0, 4)
	corners := [][2]uint32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for i, c := range corners {
		p, _ := point.New(point.ID(i+1), []uint32{c[0], c[1]}, 1)
		pts = append(pts, p)
	}

	// 2) Sort at 1 bit/dim with no permutation and no balancing.
	ordering, err := hilbert.Sort(pts, 1, nil, nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ordering)
	// Output: [1 2 4 3]
}

// ExampleEstimateCoarseness reports that two identical points always share
// every cell, regardless of bit depth.
func ExampleEstimateCoarseness() {
	a, _ := point.New(1, []uint32{4, 4}, 0)
	b, _ := point.New(2, []uint32{4, 4}, 0)

	c, err := hilbert.EstimateCoarseness([]hilbert.Cell{a, b}, 3, 10, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c[0], c[3])
	// Output: 1 1
}
