// Package jump finds cycles in integer arrays whose entries point at other indices.
package jump

import (
	"dasa.cc/chase/cycle"
	"dasa.cc/chase/seq"
)

// Duplicate returns the repeated value of a slice of n+1 values drawn from [1, n].
// Indices are positions and values are successors; the repeated value is the entry of the cycle reachable from index 0.
// Slices shorter than two report false. Values outside [1, len(a)-1] are undefined.
func Duplicate(a []int) (int, bool) {
	if len(a) < 2 {
		return 0, false
	}
	d := cycle.Analyze[int](seq.Values(a), 0)
	if !d.Exists {
		return 0, false
	}
	return d.Entry, true
}

// CircularLoop reports whether a, read as jumps around a circle, holds a loop
// longer than one position whose jumps all go the same direction.
// The slice is not modified.
func CircularLoop(a []int) bool {
	_, ok := Loop(a)
	return ok
}

// Loop returns a position on a direction-constrained loop, see CircularLoop.
//
// A start whose search fails leaves its whole path marked, so each position
// begins a search at most once and the scan is linear overall.
func Loop(a []int) (int, bool) {
	if len(a) < 2 {
		return -1, false
	}
	return loop(seq.NewDirected(a))
}

// marker is a successor function that can retire positions, as seq.Directed does.
type marker interface {
	seq.Seq[int]
	Mark(i int)
	Visited(i int) bool
	Len() int
}

func loop(d marker) (int, bool) {
	for i := 0; i < d.Len(); i++ {
		if d.Visited(i) {
			continue
		}
		if meet, ok := cycle.Detect[int](d, i); ok {
			return meet, true
		}
		for j, ok := i, true; ok; {
			var next int
			next, ok = d.Next(j)
			d.Mark(j)
			j = next
		}
	}
	return -1, false
}
