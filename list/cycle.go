package list

import "dasa.cc/chase/cycle"

// Cycle describes the cycle reachable from head. Chains of fewer than two nodes
// have no cycle unless the single node points at itself.
func Cycle[T comparable](head *Node[T]) cycle.Descriptor[*Node[T]] {
	if head == nil || head.Next == nil {
		return cycle.Descriptor[*Node[T]]{}
	}
	return cycle.Analyze[*Node[T]](chain[T](), head)
}

// HasCycle reports whether following Next from head ever revisits a node.
func HasCycle[T comparable](head *Node[T]) bool {
	if head == nil || head.Next == nil {
		return false
	}
	_, ok := cycle.Detect[*Node[T]](chain[T](), head)
	return ok
}

// CycleStart returns the first node of head's chain that lies on a cycle, or nil.
func CycleStart[T comparable](head *Node[T]) *Node[T] {
	return Cycle(head).Entry
}

// CycleLength returns the number of nodes on the cycle, or 0 if there is none.
func CycleLength[T comparable](head *Node[T]) int {
	return Cycle(head).Length
}

// Intersection returns the first node shared by chains a and b, or nil if they are disjoint.
// Both chains must be acyclic.
func Intersection[T comparable](a, b *Node[T]) *Node[T] {
	if a == nil || b == nil {
		return nil
	}
	// each cursor walks its own chain then the other; both travel
	// len(a)+len(b) at most and line up at the shared suffix.
	p, q := a, b
	for p != q {
		if p == nil {
			p = b
		} else {
			p = p.Next
		}
		if q == nil {
			q = a
		} else {
			q = q.Next
		}
	}
	return p
}
