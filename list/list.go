// Package list provides in-place algorithms for singly linked chains of nodes.
//
// A chain is given by its head; nil is the empty chain. Operations that
// restructure a chain return the new head. A chain may be made cyclic by
// pointing its tail back at an earlier node; such a link is a reference only,
// every node still belongs to the chain that created it.
//
// Values, Len and the cycle queries accept cyclic chains. The restructuring
// operations and Intersection require acyclic ones; check with HasCycle first.
package list

import "dasa.cc/chase/seq"

// Node holds a value and at most one successor.
type Node[T comparable] struct {
	V    T
	Next *Node[T]
}

// Succ returns n.Next.
func (n *Node[T]) Succ() *Node[T] { return n.Next }

// chain returns the successor function of linked nodes.
func chain[T comparable]() seq.Chain[*Node[T]] { return seq.Chain[*Node[T]]{} }

// FromSlice links vs in order and returns the head; nil if vs is empty.
func FromSlice[T comparable](vs ...T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range vs {
		n := &Node[T]{V: v}
		if tail == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// Values returns the values of each distinct node reachable from head in order.
// For a cyclic chain, traversal stops before the entry node repeats.
func Values[T comparable](head *Node[T]) []T {
	var vs []T
	walk(head, func(n *Node[T]) { vs = append(vs, n.V) })
	return vs
}

// Len returns the number of distinct nodes reachable from head.
func Len[T comparable](head *Node[T]) int {
	var k int
	walk(head, func(*Node[T]) { k++ })
	return k
}

// walk calls fn for each distinct node reachable from head.
func walk[T comparable](head *Node[T], fn func(*Node[T])) {
	stop, limit := (*Node[T])(nil), -1
	if d := Cycle(head); d.Exists {
		// every node of the tail is visited once, then every node of the cycle.
		stop, limit = d.Entry, d.Length
	}
	for n := head; n != nil; n = n.Next {
		if n == stop {
			for ; limit > 0; limit, n = limit-1, n.Next {
				fn(n)
			}
			return
		}
		fn(n)
	}
}

// Nth returns the node i steps from head, or nil if the chain is shorter.
func Nth[T comparable](head *Node[T], i int) *Node[T] {
	if head == nil || i < 0 {
		return nil
	}
	n, ok := seq.Step[*Node[T]](chain[T](), head, i)
	if !ok {
		return nil
	}
	return n
}

// Tail returns the last node of an acyclic chain and its length.
func Tail[T comparable](head *Node[T]) (tail *Node[T], n int) {
	for tail = head; tail != nil; tail = tail.Next {
		n++
		if tail.Next == nil {
			break
		}
	}
	return tail, n
}

// Loop points the tail of an acyclic chain at the node p steps from head, making it cyclic.
// Does nothing if p is out of range.
func Loop[T comparable](head *Node[T], p int) {
	to := Nth(head, p)
	if to == nil {
		return
	}
	tail, _ := Tail(head)
	tail.Next = to
}
