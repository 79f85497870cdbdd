package list

// Middle returns the middle node; for an even number of nodes, the second of the two middles.
// The chain must be acyclic.
func Middle[T comparable](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
	}
	return slow
}

// endOfFirstHalf returns the last node of the first half; for an odd number of nodes the middle belongs to the first half.
func endOfFirstHalf[T comparable](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast.Next != nil && fast.Next.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
	}
	return slow
}

// Reverse reverses the acyclic chain and returns the new head.
func Reverse[T comparable](head *Node[T]) *Node[T] {
	return ReverseUntil(head, nil)
}

// ReverseUntil reverses the sub-chain from head up to but excluding stop, returning its new head.
// The old head is left pointing at stop so the sub-chain stays attached to the rest.
func ReverseUntil[T comparable](head, stop *Node[T]) *Node[T] {
	prev, n := stop, head
	for n != nil && n != stop {
		n.Next, prev, n = prev, n, n.Next
	}
	if prev == stop {
		return head
	}
	return prev
}

// Split severs the link after at and returns the detached remainder.
func Split[T comparable](at *Node[T]) *Node[T] {
	if at == nil {
		return nil
	}
	rest := at.Next
	at.Next = nil
	return rest
}

// Merge interleaves b into a, one node of a then one node of b, for as long as b has nodes.
// Returns the head of the merged chain; nodes of b left over when a runs out are appended.
func Merge[T comparable](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	for p, q := a, b; q != nil; {
		pn, qn := p.Next, q.Next
		p.Next = q
		if pn == nil {
			break
		}
		q.Next = pn
		p, q = pn, qn
	}
	return a
}

// Reorder rearranges n0, n1, ..., nk into n0, nk, n1, nk-1, ... in place.
// The chain must be acyclic.
func Reorder[T comparable](head *Node[T]) {
	if head == nil || head.Next == nil || head.Next.Next == nil {
		return
	}
	second := Reverse(Split(endOfFirstHalf(head)))
	Merge(head, second)
}

// RotateRight moves the last k nodes to the front and returns the new head.
// Rotating by a multiple of the length, or by k <= 0, returns head unchanged.
// The chain must be acyclic.
func RotateRight[T comparable](head *Node[T], k int) *Node[T] {
	if head == nil || head.Next == nil || k <= 0 {
		return head
	}
	tail, n := Tail(head)
	if k %= n; k == 0 {
		return head
	}
	tail.Next = head // ring
	newTail := Nth(head, n-k-1)
	newHead := newTail.Next
	newTail.Next = nil
	return newHead
}

// RemoveNthFromEnd unlinks the n-th node counting back from the tail, where n = 1 is the tail.
// Returns the new head; if n <= 0 or n exceeds the length, the chain is unchanged.
// The chain must be acyclic.
func RemoveNthFromEnd[T comparable](head *Node[T], n int) *Node[T] {
	if head == nil || n <= 0 {
		return head
	}
	sentinel := &Node[T]{Next: head}
	ahead, behind := sentinel, sentinel
	for i := 0; i < n; i++ {
		if ahead = ahead.Next; ahead == nil {
			return head
		}
	}
	for ahead.Next != nil {
		ahead, behind = ahead.Next, behind.Next
	}
	behind.Next = behind.Next.Next
	return sentinel.Next
}

// IsPalindrome reports whether the values read the same forward and backward.
// The second half is reversed for comparison and always restored before returning.
// The empty chain is a palindrome. The chain must be acyclic.
func IsPalindrome[T comparable](head *Node[T]) (ok bool) {
	if head == nil || head.Next == nil {
		return true
	}
	mid := endOfFirstHalf(head)
	second := Reverse(mid.Next)
	defer func() { mid.Next = Reverse(second) }()

	for p, q := head, second; q != nil; p, q = p.Next, q.Next {
		if p.V != q.V {
			return false
		}
	}
	return true
}
