package seq

// Linked is implemented by singly linked nodes.
type Linked[N any] interface {
	comparable
	Succ() N
}

// Chain follows Succ until it returns the zero node.
type Chain[N Linked[N]] struct{}

// Next returns n.Succ(), or false at the end of the chain.
func (Chain[N]) Next(n N) (N, bool) {
	var zero N
	if n == zero {
		return zero, false
	}
	m := n.Succ()
	return m, m != zero
}
