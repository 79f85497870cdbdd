package seq

// Jump treats each entry as a signed jump distance; the array wraps around.
// A jump landing back on its own index has no successor.
type Jump []int

// Next returns (i + a[i]) wrapped into [0, len(a)).
func (a Jump) Next(i int) (int, bool) {
	n := len(a)
	if n == 0 || i < 0 || i >= n {
		return i, false
	}
	j := pmod(i+a[i], n)
	if j == i {
		return i, false
	}
	return j, true
}

// Directed is a Jump that refuses to change direction. Transitions from a
// zero entry, into an entry of opposite sign, or from or into a visited
// position have no successor.
//
// Visited state is local to the Directed value; the underlying array is never
// written.
type Directed struct {
	a       []int
	visited []uint64
}

// NewDirected returns a Directed view over a with nothing visited.
func NewDirected(a []int) *Directed {
	return &Directed{a: a, visited: make([]uint64, (len(a)+63)/64)}
}

// Next returns the successor of i if the move keeps the sign of a[i].
func (d *Directed) Next(i int) (int, bool) {
	if i < 0 || i >= len(d.a) || d.a[i] == 0 || d.Visited(i) {
		return i, false
	}
	j, ok := Jump(d.a).Next(i)
	if !ok || d.Visited(j) || (d.a[i] > 0) != (d.a[j] > 0) {
		return i, false
	}
	return j, true
}

// Mark removes i from any future traversal.
func (d *Directed) Mark(i int) { d.visited[i/64] |= 1 << (uint(i) % 64) }

// Visited reports whether i was marked.
func (d *Directed) Visited(i int) bool { return d.visited[i/64]&(1<<(uint(i)%64)) != 0 }

// Len returns the number of positions.
func (d *Directed) Len() int { return len(d.a) }

// Values treats each entry as the index of the next position. Entries out of
// range have no successor.
type Values []int

// Next returns a[i].
func (a Values) Next(i int) (int, bool) {
	if i < 0 || i >= len(a) {
		return i, false
	}
	if j := a[i]; j >= 0 && j < len(a) {
		return j, true
	}
	return i, false
}
