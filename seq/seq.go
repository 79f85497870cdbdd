// Package seq provides successor functions over implicit functional graphs.
//
// A position's successor is either another position or none. Chains of nodes,
// arrays of jumps and plain integer maps are all viewed through the same Seq
// interface so the cycle package never needs to know what it is walking.
package seq

// Seq maps a position to its successor; ok is false when there is none.
type Seq[P comparable] interface {
	Next(p P) (q P, ok bool)
}

// Func adapts an ordinary function to Seq.
type Func[P comparable] func(P) (P, bool)

// Next calls f(p).
func (f Func[P]) Next(p P) (P, bool) { return f(p) }

// Total adapts a function defined for every position, such as a digit map.
func Total[P comparable](f func(P) P) Func[P] {
	return func(p P) (P, bool) { return f(p), true }
}

// Step advances k times from p. If a successor runs out, the last reached
// position is returned with ok false.
func Step[P comparable](s Seq[P], p P, k int) (P, bool) {
	for ; k > 0; k-- {
		q, ok := s.Next(p)
		if !ok {
			return p, false
		}
		p = q
	}
	return p, true
}

// pmod returns positive modulo for inputs.
func pmod(x, n int) int { return (x%n + n) % n }
