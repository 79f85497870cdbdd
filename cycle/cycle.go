// Package cycle implements Floyd's tortoise and hare over any successor function.
// Beyond answering whether a cycle exists, this allows for locating the entry of the cycle and measuring its length in constant space.
package cycle

import "dasa.cc/chase/seq"

// Descriptor summarizes the cycle reachable from a start position.
// Entry is the zero position when no cycle exists.
type Descriptor[P comparable] struct {
	Exists bool
	Entry  P
	Length int
}

// Detect walks a slow cursor one step and a fast cursor two steps at a time from start.
// Returns the position where both meet, or false once any step has no successor.
func Detect[P comparable](s seq.Seq[P], start P) (meet P, ok bool) {
	slow, fast := start, start
	for {
		if slow, ok = s.Next(slow); !ok {
			return meet, false
		}
		if fast, ok = seq.Step(s, fast, 2); !ok {
			return meet, false
		}
		if slow == fast {
			return slow, true
		}
	}
}

// Entry returns the first position of the cycle, given a meeting point from Detect.
// The distance from start to the entry equals the distance from meet to the entry going around the cycle.
func Entry[P comparable](s seq.Seq[P], start, meet P) P {
	a, b := start, meet
	for a != b {
		a, _ = s.Next(a)
		b, _ = s.Next(b)
	}
	return a
}

// Length counts steps from meet until it is reached again; meet must lie on the cycle.
func Length[P comparable](s seq.Seq[P], meet P) int {
	n := 1
	for p, _ := s.Next(meet); p != meet; p, _ = s.Next(p) {
		n++
	}
	return n
}

// Analyze runs Detect, Entry and Length from start.
func Analyze[P comparable](s seq.Seq[P], start P) Descriptor[P] {
	meet, ok := Detect(s, start)
	if !ok {
		return Descriptor[P]{}
	}
	return Descriptor[P]{
		Exists: true,
		Entry:  Entry(s, start, meet),
		Length: Length(s, meet),
	}
}
