// Package happy decides happy numbers by cycle detection on the digit square sum.
package happy

import (
	"dasa.cc/chase/cycle"
	"dasa.cc/chase/seq"
)

// Next returns the sum of the squares of the decimal digits of n.
func Next(n int) int {
	var sum int
	for ; n > 0; n /= 10 {
		d := n % 10
		sum += d * d
	}
	return sum
}

// IsHappy reports whether repeated application of Next starting at n reaches 1.
// Every start eventually cycles; n is happy when that cycle is the fixed point 1.
// Zero and negative numbers are not happy.
func IsHappy(n int) bool {
	if n <= 0 {
		return false
	}
	meet, _ := cycle.Detect[int](seq.Total(Next), n)
	return meet == 1
}
