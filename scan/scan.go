// Package scan provides two-pointer searches that converge from both ends of a slice.
package scan

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// TwoSum returns indices i < j with a[i]+a[j] == target.
// The slice must be sorted in ascending order.
func TwoSum[T constraints.Integer](a []T, target T) (i, j int, ok bool) {
	for i, j = 0, len(a)-1; i < j; {
		switch sum := a[i] + a[j]; {
		case sum == target:
			return i, j, true
		case sum < target:
			i++
		default:
			j--
		}
	}
	return -1, -1, false
}

// PairWithTarget returns two values of a, x <= y, that sum to target.
// A sorted copy of a is searched; a itself is not reordered.
func PairWithTarget[T constraints.Integer](a []T, target T) (x, y T, ok bool) {
	if len(a) < 2 {
		return 0, 0, false
	}
	b := slices.Clone(a)
	slices.Sort(b)
	i, j, ok := TwoSum(b, target)
	if !ok {
		return 0, 0, false
	}
	return b[i], b[j], true
}

// MaxArea returns the largest min(h[i], h[j]) * (j - i) over all i < j.
// The shorter side moves inward; on equal heights the low side moves.
// Areas are computed in T and wrap if max(h) * (len(h) - 1) overflows it.
func MaxArea[T constraints.Integer](h []T) T {
	var max T
	for i, j := 0, len(h)-1; i < j; {
		lo := h[i]
		if h[j] < lo {
			lo = h[j]
		}
		if area := lo * T(j-i); area > max {
			max = area
		}
		if h[i] <= h[j] {
			i++
		} else {
			j--
		}
	}
	return max
}
