// Package complete provides fuzzy matching of command names by shared trigrams.
package complete

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// sorted must be sorted in ascending order.
type sorted[T constraints.Ordered] []T

// insert x in place if not exists; returns x index and true if inserted.
func (a *sorted[T]) insert(x T) (i int, ok bool) {
	i = sort.Search(len(*a), func(i int) bool { return (*a)[i] >= x })
	if ok = i == len(*a) || (*a)[i] != x; ok {
		*a = append(*a, *new(T))
		copy((*a)[i+1:], (*a)[i:])
		(*a)[i] = x
	}
	return
}

func (a sorted[T]) index(x T) (int, bool) {
	i := sort.Search(len(a), func(i int) bool { return a[i] >= x })
	return i, i < len(a) && a[i] == x
}

// Index maps trigrams to the names containing them; zero value is valid.
type Index struct {
	ks sorted[string]   // trigrams
	vs []sorted[string] // names per trigram
}

// Add parses and stores trigrams for each name.
func (x *Index) Add(names ...string) {
	for _, s := range names {
		for _, t := range Parse(s) {
			i, ok := x.ks.insert(t)
			if ok {
				x.vs = append(x.vs, nil)
				copy(x.vs[i+1:], x.vs[i:])
				x.vs[i] = sorted[string]{s}
			} else {
				x.vs[i].insert(s)
			}
		}
	}
}

// Match returns indexed names sharing at least min of q's trigrams, with unit scores.
// Names with q as a prefix are ordered first, then by descending score.
func (x Index) Match(q string, min float64) ([]string, []float64) {
	var p sorted[string]
	var u []float64

	tg := Parse(q)
	for _, s := range tg {
		i, ok := x.ks.index(s)
		if !ok {
			continue
		}
		for _, t := range x.vs[i] {
			j, ok := p.insert(t)
			if ok {
				u = append(u, 0)
				copy(u[j+1:], u[j:])
				u[j] = 0
			}
			u[j]++
		}
	}

	var ms []match
	for i, s := range p {
		if w := u[i] / float64(len(tg)); min <= w {
			ms = append(ms, match{s, w, strings.HasPrefix(s, q)})
		}
	}
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].prefix != ms[j].prefix {
			return ms[i].prefix
		}
		return ms[i].score > ms[j].score
	})

	names, scores := make([]string, len(ms)), make([]float64, len(ms))
	for i, m := range ms {
		names[i], scores[i] = m.name, m.score
	}
	return names, scores
}

type match struct {
	name   string
	score  float64
	prefix bool
}

// Parse returns the sorted distinct trigrams of s after lower casing and
// treating anything but letters and digits as a word boundary.
func Parse(s string) []string {
	var p sorted[string]
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, t := range fields {
		t = "\x00\x00" + t + "\x00"
		for i := 0; i <= len(t)-3; i++ {
			p.insert(t[i : i+3])
		}
	}
	return p
}
