package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"dasa.cc/chase/happy"
	"dasa.cc/chase/jump"
	"dasa.cc/chase/list"
	"dasa.cc/chase/scan"
)

// ErrUnknownOp is returned for operation names not in the registry.
var ErrUnknownOp = errors.New("unknown operation")

// op evaluates one library operation. Leading arguments fill params in order,
// the remainder are the values of the chain or array.
type op struct {
	name   string
	params []string
	short  string
	fn     func(ps, vs []int) string
}

func (o op) usage() string {
	var b strings.Builder
	b.WriteString(o.name)
	for _, p := range o.params {
		fmt.Fprintf(&b, " <%s>", p)
	}
	if o.name != "happy" {
		b.WriteString(" <values...>")
	}
	return b.String()
}

var registry = make(map[string]op)

func register(ops ...op) {
	for _, o := range ops {
		registry[o.name] = o
	}
}

// names returns registered operation names in sorted order.
func names() []string {
	ns := make([]string, 0, len(registry))
	for name := range registry {
		ns = append(ns, name)
	}
	slices.Sort(ns)
	return ns
}

// chain builds a chain from vs and, if p >= 0, links its tail back to the p-th node.
func chain(p int, vs []int) *list.Node[int] {
	head := list.FromSlice(vs...)
	if p >= 0 {
		list.Loop(head, p)
	}
	return head
}

func value(n *list.Node[int]) string {
	if n == nil {
		return "none"
	}
	return strconv.Itoa(n.V)
}

func values(head *list.Node[int]) string { return fmt.Sprint(list.Values(head)) }

func init() {
	register(
		op{"middle", nil, "middle node of a chain; second middle for even length",
			func(_, vs []int) string { return value(list.Middle(list.FromSlice(vs...))) }},
		op{"reverse", nil, "reverse a chain",
			func(_, vs []int) string { return values(list.Reverse(list.FromSlice(vs...))) }},
		op{"reorder", nil, "reorder a chain as first, last, second, second last, ...",
			func(_, vs []int) string {
				head := list.FromSlice(vs...)
				list.Reorder(head)
				return values(head)
			}},
		op{"rotate", []string{"k"}, "rotate a chain right by k",
			func(ps, vs []int) string { return values(list.RotateRight(list.FromSlice(vs...), ps[0])) }},
		op{"remove-nth", []string{"n"}, "remove the n-th node from the end of a chain",
			func(ps, vs []int) string { return values(list.RemoveNthFromEnd(list.FromSlice(vs...), ps[0])) }},
		op{"palindrome", nil, "report whether a chain reads the same both ways",
			func(_, vs []int) string { return strconv.FormatBool(list.IsPalindrome(list.FromSlice(vs...))) }},
		op{"has-cycle", []string{"pos"}, "report whether a chain whose tail links to node pos (-1 for none) is cyclic",
			func(ps, vs []int) string { return strconv.FormatBool(list.HasCycle(chain(ps[0], vs))) }},
		op{"cycle-start", []string{"pos"}, "value of the first node on the cycle, tail linked to node pos",
			func(ps, vs []int) string { return value(list.CycleStart(chain(ps[0], vs))) }},
		op{"cycle-length", []string{"pos"}, "number of nodes on the cycle, tail linked to node pos",
			func(ps, vs []int) string { return strconv.Itoa(list.CycleLength(chain(ps[0], vs))) }},
		op{"intersection", []string{"na", "nb"}, "first shared node of chains a and b; the first na values are a, the next nb are b, the rest are shared",
			intersection},
		op{"two-sum", []string{"target"}, "indices of two values of a sorted array summing to target",
			func(ps, vs []int) string {
				i, j, ok := scan.TwoSum(vs, ps[0])
				if !ok {
					return "none"
				}
				return fmt.Sprintf("%d %d", i, j)
			}},
		op{"pair", []string{"target"}, "two values of an unsorted array summing to target",
			func(ps, vs []int) string {
				x, y, ok := scan.PairWithTarget(vs, ps[0])
				if !ok {
					return "none"
				}
				return fmt.Sprintf("%d %d", x, y)
			}},
		op{"max-area", nil, "largest container area between two heights",
			func(_, vs []int) string { return strconv.Itoa(scan.MaxArea(vs)) }},
		op{"duplicate", nil, "the repeated value of n+1 values drawn from 1..n",
			func(_, vs []int) string {
				d, ok := jump.Duplicate(vs)
				if !ok {
					return "none"
				}
				return strconv.Itoa(d)
			}},
		op{"happy", []string{"n"}, "report whether n is a happy number",
			func(ps, _ []int) string { return strconv.FormatBool(happy.IsHappy(ps[0])) }},
		op{"circular-loop", nil, "report whether an array of jumps holds a same-direction loop longer than one",
			func(_, vs []int) string { return strconv.FormatBool(jump.CircularLoop(vs)) }},
	)
}

func intersection(ps, vs []int) string {
	na, nb := ps[0], ps[1]
	if na < 0 || nb < 0 || na+nb > len(vs) {
		return "none"
	}
	a, b, shared := list.FromSlice(vs[:na]...), list.FromSlice(vs[na:na+nb]...), list.FromSlice(vs[na+nb:]...)
	join := func(head *list.Node[int]) *list.Node[int] {
		if head == nil {
			return shared
		}
		tail, _ := list.Tail(head)
		tail.Next = shared
		return head
	}
	return value(list.Intersection(join(a), join(b)))
}

// evaluate runs the named operation over integer arguments.
func evaluate(name string, args []string) (string, error) {
	o, ok := registry[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownOp, "%q", name)
	}
	if len(args) < len(o.params) {
		return "", errors.Errorf("%s: want %d parameters, have %d; usage: %s", name, len(o.params), len(args), o.usage())
	}
	xs := make([]int, len(args))
	for i, s := range args {
		x, err := strconv.Atoi(s)
		if err != nil {
			return "", errors.Wrapf(err, "%s: argument %d", name, i)
		}
		xs[i] = x
	}
	return o.fn(xs[:len(o.params)], xs[len(o.params):]), nil
}

// evaluateLine splits line into an operation name and its arguments.
func evaluateLine(line string) (string, error) {
	fs := strings.Fields(strings.NewReplacer(",", " ", "[", " ", "]", " ").Replace(line))
	if len(fs) == 0 {
		return "", nil
	}
	return evaluate(fs[0], fs[1:])
}
