// Package reduce provides the lane map and the fixed-order reductions used by
// the least-squares solver.
//
// Fixed-point sums wrap, so the order in which lanes are combined is part of
// the result whenever an intermediate overflows. Every reduction here follows
// an explicit, reproducible pairing schedule that does not depend on how the
// lanes were computed.
package reduce

import (
	"fmt"
	"iter"
)

// Order selects the pairing schedule of a reduction.
type Order uint8

const (
	// Pairwise combines lanes in a stride-doubling binary tree. For eight lanes
	// the schedule is (6,7)->6 (4,5)->4 (2,3)->2 (0,1)->0, then (4,6)->4
	// (0,2)->0, then (0,4)->0, matching the hand-unrolled hardware kernel.
	Pairwise Order = iota
	// Sequential folds lanes left to right into lane 0.
	Sequential
)

func (o Order) String() string {
	switch o {
	case Pairwise:
		return "pairwise"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o == Pairwise || o == Sequential
}

// Pair is one combine step: lanes[Dst] = combine(lanes[Dst], lanes[Src]).
// Steps with the same Level are independent of each other.
type Pair struct {
	Level int
	Dst   int
	Src   int
}

// Pairs yields the combine steps for n lanes in execution order.
func Pairs(n int, order Order) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		switch order {
		case Sequential:
			for i := 1; i < n; i++ {
				if !yield(Pair{Level: i - 1, Dst: 0, Src: i}) {
					return
				}
			}
		default:
			level := 0
			for stride := 1; stride < n; stride *= 2 {
				// Highest pair first, like the unrolled kernel.
				last := ((n - 1 - stride) / (2 * stride)) * (2 * stride)
				for i := last; i >= 0; i -= 2 * stride {
					if !yield(Pair{Level: level, Dst: i, Src: i + stride}) {
						return
					}
				}
				level++
			}
		}
	}
}

// Depth returns the number of levels a reduction of n lanes takes.
func Depth(n int, order Order) int {
	if n <= 1 {
		return 0
	}
	if order == Sequential {
		return n - 1
	}

	depth := 0
	for stride := 1; stride < n; stride *= 2 {
		depth++
	}

	return depth
}

// Reduce combines lanes in place following order and returns the total held
// in lanes[0]. The contents of the other lanes are left as partial sums.
// An empty slice reduces to the zero value.
func Reduce[T any](lanes []T, order Order, combine func(a, b T) T) T {
	var zero T
	if len(lanes) == 0 {
		return zero
	}

	for p := range Pairs(len(lanes), order) {
		lanes[p.Dst] = combine(lanes[p.Dst], lanes[p.Src])
	}

	return lanes[0]
}
