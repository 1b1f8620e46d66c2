package dtw

import "github.com/katalvlaran/glyphid/geom"

// Distance computes the greedy dynamic-time-warping distance between s and
// o under measure, and returns the mean cost per warp step.
//
// Algorithm (the greedy walk is the contract, not an optimization
// target — see the package doc):
//
//  1. r := measure(s[0], o[0]); l := 1.
//  2. While both remainders have more than one point, evaluate the three
//     candidate moves — advance s, advance both, advance o — and take the
//     cheapest, breaking ties in that exact order. Add its cost to r,
//     advance the chosen head(s), increment l.
//  3. Once one remainder is down to a single point a, add
//     measure(a, x) for every remaining point x of the other sequence,
//     and increment l by that count.
//  4. Return r / l.
//
// Distance is symmetric up to greedy tie-breaking: swapping s and o may
// walk a different path through equal-cost ties and so is not guaranteed
// to return bit-identical results, though in practice it rarely diverges.
//
// Both s and o must be non-empty; Distance returns ErrEmptySequence
// otherwise. Time complexity is O(len(s)+len(o)); no extra allocation
// beyond the two head-index counters.
func Distance(measure Measure, s, o []geom.Point) (float64, error) {
	if len(s) == 0 || len(o) == 0 {
		return 0, ErrEmptySequence
	}

	si, oi := 0, 0
	r := measure(s[si], o[oi])
	l := 1

	for (len(s)-si) > 1 && (len(o)-oi) > 1 {
		left := measure(s[si+1], o[oi])
		middle := measure(s[si+1], o[oi+1])
		right := measure(s[si], o[oi+1])

		switch {
		case left <= middle && left <= right:
			si++
		case middle <= left && middle <= right:
			si++
			oi++
		default: // right is strictly the smallest of the three
			oi++
		}
		r += min3(left, middle, right)
		l++
	}

	// One remainder now has exactly one point; fold in the rest of the
	// other sequence against it.
	if len(s)-si == 1 {
		a := s[si]
		for ; oi+1 < len(o); oi++ {
			r += measure(a, o[oi+1])
			l++
		}
	} else {
		b := o[oi]
		for ; si+1 < len(s); si++ {
			r += measure(b, s[si+1])
			l++
		}
	}

	return r / float64(l), nil
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
