// Package dtw computes a greedy Dynamic Time Warping distance between two
// point sequences under a caller-supplied point-to-point measure.
//
// This is not the classic optimal O(N·M) dynamic-programming DTW: it is a
// linear-time approximation that walks both sequences from the front,
// greedily choosing the cheapest of three local moves (advance the first
// sequence, advance both, advance the second) at each step. It trades
// alignment optimality for O(|a|+|b|) running time, which matters when a
// single classification query scans a corpus of thousands of reference
// sequences.
//
// Usage:
//
//	dist, err := dtw.Distance(func(p, q geom.Point) float64 {
//		return p.ManhattanDistance(q)
//	}, a, b)
//
// The three-way tie-break order (advance-a, advance-both, advance-b) is
// part of the contract, not an implementation detail: switching to an
// optimal DTW, or reordering the tie-break, changes every distance the
// classifier produces and silently invalidates any score pinned against a
// reference corpus.
package dtw
