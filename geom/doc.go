// Package geom provides the 2D vector primitives (Point and Rect) that the
// rest of this module builds on: stroke geometry, the dominant-point
// angle test, and the elastic distance metric all reduce to Point algebra.
//
// Usage:
//
//	p := geom.Point{X: 1, Y: 2}
//	q := geom.Point{X: 4, Y: 6}
//	d := p.EuclideanDistance(q) // 5
//
// Points are plain values: there is no shared storage, no pooling, and no
// fallible constructor. A Point is valid whenever both coordinates are
// finite; callers that feed external input are responsible for checking
// that before constructing one.
package geom
