package geom

import "math"

// approxEqualDelta is the Euclidean-distance tolerance under which two
// points are considered the same, used by Point.ApproxEqual and, via it,
// by Stroke.Dedup upstream in package stroke.
const approxEqualDelta = 1e-10

// Point is a 2D vector. The zero value is the origin.
type Point struct {
	X, Y float64
}

// Zero and One are the corners most often used to build a target Rect for
// normalization (see stroke.Sample).
var (
	Zero = Point{X: 0, Y: 0}
	One  = Point{X: 1, Y: 1}
)

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled uniformly by factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// ScaleXY returns p scaled independently along each axis, used by
// Stroke.Refit to map a bounding box onto a target rectangle.
func (p Point) ScaleXY(x, y float64) Point {
	return Point{X: p.X * x, Y: p.Y * y}
}

// Dot returns the dot product p.q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the Euclidean norm (length) of p viewed as a vector from
// the origin.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// EuclideanDistance returns the straight-line distance between p and q.
func (p Point) EuclideanDistance(q Point) float64 {
	return p.Sub(q).Norm()
}

// ManhattanDistance returns |Δx|+|Δy| between p and q. This is the
// point-to-point measure the classifier plugs into the greedy DTW
// distance.
func (p Point) ManhattanDistance(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// ApproxEqual reports whether p and q are within approxEqualDelta of each
// other in Euclidean distance.
func (p Point) ApproxEqual(q Point) bool {
	return p.EuclideanDistance(q) < approxEqualDelta
}

// clamp restricts v to [lo, hi]. It exists to suppress the floating-point
// overshoot that would otherwise push Angle's acos argument outside its
// domain.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Angle returns the turn angle at q formed by the point sequence p, q, r:
// the angle between the incoming vector (q-p) and the outgoing vector
// (r-q), in radians, in [0, π]. A value near 0 means p, q, r are nearly
// collinear; a value near π means the path reverses on itself at q.
func Angle(p, q, r Point) float64 {
	v := q.Sub(p)
	w := r.Sub(q)
	cos := clamp(v.Dot(w)/(v.Norm()*w.Norm()), -1, 1)
	return math.Acos(cos)
}
