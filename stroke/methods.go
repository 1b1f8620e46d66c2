package stroke

import "github.com/katalvlaran/glyphid/geom"

// Length returns the sum of Euclidean distances between consecutive
// points. A Stroke with fewer than two points has length 0.
func (s Stroke) Length() float64 {
	var total float64
	for i := 1; i < len(s); i++ {
		total += s[i-1].EuclideanDistance(s[i])
	}
	return total
}

// BoundingBox returns the tightest axis-aligned Rect containing every
// point of s. s must be non-empty; an empty Stroke has no bounding box.
func (s Stroke) BoundingBox() (geom.Rect, error) {
	if len(s) == 0 {
		return geom.Rect{}, ErrEmptyStroke
	}

	bb := geom.RectFromPoint(s[0])
	for _, p := range s[1:] {
		if p.X < bb.LowerLeft.X {
			bb.LowerLeft.X = p.X
		}
		if p.Y < bb.LowerLeft.Y {
			bb.LowerLeft.Y = p.Y
		}
		if p.X > bb.UpperRight.X {
			bb.UpperRight.X = p.X
		}
		if p.Y > bb.UpperRight.Y {
			bb.UpperRight.Y = p.Y
		}
	}
	return bb, nil
}

// Refit affine-maps s so its bounding box becomes target. Along any axis
// where the bounding box is degenerate (zero width or height), points are
// instead centered in target along that axis (translation only, scale 1),
// independently per axis. s must be non-empty.
func (s Stroke) Refit(target geom.Rect) (Stroke, error) {
	bb, err := s.BoundingBox()
	if err != nil {
		return nil, err
	}

	scaleX, transX := 1.0, target.LowerLeft.X+0.5*target.Width()
	if bb.Width() != 0 {
		scaleX = target.Width() / bb.Width()
		transX = target.LowerLeft.X
	}
	scaleY, transY := 1.0, target.LowerLeft.Y+0.5*target.Height()
	if bb.Height() != 0 {
		scaleY = target.Height() / bb.Height()
		transY = target.LowerLeft.Y
	}
	trans := geom.Point{X: transX, Y: transY}

	out := make(Stroke, len(s))
	for i, p := range s {
		out[i] = p.Sub(bb.LowerLeft).ScaleXY(scaleX, scaleY).Add(trans)
	}
	return out, nil
}

// AspectRefit maps s into target the way Refit does, but preserves the
// source bounding box's aspect ratio: the longer axis fills target and
// the shorter axis is centered. If s's bounding box is a single point,
// the whole stroke collapses onto the centroid of target. s must be
// non-empty.
func (s Stroke) AspectRefit(target geom.Rect) (Stroke, error) {
	source, err := s.BoundingBox()
	if err != nil {
		return nil, err
	}

	if source.IsPoint() {
		center := target.LowerLeft.Add(target.UpperRight).Scale(0.5)
		return s.Refit(geom.RectFromPoint(center))
	}

	sourceRatio := source.Width() / source.Height()
	targetRatio := target.Width() / target.Height()

	var scale float64
	var offset geom.Point
	if sourceRatio > targetRatio {
		scale = target.Width() / source.Width()
		offset = geom.Point{X: 0, Y: (target.Height() - scale*source.Height()) / 2.0}
	} else {
		scale = target.Height() / source.Height()
		offset = geom.Point{X: (target.Width() - scale*source.Width()) / 2.0, Y: 0}
	}

	rect := source.MapPoints(func(p geom.Point) geom.Point {
		return p.Sub(source.LowerLeft).Scale(scale).Add(offset).Add(target.LowerLeft)
	})
	return s.Refit(rect)
}

// Dedup returns s with consecutive approximately-equal points collapsed
// to one, per geom.Point.ApproxEqual.
func (s Stroke) Dedup() Stroke {
	if len(s) == 0 {
		return Stroke{}
	}

	out := make(Stroke, 0, len(s))
	out = append(out, s[0])
	for _, p := range s[1:] {
		if !out[len(out)-1].ApproxEqual(p) {
			out = append(out, p)
		}
	}
	return out
}

// Smooth replaces each interior triple (x,y,z) with their mean, leaving
// the first and last points untouched. A Stroke with fewer than three
// points is returned unchanged.
func (s Stroke) Smooth() Stroke {
	if len(s) < 3 {
		out := make(Stroke, len(s))
		copy(out, s)
		return out
	}

	out := make(Stroke, len(s))
	out[0] = s[0]
	for i := 1; i < len(s)-1; i++ {
		out[i] = s[i-1].Add(s[i]).Add(s[i+1]).Scale(1.0 / 3.0)
	}
	out[len(s)-1] = s[len(s)-1]
	return out
}

// Redistribute resamples s to exactly n points, roughly uniformly spaced
// by arc length. n=0 yields an empty Stroke; otherwise a Stroke with
// fewer than two points is returned unchanged, whatever n is. n=1 yields
// just the first point. For n>=2 the target step is Length()/(n-1); the walk accumulates
// remaining step distance across segments, emitting an interpolated point
// and resetting whenever the running remainder is exhausted, and always
// preserves the original first and last points.
//
// Redistribute requires s.Length() > 0 when n >= 2 and len(s) >= 2 — the
// step size is otherwise undefined. Callers normalizing a raw stroke must
// Dedup before Redistribute to guarantee positive length.
func (s Stroke) Redistribute(n int) (Stroke, error) {
	if n == 0 {
		return Stroke{}, nil
	}
	if len(s) < 2 {
		out := make(Stroke, len(s))
		copy(out, s)
		return out, nil
	}
	if n == 1 {
		return Stroke{s[0]}, nil
	}

	length := s.Length()
	if length <= 0 {
		return nil, ErrZeroLength
	}
	step := length / float64(n-1)

	out := make(Stroke, 0, n)
	out = append(out, s[0])

	left := step
	work := make(Stroke, len(s))
	copy(work, s)

	// Emit at most n-2 interior points; the final step would land exactly
	// on the stroke's end, and accumulated rounding can push it to either
	// side, so the original endpoint is appended once below instead of
	// being re-derived by interpolation.
	for len(work) >= 2 && len(out) < n-1 {
		p, q := work[0], work[1]
		dir := q.Sub(p)
		d := dir.Norm()

		if d < left {
			left -= d
			work = work[1:]
			continue
		}

		ins := p.Add(dir.Scale(left / d))
		left = step
		work[0] = ins
		out = append(out, ins)
	}
	out = append(out, work[len(work)-1])

	return out, nil
}

// Dominant keeps the first and last points, and keeps any interior point
// q whose turn angle (relative to its neighbors) is at least alpha
// radians; interior points below the threshold are dropped as nearly
// collinear. A Stroke with fewer than three points is returned unchanged.
func (s Stroke) Dominant(alpha float64) Stroke {
	if len(s) < 3 {
		out := make(Stroke, len(s))
		copy(out, s)
		return out
	}

	out := make(Stroke, 0, len(s))
	out = append(out, s[0])
	for i := 1; i < len(s)-1; i++ {
		if geom.Angle(s[i-1], s[i], s[i+1]) >= alpha {
			out = append(out, s[i])
		}
	}
	out = append(out, s[len(s)-1])
	return out
}

// ConcatStrokes flattens strokes into a single point sequence, preserving
// stroke order and, within each stroke, point order.
func ConcatStrokes(strokes []Stroke) []geom.Point {
	n := 0
	for _, s := range strokes {
		n += len(s)
	}
	out := make([]geom.Point, 0, n)
	for _, s := range strokes {
		out = append(out, s...)
	}
	return out
}
