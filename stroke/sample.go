package stroke

import "github.com/katalvlaran/glyphid/geom"

// unitSquare is the normalization target every Stroke is aspect-refit
// into during Sample construction.
var unitSquare = geom.NewRect(geom.Zero, geom.One)

// Sample is a non-empty, ordered collection of non-empty, normalized
// Strokes: the unit of comparison the elastic distance metric compares.
// It is immutable after construction; every exported Stroke transform
// returns a new value, so a Sample never shares storage with its input.
type Sample struct {
	strokes []Stroke
}

// NewSample runs raw into the normalization pipeline and returns the
// resulting Sample. Steps, in order:
//
//  1. Discard empty strokes.
//  2. If nothing remains, fail with ErrNoValidStrokes — an empty query is
//     invalid, not a degenerate one.
//  3. Truncate to the first MaxStrokesPerSample strokes.
//  4. For each remaining stroke: Dedup, Smooth, AspectRefit into the unit
//     square, Redistribute to RedistributePoints, Dedup again, then
//     Dominant at DominantAngleRadians.
//
// This order is load-bearing (see package doc): deduplicating before
// smoothing prevents zero-length segments feeding Smooth; smoothing
// before the refit keeps the stroke in its natural frame; redistributing
// after the refit gives every stroke the same point budget regardless of
// its original sampling rate; the second dedup removes near-duplicates
// that redistribution can introduce at segment boundaries; the dominant
// filter runs last so it only ever sees the final, resampled points.
func NewSample(raw []Stroke) (Sample, error) {
	nonEmpty := make([]Stroke, 0, len(raw))
	for _, s := range raw {
		if len(s) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return Sample{}, ErrNoValidStrokes
	}

	if len(nonEmpty) > MaxStrokesPerSample {
		nonEmpty = nonEmpty[:MaxStrokesPerSample]
	}

	normalized := make([]Stroke, len(nonEmpty))
	for i, s := range nonEmpty {
		step := s.Dedup()
		step = step.Smooth()

		step, err := step.AspectRefit(unitSquare)
		if err != nil {
			return Sample{}, err
		}

		step, err = step.Redistribute(RedistributePoints)
		if err != nil {
			return Sample{}, err
		}

		step = step.Dedup()
		step = step.Dominant(DominantAngleRadians)

		normalized[i] = step
	}

	return Sample{strokes: normalized}, nil
}

// Strokes returns a copy of the Sample's normalized strokes in order.
// The copy is deep down to the points, so a caller may mutate the result
// freely without touching the Sample — reference samples decoded into a
// corpus stay read-only no matter what callers do with accessor results.
func (sm Sample) Strokes() []Stroke {
	out := make([]Stroke, len(sm.strokes))
	for i, s := range sm.strokes {
		out[i] = append(Stroke(nil), s...)
	}
	return out
}

// Points flattens the Sample into a single ordered point sequence, the
// form the elastic distance metric (package dtw) operates on.
func (sm Sample) Points() []geom.Point {
	return ConcatStrokes(sm.strokes)
}
