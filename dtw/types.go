package dtw

import (
	"errors"

	"github.com/katalvlaran/glyphid/geom"
)

// Measure is a symmetric point-to-point cost function plugged into
// Distance. The classifier uses geom.Point.ManhattanDistance; tests may
// substitute any symmetric function for isolation.
type Measure func(a, b geom.Point) float64

// ErrEmptySequence indicates Distance was called with an empty sequence.
// Both sequences must be non-empty: a greedy warp step is undefined
// against an empty remainder.
var ErrEmptySequence = errors.New("dtw: sequences must be non-empty")
