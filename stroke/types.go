package stroke

import (
	"errors"
	"math"

	"github.com/katalvlaran/glyphid/geom"
)

// MaxStrokesPerSample caps how many strokes a Sample carries: strokes
// beyond the first MaxStrokesPerSample submitted are silently dropped by
// NewSample, not rejected.
const MaxStrokesPerSample = 10

// RedistributePoints is the per-stroke point budget NewSample resamples
// every stroke to, after it has been fit into the unit square.
const RedistributePoints = 10

// DominantAngleRadians is the turn-angle threshold (15 degrees) below
// which an interior point is considered collinear enough with its
// neighbors to drop.
const DominantAngleRadians = 2 * math.Pi * 15.0 / 360.0

// Sentinel errors for stroke and sample construction.
var (
	// ErrEmptyStroke indicates BoundingBox was called on a Stroke with no
	// points; a bounding box is undefined for an empty point set.
	ErrEmptyStroke = errors.New("stroke: empty stroke has no bounding box")

	// ErrNoValidStrokes indicates Sample construction was given no
	// strokes, or only strokes that were themselves empty. Such input is
	// an invalid query, not a degenerate one.
	ErrNoValidStrokes = errors.New("stroke: no valid strokes")

	// ErrZeroLength indicates Redistribute was asked for n>=2 points
	// against a stroke whose arc length is zero; the step size
	// length/(n-1) is undefined in that case. In the normalization
	// pipeline Dedup runs before Smooth, so a stroke whose smoothed points
	// all coincide (e.g. (0,0),(1,0),(-1,0),(0,0)) still reaches
	// Redistribute with zero length, and NewSample returns this error.
	ErrZeroLength = errors.New("stroke: redistribute requires positive length")
)

// Stroke is an ordered sequence of points forming one continuous pen
// trace. Every method returns a new Stroke; none mutate the receiver, so
// a Stroke may be freely shared once built.
type Stroke []geom.Point
