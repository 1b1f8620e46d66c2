package stroke_test

import (
	"testing"

	"github.com/katalvlaran/glyphid/geom"
	"github.com/katalvlaran/glyphid/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSample_EmptyInputFails(t *testing.T) {
	_, err := stroke.NewSample(nil)
	assert.ErrorIs(t, err, stroke.ErrNoValidStrokes)
}

func TestNewSample_OnlyEmptyStrokesFails(t *testing.T) {
	_, err := stroke.NewSample([]stroke.Stroke{{}, {}})
	assert.ErrorIs(t, err, stroke.ErrNoValidStrokes)
}

func TestNewSample_DiscardsEmptyStrokesAmongValidOnes(t *testing.T) {
	valid := stroke.Stroke{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	sample, err := stroke.NewSample([]stroke.Stroke{{}, valid, {}})
	require.NoError(t, err)
	assert.Len(t, sample.Strokes(), 1)
}

func TestNewSample_SinglePointStrokeUnchanged(t *testing.T) {
	sample, err := stroke.NewSample([]stroke.Stroke{{{X: 0.5, Y: 0.5}}})
	require.NoError(t, err)
	require.Len(t, sample.Strokes(), 1)
	assert.Equal(t, stroke.Stroke{{X: 0.5, Y: 0.5}}, sample.Strokes()[0])
}

func TestNewSample_TruncatesToMaxStrokes(t *testing.T) {
	raw := make([]stroke.Stroke, 0, 15)
	for i := 0; i < 15; i++ {
		raw = append(raw, stroke.Stroke{{X: 0, Y: 0}, {X: float64(i + 1), Y: 0}})
	}
	sample, err := stroke.NewSample(raw)
	require.NoError(t, err)
	assert.Len(t, sample.Strokes(), stroke.MaxStrokesPerSample)
}

// TestNewSample_PinnedSingleStroke pins the full pipeline on a real
// digitized pen trace: it must normalize to exactly 8 points whose first
// and last land at fixed positions inside the unit square. Any change to
// the pipeline's stages, their order, or their constants moves these
// numbers.
func TestNewSample_PinnedSingleStroke(t *testing.T) {
	raw := stroke.Stroke{
		{X: 166, Y: 80}, {X: 156, Y: 104}, {X: 82, Y: 182}, {X: 48, Y: 194},
		{X: 28, Y: 127}, {X: 39, Y: 115}, {X: 59, Y: 106}, {X: 120, Y: 106},
		{X: 135, Y: 115}, {X: 149, Y: 129}, {X: 160, Y: 145}, {X: 207, Y: 200},
	}

	sample, err := stroke.NewSample([]stroke.Stroke{raw})
	require.NoError(t, err)
	require.Len(t, sample.Strokes(), 1)

	out := sample.Strokes()[0]
	require.Len(t, out, 8)

	assert.InDelta(t, 0.7569, out[0].X, 5e-3)
	assert.InDelta(t, 0.1443, out[0].Y, 5e-3)
	assert.InDelta(t, 1.0, out[len(out)-1].X, 5e-3)
	assert.InDelta(t, 0.8557, out[len(out)-1].Y, 5e-3)

	for _, p := range out {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 1.0)
	}
}

func TestSample_StrokesReturnsIndependentCopy(t *testing.T) {
	sample, err := stroke.NewSample([]stroke.Stroke{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}})
	require.NoError(t, err)

	before := sample.Points()
	mutable := sample.Strokes()
	mutable[0][0].X = 99

	assert.Equal(t, before, sample.Points())
}

func TestSample_PointsFlattensInOrder(t *testing.T) {
	a := stroke.Stroke{{X: 0, Y: 0}, {X: 1, Y: 1}}
	b := stroke.Stroke{{X: 2, Y: 2}}
	sample, err := stroke.NewSample([]stroke.Stroke{a, b})
	require.NoError(t, err)

	var want []geom.Point
	for _, s := range sample.Strokes() {
		want = append(want, s...)
	}
	assert.Equal(t, want, sample.Points())
}
