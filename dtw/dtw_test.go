package dtw_test

import (
	"testing"

	"github.com/katalvlaran/glyphid/dtw"
	"github.com/katalvlaran/glyphid/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manhattan(a, b geom.Point) float64 {
	return a.ManhattanDistance(b)
}

func TestDistance_EmptySequence(t *testing.T) {
	_, err := dtw.Distance(manhattan, nil, []geom.Point{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)

	_, err = dtw.Distance(manhattan, []geom.Point{{X: 0, Y: 0}}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)
}

func TestDistance_IdenticalSequencesAreZero(t *testing.T) {
	s := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0.5}, {X: 3, Y: 3}}
	dist, err := dtw.Distance(manhattan, s, s)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
}

func TestDistance_SinglePointEachSide(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}}
	b := []geom.Point{{X: 3, Y: 4}}
	dist, err := dtw.Distance(manhattan, a, b)
	require.NoError(t, err)
	assert.Equal(t, 7.0, dist) // |3|+|4|, l=1
}

func TestDistance_OneSequenceSinglePoint(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}}
	b := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	dist, err := dtw.Distance(manhattan, a, b)
	require.NoError(t, err)
	// r starts at d(a0,b0)=0, l=1; loop never runs since len(a)-0==1.
	// finalize: add d(a0,b1)=1, d(a0,b2)=2; l becomes 3; r=3; mean=1.
	assert.Equal(t, 1.0, dist)
}

func TestDistance_AllTiedMovesConsumeBothSequences(t *testing.T) {
	// Construct a case where all three candidate moves tie at cost 0:
	// every point coincides, so advance-S is chosen every time and the
	// walk still consumes both sequences fully without panicking.
	s := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}
	o := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}
	dist, err := dtw.Distance(manhattan, s, o)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
}

func TestDistance_SymmetricOnSimpleInputs(t *testing.T) {
	s := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	o := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1.5, Y: 0}, {X: 2, Y: 0}}
	d1, err := dtw.Distance(manhattan, s, o)
	require.NoError(t, err)
	d2, err := dtw.Distance(manhattan, o, s)
	require.NoError(t, err)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_PenalizesDivergentPaths(t *testing.T) {
	s := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	o := []geom.Point{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}}
	dist, err := dtw.Distance(manhattan, s, o)
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist)
}
