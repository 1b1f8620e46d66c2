package geom_test

import (
	"testing"

	"github.com/katalvlaran/glyphid/geom"
	"github.com/stretchr/testify/assert"
)

func TestRect_FromPoint(t *testing.T) {
	r := geom.RectFromPoint(geom.Zero)
	assert.True(t, r.IsPoint())
	assert.Equal(t, 0.0, r.Width())
	assert.Equal(t, 0.0, r.Height())
}

func TestNewRect_NormalizesCorners(t *testing.T) {
	r := geom.NewRect(geom.One, geom.Zero)
	assert.Equal(t, geom.Zero, r.LowerLeft)
	assert.Equal(t, geom.One, r.UpperRight)
}

func TestRect_WidthHeight(t *testing.T) {
	r := geom.NewRect(geom.Point{X: -1, Y: -2}, geom.Point{X: 3, Y: 4})
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 6.0, r.Height())
	assert.False(t, r.IsPoint())
}

func TestRect_MapPoints(t *testing.T) {
	r := geom.NewRect(geom.Zero, geom.One)
	shifted := r.MapPoints(func(p geom.Point) geom.Point {
		return p.Add(geom.Point{X: 1, Y: 1})
	})
	assert.Equal(t, geom.NewRect(geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2}), shifted)
}
