package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/doomerang-arena/shared/obstacles"
)

func TestResolveMove_SlidesAlongWall(t *testing.T) {
	field := obstacles.NewField(100, 100, 16)
	field.AddSolid(50, 0, 10, 100) // vertical wall

	r := Rect{X: 36, Y: 40, W: 10, H: 10}

	res := ResolveMove(field, nil, r, 8, 5)
	assert.Equal(t, 36.0, res.X, "x blocked by the wall")
	assert.Equal(t, 45.0, res.Y, "y still applied")
	assert.True(t, res.BlockedX)
	assert.False(t, res.BlockedY)
}

func TestResolveMove_FullMove(t *testing.T) {
	field := obstacles.NewField(100, 100, 16)
	res := ResolveMove(field, nil, Rect{X: 10, Y: 10, W: 10, H: 10}, 5, -3)
	assert.Equal(t, Result{X: 15, Y: 7}, res)
}

func TestResolveMove_CornerStopsBothAxes(t *testing.T) {
	field := obstacles.NewField(100, 100, 16)
	res := ResolveMove(field, nil, Rect{X: 0, Y: 0, W: 10, H: 10}, -2, -2)
	assert.Equal(t, Result{X: 0, Y: 0, BlockedX: true, BlockedY: true}, res)
}

func TestResolveMove_EntityBlockers(t *testing.T) {
	other := Rect{X: 30, Y: 0, W: 10, H: 10}
	r := Rect{X: 15, Y: 0, W: 10, H: 10}

	res := ResolveMove(nil, []Rect{other}, r, 10, 0)
	assert.Equal(t, 15.0, res.X)
	assert.True(t, res.BlockedX)

	// Touching is fine.
	res = ResolveMove(nil, []Rect{other}, r, 5, 0)
	assert.Equal(t, 20.0, res.X)
	assert.False(t, res.BlockedX)
}

func TestResolveMove_OverlappingBlockerCanSeparate(t *testing.T) {
	other := Rect{X: 5, Y: 0, W: 10, H: 10}
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	res := ResolveMove(nil, []Rect{other}, r, 0, 3)
	assert.Equal(t, 3.0, res.Y)
}

func TestRect_Helpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 4, H: 6}
	cx, cy := r.Center()
	assert.Equal(t, 12.0, cx)
	assert.Equal(t, 23.0, cy)
	assert.True(t, r.Overlaps(Rect{X: 13, Y: 25, W: 5, H: 5}))
	assert.False(t, r.Overlaps(Rect{X: 14, Y: 20, W: 5, H: 5}))
}
