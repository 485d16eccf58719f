package navigation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/mock/gomock"

	navigationmock "github.com/automoto/doomerang-arena/shared/navigation/mock"
)

const (
	cell   = 16.0
	agentW = 8.0
	agentH = 8.0
)

// tileField is a bounded world with solid cell-sized tiles.
type tileField struct {
	w, h  float64
	solid map[[2]int]bool
}

func newTileField(cols, rows int) *tileField {
	return &tileField{w: float64(cols) * cell, h: float64(rows) * cell, solid: map[[2]int]bool{}}
}

func (f *tileField) block(gx, gy int) { f.solid[[2]int{gx, gy}] = true }

func (f *tileField) CanMoveTo(x, y, w, h float64) bool {
	if x < 0 || y < 0 || x+w > f.w || y+h > f.h {
		return false
	}
	for k := range f.solid {
		tx, ty := float64(k[0])*cell, float64(k[1])*cell
		if x < tx+cell && x+w > tx && y < ty+cell && y+h > ty {
			return false
		}
	}
	return true
}

type GridTestSuite struct {
	suite.Suite
	field *tileField
	grid  *Grid
}

// SetupTest builds a 10x10 arena split by a wall on column 5 that leaves
// rows 8 and 9 open.
func (s *GridTestSuite) SetupTest() {
	s.field = newTileField(10, 10)
	for y := 0; y < 8; y++ {
		s.field.block(5, y)
	}
	s.grid = NewGrid(s.field, s.field.w, s.field.h, cell)
}

func (s *GridTestSuite) TestDimensions() {
	s.Equal(10, s.grid.Width)
	s.Equal(10, s.grid.Height)
	s.Equal(DefaultMaxOpenNodes, s.grid.MaxOpenNodes)
	s.Equal(DefaultRecoveryRadius, s.grid.RecoveryRadius)
}

func (s *GridTestSuite) TestLineOfSightShortcut() {
	start := math2.Vec2{X: 24, Y: 24}
	end := math2.Vec2{X: 60, Y: 100}

	path := s.grid.FindPath(start, end, agentW, agentH)
	s.Require().Len(path, 1)
	s.Equal(end, path[0])
}

func (s *GridTestSuite) TestPathAroundWall() {
	start := math2.Vec2{X: 24, Y: 24}
	end := math2.Vec2{X: 136, Y: 24}
	s.Require().False(s.grid.HasLineOfSight(start, end, agentW, agentH))

	path := s.grid.FindPath(start, end, agentW, agentH)
	s.Require().NotEmpty(path)
	s.Greater(len(path), 1)
	s.Equal(end, path[len(path)-1], "exact goal point is the final waypoint")

	for _, wp := range path {
		s.True(s.field.CanMoveTo(wp.X-agentW/2, wp.Y-agentH/2, agentW, agentH), "waypoint %v", wp)
	}

	// It has to dip under the wall.
	lowest := 0.0
	for _, wp := range path {
		if wp.Y > lowest {
			lowest = wp.Y
		}
	}
	s.GreaterOrEqual(lowest, 8*cell)
}

func (s *GridTestSuite) TestPathIsStable() {
	start := math2.Vec2{X: 24, Y: 24}
	end := math2.Vec2{X: 136, Y: 24}
	s.Equal(s.grid.FindPath(start, end, agentW, agentH), s.grid.FindPath(start, end, agentW, agentH))
}

func (s *GridTestSuite) TestNoRoute() {
	s.field.block(5, 8)
	s.field.block(5, 9)

	path := s.grid.FindPath(math2.Vec2{X: 24, Y: 24}, math2.Vec2{X: 136, Y: 24}, agentW, agentH)
	s.Nil(path)
}

func (s *GridTestSuite) TestSearchBudget() {
	s.grid.MaxOpenNodes = 3

	path := s.grid.FindPath(math2.Vec2{X: 24, Y: 24}, math2.Vec2{X: 136, Y: 24}, agentW, agentH)
	s.Nil(path)
}

func (s *GridTestSuite) TestBlockedStartIsSubstituted() {
	// Start inside the wall.
	start := math2.Vec2{X: 88, Y: 40}
	end := math2.Vec2{X: 136, Y: 24}

	path := s.grid.FindPath(start, end, agentW, agentH)
	s.Require().NotEmpty(path)
	s.Equal(end, path[len(path)-1])
}

func (s *GridTestSuite) TestBlockedGoalEndsOnSubstitute() {
	start := math2.Vec2{X: 24, Y: 24}
	end := math2.Vec2{X: 88, Y: 40} // inside the wall at cell (5,2)

	path := s.grid.FindPath(start, end, agentW, agentH)
	s.Require().NotEmpty(path)

	last := path[len(path)-1]
	s.NotEqual(end, last)
	gx, gy := s.grid.WorldToGrid(last.X, last.Y)
	s.True(s.grid.IsWalkable(gx, gy, agentW, agentH))
	s.LessOrEqual(absInt(gx-5), DefaultRecoveryRadius)
	s.LessOrEqual(absInt(gy-2), DefaultRecoveryRadius)
}

func (s *GridTestSuite) TestNearestWalkableRingLimit() {
	field := newTileField(20, 20)
	for y := 3; y <= 15; y++ {
		for x := 3; x <= 15; x++ {
			field.block(x, y)
		}
	}
	grid := NewGrid(field, field.w, field.h, cell)

	// Centre of a 13x13 block: the first free ring is 7 cells out.
	_, _, ok := grid.NearestWalkable(9, 9, agentW, agentH)
	s.False(ok)

	// From the block's edge the free ring is adjacent.
	x, y, ok := grid.NearestWalkable(4, 4, agentW, agentH)
	s.True(ok)
	s.True(grid.IsWalkable(x, y, agentW, agentH))

	s.Nil(grid.FindPath(grid.GridToWorld(9, 9), math2.Vec2{X: 8, Y: 8}, agentW, agentH))
}

func (s *GridTestSuite) TestWaypointsAlwaysWalkable() {
	for x := 2; x < 9; x++ {
		s.field.block(x, 6)
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		start := math2.Vec2{X: 4 + rng.Float64()*152, Y: 4 + rng.Float64()*152}
		end := math2.Vec2{X: 4 + rng.Float64()*152, Y: 4 + rng.Float64()*152}

		path := s.grid.FindPath(start, end, agentW, agentH)
		if path == nil {
			continue
		}
		// Every intermediate waypoint is a cell centre the agent fits in.
		for _, wp := range path[:len(path)-1] {
			s.True(s.field.CanMoveTo(wp.X-agentW/2, wp.Y-agentH/2, agentW, agentH), "%v -> %v at %v", start, end, wp)
		}
	}
}

func TestGridTestSuite(t *testing.T) {
	suite.Run(t, new(GridTestSuite))
}

func TestFindPath_NilGrid(t *testing.T) {
	var g *Grid
	assert.Nil(t, g.FindPath(math2.Vec2{}, math2.Vec2{X: 10}, 4, 4))
}

func TestNewGrid_InvalidCellSize(t *testing.T) {
	g := NewGrid(newTileField(4, 4), 64, 64, 0)
	assert.Equal(t, 16.0, g.CellSize)
	assert.Equal(t, 4, g.Width)
}

func TestFindPath_ObstacleFieldMock(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("open field takes the shortcut", func(t *testing.T) {
		field := navigationmock.NewMockObstacleField(ctrl)
		field.EXPECT().CanMoveTo(gomock.Any(), gomock.Any(), 1.0, 1.0).Return(true).MinTimes(1)

		g := NewGrid(field, 320, 320, 16)
		end := math2.Vec2{X: 300, Y: 10}
		path := g.FindPath(math2.Vec2{X: 10, Y: 10}, end, 8, 8)
		require.Len(t, path, 1)
		assert.Equal(t, end, path[0])
	})

	t.Run("solid field fails without panicking", func(t *testing.T) {
		field := navigationmock.NewMockObstacleField(ctrl)
		field.EXPECT().CanMoveTo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false).AnyTimes()

		g := NewGrid(field, 320, 320, 16)
		assert.Nil(t, g.FindPath(math2.Vec2{X: 10, Y: 10}, math2.Vec2{X: 300, Y: 300}, 8, 8))
	})
}
