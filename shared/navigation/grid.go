// Package navigation turns world-space movement queries into grid searches
// over an obstacle field.
package navigation

//go:generate mockgen -destination=mock/mock_obstacles.go -package=navigationmock github.com/automoto/doomerang-arena/shared/navigation ObstacleField

import (
	"math"

	"github.com/sirupsen/logrus"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// ObstacleField answers whether a rectangle (top-left x, y) is free of
// obstacles. Implementations must be pure for a given world state.
type ObstacleField interface {
	CanMoveTo(x, y, width, height float64) bool
}

const (
	// DefaultMaxOpenNodes bounds the open set of a single search.
	DefaultMaxOpenNodes = 500
	// DefaultRecoveryRadius is how many rings are searched for a walkable
	// substitute when the start or goal cell is blocked.
	DefaultRecoveryRadius = 5
	// minLineOfSightSteps is the lower bound on samples along a segment.
	minLineOfSightSteps = 10
)

// Grid represents the walkable areas of the arena. It holds no per-cell
// state; walkability is asked of the obstacle field during each search.
type Grid struct {
	Obstacles      ObstacleField
	Width, Height  int // in cells
	CellSize       float64
	MaxOpenNodes   int
	RecoveryRadius int
}

// NewGrid builds a grid covering worldWidth x worldHeight.
func NewGrid(obstacles ObstacleField, worldWidth, worldHeight, cellSize float64) *Grid {
	if cellSize <= 0 {
		logger.For("navigation").
			Warnf("invalid cell size %v, using 16", cellSize)
		cellSize = 16
	}
	return &Grid{
		Obstacles:      obstacles,
		Width:          int(math.Ceil(worldWidth / cellSize)),
		Height:         int(math.Ceil(worldHeight / cellSize)),
		CellSize:       cellSize,
		MaxOpenNodes:   DefaultMaxOpenNodes,
		RecoveryRadius: DefaultRecoveryRadius,
	}
}

// WorldToGrid converts a world position to the cell containing it.
func (g *Grid) WorldToGrid(x, y float64) (int, int) {
	return int(math.Floor(x / g.CellSize)), int(math.Floor(y / g.CellSize))
}

// GridToWorld converts grid coordinates to world coordinates (center of cell).
func (g *Grid) GridToWorld(gridX, gridY int) math2.Vec2 {
	return math2.Vec2{
		X: float64(gridX)*g.CellSize + g.CellSize/2,
		Y: float64(gridY)*g.CellSize + g.CellSize/2,
	}
}

// InBounds reports whether a cell lies on the grid.
func (g *Grid) InBounds(gridX, gridY int) bool {
	return gridX >= 0 && gridX < g.Width && gridY >= 0 && gridY < g.Height
}

// IsWalkable reports whether an agent of the given size centred on the cell
// fits there.
func (g *Grid) IsWalkable(gridX, gridY int, agentWidth, agentHeight float64) bool {
	if !g.InBounds(gridX, gridY) {
		return false
	}
	c := g.GridToWorld(gridX, gridY)
	return g.Obstacles.CanMoveTo(c.X-agentWidth/2, c.Y-agentHeight/2, agentWidth, agentHeight)
}

func (g *Grid) pointWalkable(x, y float64) bool {
	gx, gy := g.WorldToGrid(x, y)
	if !g.InBounds(gx, gy) {
		return false
	}
	return g.Obstacles.CanMoveTo(x, y, 1, 1)
}

// HasLineOfSight samples the straight segment between start and end. At each
// sample the centre and the four corners of the agent's box must be free.
func (g *Grid) HasLineOfSight(start, end math2.Vec2, agentWidth, agentHeight float64) bool {
	dist := gamemath.Distance(start.X, start.Y, end.X, end.Y)
	steps := int(math.Ceil(dist / (g.CellSize / 2)))
	if steps < minLineOfSightSteps {
		steps = minLineOfSightSteps
	}

	hw, hh := agentWidth/2, agentHeight/2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := gamemath.Lerp(start.X, end.X, t)
		y := gamemath.Lerp(start.Y, end.Y, t)

		if !g.pointWalkable(x, y) ||
			!g.pointWalkable(x-hw, y-hh) ||
			!g.pointWalkable(x+hw, y-hh) ||
			!g.pointWalkable(x-hw, y+hh) ||
			!g.pointWalkable(x+hw, y+hh) {
			return false
		}
	}
	return true
}

// NearestWalkable searches expanding square rings (radius 1..RecoveryRadius)
// around a cell for one the agent fits into.
func (g *Grid) NearestWalkable(gridX, gridY int, agentWidth, agentHeight float64) (int, int, bool) {
	for radius := 1; radius <= g.RecoveryRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				// Only the ring itself; inner cells were checked already.
				if absInt(dx) != radius && absInt(dy) != radius {
					continue
				}
				nx, ny := gridX+dx, gridY+dy
				if g.IsWalkable(nx, ny, agentWidth, agentHeight) {
					return nx, ny, true
				}
			}
		}
	}
	return 0, 0, false
}

// FindPath returns world-space waypoints from start to end for an agent of
// the given size, or nil when no route exists within the search budget.
// A clear straight line short-circuits to a single waypoint at end.
func (g *Grid) FindPath(start, end math2.Vec2, agentWidth, agentHeight float64) []math2.Vec2 {
	if g == nil || g.Obstacles == nil {
		return nil
	}
	if g.HasLineOfSight(start, end, agentWidth, agentHeight) {
		return []math2.Vec2{end}
	}

	sx, sy := g.WorldToGrid(start.X, start.Y)
	gx, gy := g.WorldToGrid(end.X, end.Y)

	if !g.IsWalkable(sx, sy, agentWidth, agentHeight) {
		var ok bool
		if sx, sy, ok = g.NearestWalkable(sx, sy, agentWidth, agentHeight); !ok {
			return nil
		}
	}
	goalSubstituted := false
	if !g.IsWalkable(gx, gy, agentWidth, agentHeight) {
		var ok bool
		if gx, gy, ok = g.NearestWalkable(gx, gy, agentWidth, agentHeight); !ok {
			return nil
		}
		goalSubstituted = true
	}

	cells := g.search(sx, sy, gx, gy, agentWidth, agentHeight)
	if cells == nil {
		return nil
	}

	// The agent already stands in the first cell.
	path := make([]math2.Vec2, 0, len(cells))
	for _, idx := range cells[1:] {
		path = append(path, g.GridToWorld(idx%g.Width, idx/g.Width))
	}
	if goalSubstituted {
		if len(path) == 0 {
			path = append(path, g.GridToWorld(gx, gy))
		}
		return path
	}
	return append(path, end)
}

// octile neighbours; cardinal first so ties prefer straight moves.
var neighbourDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// search runs A* between two walkable cells and returns packed cell ids
// (gy*Width+gx) from start to goal inclusive.
func (g *Grid) search(sx, sy, gx, gy int, agentWidth, agentHeight float64) []int {
	startIdx := sy*g.Width + sx
	goalIdx := gy*g.Width + gx

	walkable := make(map[int]bool, 64)
	isWalkable := func(x, y int) bool {
		if !g.InBounds(x, y) {
			return false
		}
		idx := y*g.Width + x
		if w, ok := walkable[idx]; ok {
			return w
		}
		w := g.IsWalkable(x, y, agentWidth, agentHeight)
		walkable[idx] = w
		return w
	}

	open := make([]int, 0, 64)
	open = append(open, startIdx)
	inOpen := map[int]bool{startIdx: true}
	closed := make(map[int]bool, 128)
	cameFrom := make(map[int]int, 128)
	gScore := map[int]float64{startIdx: 0}
	fScore := map[int]float64{startIdx: heuristic(sx, sy, gx, gy)}

	for len(open) > 0 {
		if len(open) > g.MaxOpenNodes {
			logger.Log.WithFields(logrus.Fields{
				"component": "navigation",
				"open":      len(open),
			}).Debug("search budget exceeded")
			return nil
		}

		// Linear scan; the first node with the lowest fScore wins ties.
		best := 0
		for i := 1; i < len(open); i++ {
			if fScore[open[i]] < fScore[open[best]] {
				best = i
			}
		}
		current := open[best]
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, current)

		if current == goalIdx {
			return reconstructPath(cameFrom, current)
		}
		closed[current] = true

		cx, cy := current%g.Width, current/g.Width
		for _, d := range neighbourDirs {
			nx, ny := cx+d[0], cy+d[1]
			if !isWalkable(nx, ny) {
				continue
			}
			// No corner cutting past blocked cells.
			if d[0] != 0 && d[1] != 0 && (!isWalkable(cx+d[0], cy) || !isWalkable(cx, cy+d[1])) {
				continue
			}
			neighbour := ny*g.Width + nx
			if closed[neighbour] {
				continue
			}

			step := 1.0
			if d[0] != 0 && d[1] != 0 {
				step = math.Sqrt2
			}
			tentative := gScore[current] + step
			if prev, seen := gScore[neighbour]; seen && tentative >= prev {
				continue
			}
			cameFrom[neighbour] = current
			gScore[neighbour] = tentative
			fScore[neighbour] = tentative + heuristic(nx, ny, gx, gy)
			if !inOpen[neighbour] {
				open = append(open, neighbour)
				inOpen[neighbour] = true
			}
		}
	}
	return nil
}

func reconstructPath(cameFrom map[int]int, current int) []int {
	path := []int{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the euclidean cell distance; it never overestimates an
// octile move cost.
func heuristic(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
