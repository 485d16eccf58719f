package factory

import (
	"math/rand"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/navigation"
	"github.com/automoto/doomerang-arena/shared/obstacles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the arena singleton: the obstacle field and the
// navigation grid over it. Walls are added afterwards with CreateWall.
func CreateArena(ecs *ecs.ECS, name string, width, height float64, seed int64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)

	field := obstacles.NewField(width, height, cfg.Sim.BroadphaseCell)
	grid := navigation.NewGrid(field, width, height, cfg.Pathfinding.CellSize)
	if cfg.Pathfinding.MaxOpenNodes > 0 {
		grid.MaxOpenNodes = cfg.Pathfinding.MaxOpenNodes
	}
	if cfg.Pathfinding.RecoveryRadius >= 0 {
		grid.RecoveryRadius = cfg.Pathfinding.RecoveryRadius
	}

	components.Arena.SetValue(arena, components.ArenaData{
		Name:   name,
		Field:  field,
		Grid:   grid,
		Width:  width,
		Height: height,
		Rng:    rand.New(rand.NewSource(seed)),
	})
	return arena
}
