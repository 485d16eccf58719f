package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/ai"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreatePack spawns an empty pack anchored at (x, y). Members join through
// EnemyOptions.Pack.
func CreatePack(ecs *ecs.ECS, x, y, wanderRadius float64) *donburi.Entry {
	pack := archetypes.Pack.Spawn(ecs)
	home := math2.Vec2{X: x, Y: y}
	components.Pack.SetValue(pack, components.PackData{
		Centroid: home,
		Anchor:   home,
		Wander: ai.Wander{
			Home:        home,
			Radius:      wanderRadius,
			MinInterval: cfg.AI.WanderIntervalMin,
			MaxInterval: cfg.AI.WanderIntervalMax,
			Target:      home,
		},
	})
	return pack
}
