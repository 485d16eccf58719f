package factory

import (
	"math"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a projectile from the owner's centre toward the
// target point using the weapon's ranged stats.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, targetX, targetY float64, rc *config.RangedConfig, fromPlayer bool) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	// Start position (center of owner)
	start := components.Object.Get(owner).Center()
	angle := math.Atan2(targetY-start.Y, targetX-start.X)

	components.Projectile.SetValue(p, components.ProjectileData{
		Projectile: combat.NewProjectile(owner.Entity(), start.X, start.Y, angle, rc),
		FromPlayer: fromPlayer,
	})
	return p
}
