package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Movement.PlayerWidth, cfg.Movement.PlayerHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Physics.SetValue(player, components.PhysicsData{
		Speed:          cfg.Movement.PlayerSpeed,
		KnockbackDecay: cfg.Movement.KnockbackDecay,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Combat.PlayerHealth,
		Max:     cfg.Combat.PlayerHealth,
	})
	components.Stamina.SetValue(player, components.StaminaData{
		Current: cfg.Combat.PlayerStamina,
		Max:     cfg.Combat.PlayerStamina,
	})

	id := cfg.Combat.PlayerWeapon
	weapon, ok := cfg.Weapon(id)
	if !ok {
		logger.For("factory").WithField("weapon", id.String()).
			Warn("unknown player weapon, falling back to fists")
		id = cfg.WeaponFists
		weapon, _ = cfg.Weapon(id)
	}
	components.Weapon.SetValue(player, components.WeaponData{
		ID:     id,
		Attack: combat.NewAttack(weapon),
	})
	return player
}
