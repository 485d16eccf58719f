package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/ai"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// EnemyOptions carries the per-spawn settings a level can give an enemy.
type EnemyOptions struct {
	// PatrolTo is the far end of a patrol; nil patrols PatrolDistance to the right.
	PatrolTo *math2.Vec2
	// CircleRadius overrides the circular patrol radius.
	CircleRadius float64
	Clockwise    bool
	// Pack is the pack entry to join, if any.
	Pack *donburi.Entry
}

// CreateEnemy spawns an enemy of the given type centred on (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyType cfg.EnemyTypeID, opts EnemyOptions) *donburi.Entry {
	log := logger.For("factory")
	typeConfig, ok := cfg.EnemyType(enemyType)
	if !ok {
		log.WithField("type", enemyType.String()).Warn("unknown enemy type, falling back to grunt")
		enemyType = cfg.EnemyGrunt
		typeConfig, _ = cfg.EnemyType(enemyType)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	// Create collision object
	w, h := typeConfig.Width, typeConfig.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	home := math2.Vec2{X: x, Y: y}
	data := components.EnemyData{
		Type:       enemyType,
		TypeConfig: typeConfig,
		State:      ai.Idle(typeConfig.Idle),
		Awake:      typeConfig.Idle != cfg.IdleSleep,
		Pack:       donburi.Null,
		Wander: ai.Wander{
			Home:        home,
			Radius:      typeConfig.WanderRadius,
			MinInterval: cfg.AI.WanderIntervalMin,
			MaxInterval: cfg.AI.WanderIntervalMax,
		},
		Guard: ai.Guard{
			Post:      home,
			Radius:    typeConfig.GuardRadius,
			TurnSpeed: typeConfig.GuardTurnSpeed,
		},
	}

	far := math2.Vec2{X: x + cfg.AI.PatrolDistance, Y: y}
	if opts.PatrolTo != nil {
		far = *opts.PatrolTo
	}
	data.Patrol = ai.Patrol{A: home, B: far, TowardB: true}

	radius := cfg.AI.CircleRadius
	if opts.CircleRadius > 0 {
		radius = opts.CircleRadius
	}
	// The ring is centred so that the spawn point is its first waypoint.
	center := math2.Vec2{X: x - radius, Y: y}
	data.Circle = ai.CircularPatrol{
		Points:    ai.Ring(center, radius, cfg.AI.CirclePoints, opts.Clockwise),
		Clockwise: opts.Clockwise,
	}

	if typeConfig.Lunge != nil {
		data.Lunge = combat.NewLunge(typeConfig.Lunge)
	}
	if typeConfig.Ability != nil {
		data.Ability = combat.NewAbility(typeConfig.Ability)
	}

	if opts.Pack != nil && opts.Pack.Valid() {
		pack := components.Pack.Get(opts.Pack)
		data.Pack = opts.Pack.Entity()
		data.PackIndex = len(pack.Members)
		pack.Members = append(pack.Members, enemy.Entity())
	}
	components.Enemy.SetValue(enemy, data)

	weaponID := typeConfig.Weapon
	weapon, ok := cfg.Weapon(weaponID)
	if !ok {
		log.WithFields(logrus.Fields{
			"type":   enemyType.String(),
			"weapon": weaponID.String(),
		}).Warn("enemy weapon not found, falling back to fists")
		weaponID = cfg.WeaponFists
		weapon, _ = cfg.Weapon(weaponID)
	}
	components.Weapon.SetValue(enemy, components.WeaponData{
		ID:     weaponID,
		Attack: combat.NewAttack(weapon),
	})

	decay := typeConfig.KnockbackDecay
	if decay == 0 {
		decay = cfg.Movement.KnockbackDecay
	}
	components.Physics.SetValue(enemy, components.PhysicsData{
		Speed:          typeConfig.Speed,
		Facing:         0,
		KnockbackDecay: decay,
	})

	// Set health from config
	components.Health.SetValue(enemy, components.HealthData{
		Current: typeConfig.Health,
		Max:     typeConfig.Health,
	})
	return enemy
}
