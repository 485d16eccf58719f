package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/ai"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs each enemy's timers, decides its state for the tick and
// turns that state into a velocity, an attack, a lunge or an ability cast.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	arena := getArena(ecs)
	if arena == nil {
		return
	}
	player, hasPlayer := livingPlayer(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !isAlive(e) {
			return
		}
		updateEnemyAI(ecs, arena, e, player, hasPlayer, dt)
	})
}

// target is what an enemy knows about the player this tick.
type target struct {
	entry    *donburi.Entry
	center   math2.Vec2
	distance float64
}

func updateEnemyAI(ecs *ecs.ECS, arena *components.ArenaData, e *donburi.Entry, player *donburi.Entry, hasPlayer bool, dt float64) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	attack := components.Weapon.Get(e).Attack
	tc := enemy.TypeConfig
	center := obj.Center()

	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown = math.Max(0, enemy.AttackCooldown-dt)
	}
	if attack.Update(dt) {
		launchIfRanged(ecs, e, attack, false)
	}

	var tgt target
	if hasPlayer {
		tgt.entry = player
		tgt.center = components.Object.Get(player).Center()
		tgt.distance = gamemath.Distance(center.X, center.Y, tgt.center.X, tgt.center.Y)
	}

	hp := components.Health.Get(e)
	perception := ai.Perception{
		HasTarget:      hasPlayer,
		Distance:       tgt.distance,
		HealthRatio:    ai.HealthRatio(hp.Current, hp.Max),
		AttackCooldown: enemy.AttackCooldown,
		AttackBusy:     attack.Busy(),
		LungeActive:    enemy.Lunge.Active(),
		LungeReady:     enemy.Lunge.CanStart(tgt.distance),
		KnockedBack:    physics.IsKnockedBack,
		Stunned:        physics.StunTime > 0,
		Awake:          enemy.Awake,
	}
	state := ai.Decide(enemy.State, perception, tc, cfg.AI.HysteresisMultiplier)
	if state != enemy.State {
		logger.For("ai").WithFields(logrus.Fields{
			"enemy": e.Entity(),
			"type":  enemy.Type.String(),
			"from":  enemy.State.String(),
			"to":    state.String(),
		}).Debug("state change")
		if enemy.State == ai.StateChase {
			enemy.ClearPath()
		}
		enemy.Previous = enemy.State
		enemy.State = state
	}
	// Dropping back to sleep means the next wake needs WakeRadius again.
	enemy.Awake = state != ai.StateSleep

	updateAbility(e, enemy, center, tgt, dt)

	// The lunge runs its own timers every tick; only its dash moves the enemy.
	if state == ai.StateLunge && !enemy.Lunge.Active() {
		enemy.Lunge.Start()
	}
	lungeX, lungeY := enemy.Lunge.Update(dt, center, tgt.center, arena.Rng.Float64)

	physics.VelX, physics.VelY = 0, 0
	arrive := cfg.Pathfinding.WaypointRadius

	switch state {
	case ai.StateKnockback, ai.StateSleep, ai.StateIdle:
		// Knockback integration happens in UpdateMovement.
	case ai.StateAttack:
		if hasPlayer {
			enemyAttack(e, enemy, physics, attack, center, tgt.center)
		}
	case ai.StateLunge:
		physics.VelX, physics.VelY = lungeX, lungeY
		if enemy.Lunge.Phase == combat.LungeCharging && hasPlayer {
			physics.Facing = gamemath.AngleTo(center.X, center.Y, tgt.center.X, tgt.center.Y)
		}
	case ai.StateChase:
		chase(arena, enemy, physics, obj, center, tgt, dt)
	case ai.StateFlee:
		away := ai.FleeTarget(center, tgt.center, cfg.AI.FleeDistance)
		steer(physics, center, away, fleeSpeed(tc), arrive)
	case ai.StateWander:
		steer(physics, center, enemy.Wander.Update(dt, arena.Rng), tc.Speed, arrive)
	case ai.StateGuard:
		post := enemy.Guard.Target(center)
		if post == center {
			physics.Facing = enemy.Guard.Turn(physics.Facing, dt)
		} else {
			steer(physics, center, post, tc.Speed, arrive)
		}
	case ai.StatePatrol:
		steer(physics, center, enemy.Patrol.Next(center, arrive), tc.Speed, arrive)
	case ai.StateCircularPatrol:
		steer(physics, center, enemy.Circle.Next(center, arrive), tc.Speed, arrive)
	case ai.StatePackFollow:
		steer(physics, center, packSlot(ecs, e.Entity(), enemy, arena, center, dt), tc.Speed, arrive)
	}
}

func fleeSpeed(tc *cfg.EnemyTypeConfig) float64 {
	if tc.FleeSpeed > 0 {
		return tc.FleeSpeed
	}
	return tc.ChaseSpeed
}

// enemyAttack starts a new attack when the weapon is ready, facing the
// player. The attack cooldown starts with it.
func enemyAttack(e *donburi.Entry, enemy *components.EnemyData, physics *components.PhysicsData, attack *combat.Attack, center, player math2.Vec2) {
	if attack.Phase() != combat.PhaseIdle || enemy.AttackCooldown > 0 {
		return
	}
	payload, ok := attack.StartAttack(center, player, 0, combat.Unlimited)
	if !ok {
		return
	}
	enemy.AttackCooldown = enemy.TypeConfig.AttackCooldown
	physics.Facing = payload.Facing
	if payload.HasDash() {
		physics.Dash = combat.NewDash(payload.DashX, payload.DashY, payload.DashDuration, ease.OutQuad)
	}
}

// chase follows a planned path toward the player, planning again every
// RepathInterval or when the path runs out. It stops inside attack range.
// After a failed plan the enemy wanders and waits out the interval.
func chase(arena *components.ArenaData, enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, center math2.Vec2, tgt target, dt float64) {
	tc := enemy.TypeConfig
	physics.Facing = gamemath.AngleTo(center.X, center.Y, tgt.center.X, tgt.center.Y)
	if tgt.distance < tc.AttackRange {
		return
	}

	enemy.RepathTimer -= dt
	exhausted := !enemy.PathFailed && (enemy.Path == nil || enemy.PathIndex >= len(enemy.Path))
	if exhausted || enemy.RepathTimer <= 0 {
		enemy.Path = arena.Grid.FindPath(center, tgt.center, obj.W, obj.H)
		enemy.PathIndex = 0
		enemy.PathGoal = tgt.center
		enemy.PathFailed = enemy.Path == nil
		enemy.RepathTimer = cfg.Pathfinding.RepathInterval
	}

	arrive := cfg.Pathfinding.WaypointRadius
	if enemy.PathFailed {
		steer(physics, center, enemy.Wander.Update(dt, arena.Rng), tc.Speed, arrive)
		return
	}

	for enemy.PathIndex < len(enemy.Path) {
		wp := enemy.Path[enemy.PathIndex]
		if gamemath.Distance(center.X, center.Y, wp.X, wp.Y) > arrive {
			break
		}
		enemy.PathIndex++
	}
	if enemy.PathIndex >= len(enemy.Path) {
		return
	}
	steer(physics, center, enemy.Path[enemy.PathIndex], tc.ChaseSpeed, arrive)
	physics.Facing = gamemath.AngleTo(center.X, center.Y, tgt.center.X, tgt.center.Y)
}

// steer sets a velocity from pos toward dest, or stops within arrive.
func steer(physics *components.PhysicsData, pos, dest math2.Vec2, speed, arrive float64) {
	d := gamemath.Distance(pos.X, pos.Y, dest.X, dest.Y)
	if d <= arrive || speed <= 0 {
		physics.VelX, physics.VelY = 0, 0
		return
	}
	dx, dy := gamemath.Normalize(dest.X-pos.X, dest.Y-pos.Y)
	physics.VelX, physics.VelY = dx*speed, dy*speed
	physics.Facing = math.Atan2(dy, dx)
}

// packSlot is the member's place around its pack's anchor. Without a pack the
// member wanders on its own.
// Slots are handed out among living members only, in joining order.
func packSlot(ecs *ecs.ECS, self donburi.Entity, enemy *components.EnemyData, arena *components.ArenaData, center math2.Vec2, dt float64) math2.Vec2 {
	if enemy.Pack == donburi.Null || !ecs.World.Valid(enemy.Pack) {
		return enemy.Wander.Update(dt, arena.Rng)
	}
	pe := ecs.World.Entry(enemy.Pack)
	if !pe.HasComponent(components.Pack) {
		return center
	}
	pack := components.Pack.Get(pe)
	index, alive := 0, 0
	for _, id := range pack.Members {
		if !ecs.World.Valid(id) || !isAlive(ecs.World.Entry(id)) {
			continue
		}
		if id == self {
			index = alive
		}
		alive++
	}
	return ai.PackSlot(pack.Anchor, index, alive, cfg.AI.PackSpacing)
}

// updateAbility runs an enemy's periodic area attack. Casts start while the
// enemy is engaged; the burst lands on the player if it is still inside.
func updateAbility(e *donburi.Entry, enemy *components.EnemyData, center math2.Vec2, tgt target, dt float64) {
	ab := enemy.Ability
	if ab == nil {
		return
	}
	if ab.Update(dt, center) {
		if tgt.entry == nil || !isAlive(tgt.entry) {
			return
		}
		if !combat.CircleHitsRect(ab.Center.X, ab.Center.Y, ab.Config.Radius, components.Object.Get(tgt.entry).Rect()) {
			return
		}
		components.QueueDamage(tgt.entry, components.Damage{
			Amount:         ab.Config.Damage,
			KnockbackForce: ab.Config.Knockback,
			Attacker:       e.Entity(),
			Source:         ab.Center,
			Angle:          gamemath.AngleTo(ab.Center.X, ab.Center.Y, tgt.center.X, tgt.center.Y),
		})
		return
	}
	engaged := enemy.State == ai.StateChase || enemy.State == ai.StateAttack
	if engaged && tgt.entry != nil && ab.Ready(tgt.distance) {
		ab.Start(center, tgt.center)
	}
}
