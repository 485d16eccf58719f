package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat runs the hit timers and applies every queued hit: damage,
// blocking, knockback, stun and interrupts. Health is kept within
// [0, Max] and entities that run out start their death sequence.
func UpdateCombat(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	for _, e := range collectActors(ecs) {
		if e.HasComponent(components.Health) {
			if hp := components.Health.Get(e); hp.InvulnTime > 0 {
				hp.InvulnTime = math.Max(0, hp.InvulnTime-dt)
			}
		}
		if ph := components.Physics.Get(e); ph.StunTime > 0 {
			ph.StunTime = math.Max(0, ph.StunTime-dt)
		}
	}

	// Collect first; processing removes the queue component.
	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})
	for _, e := range hit {
		applyDamage(ecs, e)
	}
}

// applyDamage drains an entity's damage queue.
func applyDamage(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.DamageEvent) {
		return
	}
	pending := components.DamageEvent.Get(e).Pending
	donburi.Remove[components.DamageEventData](e, components.DamageEvent)

	if !isAlive(e) || !e.HasComponent(components.Health) {
		return
	}
	for _, d := range pending {
		if !isAlive(e) {
			return
		}
		applyHit(ecs, e, d)
	}
}

func applyHit(ecs *ecs.ECS, e *donburi.Entry, d components.Damage) {
	hp := components.Health.Get(e)
	if hp.InvulnTime > 0 {
		return
	}
	obj := components.Object.Get(e)
	ph := components.Physics.Get(e)
	center := obj.Center()
	isPlayer := e.HasComponent(tags.Player)

	amount, force := d.Amount, d.KnockbackForce
	blocked := false
	if isPlayer && d.Blockable {
		player := components.Player.Get(e)
		stamina := components.Stamina.Get(e)
		weapon := components.Weapon.Get(e).Attack.Weapon
		if weapon != nil && player.Blocking {
			res := combat.ResolveBlock(weapon.Block, true, ph.Facing, center, d.Source, amount, force, stamina.Current)
			if res.Blocked {
				stamina.Spend(res.StaminaCost, cfg.Combat.StaminaRegenDelay)
				amount, force, blocked = res.Damage, res.Knockback, true
			}
		}
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
	if isPlayer {
		hp.InvulnTime = cfg.Combat.PlayerInvulnTime
	} else {
		hp.InvulnTime = cfg.Combat.EnemyInvulnTime
	}

	var enemy *components.EnemyData
	if e.HasComponent(components.Enemy) {
		enemy = components.Enemy.Get(e)
		enemy.Awake = true
		if s := enemy.TypeConfig.KnockbackScale; s > 0 {
			force *= s
		}
	}

	if force > 0 {
		ph.KnockbackX, ph.KnockbackY = combat.KnockbackVelocity(d.Source, center, force, d.Angle)
		ph.IsKnockedBack = true
		ph.Dash = nil
	}
	if !blocked && d.StunTime > ph.StunTime {
		ph.StunTime = d.StunTime
	}
	if d.StunTime > 0 || force >= cfg.Combat.InterruptKnockback {
		interrupt(e, enemy)
	}

	killed := hp.Current <= 0
	logger.For("combat").WithFields(logrus.Fields{
		"defender": e.Entity(),
		"attacker": d.Attacker,
		"amount":   amount,
		"blocked":  blocked,
		"health":   hp.Current,
	}).Debug("hit")

	events.Hit.Publish(ecs.World, events.HitEvent{
		Position:      center,
		Amount:        amount,
		Attacker:      d.Attacker,
		Defender:      e.Entity(),
		AgainstPlayer: isPlayer,
		Blocked:       blocked,
		Killed:        killed,
	})
	if killed {
		startDeath(ecs, e, enemy, isPlayer)
	}
}

// interrupt cancels whatever the entity was committed to.
func interrupt(e *donburi.Entry, enemy *components.EnemyData) {
	if e.HasComponent(components.Weapon) {
		components.Weapon.Get(e).Attack.Interrupt()
	}
	if e.HasComponent(components.Player) {
		player := components.Player.Get(e)
		player.Charging = false
		player.ChargeTime = 0
		player.Buffered = false
	}
	if enemy != nil {
		enemy.Lunge.Interrupt()
		enemy.Ability.Interrupt()
		enemy.ClearPath()
	}
}

func startDeath(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, isPlayer bool) {
	interrupt(e, enemy)
	ph := components.Physics.Get(e)
	ph.VelX, ph.VelY = 0, 0
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Combat.DeathDuration})
	events.Death.Publish(ecs.World, events.DeathEvent{
		Entity:   e.Entity(),
		Position: components.Object.Get(e).Center(),
		IsPlayer: isPlayer,
	})
}
