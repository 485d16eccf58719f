package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttacks tests every active melee attack and every dashing lunge
// against the other side and queues damage for what they touch. Each
// attack hits a given target at most once.
func UpdateAttacks(ecs *ecs.ECS) {
	var players, enemies []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if isAlive(e) {
			players = append(players, e)
		}
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if isAlive(e) {
			enemies = append(enemies, e)
		}
	})

	for _, p := range players {
		resolveMelee(p, enemies)
	}
	for _, e := range enemies {
		resolveMelee(e, players)
		resolveLunge(e, players)
	}
}

func resolveMelee(attacker *donburi.Entry, targets []*donburi.Entry) {
	attack := components.Weapon.Get(attacker).Attack
	if !attack.IsAttacking() || attack.Current.Ranged != nil {
		return
	}
	origin := components.Object.Get(attacker).Center()
	payload := attack.Current
	for _, t := range targets {
		id := t.Entity()
		if attack.AlreadyHit(id) {
			continue
		}
		if !attack.InReach(origin, components.Object.Get(t).Rect()) {
			continue
		}
		attack.RegisterHit(id)
		components.QueueDamage(t, components.Damage{
			Amount:         payload.Damage,
			KnockbackForce: payload.Knockback,
			StunTime:       payload.StunTime,
			Attacker:       attacker.Entity(),
			Source:         origin,
			Angle:          payload.Facing,
			Blockable:      true,
		})
	}
}

func resolveLunge(e *donburi.Entry, targets []*donburi.Entry) {
	lunge := components.Enemy.Get(e).Lunge
	if !lunge.CanHit() {
		return
	}
	obj := components.Object.Get(e)
	for _, t := range targets {
		if !obj.Rect().Overlaps(components.Object.Get(t).Rect()) {
			continue
		}
		if !lunge.RegisterHit() {
			return
		}
		components.QueueDamage(t, components.Damage{
			Amount:         lunge.Config.Damage,
			KnockbackForce: lunge.Config.Knockback,
			Attacker:       e.Entity(),
			Source:         obj.Center(),
			Angle:          math.Atan2(lunge.DirY, lunge.DirX),
			Blockable:      true,
		})
		return
	}
}

// launchIfRanged fires the projectile of a ranged attack that has just become
// active, along the attack's facing.
func launchIfRanged(ecs *ecs.ECS, owner *donburi.Entry, attack *combat.Attack, fromPlayer bool) {
	rc := attack.Current.Ranged
	if rc == nil {
		return
	}
	c := components.Object.Get(owner).Center()
	facing := attack.Current.Facing
	factory.CreateProjectile(ecs, owner, c.X+math.Cos(facing), c.Y+math.Sin(facing), rc, fromPlayer)
}
