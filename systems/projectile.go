package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/combat"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateProjectiles advances every projectile, resolves its hits and applies
// the damage straight away. Spent projectiles are removed.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	var width, height float64
	if arena := getArena(ecs); arena != nil {
		width, height = arena.Width, arena.Height
	}

	var toRemove []donburi.Entity
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		p.Update(dt, width, height)
		if p.Active() {
			resolveProjectile(ecs, p)
		}
		if !p.Active() {
			toRemove = append(toRemove, e.Entity())
		}
	})
	for _, id := range toRemove {
		ecs.World.Remove(id)
	}
}

func resolveProjectile(ecs *ecs.ECS, p *components.ProjectileData) {
	targets := projectileTargets(ecs, p.FromPlayer)
	var touched []*donburi.Entry
	for _, t := range targets {
		if !p.Active() {
			break
		}
		if !p.CheckCollision(t.Entity(), components.Object.Get(t).Rect(), isAlive(t)) {
			continue
		}
		p.RegisterHit(t.Entity())
		components.QueueDamage(t, projectileDamage(p.Projectile, p.Damage))
		touched = append(touched, t)

		if p.AoeRadius > 0 {
			touched = append(touched, splash(p.Projectile, t, targets)...)
		}
	}
	for _, t := range touched {
		applyDamage(ecs, t)
	}
}

// splash damages everything around the impact except the direct target.
func splash(p *combat.Projectile, direct *donburi.Entry, targets []*donburi.Entry) []*donburi.Entry {
	var hit []*donburi.Entry
	for _, t := range targets {
		if t == direct || t.Entity() == p.Owner || !isAlive(t) {
			continue
		}
		if !combat.CircleHitsRect(p.X, p.Y, p.AoeRadius, components.Object.Get(t).Rect()) {
			continue
		}
		components.QueueDamage(t, projectileDamage(p, p.SplashDamage()))
		hit = append(hit, t)
	}
	return hit
}

func projectileDamage(p *combat.Projectile, amount int) components.Damage {
	return components.Damage{
		Amount:         amount,
		KnockbackForce: p.Knockback,
		Attacker:       p.Owner,
		Source:         math2.Vec2{X: p.X, Y: p.Y},
		Angle:          p.Angle,
		Blockable:      true,
	}
}

// Player shots hit enemies; enemy shots hit players.
func projectileTargets(ecs *ecs.ECS, fromPlayer bool) []*donburi.Entry {
	var targets []*donburi.Entry
	tag := tags.Player
	if fromPlayer {
		tag = tags.Enemy
	}
	tag.Each(ecs.World, func(e *donburi.Entry) {
		targets = append(targets, e)
	})
	return targets
}
