package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/collision"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates every actor's velocity for the tick and resolves
// the move against walls and the other actors. Knockback wins over a dash,
// and a dash wins over the requested velocity.
func UpdateMovement(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	arena := getArena(ecs)
	var field collision.Field
	if arena != nil && arena.Field != nil {
		field = arena.Field
	}

	actors := collectActors(ecs)
	for i, e := range actors {
		if !isAlive(e) {
			continue
		}
		ph := components.Physics.Get(e)
		obj := components.Object.Get(e)

		var dx, dy float64
		switch {
		case ph.IsKnockedBack:
			dx, dy = ph.KnockbackX*dt, ph.KnockbackY*dt
			var stopped bool
			ph.KnockbackX, ph.KnockbackY, stopped = gamemath.Decay(
				ph.KnockbackX, ph.KnockbackY, ph.KnockbackDecay, cfg.Movement.KnockbackEpsilon)
			if stopped {
				ph.IsKnockedBack = false
			}
		case ph.Dash != nil:
			var done bool
			dx, dy, done = ph.Dash.Step(dt)
			if done {
				ph.Dash = nil
			}
		default:
			dx, dy = ph.VelX*dt, ph.VelY*dt
		}
		if dx == 0 && dy == 0 {
			continue
		}

		blockers := make([]collision.Rect, 0, len(actors)-1)
		for j, other := range actors {
			if j == i || !isAlive(other) {
				continue
			}
			blockers = append(blockers, components.Object.Get(other).Rect())
		}

		res := collision.ResolveMove(field, blockers, obj.Rect(), dx, dy)
		if ph.Dash != nil && res.X == obj.X && res.Y == obj.Y {
			// Dashing into a wall ends the dash.
			ph.Dash = nil
		}
		obj.MoveTo(res.X, res.Y)
	}
}

// collectActors returns the players then the enemies, in storage order.
func collectActors(ecs *ecs.ECS) []*donburi.Entry {
	var actors []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		actors = append(actors, e)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		actors = append(actors, e)
	})
	return actors
}
