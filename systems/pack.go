package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdatePacks recomputes each pack's centroid and walks its anchor toward
// the pack's wander target. This is the only writer of pack data; members
// read the anchor later in the tick.
func UpdatePacks(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	arena := getArena(ecs)
	if arena == nil {
		return
	}
	components.Pack.Each(ecs.World, func(e *donburi.Entry) {
		pack := components.Pack.Get(e)

		var sum math2.Vec2
		alive := 0
		speed := math.Inf(1)
		for _, id := range pack.Members {
			if !ecs.World.Valid(id) {
				continue
			}
			m := ecs.World.Entry(id)
			if !isAlive(m) {
				continue
			}
			c := components.Object.Get(m).Center()
			sum.X += c.X
			sum.Y += c.Y
			alive++
			speed = math.Min(speed, components.Physics.Get(m).Speed)
		}
		pack.Alive = alive
		if alive == 0 {
			return
		}
		pack.Centroid = math2.Vec2{X: sum.X / float64(alive), Y: sum.Y / float64(alive)}

		// The anchor waits for stragglers so the pack stays together.
		if gamemath.Distance(pack.Anchor.X, pack.Anchor.Y, pack.Centroid.X, pack.Centroid.Y) > 2*cfg.AI.PackSpacing {
			return
		}
		target := pack.Wander.Update(dt, arena.Rng)
		pack.Anchor = stepToward(pack.Anchor, target, speed*dt)
	})
}

// stepToward moves from toward to by at most maxStep.
func stepToward(from, to math2.Vec2, maxStep float64) math2.Vec2 {
	d := gamemath.Distance(from.X, from.Y, to.X, to.Y)
	if d <= maxStep || d == 0 {
		return to
	}
	dx, dy := gamemath.Normalize(to.X-from.X, to.Y-from.Y)
	return math2.Vec2{X: from.X + dx*maxStep, Y: from.Y + dy*maxStep}
}
