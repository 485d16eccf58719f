package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the arena's tick counter. It runs first each tick.
func UpdateClock(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil || arena.Paused {
		return
	}
	arena.Tick++
	arena.Time += arena.DT
}

// WithPauseCheck wraps a system so it is skipped while the arena is paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if arena := getArena(ecs); arena != nil && arena.Paused {
			return
		}
		system(ecs)
	}
}

func getArena(ecs *ecs.ECS) *components.ArenaData {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(entry)
}

// deltaTime is the current tick length, 0 without an arena.
func deltaTime(ecs *ecs.ECS) float64 {
	if arena := getArena(ecs); arena != nil {
		return arena.DT
	}
	return 0
}

// livingPlayer returns the first player that is not dying.
func livingPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if found != nil || !isAlive(e) {
			return
		}
		found = e
	})
	return found, found != nil
}

// isAlive reports whether an entry can still act and be targeted.
func isAlive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	if e.HasComponent(components.Health) && components.Health.Get(e).IsDead() {
		return false
	}
	return true
}
