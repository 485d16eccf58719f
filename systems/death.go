package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death sequences. Enemies are removed from the
// world when theirs ends; a dead player stays so the arena can report it.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	var toRemove []donburi.Entity
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer -= dt
		}
		if death.Timer <= 0 && !e.HasComponent(tags.Player) {
			toRemove = append(toRemove, e.Entity())
		}
	})
	for _, id := range toRemove {
		ecs.World.Remove(id)
	}
}
