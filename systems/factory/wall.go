package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall registers a solid rectangle with the arena's obstacle field.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	var obj *resolv.Object
	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		obj = components.Arena.Get(arenaEntry).Field.AddSolid(x, y, w, h)
	} else {
		obj = resolv.NewObject(x, y, w, h, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	return wall
}
