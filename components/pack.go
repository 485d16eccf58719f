package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/shared/ai"
)

// PackData is shared by a group of enemies. Only the pack system writes it;
// members read the anchor to find their slot.
type PackData struct {
	Members  []donburi.Entity
	Centroid math2.Vec2
	Anchor   math2.Vec2
	Wander   ai.Wander
	Alive    int
}

var Pack = donburi.NewComponentType[PackData]()
