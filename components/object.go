package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/shared/collision"
)

// ObjectData is an entity's body. Bodies are not registered in the obstacle
// space; only solids live there.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the body's box.
func (o *ObjectData) Rect() collision.Rect {
	return collision.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the body's centre point.
func (o *ObjectData) Center() math2.Vec2 {
	return math2.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// MoveTo places the body at a top-left position.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X, o.Y = x, y
}

var Object = donburi.NewComponentType[ObjectData]()
