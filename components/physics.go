package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/shared/combat"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	// Velocity requested by input or AI for this tick, in pixels per second.
	VelX, VelY float64
	Speed      float64
	Facing     float64 // radians

	// Knockback owns the entity while active: input and AI are suspended and
	// the velocity decays each tick until it drops under the epsilon.
	KnockbackX, KnockbackY float64
	KnockbackDecay         float64
	IsKnockedBack          bool

	StunTime float64

	// Dash is a scripted displacement from an attack stage or a dodge.
	Dash *combat.Dash
}

// Stunned reports whether the entity is stunned or being pushed.
func (p *PhysicsData) Stunned() bool {
	return p.IsKnockedBack || p.StunTime > 0
}

var Physics = donburi.NewComponentType[PhysicsData]()
