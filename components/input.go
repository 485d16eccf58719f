package components

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the player's input state. Whatever drives the
// player (keyboard polling, a script, a test) writes Current and the aim
// point; the player system shifts Current into Previous after reading it.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state

	// Aim point in world coordinates.
	AimX, AimY float64
	HasAim     bool
}

// Pressed reports whether the action is held this frame.
func (in *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return in.CurrentInput[a]
}

// JustPressed reports whether the action went down this frame.
func (in *PlayerInputData) JustPressed(a cfg.ActionID) bool {
	return in.CurrentInput[a] && !in.PreviousInput[a]
}

// JustReleased reports whether the action came up this frame.
func (in *PlayerInputData) JustReleased(a cfg.ActionID) bool {
	return !in.CurrentInput[a] && in.PreviousInput[a]
}

// Set records an action's pressed state for this frame.
func (in *PlayerInputData) Set(a cfg.ActionID, pressed bool) {
	in.CurrentInput[a] = pressed
}

// Advance moves this frame's state into the previous frame.
func (in *PlayerInputData) Advance() {
	in.PreviousInput = in.CurrentInput
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
