package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Attack charging: the attack fires when the button is released.
	Charging   bool
	ChargeTime float64

	// An attack pressed during a busy window is kept for a short while.
	Buffered    bool
	BufferTimer float64

	Blocking bool

	DodgeTimer    float64
	DodgeCooldown float64
}

// Dodging reports whether a dodge roll is in progress.
func (p *PlayerData) Dodging() bool {
	return p.DodgeTimer > 0
}

var Player = donburi.NewComponentType[PlayerData]()
