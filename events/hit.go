// Package events carries what happened during a tick to anyone listening:
// the CLI log, the debug overlay and tests.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

// HitEvent is published whenever damage lands.
type HitEvent struct {
	Position      math2.Vec2 // defender centre
	Amount        int
	Attacker      donburi.Entity
	Defender      donburi.Entity
	AgainstPlayer bool
	Blocked       bool
	Killed        bool
}

// DeathEvent is published when an entity's health runs out.
type DeathEvent struct {
	Entity   donburi.Entity
	Position math2.Vec2
	IsPlayer bool
}

var (
	Hit   = devents.NewEventType[HitEvent]()
	Death = devents.NewEventType[DeathEvent]()
)

// Dispatch delivers everything published since the last call.
func Dispatch(w donburi.World) {
	devents.ProcessAllEvents(w)
}
