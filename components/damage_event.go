package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Damage is one hit waiting to be applied.
type Damage struct {
	Amount         int
	KnockbackForce float64
	StunTime       float64
	Attacker       donburi.Entity
	Source         math2.Vec2 // where the hit came from, for knockback and blocking
	Angle          float64    // push direction when Source sits on the target
	Blockable      bool
}

// DamageEventData queues the hits an entity took this tick.
type DamageEventData struct {
	Pending []Damage
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// QueueDamage appends a hit to the entity's queue.
func QueueDamage(e *donburi.Entry, d Damage) {
	if !e.HasComponent(DamageEvent) {
		donburi.Add(e, DamageEvent, &DamageEventData{})
	}
	q := DamageEvent.Get(e)
	q.Pending = append(q.Pending, d)
}
