package combat

import (
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
)

// Ability is a periodic area attack with its own wind-up and cooldown,
// independent of the weapon.
type Ability struct {
	Config *config.AbilityConfig

	Cooldown float64
	WindUp   float64
	Casting  bool
	Center   math2.Vec2 // where the burst lands
}

// NewAbility creates an ability that is ready to cast.
func NewAbility(c *config.AbilityConfig) *Ability {
	return &Ability{Config: c}
}

// Ready reports whether a cast may start against a target at distance.
func (a *Ability) Ready(distance float64) bool {
	return a != nil && a.Config != nil && !a.Casting && a.Cooldown <= 0 && distance <= a.Config.Range
}

// Start begins the wind-up. Pillars land on the target's position at cast
// start, bursts on the caster.
func (a *Ability) Start(caster, target math2.Vec2) bool {
	if a == nil || a.Config == nil || a.Casting || a.Cooldown > 0 {
		return false
	}
	a.Casting = true
	a.WindUp = a.Config.WindUp
	a.Center = caster
	if a.Config.Kind == config.AbilityPillar {
		a.Center = target
	}
	return true
}

// Update advances the timers. fired is true on the tick the burst lands.
func (a *Ability) Update(dt float64, caster math2.Vec2) (fired bool) {
	if a == nil || a.Config == nil {
		return false
	}
	if !a.Casting {
		if a.Cooldown > 0 {
			a.Cooldown -= dt
		}
		return false
	}
	if a.Config.Kind == config.AbilityAOE {
		a.Center = caster
	}
	a.WindUp -= dt
	if a.WindUp > 0 {
		return false
	}
	a.Casting = false
	a.WindUp = 0
	a.Cooldown = a.Config.Cooldown
	return true
}

// Interrupt cancels a cast in progress and starts the cooldown.
func (a *Ability) Interrupt() {
	if a == nil || a.Config == nil || !a.Casting {
		return
	}
	a.Casting = false
	a.WindUp = 0
	a.Cooldown = a.Config.Cooldown
}
