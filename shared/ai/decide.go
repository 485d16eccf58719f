// Package ai holds the enemy decision rules and the idle movement patterns.
// Everything here is pure: the enemy system gathers a Perception each tick,
// asks Decide for the state and lets the helpers pick movement targets.
package ai

import (
	"math"

	"github.com/automoto/doomerang-arena/config"
)

// State is an enemy's behaviour for the current tick.
type State int

const (
	StateIdle State = iota
	StateWander
	StateGuard
	StateSleep
	StatePatrol
	StatePackFollow
	StateCircularPatrol
	StateChase
	StateAttack
	StateLunge
	StateFlee
	StateKnockback // AI suspended, integrated by knockback velocity only
)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateWander:         "wander",
	StateGuard:          "guard",
	StateSleep:          "sleep",
	StatePatrol:         "patrol",
	StatePackFollow:     "packFollow",
	StateCircularPatrol: "circularPatrol",
	StateChase:          "chase",
	StateAttack:         "attack",
	StateLunge:          "lunge",
	StateFlee:           "flee",
	StateKnockback:      "knockback",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// IsIdle reports whether the state is one of the idle behaviours.
func (s State) IsIdle() bool {
	return s <= StateCircularPatrol
}

// Perception is what an enemy knows about itself and the player this tick.
type Perception struct {
	HasTarget bool
	Distance  float64 // centre to centre; ignored without a target

	HealthRatio    float64 // current / max
	AttackCooldown float64
	AttackBusy     bool // weapon is winding up or active
	LungeActive    bool
	LungeReady     bool // a lunge could start at Distance
	KnockedBack    bool
	Stunned        bool
	Awake          bool // sleepers stay asleep until something wakes them
}

// Idle maps a configured idle behaviour onto its state.
func Idle(b config.IdleBehavior) State {
	switch b {
	case config.IdleGuard:
		return StateGuard
	case config.IdleSleep:
		return StateSleep
	case config.IdlePatrol:
		return StatePatrol
	case config.IdlePackFollow:
		return StatePackFollow
	case config.IdleCircularPatrol:
		return StateCircularPatrol
	default:
		return StateWander
	}
}

// Decide picks the state for this tick, highest priority first. Nothing from
// before a knockback is remembered: once the push ends the state is worked
// out again from distances alone.
func Decide(current State, p Perception, t *config.EnemyTypeConfig, hysteresis float64) State {
	if p.KnockedBack || p.Stunned {
		return StateKnockback
	}
	if t == nil {
		return StateIdle
	}

	// Commitments run to completion.
	if p.LungeActive {
		return StateLunge
	}
	if p.AttackBusy {
		return StateAttack
	}

	if t.Idle == config.IdleSleep && !p.Awake {
		if p.HasTarget && p.Distance <= t.WakeRadius {
			return StateChase
		}
		return StateSleep
	}

	if !p.HasTarget {
		return Idle(t.Idle)
	}

	if hysteresis < 1 {
		hysteresis = 1
	}
	// Once engaged, the enemy keeps the player until they are well clear.
	engaged := !current.IsIdle() && current != StateKnockback
	reach := t.DetectionRange
	if engaged {
		reach *= hysteresis
	}
	inDetection := p.Distance < reach

	if inDetection && t.FleeHealthRatio > 0 && p.HealthRatio <= t.FleeHealthRatio {
		return StateFlee
	}
	if p.Distance < t.AttackRange && p.AttackCooldown <= 0 {
		return StateAttack
	}
	if p.LungeReady && inDetection {
		return StateLunge
	}
	if inDetection {
		return StateChase
	}
	return Idle(t.Idle)
}

// HealthRatio is a safe current/max.
func HealthRatio(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, float64(current)/float64(max))
}
