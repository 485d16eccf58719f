// Package combat holds the per-entity attack lifecycle, enemy lunge and
// ability timers, projectiles and the helpers that turn hits into damage and
// knockback.
package combat

import (
	"context"
	"errors"
	"math"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/collision"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// Unlimited can be passed as available stamina by attackers that do not use
// stamina.
var Unlimited = math.Inf(1)

// Attack phases.
const (
	PhaseIdle       = "idle"
	PhaseWindingUp  = "windingUp"
	PhaseActive     = "active"
	PhaseRecovering = "recovering"
)

const (
	evWindUp    = "windUp"
	evActivate  = "activate"
	evRecover   = "recover"
	evReady     = "ready"
	evInterrupt = "interrupt"
)

// Attack is the attack lifecycle of one entity:
// idle -> windingUp -> active -> recovering -> idle. Wind-up and recovery are
// skipped when the weapon sets them to zero.
type Attack struct {
	Weapon *config.WeaponConfig

	ComboStage     int     // 0 when no combo is running
	ComboTimer     float64 // time left before the combo resets
	AttackTimer    float64 // time spent in the active window
	AttackDuration float64
	AttackBuffer   float64 // recovery lockout
	WindUpTimer    float64

	// Current is the payload of the attack in progress.
	Current Payload

	hitEnemies map[donburi.Entity]struct{}
	phase      *fsm.FSM
}

// NewAttack creates an idle attack state for a weapon.
func NewAttack(w *config.WeaponConfig) *Attack {
	return &Attack{
		Weapon:     w,
		hitEnemies: make(map[donburi.Entity]struct{}),
		phase: fsm.NewFSM(
			PhaseIdle,
			fsm.Events{
				{Name: evWindUp, Src: []string{PhaseIdle}, Dst: PhaseWindingUp},
				{Name: evActivate, Src: []string{PhaseIdle, PhaseWindingUp}, Dst: PhaseActive},
				{Name: evRecover, Src: []string{PhaseWindingUp, PhaseActive}, Dst: PhaseRecovering},
				{Name: evReady, Src: []string{PhaseWindingUp, PhaseActive, PhaseRecovering}, Dst: PhaseIdle},
				{Name: evInterrupt, Src: []string{PhaseWindingUp, PhaseActive, PhaseRecovering}, Dst: PhaseIdle},
			},
			fsm.Callbacks{},
		),
	}
}

// Phase returns the current lifecycle phase.
func (a *Attack) Phase() string {
	return a.phase.Current()
}

// IsAttacking reports whether the attack can currently hit.
func (a *Attack) IsAttacking() bool {
	return a.phase.Is(PhaseActive)
}

// Busy reports whether an attack is winding up or active.
func (a *Attack) Busy() bool {
	return a.phase.Is(PhaseWindingUp) || a.phase.Is(PhaseActive)
}

// Progress is how far through the active window the attack is, 0..1.
func (a *Attack) Progress() float64 {
	if !a.IsAttacking() || a.AttackDuration <= 0 {
		return 0
	}
	return gamemath.Clamp(a.AttackTimer/a.AttackDuration, 0, 1)
}

// StartAttack begins an attack from origin toward target. chargeDuration is
// how long the input was held; availableStamina is what the attacker can
// spend. A rejected attack leaves every timer and the combo untouched.
func (a *Attack) StartAttack(origin, target math2.Vec2, chargeDuration, availableStamina float64) (Payload, bool) {
	if a.Weapon == nil || !a.phase.Is(PhaseIdle) || a.AttackBuffer > 0 {
		return Payload{}, false
	}

	charged := false
	ratio := 0.0
	if c := a.Weapon.Charge; c != nil && chargeDuration >= c.MinTime && chargeDuration > 0 {
		charged = true
		ratio = gamemath.ChargeRatio(chargeDuration, c.MinTime, c.MaxTime)
	}

	stage := 1
	if !charged {
		stage = a.ComboStage + 1
		if stage > a.Weapon.MaxStage() {
			stage = 1
		}
	}

	p, ok := ResolveStage(a.Weapon, stage, charged, ratio)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "combat",
			"weapon":    a.Weapon.Name,
			"stage":     stage,
		}).Warn("no stage properties for combo stage")
		return Payload{}, false
	}
	if p.StaminaCost > availableStamina {
		return Payload{}, false
	}

	p.Facing = gamemath.AngleTo(origin.X, origin.Y, target.X, target.Y)
	if p.DashDuration > 0 {
		dx, dy := gamemath.Normalize(target.X-origin.X, target.Y-origin.Y)
		p.DashX, p.DashY = dx*p.DashDistance, dy*p.DashDistance
	}

	a.ComboStage = stage
	a.ComboTimer = a.Weapon.ComboWindow
	a.Current = p
	a.AttackTimer = 0
	a.AttackDuration = p.Duration
	a.clearHits()

	if a.Weapon.WindUpTime > 0 {
		a.WindUpTimer = a.Weapon.WindUpTime
		a.fire(evWindUp)
	} else {
		a.fire(evActivate)
	}
	return p, true
}

// Update advances the timers by dt seconds. It reports whether the attack
// entered its active window during this call.
func (a *Attack) Update(dt float64) (activated bool) {
	switch a.phase.Current() {
	case PhaseWindingUp:
		a.WindUpTimer -= dt
		if a.WindUpTimer <= 0 {
			a.WindUpTimer = 0
			a.fire(evActivate)
			activated = true
		}
	case PhaseActive:
		a.AttackTimer += dt
		if a.AttackTimer >= a.AttackDuration {
			a.EndAttack()
		}
	case PhaseRecovering:
		a.AttackBuffer -= dt
		if a.AttackBuffer <= 0 {
			a.AttackBuffer = 0
			a.fire(evReady)
		}
		a.tickCombo(dt)
	default:
		a.tickCombo(dt)
	}
	return activated
}

func (a *Attack) tickCombo(dt float64) {
	if a.ComboStage == 0 {
		return
	}
	a.ComboTimer -= dt
	if a.ComboTimer <= 0 {
		a.ComboTimer = 0
		a.ComboStage = 0
	}
}

// EndAttack closes the active window and starts the recovery buffer.
func (a *Attack) EndAttack() {
	if a.phase.Is(PhaseIdle) || a.phase.Is(PhaseRecovering) {
		return
	}
	a.AttackTimer = 0
	a.WindUpTimer = 0
	a.clearHits()

	a.AttackBuffer = 0
	if a.Weapon != nil {
		a.AttackBuffer = a.Weapon.Cooldown
	}
	if a.AttackBuffer > 0 {
		a.fire(evRecover)
	} else {
		a.fire(evReady)
	}
}

// Interrupt drops whatever the attack was doing, as when the attacker is
// knocked back or stunned. The combo is lost.
func (a *Attack) Interrupt() {
	if a.phase.Is(PhaseIdle) {
		return
	}
	a.AttackTimer = 0
	a.WindUpTimer = 0
	a.AttackBuffer = 0
	a.ComboStage = 0
	a.ComboTimer = 0
	a.clearHits()
	a.fire(evInterrupt)
}

// InReach runs the stage's hit test against a target box. The box is hit if
// either its centre or its point closest to the attacker lies in the shape.
func (a *Attack) InReach(origin math2.Vec2, target collision.Rect) bool {
	if !a.IsAttacking() || a.Current.Ranged != nil {
		return false
	}
	cx, cy := target.Center()
	nx := gamemath.Clamp(origin.X, target.X, target.X+target.W)
	ny := gamemath.Clamp(origin.Y, target.Y, target.Y+target.H)
	return a.pointInShape(origin, cx, cy) || a.pointInShape(origin, nx, ny)
}

func (a *Attack) pointInShape(origin math2.Vec2, px, py float64) bool {
	p := a.Current
	switch p.Shape {
	case config.ShapeSweep:
		return gamemath.PointInSweptArc(px, py, origin.X, origin.Y, p.Facing, p.Arc, p.Range, a.Progress())
	case config.ShapeThrust:
		return gamemath.PointInThrustRect(px, py, origin.X, origin.Y, p.Facing, p.Range, p.ThrustWidth/2)
	default:
		return gamemath.PointInArc(px, py, origin.X, origin.Y, p.Facing, p.Arc, p.Range)
	}
}

// RegisterHit records a hit on id for the current attack. It returns false if
// id was already hit, in which case no damage may be applied.
func (a *Attack) RegisterHit(id donburi.Entity) bool {
	if _, ok := a.hitEnemies[id]; ok {
		return false
	}
	a.hitEnemies[id] = struct{}{}
	return true
}

// AlreadyHit reports whether id was hit by the current attack.
func (a *Attack) AlreadyHit(id donburi.Entity) bool {
	_, ok := a.hitEnemies[id]
	return ok
}

func (a *Attack) clearHits() {
	clear(a.hitEnemies)
}

func (a *Attack) fire(event string) {
	err := a.phase.Event(context.Background(), event)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"event":     event,
		"phase":     a.phase.Current(),
	}).Warnf("attack transition failed: %v", err)
}
