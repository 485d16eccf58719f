package combat

import (
	"github.com/tanema/gween/ease"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// LungePhase is the stage of a lunge.
type LungePhase int

const (
	LungeReady LungePhase = iota
	LungeCharging
	LungeDashing
	LungeHopBack
)

func (p LungePhase) String() string {
	switch p {
	case LungeCharging:
		return "charging"
	case LungeDashing:
		return "dashing"
	case LungeHopBack:
		return "hopBack"
	default:
		return "ready"
	}
}

// Lunge is a charge-then-dash attack: the enemy holds still for ChargeTime,
// dashes toward where the target was when the charge ended, and may hop back
// afterwards to reset spacing.
type Lunge struct {
	Config *config.LungeConfig

	Phase    LungePhase
	Timer    float64
	Cooldown float64
	DirX     float64
	DirY     float64

	landed bool
	hop    *Dash
}

// NewLunge creates a ready lunge.
func NewLunge(c *config.LungeConfig) *Lunge {
	return &Lunge{Config: c}
}

// CanStart reports whether a new lunge may begin at the given distance.
func (l *Lunge) CanStart(distance float64) bool {
	return l != nil && l.Config != nil && l.Phase == LungeReady && l.Cooldown <= 0 &&
		distance <= l.Config.ChargeRange
}

// Active reports whether the lunge owns the enemy's movement.
func (l *Lunge) Active() bool {
	return l != nil && l.Phase != LungeReady
}

// Start begins the charge.
func (l *Lunge) Start() bool {
	if l == nil || l.Config == nil || l.Phase != LungeReady || l.Cooldown > 0 {
		return false
	}
	l.Phase = LungeCharging
	l.Timer = l.Config.ChargeTime
	return true
}

// Update advances the lunge and returns the velocity it wants this tick.
// roll is only called when a hop-back has to be decided and must return a
// value in [0, 1).
func (l *Lunge) Update(dt float64, origin, target math2.Vec2, roll func() float64) (vx, vy float64) {
	if l == nil || l.Config == nil {
		return 0, 0
	}
	c := l.Config
	switch l.Phase {
	case LungeReady:
		if l.Cooldown > 0 {
			l.Cooldown -= dt
		}
	case LungeCharging:
		l.Timer -= dt
		if l.Timer <= 0 {
			l.DirX, l.DirY = gamemath.Normalize(target.X-origin.X, target.Y-origin.Y)
			l.Phase = LungeDashing
			l.Timer = c.Duration
			l.landed = false
		}
	case LungeDashing:
		vx, vy = l.DirX*c.Speed, l.DirY*c.Speed
		l.Timer -= dt
		if l.Timer <= 0 {
			l.endDash(roll)
		}
	case LungeHopBack:
		mx, my, done := l.hop.Step(dt)
		if dt > 0 {
			vx, vy = mx/dt, my/dt
		}
		if done {
			l.finish()
		}
	}
	return vx, vy
}

func (l *Lunge) endDash(roll func() float64) {
	c := l.Config
	if c.HopBackChance > 0 && c.HopBackDistance > 0 && roll != nil && roll() < c.HopBackChance {
		l.Phase = LungeHopBack
		l.hop = NewDash(-l.DirX*c.HopBackDistance, -l.DirY*c.HopBackDistance, c.HopBackDuration, ease.OutQuad)
		return
	}
	l.finish()
}

func (l *Lunge) finish() {
	l.Phase = LungeReady
	l.Timer = 0
	l.hop = nil
	l.Cooldown = l.Config.Cooldown
}

// CanHit reports whether the dash can still deal damage.
func (l *Lunge) CanHit() bool {
	return l != nil && l.Phase == LungeDashing && !l.landed
}

// RegisterHit marks the dash as having landed; a dash damages at most once.
func (l *Lunge) RegisterHit() bool {
	if !l.CanHit() {
		return false
	}
	l.landed = true
	return true
}

// Interrupt cancels the lunge and puts it on cooldown.
func (l *Lunge) Interrupt() {
	if l == nil || l.Config == nil || l.Phase == LungeReady {
		return
	}
	l.finish()
}
