package combat

import (
	"math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// defaultDuration is the active window used when neither the stage nor the
// weapon sets one.
const defaultDuration = 0.2

// Payload is the fully resolved description of one attack.
type Payload struct {
	Stage       int
	Charged     bool
	ChargeRatio float64

	Range       float64
	Damage      int
	Arc         float64 // radians
	Duration    float64
	StaminaCost float64
	Shape       config.AttackShape
	ThrustWidth float64
	Knockback   float64
	StunTime    float64

	// Facing is the angle from the attacker to the target point.
	Facing float64

	// DashX, DashY is the world-space displacement requested by the stage,
	// zero when the stage does not dash.
	DashX, DashY float64
	DashDistance float64
	DashDuration float64

	Ranged *config.RangedConfig
}

// HasDash reports whether the payload moves the attacker.
func (p Payload) HasDash() bool {
	return p.DashDuration > 0 && (p.DashX != 0 || p.DashY != 0)
}

// ResolveStage combines the stage overrides with the weapon defaults and, for
// charged attacks, applies the charge multipliers. It fails when the weapon
// has no such stage.
func ResolveStage(w *config.WeaponConfig, stage int, charged bool, chargeRatio float64) (Payload, bool) {
	if w == nil || stage < 1 || stage > len(w.Combo) {
		return Payload{}, false
	}
	s := w.Combo[stage-1]

	rangeMul := orDefault(s.RangeMultiplier, 1)
	damageMul := orDefault(s.DamageMultiplier, 1)
	staminaMul := 1.0

	p := Payload{
		Stage:       stage,
		Charged:     charged,
		Arc:         orDefault(s.ArcDegrees, w.BaseArcDegrees) * math.Pi / 180,
		Duration:    orDefault(s.Duration, orDefault(w.Duration, defaultDuration)),
		Shape:       s.Shape,
		ThrustWidth: s.ThrustWidth,
		Knockback:   orDefault(s.Knockback, w.KnockbackForce),
		StunTime:    orDefault(s.StunTime, w.StunTime),
		Ranged:      w.Ranged,
	}
	stamina := orDefault(s.StaminaCost, w.StaminaCost)

	if charged && w.Charge != nil {
		p.ChargeRatio = gamemath.Clamp(chargeRatio, 0, 1)
		rangeMul *= gamemath.ScaleByCharge(w.Charge.MaxRangeMultiplier, p.ChargeRatio)
		damageMul *= gamemath.ScaleByCharge(w.Charge.MaxDamageMultiplier, p.ChargeRatio)
		staminaMul = gamemath.ScaleByCharge(w.Charge.MaxStaminaMultiplier, p.ChargeRatio)
	}

	p.Range = w.BaseRange * rangeMul
	p.Damage = int(math.Round(float64(w.BaseDamage) * damageMul))
	p.StaminaCost = stamina * staminaMul
	if s.Dash != nil && s.Dash.Duration > 0 {
		p.DashDistance = s.Dash.Distance
		p.DashDuration = s.Dash.Duration
	}
	return p, true
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
