package combat

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/collision"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// KnockbackVelocity pushes the target away from the attacker with the given
// force. When the two centres coincide the push follows fallbackAngle.
func KnockbackVelocity(attacker, target math2.Vec2, force, fallbackAngle float64) (float64, float64) {
	if force <= 0 {
		return 0, 0
	}
	dx, dy := gamemath.Normalize(target.X-attacker.X, target.Y-attacker.Y)
	if dx == 0 && dy == 0 {
		dx, dy = math.Cos(fallbackAngle), math.Sin(fallbackAngle)
	}
	return dx * force, dy * force
}

// Block is the outcome of a hit against a defender that may be blocking.
type Block struct {
	Damage      int
	Knockback   float64
	StaminaCost float64
	Blocked     bool
}

// ResolveBlock reduces a hit if the defender is blocking with a weapon that
// can block, is facing the attacker and can pay the stamina cost.
func ResolveBlock(block *config.BlockConfig, blocking bool, defenderFacing float64, defender, attacker math2.Vec2, damage int, knockback, stamina float64) Block {
	res := Block{Damage: damage, Knockback: knockback}
	if !blocking || block == nil || stamina < block.StaminaCost {
		return res
	}
	arc := block.ArcDegrees * math.Pi / 180
	if !gamemath.PointInArc(attacker.X, attacker.Y, defender.X, defender.Y, defenderFacing, arc, math.Inf(1)) {
		return res
	}
	reduction := gamemath.Clamp(block.DamageReduction, 0, 1)
	res.Damage = int(math.Round(float64(damage) * (1 - reduction)))
	res.Knockback = knockback * block.KnockbackScale
	res.StaminaCost = block.StaminaCost
	res.Blocked = true
	return res
}

// CircleHitsRect reports whether a circle touches a box, measured to the box's
// closest point.
func CircleHitsRect(cx, cy, radius float64, r collision.Rect) bool {
	if radius <= 0 {
		return false
	}
	nx := gamemath.Clamp(cx, r.X, r.X+r.W)
	ny := gamemath.Clamp(cy, r.Y, r.Y+r.H)
	return gamemath.Distance(cx, cy, nx, ny) <= radius
}
