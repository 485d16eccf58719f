package combat

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/collision"
)

// Projectile flies in a straight line until it has covered Range, leaves the
// world or lands a hit that does not pierce. (X, Y) is its centre.
type Projectile struct {
	X, Y             float64
	Width, Height    float64
	Angle            float64
	Speed            float64
	Damage           int
	Range            float64
	DistanceTraveled float64
	Owner            donburi.Entity
	Pierce           bool
	AoeRadius        float64
	AoeDamage        int
	Knockback        float64

	active bool
	hit    map[donburi.Entity]struct{}
}

// NewProjectile launches a projectile from (x, y) along angle using the
// weapon's ranged stats; zero stats fall back to the projectile defaults.
func NewProjectile(owner donburi.Entity, x, y, angle float64, rc *config.RangedConfig) *Projectile {
	p := &Projectile{
		X:      x,
		Y:      y,
		Angle:  angle,
		Owner:  owner,
		Speed:  config.Projectile.Speed,
		Range:  config.Projectile.Range,
		Width:  config.Projectile.Width,
		Height: config.Projectile.Height,
		active: true,
		hit:    make(map[donburi.Entity]struct{}),
	}
	if rc == nil {
		return p
	}
	if rc.Speed > 0 {
		p.Speed = rc.Speed
	}
	if rc.Range > 0 {
		p.Range = rc.Range
	}
	if rc.Width > 0 {
		p.Width = rc.Width
	}
	if rc.Height > 0 {
		p.Height = rc.Height
	}
	p.Damage = rc.Damage
	p.Pierce = rc.Pierce
	p.AoeRadius = rc.AoeRadius
	p.AoeDamage = rc.AoeDamage
	p.Knockback = rc.Knockback
	return p
}

// Active reports whether the projectile is still in flight.
func (p *Projectile) Active() bool {
	return p.active
}

// Deactivate takes the projectile out of play. It never comes back.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Bounds returns the projectile's box.
func (p *Projectile) Bounds() collision.Rect {
	return collision.Rect{X: p.X - p.Width/2, Y: p.Y - p.Height/2, W: p.Width, H: p.Height}
}

// Update moves the projectile and retires it at max range or outside
// [0, worldWidth] x [0, worldHeight].
func (p *Projectile) Update(dt, worldWidth, worldHeight float64) {
	if !p.active {
		return
	}
	step := p.Speed * dt
	p.X += math.Cos(p.Angle) * step
	p.Y += math.Sin(p.Angle) * step
	p.DistanceTraveled += step

	if p.DistanceTraveled >= p.Range {
		p.Deactivate()
		return
	}
	if p.X < 0 || p.X > worldWidth || p.Y < 0 || p.Y > worldHeight {
		p.Deactivate()
	}
}

// CheckCollision reports whether the projectile hits a target. The owner,
// targets already pierced and dead targets never qualify.
func (p *Projectile) CheckCollision(id donburi.Entity, target collision.Rect, alive bool) bool {
	if !p.active || id == p.Owner || !alive {
		return false
	}
	if _, ok := p.hit[id]; ok {
		return false
	}
	return p.Bounds().Overlaps(target)
}

// RegisterHit records a direct hit. Non-piercing projectiles stop here.
func (p *Projectile) RegisterHit(id donburi.Entity) {
	p.hit[id] = struct{}{}
	if !p.Pierce {
		p.Deactivate()
	}
}

// SplashDamage is the damage dealt to everything inside AoeRadius.
func (p *Projectile) SplashDamage() int {
	if p.AoeDamage > 0 {
		return p.AoeDamage
	}
	return p.Damage
}
