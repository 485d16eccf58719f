package combat

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// Dash is a timed displacement along a fixed direction. The distance covered
// over time follows an easing curve, so a dash can burst out and settle.
type Dash struct {
	DirX, DirY float64
	Distance   float64
	Duration   float64

	tween     *gween.Tween
	travelled float64
	done      bool
}

// NewDash moves by (dx, dy) over duration seconds.
func NewDash(dx, dy, duration float64, easing ease.TweenFunc) *Dash {
	dist := gamemath.Distance(0, 0, dx, dy)
	dirX, dirY := gamemath.Normalize(dx, dy)
	if easing == nil {
		easing = ease.Linear
	}
	d := &Dash{DirX: dirX, DirY: dirY, Distance: dist, Duration: duration}
	if duration <= 0 || dist == 0 {
		d.done = true
		return d
	}
	d.tween = gween.New(0, float32(dist), float32(duration), easing)
	return d
}

// Step advances the dash by dt and returns the displacement for this step.
func (d *Dash) Step(dt float64) (mx, my float64, done bool) {
	if d == nil || d.done {
		return 0, 0, true
	}
	pos, finished := d.tween.Update(float32(dt))
	travelled := float64(pos)
	if finished {
		travelled = d.Distance
		d.done = true
	}
	step := travelled - d.travelled
	d.travelled = travelled
	return d.DirX * step, d.DirY * step, d.done
}

// Done reports whether the dash has covered its distance.
func (d *Dash) Done() bool {
	return d == nil || d.done
}
