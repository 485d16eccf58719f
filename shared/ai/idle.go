package ai

import (
	"math"
	"math/rand"

	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// Wander picks random points around a home position and walks to them,
// choosing a new point every MinInterval..MaxInterval seconds.
type Wander struct {
	Home        math2.Vec2
	Radius      float64
	MinInterval float64
	MaxInterval float64

	Target math2.Vec2
	Timer  float64
}

// Update counts down and re-picks the target when the timer runs out.
// It returns the point to walk toward.
func (w *Wander) Update(dt float64, rng *rand.Rand) math2.Vec2 {
	w.Timer -= dt
	if w.Timer > 0 {
		return w.Target
	}
	angle := rng.Float64() * 2 * math.Pi
	dist := math.Sqrt(rng.Float64()) * w.Radius
	w.Target = math2.Vec2{
		X: w.Home.X + math.Cos(angle)*dist,
		Y: w.Home.Y + math.Sin(angle)*dist,
	}
	lo, hi := w.MinInterval, w.MaxInterval
	if hi < lo {
		hi = lo
	}
	w.Timer = lo + rng.Float64()*(hi-lo)
	return w.Target
}

// Guard keeps an enemy near its post, slowly turning to look around.
type Guard struct {
	Post      math2.Vec2
	Radius    float64
	TurnSpeed float64 // radians per second
}

// Target returns the post while pos has strayed beyond the radius, and pos
// itself otherwise.
func (g Guard) Target(pos math2.Vec2) math2.Vec2 {
	if gamemath.Distance(pos.X, pos.Y, g.Post.X, g.Post.Y) > g.Radius {
		return g.Post
	}
	return pos
}

// Turn rotates facing by TurnSpeed*dt.
func (g Guard) Turn(facing, dt float64) float64 {
	return gamemath.NormalizeAngle(facing + g.TurnSpeed*dt)
}

// Patrol walks back and forth between A and B.
type Patrol struct {
	A, B    math2.Vec2
	TowardB bool
}

// Next returns the current destination, turning around once pos is within
// arrive of it.
func (p *Patrol) Next(pos math2.Vec2, arrive float64) math2.Vec2 {
	target := p.A
	if p.TowardB {
		target = p.B
	}
	if gamemath.Distance(pos.X, pos.Y, target.X, target.Y) <= arrive {
		p.TowardB = !p.TowardB
		if p.TowardB {
			return p.B
		}
		return p.A
	}
	return target
}

// CircularPatrol walks a fixed ring of waypoints.
type CircularPatrol struct {
	Points    []math2.Vec2
	Index     int
	Clockwise bool
}

// Ring lays out n waypoints on a circle, starting at angle 0 and running
// clockwise on screen (y down) when clockwise is set.
func Ring(center math2.Vec2, radius float64, n int, clockwise bool) []math2.Vec2 {
	if n < 1 {
		return nil
	}
	points := make([]math2.Vec2, n)
	step := 2 * math.Pi / float64(n)
	if !clockwise {
		step = -step
	}
	for i := range points {
		a := step * float64(i)
		points[i] = math2.Vec2{X: center.X + math.Cos(a)*radius, Y: center.Y + math.Sin(a)*radius}
	}
	return points
}

// Next returns the current waypoint and advances past it once reached. An
// empty ring returns pos.
func (c *CircularPatrol) Next(pos math2.Vec2, arrive float64) math2.Vec2 {
	if len(c.Points) == 0 {
		return pos
	}
	c.Index = ((c.Index % len(c.Points)) + len(c.Points)) % len(c.Points)
	wp := c.Points[c.Index]
	if gamemath.Distance(pos.X, pos.Y, wp.X, wp.Y) <= arrive {
		c.Index = (c.Index + 1) % len(c.Points)
		wp = c.Points[c.Index]
	}
	return wp
}

// PackSlot is a member's place around the pack anchor: members spread
// evenly on a circle of radius spacing.
func PackSlot(anchor math2.Vec2, index, count int, spacing float64) math2.Vec2 {
	if count <= 1 || spacing <= 0 {
		return anchor
	}
	a := 2 * math.Pi * float64(index) / float64(count)
	return math2.Vec2{X: anchor.X + math.Cos(a)*spacing, Y: anchor.Y + math.Sin(a)*spacing}
}

// FleeTarget is the point distance away from threat, straight through pos.
// When the two coincide it runs along +X.
func FleeTarget(pos, threat math2.Vec2, distance float64) math2.Vec2 {
	dx, dy := gamemath.Normalize(pos.X-threat.X, pos.Y-threat.Y)
	if dx == 0 && dy == 0 {
		dx = 1
	}
	return math2.Vec2{X: pos.X + dx*distance, Y: pos.Y + dy*distance}
}
