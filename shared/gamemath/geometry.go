// Package gamemath holds the pure math shared by navigation, combat and
// projectile code. Nothing in here keeps state.
package gamemath

import "math"

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns the unit vector of (x, y). A zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RectOverlap reports whether two axis-aligned rectangles overlap.
// Rectangles that only share an edge do not overlap.
func RectOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 &&
		x1+w1 > x2 &&
		y1 < y2+h2 &&
		y1+h1 > y2
}

// NormalizeAngle wraps an angle in radians into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// AngleTo returns the angle of the vector from (ax, ay) to (bx, by).
func AngleTo(ax, ay, bx, by float64) float64 {
	return math.Atan2(by-ay, bx-ax)
}

// PointInArc reports whether (px, py) lies inside the circular sector centred
// on (cx, cy), opening arcAngle radians around facing, up to maxDistance.
func PointInArc(px, py, cx, cy, facing, arcAngle, maxDistance float64) bool {
	if maxDistance < 0 || arcAngle <= 0 {
		return false
	}
	d := Distance(cx, cy, px, py)
	if d > maxDistance {
		return false
	}
	if d == 0 || arcAngle >= 2*math.Pi {
		return true
	}
	delta := NormalizeAngle(AngleTo(cx, cy, px, py) - facing)
	return math.Abs(delta) <= arcAngle/2
}

// PointInSweptArc is PointInArc restricted to the part of the arc swept so
// far. The sweep starts at facing-arcAngle/2 and grows by progress*arcAngle,
// progress in [0, 1].
func PointInSweptArc(px, py, cx, cy, facing, arcAngle, maxDistance, progress float64) bool {
	if maxDistance < 0 || arcAngle <= 0 {
		return false
	}
	progress = Clamp(progress, 0, 1)
	if progress == 0 {
		return false
	}
	d := Distance(cx, cy, px, py)
	if d > maxDistance {
		return false
	}
	if d == 0 {
		return true
	}

	half := arcAngle / 2
	if arcAngle >= 2*math.Pi {
		half = math.Pi
	}
	// Offset from the sweep start, measured in the sweep direction.
	offset := NormalizeAngle(AngleTo(cx, cy, px, py) - (facing - half))
	if offset < 0 {
		offset += 2 * math.Pi
	}
	if arcAngle >= 2*math.Pi && progress == 1 {
		return true
	}
	return offset <= math.Min(arcAngle, 2*math.Pi)*progress
}

// PointInThrustRect reports whether (px, py) lies in the rectangle that
// extends length units from (ox, oy) along facing, halfWidth to either side.
func PointInThrustRect(px, py, ox, oy, facing, length, halfWidth float64) bool {
	if length < 0 || halfWidth < 0 {
		return false
	}
	dx := px - ox
	dy := py - oy
	dirX := math.Cos(facing)
	dirY := math.Sin(facing)

	forward := dx*dirX + dy*dirY
	if forward < 0 || forward > length {
		return false
	}
	perpendicular := -dx*dirY + dy*dirX
	return math.Abs(perpendicular) <= halfWidth
}
