package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampMagnitude scales (x, y) down so its length does not exceed max.
func ClampMagnitude(x, y, max float64) (float64, float64) {
	if max <= 0 {
		return 0, 0
	}
	length := math.Sqrt(x*x + y*y)
	if length <= max {
		return x, y
	}
	return x / length * max, y / length * max
}

// Decay multiplies a velocity by factor once and snaps it to zero when its
// magnitude drops below epsilon. stopped reports whether the snap happened.
func Decay(vx, vy, factor, epsilon float64) (x, y float64, stopped bool) {
	factor = Clamp(factor, 0, 1)
	x = vx * factor
	y = vy * factor
	if math.Sqrt(x*x+y*y) < epsilon {
		return 0, 0, true
	}
	return x, y, false
}
