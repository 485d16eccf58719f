package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ZeroVectorStaysZero(t *testing.T) {
	x, y := Normalize(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)
}

func TestRectOverlap_EdgesTouchingDoNotOverlap(t *testing.T) {
	assert.True(t, RectOverlap(0, 0, 10, 10, 5, 5, 10, 10))
	assert.False(t, RectOverlap(0, 0, 10, 10, 10, 0, 10, 10), "shared vertical edge")
	assert.False(t, RectOverlap(0, 0, 10, 10, 0, 10, 10, 10), "shared horizontal edge")
	assert.False(t, RectOverlap(0, 0, 10, 10, 20, 20, 5, 5))
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4*math.Pi + 1, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAngle(tt.in), 1e-9, "angle %v", tt.in)
	}
}

func TestPointInArc(t *testing.T) {
	quarter := math.Pi / 2

	// Facing +X with a 90 degree arc.
	assert.True(t, PointInArc(10, 0, 0, 0, 0, quarter, 20))
	assert.True(t, PointInArc(10, 9.9, 0, 0, 0, quarter, 20), "just inside 45 degrees")
	assert.False(t, PointInArc(10, 11, 0, 0, 0, quarter, 20), "outside the half angle")
	assert.False(t, PointInArc(30, 0, 0, 0, 0, quarter, 20), "beyond reach")
	assert.False(t, PointInArc(-10, 0, 0, 0, 0, quarter, 20), "behind")

	// Wrap-around: facing Pi, point slightly below the negative X axis.
	assert.True(t, PointInArc(-10, -1, 0, 0, math.Pi, quarter, 20))

	// Full circle hits everything in reach.
	assert.True(t, PointInArc(-10, 0, 0, 0, 0, 2*math.Pi, 20))
}

func TestPointInSweptArc_GrowsWithProgress(t *testing.T) {
	spin := 2 * math.Pi

	// Sweep starts at facing-Pi (pointing -X when facing +X) and turns
	// counter-clockwise in angle space.
	start := PointInSweptArc(-10, -0.5, 0, 0, 0, spin, 20, 0.1)
	assert.True(t, start, "point right after the sweep start is hit early")

	assert.False(t, PointInSweptArc(10, 0, 0, 0, 0, spin, 20, 0.25), "opposite side not yet swept")
	assert.True(t, PointInSweptArc(10, 0, 0, 0, 0, spin, 20, 0.5))
	assert.True(t, PointInSweptArc(-10, 0.5, 0, 0, 0, spin, 20, 1))

	assert.False(t, PointInSweptArc(10, 0, 0, 0, 0, spin, 20, 0), "nothing is swept at zero progress")
}

func TestPointInSweptArc_MatchesArcAtFullProgress(t *testing.T) {
	arc := math.Pi / 2
	points := [][2]float64{{10, 0}, {10, 9}, {10, -9}, {10, 12}, {-5, 0}, {0, 10}}
	for _, p := range points {
		assert.Equal(t,
			PointInArc(p[0], p[1], 0, 0, 0, arc, 20),
			PointInSweptArc(p[0], p[1], 0, 0, 0, arc, 20, 1),
			"point %v", p)
	}
}

func TestPointInThrustRect(t *testing.T) {
	// Facing +Y (down in screen space).
	facing := math.Pi / 2
	assert.True(t, PointInThrustRect(0, 30, 0, 0, facing, 40, 5))
	assert.True(t, PointInThrustRect(4.9, 40, 0, 0, facing, 40, 5))
	assert.False(t, PointInThrustRect(6, 30, 0, 0, facing, 40, 5), "too wide")
	assert.False(t, PointInThrustRect(0, 41, 0, 0, facing, 40, 5), "too far")
	assert.False(t, PointInThrustRect(0, -1, 0, 0, facing, 40, 5), "behind origin")
}

func TestDecay_IsGeometric(t *testing.T) {
	force, d := 100.0, 0.8
	vx, vy := force, 0.0
	for n := 1; n <= 5; n++ {
		vx, vy, _ = Decay(vx, vy, d, 0.01)
		assert.InDelta(t, force*math.Pow(d, float64(n)), vx, 1e-9)
		assert.Equal(t, 0.0, vy)
	}

	x, y, stopped := Decay(0.01, 0, 0.5, 0.05)
	assert.True(t, stopped)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestChargeRatio_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, ChargeRatio(0.3, 0.3, 1.3))
	assert.InDelta(t, 0.5, ChargeRatio(0.8, 0.3, 1.3), 1e-9)
	assert.Equal(t, 1.0, ChargeRatio(5, 0.3, 1.3))

	assert.Equal(t, 1.0, ScaleByCharge(2.5, 0))
	assert.Equal(t, 2.5, ScaleByCharge(2.5, 1))
	assert.Equal(t, 1.0, ScaleByCharge(0, 1), "unset multiplier means no scaling")
}

func TestClampMagnitude(t *testing.T) {
	x, y := ClampMagnitude(30, 40, 10)
	assert.InDelta(t, 6, x, 1e-9)
	assert.InDelta(t, 8, y, 1e-9)

	x, y = ClampMagnitude(3, 4, 10)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}
