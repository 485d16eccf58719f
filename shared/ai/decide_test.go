package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

func grunt() *config.EnemyTypeConfig {
	return &config.EnemyTypeConfig{
		DetectionRange:  200,
		AttackRange:     40,
		FleeHealthRatio: 0.2,
		Idle:            config.IdleWander,
		WakeRadius:      50,
	}
}

func seen(distance float64) Perception {
	return Perception{HasTarget: true, Distance: distance, HealthRatio: 1, Awake: true}
}

func TestDecide_ChaseThenAttack(t *testing.T) {
	enemy := math2.Vec2{X: 100, Y: 100}
	player := math2.Vec2{X: 100, Y: 300}
	d := gamemath.Distance(enemy.X, enemy.Y, player.X, player.Y)

	// Exactly on the detection edge is still outside.
	assert.Equal(t, StateWander, Decide(StateWander, seen(d), grunt(), 1.2))
	assert.Equal(t, StateChase, Decide(StateWander, seen(199), grunt(), 1.2))

	p := seen(39)
	assert.Equal(t, StateAttack, Decide(StateChase, p, grunt(), 1.2))

	p.AttackCooldown = 0.5
	assert.Equal(t, StateChase, Decide(StateChase, p, grunt(), 1.2), "cooling down keeps chasing")
}

func TestDecide_Hysteresis(t *testing.T) {
	assert.Equal(t, StateChase, Decide(StateChase, seen(230), grunt(), 1.2))
	assert.Equal(t, StateWander, Decide(StateChase, seen(241), grunt(), 1.2))
	assert.Equal(t, StateWander, Decide(StateWander, seen(230), grunt(), 1.2))
}

func TestDecide_KnockbackSuspendsAndIsForgotten(t *testing.T) {
	p := seen(30)
	p.KnockedBack = true
	assert.Equal(t, StateKnockback, Decide(StateAttack, p, grunt(), 1.2))

	p.KnockedBack = false
	p.Stunned = true
	assert.Equal(t, StateKnockback, Decide(StateChase, p, grunt(), 1.2))

	// Was chasing at 230 before the push; afterwards it starts fresh.
	assert.Equal(t, StateWander, Decide(StateKnockback, seen(230), grunt(), 1.2))
}

func TestDecide_Commitments(t *testing.T) {
	p := seen(500)
	p.AttackBusy = true
	assert.Equal(t, StateAttack, Decide(StateAttack, p, grunt(), 1.2))

	p = seen(500)
	p.LungeActive = true
	assert.Equal(t, StateLunge, Decide(StateLunge, p, grunt(), 1.2))
}

func TestDecide_Flee(t *testing.T) {
	p := seen(30)
	p.HealthRatio = 0.2
	assert.Equal(t, StateFlee, Decide(StateChase, p, grunt(), 1.2))

	p.Distance = 300
	assert.Equal(t, StateWander, Decide(StateFlee, p, grunt(), 1.2), "safe again")

	noFlee := grunt()
	noFlee.FleeHealthRatio = 0
	p.Distance = 30
	assert.Equal(t, StateAttack, Decide(StateChase, p, noFlee, 1.2))
}

func TestDecide_Lunge(t *testing.T) {
	p := seen(80)
	p.LungeReady = true
	assert.Equal(t, StateLunge, Decide(StateChase, p, grunt(), 1.2))

	p.Distance = 20
	assert.Equal(t, StateAttack, Decide(StateChase, p, grunt(), 1.2), "attack outranks lunge")
}

func TestDecide_Sleep(t *testing.T) {
	sleeper := grunt()
	sleeper.Idle = config.IdleSleep

	p := seen(100)
	p.Awake = false
	assert.Equal(t, StateSleep, Decide(StateSleep, p, sleeper, 1.2), "inside detection, outside wake radius")

	p.Distance = 50
	assert.Equal(t, StateChase, Decide(StateSleep, p, sleeper, 1.2))

	p.Awake = true
	p.Distance = 100
	assert.Equal(t, StateChase, Decide(StateChase, p, sleeper, 1.2))
}

func TestDecide_NoTarget(t *testing.T) {
	for b, want := range map[config.IdleBehavior]State{
		config.IdleWander:         StateWander,
		config.IdleGuard:          StateGuard,
		config.IdlePatrol:         StatePatrol,
		config.IdlePackFollow:     StatePackFollow,
		config.IdleCircularPatrol: StateCircularPatrol,
	} {
		typ := grunt()
		typ.Idle = b
		assert.Equal(t, want, Decide(StateChase, Perception{Awake: true}, typ, 1.2), b.String())
	}
	assert.Equal(t, StateIdle, Decide(StateChase, seen(10), nil, 1.2))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "circularPatrol", StateCircularPatrol.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.True(t, StateGuard.IsIdle())
	assert.False(t, StateFlee.IsIdle())
}

func TestHealthRatio(t *testing.T) {
	assert.Equal(t, 0.5, HealthRatio(5, 10))
	assert.Equal(t, 0.0, HealthRatio(-3, 10))
	assert.Equal(t, 0.0, HealthRatio(5, 0))
}

func TestWander_RepicksInsideRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := &Wander{Home: math2.Vec2{X: 50, Y: 50}, Radius: 20, MinInterval: 1, MaxInterval: 3}

	first := w.Update(0, rng)
	require.GreaterOrEqual(t, w.Timer, 1.0)
	require.LessOrEqual(t, w.Timer, 3.0)
	assert.LessOrEqual(t, gamemath.Distance(50, 50, first.X, first.Y), 20.0)

	assert.Equal(t, first, w.Update(0.5, rng), "kept until the timer runs out")

	w.Update(3, rng)
	assert.LessOrEqual(t, gamemath.Distance(50, 50, w.Target.X, w.Target.Y), 20.0)
}

func TestGuard(t *testing.T) {
	g := Guard{Post: math2.Vec2{X: 0, Y: 0}, Radius: 10, TurnSpeed: math.Pi}
	near := math2.Vec2{X: 5, Y: 0}
	far := math2.Vec2{X: 50, Y: 0}
	assert.Equal(t, near, g.Target(near))
	assert.Equal(t, g.Post, g.Target(far))
	assert.InDelta(t, math.Pi/2, g.Turn(0, 0.5), 1e-9)
}

func TestPatrol_BackAndForth(t *testing.T) {
	p := &Patrol{A: math2.Vec2{X: 0}, B: math2.Vec2{X: 100}, TowardB: true}
	assert.Equal(t, p.B, p.Next(math2.Vec2{X: 50}, 4))
	assert.Equal(t, p.A, p.Next(math2.Vec2{X: 98}, 4))
	assert.Equal(t, p.A, p.Next(math2.Vec2{X: 50}, 4))
	assert.Equal(t, p.B, p.Next(math2.Vec2{X: 1}, 4))
}

func TestRingAndCircularPatrol(t *testing.T) {
	center := math2.Vec2{X: 100, Y: 100}
	cw := Ring(center, 10, 4, true)
	require.Len(t, cw, 4)
	assert.InDelta(t, 110, cw[0].X, 1e-9)
	assert.InDelta(t, 110, cw[1].Y, 1e-9, "clockwise on screen goes down first")

	ccw := Ring(center, 10, 4, false)
	assert.InDelta(t, 90, ccw[1].Y, 1e-9)
	assert.Nil(t, Ring(center, 10, 0, true))

	c := &CircularPatrol{Points: cw}
	assert.Equal(t, cw[0], c.Next(center, 2))
	assert.Equal(t, cw[1], c.Next(cw[0], 2))
	for i := 0; i < 3; i++ {
		c.Next(c.Points[c.Index], 2)
	}
	assert.Equal(t, 0, c.Index, "wraps around")

	empty := &CircularPatrol{}
	assert.Equal(t, center, empty.Next(center, 2))
}

func TestPackSlot(t *testing.T) {
	anchor := math2.Vec2{X: 10, Y: 10}
	assert.Equal(t, anchor, PackSlot(anchor, 0, 1, 20))

	a := PackSlot(anchor, 0, 2, 20)
	b := PackSlot(anchor, 1, 2, 20)
	assert.InDelta(t, 30, a.X, 1e-9)
	assert.InDelta(t, -10, b.X, 1e-9)
	assert.InDelta(t, 40, gamemath.Distance(a.X, a.Y, b.X, b.Y), 1e-9)
}

func TestFleeTarget(t *testing.T) {
	got := FleeTarget(math2.Vec2{X: 10, Y: 0}, math2.Vec2{X: 0, Y: 0}, 50)
	assert.InDelta(t, 60, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)

	got = FleeTarget(math2.Vec2{}, math2.Vec2{}, 50)
	assert.Equal(t, 50.0, got.X)
}
