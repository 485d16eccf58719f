package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/collision"
)

// step is an exact binary fraction so timers accumulate without drift.
const step = 1.0 / 64

func tick(a *Attack, seconds float64) {
	for n := int(math.Round(seconds / step)); n > 0; n-- {
		a.Update(step)
	}
}

func testWeapon() *config.WeaponConfig {
	return &config.WeaponConfig{
		Name:           "test",
		BaseRange:      40,
		BaseDamage:     10,
		BaseArcDegrees: 90,
		Cooldown:       0.1,
		Duration:       0.2,
		StaminaCost:    10,
		KnockbackForce: 100,
		Combo: []config.ComboStageConfig{
			{},
			{DamageMultiplier: 1.5, Dash: &config.DashConfig{Distance: 24, Duration: 0.1}},
			{RangeMultiplier: 1.25, ArcDegrees: 360, Shape: config.ShapeSweep, Knockback: 250, StunTime: 0.3},
		},
		ComboWindow: 1.5,
		Charge: &config.ChargeConfig{
			MinTime:              0.3,
			MaxTime:              1.3,
			MaxDamageMultiplier:  2.5,
			MaxRangeMultiplier:   1.5,
			MaxStaminaMultiplier: 2,
		},
	}
}

var (
	origin = math2.Vec2{X: 0, Y: 0}
	ahead  = math2.Vec2{X: 100, Y: 0}
)

type AttackTestSuite struct {
	suite.Suite
	weapon *config.WeaponConfig
	attack *Attack
}

func (s *AttackTestSuite) SetupTest() {
	s.weapon = testWeapon()
	s.attack = NewAttack(s.weapon)
}

func (s *AttackTestSuite) start() (Payload, bool) {
	return s.attack.StartAttack(origin, ahead, 0, Unlimited)
}

func (s *AttackTestSuite) TestComboAdvancesAndWraps() {
	for _, want := range []int{1, 2, 3, 1, 2} {
		p, ok := s.start()
		s.Require().True(ok)
		s.Equal(want, p.Stage)
		s.Equal(want, s.attack.ComboStage)
		s.Equal(s.weapon.ComboWindow, s.attack.ComboTimer)
		tick(s.attack, 0.5)
	}
}

func (s *AttackTestSuite) TestComboWindowExample() {
	p, ok := s.start()
	s.Require().True(ok)
	s.Equal(1, p.Stage)

	tick(s.attack, 0.5)
	p, ok = s.start()
	s.Require().True(ok)
	s.Equal(2, p.Stage)

	tick(s.attack, 4.5)
	s.Equal(0, s.attack.ComboStage, "window expired while idle")

	p, ok = s.start()
	s.Require().True(ok)
	s.Equal(1, p.Stage)
}

func (s *AttackTestSuite) TestComboTimerFrozenWhileActive() {
	s.weapon.Duration = 2
	s.weapon.ComboWindow = 0.5
	_, ok := s.start()
	s.Require().True(ok)

	tick(s.attack, 1)
	s.True(s.attack.IsAttacking())
	s.Equal(1, s.attack.ComboStage)
	s.Equal(0.5, s.attack.ComboTimer)
}

func (s *AttackTestSuite) TestRejectedDuringRecoveryBuffer() {
	_, ok := s.start()
	s.Require().True(ok)

	s.attack.Update(0.25) // active window ends
	s.Equal(PhaseRecovering, s.attack.Phase())
	s.False(s.attack.Busy(), "recovery no longer commits the attacker")
	s.InDelta(0.1, s.attack.AttackBuffer, 1e-9)

	timer := s.attack.ComboTimer
	_, ok = s.start()
	s.False(ok)
	s.Equal(1, s.attack.ComboStage)
	s.Equal(timer, s.attack.ComboTimer)

	s.attack.Update(0.1)
	s.Equal(PhaseIdle, s.attack.Phase())
	p, ok := s.start()
	s.True(ok)
	s.Equal(2, p.Stage)
}

func (s *AttackTestSuite) TestRejectedWhileActive() {
	_, ok := s.start()
	s.Require().True(ok)
	_, ok = s.start()
	s.False(ok)
}

func (s *AttackTestSuite) TestZeroCooldownChainsImmediately() {
	s.weapon.Cooldown = 0
	_, ok := s.start()
	s.Require().True(ok)
	s.attack.EndAttack()
	s.Equal(PhaseIdle, s.attack.Phase())

	p, ok := s.start()
	s.True(ok)
	s.Equal(2, p.Stage)
}

func (s *AttackTestSuite) TestInsufficientStamina() {
	_, ok := s.attack.StartAttack(origin, ahead, 0, 5)
	s.False(ok)
	s.Equal(0, s.attack.ComboStage)
	s.Equal(PhaseIdle, s.attack.Phase())

	p, ok := s.attack.StartAttack(origin, ahead, 0, 10)
	s.True(ok)
	s.Equal(10.0, p.StaminaCost)
}

func (s *AttackTestSuite) TestChargedAttackResetsComboAndScales() {
	_, ok := s.start()
	s.Require().True(ok)
	tick(s.attack, 0.5)
	s.Equal(1, s.attack.ComboStage)

	p, ok := s.attack.StartAttack(origin, ahead, 5, Unlimited)
	s.Require().True(ok)
	s.True(p.Charged)
	s.Equal(1, p.Stage)
	s.Equal(1.0, p.ChargeRatio)
	s.Equal(25, p.Damage)
	s.Equal(60.0, p.Range)
	s.Equal(20.0, p.StaminaCost)
}

func (s *AttackTestSuite) TestChargeAtMinimumIsUnscaled() {
	p, ok := s.attack.StartAttack(origin, ahead, 0.3, Unlimited)
	s.Require().True(ok)
	s.True(p.Charged)
	s.Equal(0.0, p.ChargeRatio)
	s.Equal(10, p.Damage)
	s.Equal(40.0, p.Range)
	s.Equal(10.0, p.StaminaCost)

	tick(s.attack, 0.5)
	p, ok = s.attack.StartAttack(origin, ahead, 0.29, Unlimited)
	s.Require().True(ok)
	s.False(p.Charged, "below the minimum is a normal attack")
	s.Equal(2, p.Stage)
}

func (s *AttackTestSuite) TestUnresolvableStageIsRejected() {
	s.weapon.Combo = nil
	_, ok := s.start()
	s.False(ok)
	s.Equal(PhaseIdle, s.attack.Phase())
	s.Equal(0, s.attack.ComboStage)
}

func (s *AttackTestSuite) TestWindUpDelaysActiveWindow() {
	s.weapon.WindUpTime = 0.25
	_, ok := s.start()
	s.Require().True(ok)
	s.Equal(PhaseWindingUp, s.attack.Phase())
	s.False(s.attack.IsAttacking())
	s.True(s.attack.Busy())

	target := collision.Rect{X: 20, Y: -5, W: 10, H: 10}
	s.False(s.attack.InReach(origin, target), "no hits during wind-up")

	s.False(s.attack.Update(0.125))
	s.True(s.attack.Update(0.125))
	s.True(s.attack.IsAttacking())
	s.True(s.attack.InReach(origin, target))
}

func (s *AttackTestSuite) TestHitsAreRecordedOncePerAttack() {
	_, ok := s.start()
	s.Require().True(ok)

	id := donburi.Entity(42)
	s.True(s.attack.RegisterHit(id))
	s.False(s.attack.RegisterHit(id))
	s.True(s.attack.AlreadyHit(id))

	s.attack.EndAttack()
	s.False(s.attack.AlreadyHit(id), "cleared when the attack ends")

	tick(s.attack, 0.25)
	_, ok = s.start()
	s.Require().True(ok)
	s.True(s.attack.RegisterHit(id))
}

func (s *AttackTestSuite) TestDashFollowsTarget() {
	_, ok := s.start()
	s.Require().True(ok)
	tick(s.attack, 0.5)

	p, ok := s.attack.StartAttack(origin, math2.Vec2{X: 0, Y: 50}, 0, Unlimited)
	s.Require().True(ok)
	s.True(p.HasDash())
	s.InDelta(0, p.DashX, 1e-9)
	s.InDelta(24, p.DashY, 1e-9)
	s.InDelta(math.Pi/2, p.Facing, 1e-9)
}

func (s *AttackTestSuite) TestInterruptResetsEverything() {
	_, ok := s.start()
	s.Require().True(ok)
	s.attack.RegisterHit(donburi.Entity(1))

	s.attack.Interrupt()
	s.Equal(PhaseIdle, s.attack.Phase())
	s.Equal(0, s.attack.ComboStage)
	s.False(s.attack.AlreadyHit(donburi.Entity(1)))

	_, ok = s.start()
	s.True(ok)
}

func (s *AttackTestSuite) TestArcReach() {
	_, ok := s.start()
	s.Require().True(ok)

	s.True(s.attack.InReach(origin, collision.Rect{X: 30, Y: -5, W: 10, H: 10}))
	s.True(s.attack.InReach(origin, collision.Rect{X: 35, Y: -5, W: 20, H: 10}), "near edge in reach, centre is not")
	s.False(s.attack.InReach(origin, collision.Rect{X: 60, Y: -5, W: 10, H: 10}))
	s.False(s.attack.InReach(origin, collision.Rect{X: -40, Y: -5, W: 10, H: 10}), "behind")
}

func (s *AttackTestSuite) TestSweepHitsIncrementally() {
	for i := 0; i < 2; i++ {
		_, ok := s.start()
		s.Require().True(ok)
		tick(s.attack, 0.5)
	}
	p, ok := s.start()
	s.Require().True(ok)
	s.Require().Equal(3, p.Stage)

	// A full spin facing +X starts behind the attacker.
	front := collision.Rect{X: 30, Y: -5, W: 10, H: 10}
	s.attack.Update(step)
	s.False(s.attack.InReach(origin, front))

	tick(s.attack, 0.125)
	s.True(s.attack.InReach(origin, front))
}

func TestAttackTestSuite(t *testing.T) {
	suite.Run(t, new(AttackTestSuite))
}

func TestResolveStage(t *testing.T) {
	w := testWeapon()

	p, ok := ResolveStage(w, 3, false, 0)
	require.True(t, ok)
	assert.Equal(t, 50.0, p.Range)
	assert.Equal(t, 10, p.Damage)
	assert.InDelta(t, 2*math.Pi, p.Arc, 1e-9)
	assert.Equal(t, 250.0, p.Knockback)
	assert.Equal(t, 0.3, p.StunTime)
	assert.Equal(t, 0.2, p.Duration)
	assert.Equal(t, config.ShapeSweep, p.Shape)

	p, ok = ResolveStage(w, 1, false, 0)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, p.Arc, 1e-9)
	assert.Equal(t, 100.0, p.Knockback, "weapon default")

	_, ok = ResolveStage(w, 4, false, 0)
	assert.False(t, ok)
	_, ok = ResolveStage(w, 0, false, 0)
	assert.False(t, ok)
	_, ok = ResolveStage(nil, 1, false, 0)
	assert.False(t, ok)
}

func TestResolveStage_ChargeIsMonotonic(t *testing.T) {
	w := testWeapon()
	prev := 0
	for ratio := 0.0; ratio <= 1.0; ratio += 0.125 {
		p, ok := ResolveStage(w, 1, true, ratio)
		require.True(t, ok)
		assert.GreaterOrEqual(t, p.Damage, prev)
		prev = p.Damage
	}
	assert.Equal(t, 25, prev)
}
