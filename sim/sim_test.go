package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/leveldata"
)

const dt = 1.0 / 60

func duel() *leveldata.Arena {
	return &leveldata.Arena{
		Name:         "duel",
		Width:        320,
		Height:       240,
		PlayerSpawns: []leveldata.SpawnPoint{{X: 100, Y: 120}},
		EnemySpawns:  []leveldata.EnemySpawn{{X: 160, Y: 120, EnemyType: "grunt"}},
	}
}

func TestNew_DemoArena(t *testing.T) {
	s := New(assets.MustLoadDefault(), 1)

	assert.Equal(t, 6, s.EnemiesAlive())
	assert.False(t, s.PlayerDead())
	assert.Equal(t, "demo", s.Arena().Name)

	pack, ok := components.Pack.First(s.World())
	require.True(t, ok)
	assert.Len(t, components.Pack.Get(pack).Members, 2)
}

func TestNew_UnknownEnemyTypeSpawnsGrunt(t *testing.T) {
	level := duel()
	level.EnemySpawns[0].EnemyType = "dragon"
	s := New(level, 1)

	enemy, ok := components.Enemy.First(s.World())
	require.True(t, ok)
	assert.Equal(t, cfg.EnemyGrunt, components.Enemy.Get(enemy).Type)
}

func TestNew_DefaultsWithoutSizeOrSpawn(t *testing.T) {
	s := New(&leveldata.Arena{Name: "empty"}, 1)

	assert.Equal(t, cfg.Sim.Width, s.Arena().Width)
	c := components.Object.Get(s.Player()).Center()
	assert.Equal(t, cfg.Sim.Width/2, c.X)
	assert.Equal(t, cfg.Sim.Height/2, c.Y)
	assert.True(t, s.Over(), "no enemies left to fight")
}

func TestStep_AdvancesClockUnlessPaused(t *testing.T) {
	s := New(duel(), 1)

	assert.Equal(t, 60, s.RunTicks(60, dt, nil))
	assert.Equal(t, 60, s.Arena().Tick)
	assert.InDelta(t, 1.0, s.Arena().Time, 1e-9)

	s.SetPaused(true)
	s.Step(dt)
	assert.Equal(t, 60, s.Arena().Tick)
}

func TestRunTicks_IdlePlayerGetsHit(t *testing.T) {
	s := New(duel(), 1)

	ran := s.RunTicks(600, dt, func(s *Sim) bool { return s.Summary().Hits > 0 })
	assert.Less(t, ran, 600)

	sum := s.Summary()
	assert.Equal(t, 1, sum.Hits)
	assert.Less(t, sum.PlayerHealth, cfg.Combat.PlayerHealth)
	assert.Equal(t, 0, sum.DamageDealt)
	assert.Equal(t, 1, sum.EnemiesAlive)
}

func TestSummary_CountsKills(t *testing.T) {
	s := New(duel(), 1)
	enemy, _ := components.Enemy.First(s.World())
	components.QueueDamage(enemy, components.Damage{Amount: 1000})
	s.Step(dt)

	sum := s.Summary()
	assert.Equal(t, 1, sum.Kills)
	assert.Equal(t, 1000, sum.DamageDealt)
	assert.Equal(t, 0, sum.EnemiesAlive)
	assert.True(t, s.Over())
}

func TestLoop_StopsWhenTickCallbackSaysSo(t *testing.T) {
	s := New(duel(), 1)
	loop := NewLoop(s, 1000)
	loop.OnTick(func(s *Sim) bool { return s.Arena().Tick < 5 })

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 5, s.Arena().Tick)
}

func TestLoop_ContextAndStop(t *testing.T) {
	s := New(duel(), 1)
	loop := NewLoop(s, 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, loop.Run(ctx), context.DeadlineExceeded)

	loop.Stop()
	loop.Stop()
	assert.NoError(t, loop.Run(context.Background()))
}
