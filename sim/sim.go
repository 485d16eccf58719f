// Package sim wires the arena systems into a world that can be stepped by a
// fixed tick, either headless or from the ebiten game loop.
package sim

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/leveldata"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
)

// Sim owns one arena world.
type Sim struct {
	ecs    *ecs.ECS
	arena  *donburi.Entry
	player *donburi.Entry

	hits   int
	kills  int
	damage int
}

// Summary is a snapshot of how the fight is going.
type Summary struct {
	Ticks        int
	Time         float64
	PlayerHealth int
	PlayerDead   bool
	EnemiesAlive int
	Hits         int
	Kills        int
	DamageDealt  int // by the player
}

// New builds a world from level data and registers the systems in tick order.
func New(level *leveldata.Arena, seed int64) *Sim {
	log := logger.For("sim")
	e := ecs.NewECS(donburi.NewWorld())

	// Order matters: intents are decided before bodies move, and hits are
	// resolved against the positions of this tick.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePacks))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayers))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAttacks))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateProjectiles))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))

	s := &Sim{ecs: e}

	width, height := level.Width, level.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.Sim.Width, cfg.Sim.Height
	}
	s.arena = factory.CreateArena(e, level.Name, width, height, seed)
	for _, w := range level.Walls {
		factory.CreateWall(e, w.X, w.Y, w.W, w.H)
	}

	spawn := math2.Vec2{X: width / 2, Y: height / 2}
	if len(level.PlayerSpawns) > 0 {
		spawn = math2.Vec2{X: level.PlayerSpawns[0].X, Y: level.PlayerSpawns[0].Y}
	}
	s.player = factory.CreatePlayer(e, spawn.X, spawn.Y)

	packs := make(map[string]*donburi.Entry, len(level.Packs))
	for _, p := range level.Packs {
		radius := p.WanderRadius
		if radius <= 0 {
			radius = cfg.AI.PackWanderRadius
		}
		packs[p.Name] = factory.CreatePack(e, p.X, p.Y, radius)
	}

	for _, spawn := range level.EnemySpawns {
		id, ok := cfg.ParseEnemyType(spawn.EnemyType)
		if !ok {
			log.WithFields(logrus.Fields{
				"type": spawn.EnemyType,
				"x":    spawn.X,
				"y":    spawn.Y,
			}).Warn("unknown enemy type in level, spawning grunt")
			id = cfg.EnemyGrunt
		}
		opts := factory.EnemyOptions{
			CircleRadius: spawn.CircleRadius,
			Clockwise:    spawn.Clockwise,
			Pack:         packs[spawn.Pack],
		}
		if path := level.PatrolPaths[spawn.PathName]; len(path) > 0 {
			end := path[len(path)-1]
			opts.PatrolTo = &math2.Vec2{X: end.X, Y: end.Y}
		}
		factory.CreateEnemy(e, spawn.X, spawn.Y, id, opts)
	}

	events.Hit.Subscribe(e.World, s.countHit)
	events.Death.Subscribe(e.World, s.countDeath)

	log.WithFields(logrus.Fields{
		"arena":   level.Name,
		"walls":   len(level.Walls),
		"enemies": len(level.EnemySpawns),
		"packs":   len(level.Packs),
	}).Info("arena built")
	return s
}

func (s *Sim) countHit(_ donburi.World, hit events.HitEvent) {
	s.hits++
	if !hit.AgainstPlayer {
		s.damage += hit.Amount
	}
}

func (s *Sim) countDeath(_ donburi.World, death events.DeathEvent) {
	if !death.IsPlayer {
		s.kills++
	}
}

// Step advances the world by dt seconds and delivers the tick's events.
func (s *Sim) Step(dt float64) {
	components.Arena.Get(s.arena).DT = dt
	s.ecs.Update()
	events.Dispatch(s.ecs.World)
}

// RunTicks steps n fixed ticks, stopping early once stop reports true.
// It returns the number of ticks run.
func (s *Sim) RunTicks(n int, dt float64, stop func(*Sim) bool) int {
	for i := 0; i < n; i++ {
		s.Step(dt)
		if stop != nil && stop(s) {
			return i + 1
		}
	}
	return n
}

func (s *Sim) ECS() *ecs.ECS { return s.ecs }

func (s *Sim) World() donburi.World { return s.ecs.World }

func (s *Sim) Player() *donburi.Entry { return s.player }

// Arena returns the arena singleton's data.
func (s *Sim) Arena() *components.ArenaData {
	return components.Arena.Get(s.arena)
}

// SetPaused freezes or resumes every system but event delivery.
func (s *Sim) SetPaused(paused bool) {
	s.Arena().Paused = paused
}

// PlayerDead reports whether the player has run out of health.
func (s *Sim) PlayerDead() bool {
	if !s.player.Valid() {
		return true
	}
	return components.Health.Get(s.player).IsDead()
}

// EnemiesAlive counts enemies that are not dying.
func (s *Sim) EnemiesAlive() int {
	count := 0
	tags.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || components.Health.Get(e).IsDead() {
			return
		}
		count++
	})
	return count
}

// Over reports whether the fight is decided either way.
func (s *Sim) Over() bool {
	return s.PlayerDead() || s.EnemiesAlive() == 0
}

// Summary reports the current state of the fight.
func (s *Sim) Summary() Summary {
	arena := s.Arena()
	sum := Summary{
		Ticks:        arena.Tick,
		Time:         arena.Time,
		PlayerDead:   s.PlayerDead(),
		EnemiesAlive: s.EnemiesAlive(),
		Hits:         s.hits,
		Kills:        s.kills,
		DamageDealt:  s.damage,
	}
	if s.player.Valid() {
		sum.PlayerHealth = components.Health.Get(s.player).Current
	}
	return sum
}
