package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/debugdraw"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/leveldata"
	"github.com/automoto/doomerang-arena/sim"
)

// ArenaScene plays one arena with keyboard, mouse or gamepad. When the fight
// is decided, pressing attack starts it again.
type ArenaScene struct {
	level *leveldata.Arena
	seed  int64
	sim   *sim.Sim
	dt    float64

	pausePrev  bool
	attackPrev bool
}

// NewArenaScene builds the arena and registers the debug renderers.
func NewArenaScene(level *leveldata.Arena, seed int64) *ArenaScene {
	a := &ArenaScene{
		level: level,
		seed:  seed,
		dt:    1 / float64(ebiten.TPS()),
	}
	a.reset()
	return a
}

// Sim exposes the running simulation.
func (a *ArenaScene) Sim() *sim.Sim {
	return a.sim
}

func (a *ArenaScene) reset() {
	a.sim = sim.New(a.level, a.seed)
	e := a.sim.ECS()
	e.AddRenderer(cfg.Default, debugdraw.DrawWalls)
	e.AddRenderer(cfg.Default, debugdraw.DrawPaths)
	e.AddRenderer(cfg.Default, debugdraw.DrawProjectiles)
	e.AddRenderer(cfg.Default, debugdraw.DrawActors)
	e.AddRenderer(cfg.Overlay, debugdraw.DrawHUD)
}

func (a *ArenaScene) Update() error {
	actions := pollActions()
	pause := actions[cfg.ActionPause]
	attack := actions[cfg.ActionAttack]
	defer func() { a.pausePrev, a.attackPrev = pause, attack }()

	if a.sim.Over() {
		if attack && !a.attackPrev {
			sum := a.sim.Summary()
			logger.For("scene").WithFields(logrus.Fields{
				"kills":  sum.Kills,
				"time":   sum.Time,
				"player": sum.PlayerHealth,
			}).Info("restarting arena")
			a.reset()
		}
		return nil
	}

	if pause && !a.pausePrev {
		a.sim.SetPaused(!a.sim.Arena().Paused)
	}
	if a.sim.Arena().Paused {
		return nil
	}

	if player := a.sim.Player(); player.Valid() {
		applyInput(components.PlayerInput.Get(player), actions)
	}
	a.sim.Step(a.dt)
	return nil
}

func (a *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	e := a.sim.ECS()
	e.DrawLayer(cfg.Default, screen)
	e.DrawLayer(cfg.Overlay, screen)
}
