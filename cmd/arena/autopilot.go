package main

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/sim"
	"github.com/automoto/doomerang-arena/tags"
)

// pilot plays the player in headless runs: it walks to the nearest enemy,
// swings when in reach and backs off to recover stamina.
type pilot struct {
	swingHeld bool
	resting   bool
}

func newPilot() *pilot {
	return &pilot{}
}

// drive writes next tick's input. A nil pilot leaves the player idle.
func (p *pilot) drive(s *sim.Sim) {
	if p == nil {
		return
	}
	player := s.Player()
	if !player.Valid() || player.HasComponent(components.Death) {
		return
	}
	input := components.PlayerInput.Get(player)
	input.CurrentInput = [config.ActionCount]bool{}

	center := components.Object.Get(player).Center()
	var nearest *donburi.Entry
	best := 0.0
	tags.Enemy.Each(s.World(), func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		c := components.Object.Get(e).Center()
		d := gamemath.Distance(center.X, center.Y, c.X, c.Y)
		if nearest == nil || d < best {
			nearest, best = e, d
		}
	})
	if nearest == nil {
		return
	}
	target := components.Object.Get(nearest).Center()
	input.AimX, input.AimY, input.HasAim = target.X, target.Y, true

	stamina := components.Stamina.Get(player)
	switch {
	case stamina.Current < 20:
		p.resting = true
	case stamina.Current >= stamina.Max*0.8:
		p.resting = false
	}

	reach := components.Weapon.Get(player).Attack.Weapon.BaseRange
	dx, dy := target.X-center.X, target.Y-center.Y
	if p.resting {
		dx, dy = -dx, -dy
	} else if best <= reach {
		// Charge weapons fire on release, so alternate press and release.
		p.swingHeld = !p.swingHeld
		input.Set(config.ActionAttack, p.swingHeld)
		return
	}
	const slack = 2
	input.Set(config.ActionMoveRight, dx > slack)
	input.Set(config.ActionMoveLeft, dx < -slack)
	input.Set(config.ActionMoveDown, dy > slack)
	input.Set(config.ActionMoveUp, dy < -slack)
}
