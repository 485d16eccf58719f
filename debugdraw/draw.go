// Package debugdraw renders the arena as flat shapes: walls, bodies, attack
// shapes, projectiles, paths and a text HUD. It reads the world and never
// writes to it.
package debugdraw

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/ai"
	"github.com/automoto/doomerang-arena/shared/collision"
	"github.com/automoto/doomerang-arena/tags"
)

var (
	wallColor       = color.RGBA{90, 90, 100, 255}
	playerColor     = color.RGBA{60, 120, 255, 255}
	dodgeColor      = color.RGBA{160, 200, 255, 255}
	blockColor      = color.RGBA{255, 255, 255, 255}
	projectileColor = color.RGBA{255, 220, 60, 255}
	pathColor       = color.RGBA{0, 160, 80, 255}
	packColor       = color.RGBA{200, 120, 255, 255}
	attackColor     = color.RGBA{255, 255, 0, 180}
	windUpColor     = color.RGBA{255, 140, 0, 140}
	abilityColor    = color.RGBA{255, 0, 200, 160}
	healthBack      = color.RGBA{60, 0, 0, 255}
	healthFront     = color.RGBA{0, 220, 0, 255}
)

// StateColor is the body colour of an enemy in a given state.
func StateColor(s ai.State) color.RGBA {
	switch s {
	case ai.StateChase:
		return color.RGBA{255, 120, 0, 255}
	case ai.StateAttack, ai.StateLunge:
		return color.RGBA{255, 0, 0, 255}
	case ai.StateFlee:
		return color.RGBA{255, 255, 120, 255}
	case ai.StateKnockback:
		return color.RGBA{255, 255, 255, 255}
	case ai.StateSleep:
		return color.RGBA{80, 80, 160, 255}
	default:
		return color.RGBA{180, 60, 60, 255}
	}
}

// DrawWalls draws every solid of the obstacle field.
func DrawWalls(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry)
	if arena.Field == nil {
		return
	}
	for _, obj := range arena.Field.Solids() {
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), wallColor, false)
	}
}

// DrawPaths draws each chasing enemy's planned route and each pack's anchor.
func DrawPaths(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.PathIndex >= len(enemy.Path) {
			return
		}
		from := components.Object.Get(e).Center()
		for _, wp := range enemy.Path[enemy.PathIndex:] {
			vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(wp.X), float32(wp.Y), 1, pathColor, false)
			from = wp
		}
	})
	components.Pack.Each(ecs.World, func(e *donburi.Entry) {
		pack := components.Pack.Get(e)
		if pack.Alive == 0 {
			return
		}
		vector.StrokeCircle(screen, float32(pack.Anchor.X), float32(pack.Anchor.Y), 4, 1, packColor, true)
		vector.FillCircle(screen, float32(pack.Centroid.X), float32(pack.Centroid.Y), 2, packColor, true)
	})
}

// DrawActors draws bodies, facing, health bars and live attack shapes.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		c := playerColor
		player := components.Player.Get(e)
		if player.Dodging() {
			c = dodgeColor
		}
		drawBody(screen, e, c)
		if player.Blocking {
			drawBlock(screen, e)
		}
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		drawBody(screen, e, StateColor(enemy.State))
		if ab := enemy.Ability; ab != nil && ab.Casting {
			vector.StrokeCircle(screen, float32(ab.Center.X), float32(ab.Center.Y), float32(ab.Config.Radius), 1, abilityColor, true)
		}
	})
}

func drawBody(screen *ebiten.Image, e *donburi.Entry, c color.RGBA) {
	obj := components.Object.Get(e)
	r := obj.Rect()
	if e.HasComponent(components.Death) {
		c.A = 80
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)

	center := obj.Center()
	facing := components.Physics.Get(e).Facing
	reach := math.Max(r.W, r.H)
	vector.StrokeLine(screen, float32(center.X), float32(center.Y),
		float32(center.X+math.Cos(facing)*reach), float32(center.Y+math.Sin(facing)*reach), 1, color.White, false)

	if hp := components.Health.Get(e); hp.Max > 0 && !e.HasComponent(components.Death) {
		drawHealthBar(screen, r, float64(hp.Current)/float64(hp.Max))
	}

	attack := components.Weapon.Get(e).Attack
	if attack == nil || attack.Current.Ranged != nil {
		return
	}
	switch {
	case attack.IsAttacking():
		drawAttackShape(screen, center, attack.Current.Facing, attack.Current.Arc, attack.Current.Range,
			attack.Current.Shape, attack.Current.ThrustWidth, attack.Progress(), attackColor)
	case attack.Busy():
		drawAttackShape(screen, center, attack.Current.Facing, attack.Current.Arc, attack.Current.Range,
			attack.Current.Shape, attack.Current.ThrustWidth, 1, windUpColor)
	}
}

func drawHealthBar(screen *ebiten.Image, r collision.Rect, ratio float64) {
	ratio = math.Max(0, math.Min(1, ratio))
	x, y := float32(r.X), float32(r.Y-4)
	vector.FillRect(screen, x, y, float32(r.W), 2, healthBack, false)
	vector.FillRect(screen, x, y, float32(r.W*ratio), 2, healthFront, false)
}

// drawAttackShape outlines a hit shape. Sweeps only show the part of the arc
// covered so far.
func drawAttackShape(screen *ebiten.Image, origin math2.Vec2, facing, arc, reach float64,
	shape cfg.AttackShape, thrustWidth, progress float64, c color.RGBA) {
	if shape == cfg.ShapeThrust {
		dx, dy := math.Cos(facing), math.Sin(facing)
		px, py := -dy*thrustWidth/2, dx*thrustWidth/2
		ex, ey := origin.X+dx*reach, origin.Y+dy*reach
		corners := [4][2]float64{
			{origin.X + px, origin.Y + py},
			{ex + px, ey + py},
			{ex - px, ey - py},
			{origin.X - px, origin.Y - py},
		}
		for i := range corners {
			a, b := corners[i], corners[(i+1)%4]
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1, c, false)
		}
		return
	}

	if arc >= 2*math.Pi {
		arc = 2 * math.Pi
	}
	start := facing - arc/2
	span := arc
	if shape == cfg.ShapeSweep {
		span = arc * math.Max(0, math.Min(1, progress))
	}
	const segments = 12
	prevX, prevY := origin.X, origin.Y
	for i := 0; i <= segments; i++ {
		a := start + span*float64(i)/segments
		x, y := origin.X+math.Cos(a)*reach, origin.Y+math.Sin(a)*reach
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 1, c, false)
		prevX, prevY = x, y
	}
	vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(origin.X), float32(origin.Y), 1, c, false)
}

func drawBlock(screen *ebiten.Image, e *donburi.Entry) {
	block := components.Weapon.Get(e).Attack.Weapon.Block
	if block == nil {
		return
	}
	obj := components.Object.Get(e)
	c := obj.Center()
	arc := block.ArcDegrees * math.Pi / 180
	drawAttackShape(screen, c, components.Physics.Get(e).Facing,
		arc, math.Max(obj.W, obj.H), cfg.ShapeArc, 0, 1, blockColor)
}

// DrawProjectiles draws every projectile in flight and its splash radius.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		b := p.Bounds()
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), projectileColor, false)
		if p.AoeRadius > 0 {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(p.AoeRadius), 1, abilityColor, true)
		}
	})
}

// DrawHUD prints the player's numbers and the arena clock.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry)

	enemies := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			enemies++
		}
	})

	text := fmt.Sprintf("%s  t=%.1fs  enemies=%d", arena.Name, arena.Time, enemies)
	if p, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(p)
		st := components.Stamina.Get(p)
		attack := components.Weapon.Get(p).Attack
		text += fmt.Sprintf("\nhp=%d/%d  stamina=%.0f  combo=%d  %s", hp.Current, hp.Max, st.Current, attack.ComboStage, attack.Phase())
		if p.HasComponent(components.Death) {
			text += "\nYOU DIED"
		}
	}
	if arena.Paused {
		text += "\nPAUSED"
	}
	ebitenutil.DebugPrint(screen, text)
}
