// Package scenes hosts the interactive window: a Game that forwards ebiten's
// callbacks to the current scene.
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game over a swappable scene.
type Game struct {
	scene         Scene
	width, height int
}

// NewGame creates a window-sized game showing scene.
func NewGame(scene Scene, width, height int) *Game {
	return &Game{scene: scene, width: width, height: height}
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
