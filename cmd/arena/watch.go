package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/scenes"
)

var scale int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Play the arena in a debug window",
	Long: `Open a window drawing the arena as debug shapes. Move with WASD or the
arrow keys, aim with the mouse, attack with J or the left button, block with K
or the right button, dodge with space and pause with Esc.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&scale, "scale", 2, "window scale factor")
}

func runWatch(cmd *cobra.Command, args []string) error {
	level, err := loadLevel()
	if err != nil {
		return err
	}
	width, height := int(level.Width), int(level.Height)
	if width <= 0 || height <= 0 {
		width, height = int(config.Sim.Width), int(config.Sim.Height)
	}
	if scale < 1 {
		scale = 1
	}

	ebiten.SetTPS(config.Sim.TickRate)
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetWindowTitle("arena: " + level.Name)

	scene := scenes.NewArenaScene(level, simSeed())
	return ebiten.RunGame(scenes.NewGame(scene, width, height))
}
