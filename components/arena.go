package components

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/shared/navigation"
	"github.com/automoto/doomerang-arena/shared/obstacles"
)

// ArenaData is the singleton holding the static level and shared services.
type ArenaData struct {
	Name   string
	Field  *obstacles.Field
	Grid   *navigation.Grid
	Width  float64
	Height float64
	Rng    *rand.Rand

	// DT is the length of the current tick in seconds.
	DT     float64
	Tick   int
	Time   float64
	Paused bool
}

var Arena = donburi.NewComponentType[ArenaData]()
