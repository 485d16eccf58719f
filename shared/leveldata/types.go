// Package leveldata parses TMX arena files into plain spawn data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Arena holds everything the simulation needs to build a level.
type Arena struct {
	Name   string
	Width  float64
	Height float64

	Walls        []SolidRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
	Packs        []PackSpawn
	PatrolPaths  map[string][]Point
}

// SolidRect is an impassable rectangle, top-left anchored.
type SolidRect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places one enemy. Type is resolved against the enemy table by
// the simulation, so an unknown name is not a load error.
type EnemySpawn struct {
	X, Y         float64
	EnemyType    string
	PathName     string  // PatrolPaths entry walked by patrollers
	CircleRadius float64 // ring size for circular patrols
	Clockwise    bool
	Pack         string // PackSpawn name, empty when hunting alone
}

// PackSpawn is the starting anchor of a pack.
type PackSpawn struct {
	Name         string
	X, Y         float64
	WanderRadius float64
}

// Pack finds a pack by name.
func (a *Arena) Pack(name string) (PackSpawn, bool) {
	for _, p := range a.Packs {
		if p.Name == name {
			return p, true
		}
	}
	return PackSpawn{}, false
}
