package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from arena files.
const (
	WallLayer        = "walls"
	WallGroup        = "Walls"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
	PackGroup        = "Packs"
	PatrolPathGroup  = "PatrolPaths"
)

// LoadArena parses a TMX file into arena data. It takes an fs.FS so callers
// can pass the embedded assets or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:       float64(levelMap.Width * levelMap.TileWidth),
		Height:      float64(levelMap.Height * levelMap.TileHeight),
		PatrolPaths: make(map[string][]Point),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		arena.Walls = append(arena.Walls, tileWalls(levelMap, layer)...)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					X:            o.X,
					Y:            o.Y,
					EnemyType:    o.Properties.GetString("enemyType"),
					PathName:     o.Properties.GetString("pathName"),
					CircleRadius: o.Properties.GetFloat("circleRadius"),
					Clockwise:    o.Properties.GetBool("clockwise"),
					Pack:         o.Properties.GetString("pack"),
				})
			}
		case PackGroup:
			for _, o := range og.Objects {
				arena.Packs = append(arena.Packs, PackSpawn{
					Name:         o.Name,
					X:            o.X,
					Y:            o.Y,
					WanderRadius: o.Properties.GetFloat("wanderRadius"),
				})
			}
		case PatrolPathGroup:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]Point, len(*polyline.Points))
				for i, p := range *polyline.Points {
					points[i] = Point{X: o.X + p.X, Y: o.Y + p.Y}
				}
				arena.PatrolPaths[o.Name] = points
			}
		}
	}

	// Sort spawns by index, then left-to-right for consistent assignment
	sort.SliceStable(arena.PlayerSpawns, func(i, j int) bool {
		a, b := arena.PlayerSpawns[i], arena.PlayerSpawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	for _, e := range arena.EnemySpawns {
		if e.Pack == "" {
			continue
		}
		if _, ok := arena.Pack(e.Pack); !ok {
			return nil, fmt.Errorf("enemy at (%.0f,%.0f) references unknown pack %q", e.X, e.Y, e.Pack)
		}
	}

	return arena, nil
}

// tileWalls turns a tile layer into solid rectangles, merging horizontal runs
// of tiles so the obstacle space holds fewer shapes.
func tileWalls(levelMap *tiled.Map, layer *tiled.Layer) []SolidRect {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	var walls []SolidRect
	for y := 0; y < levelMap.Height; y++ {
		runStart := -1
		for x := 0; x <= levelMap.Width; x++ {
			solid := false
			if x < levelMap.Width {
				idx := y*levelMap.Width + x
				solid = idx < len(layer.Tiles) && !layer.Tiles[idx].IsNil()
			}
			switch {
			case solid && runStart < 0:
				runStart = x
			case !solid && runStart >= 0:
				walls = append(walls, SolidRect{
					X: float64(runStart) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-runStart) * tileW,
					H: tileH,
				})
				runStart = -1
			}
		}
	}
	return walls
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
