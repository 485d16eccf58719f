// Package assets embeds the arenas shipped with the binary.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-arena/shared/leveldata"
)

// DefaultLevel is the arena used when no level file is given.
const DefaultLevel = "levels/demo.tmx"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels exposes the embedded level directory.
func Levels() fs.FS {
	return assetFS
}

// LoadLevel reads an embedded arena by path, e.g. DefaultLevel.
func LoadLevel(path string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("embedded level: %w", err)
	}
	return arena, nil
}

// MustLoadDefault loads the demo arena and panics if the build is broken.
func MustLoadDefault() *leveldata.Arena {
	arena, err := LoadLevel(DefaultLevel)
	if err != nil {
		panic(err)
	}
	return arena
}
