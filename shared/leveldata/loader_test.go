package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(os.DirFS("testdata"), "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", arena.Name)
	assert.Equal(t, 128.0, arena.Width)
	assert.Equal(t, 96.0, arena.Height)

	assert.Equal(t, []SolidRect{
		{X: 16, Y: 0, W: 48, H: 16}, // merged run of three tiles
		{X: 80, Y: 32, W: 16, H: 16},
		{X: 64, Y: 64, W: 32, H: 16},
	}, arena.Walls)

	require.Len(t, arena.PlayerSpawns, 2)
	assert.Equal(t, SpawnPoint{X: 20, Y: 40, Index: 0}, arena.PlayerSpawns[0])
	assert.Equal(t, 1, arena.PlayerSpawns[1].Index)

	assert.Equal(t, []Point{{X: 10, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 60}}, arena.PatrolPaths["loop"])

	pack, ok := arena.Pack("alpha")
	require.True(t, ok)
	assert.Equal(t, 50.0, pack.WanderRadius)

	require.Len(t, arena.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 30, Y: 30, EnemyType: "wolf", Pack: "alpha"}, arena.EnemySpawns[0])
	shaman := arena.EnemySpawns[1]
	assert.Equal(t, "shaman", shaman.EnemyType)
	assert.Equal(t, "loop", shaman.PathName)
	assert.Equal(t, 24.0, shaman.CircleRadius)
	assert.True(t, shaman.Clockwise)
}

func TestLoadArena_UnknownPack(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "badpack.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown pack "beta"`)
}

func TestLoadArena_MissingFile(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	_, _, err := LoadAllArenas(os.DirFS("testdata"), ".")
	require.Error(t, err, "badpack.tmx fails the whole set")

	_, _, err = LoadAllArenas(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}
