package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevel(t *testing.T) {
	arena, err := LoadLevel(DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, "demo", arena.Name)
	assert.Equal(t, 640.0, arena.Width)
	assert.Equal(t, 480.0, arena.Height)
	assert.NotEmpty(t, arena.Walls)
	require.Len(t, arena.PlayerSpawns, 1)
	assert.Len(t, arena.EnemySpawns, 6)
	assert.Len(t, arena.PatrolPaths["north"], 2)
}
