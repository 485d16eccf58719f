package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/sim"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunHeadless(t *testing.T) {
	out, err := execute(t, "run", "--ticks", "120", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "ticks:")
	assert.Contains(t, out, "enemies alive:")
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "run", "--ticks", "1", "--log-level", "loud")
	assert.Error(t, err)
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  nonsense: 1\n"), 0o600))

	_, err := execute(t, "run", "--ticks", "1", "--log-level", "error", "--config", path)
	assert.Error(t, err)
	configPath = ""
}

func TestRunMissingLevel(t *testing.T) {
	_, err := execute(t, "run", "--ticks", "1", "--log-level", "error", "--level", "/does/not/exist.tmx")
	assert.Error(t, err)
	levelPath = ""
}

func TestPilotClosesInAndSwings(t *testing.T) {
	level, err := loadLevel()
	require.NoError(t, err)
	s := sim.New(level, 1)
	p := newPilot()

	p.drive(s)
	in := s.Player()
	require.True(t, in.Valid())

	dt := 1 / float64(config.Sim.TickRate)
	s.RunTicks(1200, dt, func(s *sim.Sim) bool {
		p.drive(s)
		return s.Summary().DamageDealt > 0 || s.Over()
	})
	sum := s.Summary()
	assert.True(t, sum.DamageDealt > 0 || sum.PlayerDead, "the pilot either lands a hit or dies trying")

	var nilPilot *pilot
	assert.NotPanics(t, func() { nilPilot.drive(s) })
}
