package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetrail/minesweeper-go/internal/game"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())

	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestBoardDimensions(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "16")
	t.Setenv("BOARD_HEIGHT", "not a number")
	assert.Equal(t, 16, BoardWidth())
	assert.Equal(t, 5, BoardHeight())
}

func TestLoadTuningDefault(t *testing.T) {
	t.Parallel()

	tuning, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultTuning, tuning)
}

func TestLoadTuning(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("density:\n  a: 0.0001\n  c: 2\n"), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0001, tuning.DensityA)
	assert.Equal(t, game.DefaultTuning.DensityB, tuning.DensityB)
	assert.Equal(t, 2.0, tuning.DensityC)
}

func TestLoadTuningErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("density: [not a map"), 0o644))
	_, err = LoadTuning(path)
	assert.Error(t, err)
}
