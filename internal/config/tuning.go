package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bytetrail/minesweeper-go/internal/game"
)

type tuningFile struct {
	Density struct {
		A float64 `yaml:"a"`
		B float64 `yaml:"b"`
		C float64 `yaml:"c"`
	} `yaml:"density"`
}

// LoadTuning reads a mine density curve from a YAML file. Constants missing
// from the file keep their defaults; an empty path returns the default
// curve unchanged.
func LoadTuning(path string) (game.Tuning, error) {
	if path == "" {
		return game.DefaultTuning, nil
	}

	var f tuningFile
	f.Density.A = game.DefaultTuning.DensityA
	f.Density.B = game.DefaultTuning.DensityB
	f.Density.C = game.DefaultTuning.DensityC

	data, err := os.ReadFile(path)
	if err != nil {
		return game.Tuning{}, fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return game.Tuning{}, fmt.Errorf("failed to parse tuning %s: %w", path, err)
	}

	return game.Tuning{
		DensityA: f.Density.A,
		DensityB: f.Density.B,
		DensityC: f.Density.C,
	}, nil
}
