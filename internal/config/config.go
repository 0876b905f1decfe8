// Package config provides YAML-based configuration loading for MindFlip.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
)

// MindFlipConfig contains all configuration for the MindFlip tooling.
type MindFlipConfig struct {
	Levels      LevelsConfig      `yaml:"levels"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Storage     StorageConfig     `yaml:"storage"`
	Log         LogConfig         `yaml:"log"`
}

// LevelsConfig defines where level files come from.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Empty means the built-in level pack
}

// PathfindingConfig defines pathfinder behaviour.
type PathfindingConfig struct {
	Heuristic string `yaml:"heuristic"` // "euclidean" or "toroidal"
}

// StorageConfig defines the run log database.
type StorageConfig struct {
	DBPath   string `yaml:"db_path"`
	Disabled bool   `yaml:"disabled"`
}

// LogConfig defines logger behaviour.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Heuristic names accepted in PathfindingConfig.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicToroidal  = "toroidal"
)

// HeuristicFor resolves the configured heuristic for a board of the given size.
// An empty name selects the Euclidean default.
func (c PathfindingConfig) HeuristicFor(d core.Dims) (core.Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(c.Heuristic)) {
	case "", HeuristicEuclidean:
		return core.Euclidean, nil
	case HeuristicToroidal:
		return core.ToroidalManhattan(d), nil
	default:
		return nil, fmt.Errorf("config: unknown heuristic %q", c.Heuristic)
	}
}
