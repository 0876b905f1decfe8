package config

import (
	_ "embed"
)

//go:embed defaults/mindflip.yaml
var defaultMindFlipYAML []byte

// DefaultMindFlipConfig returns the default MindFlip configuration.
func DefaultMindFlipConfig() MindFlipConfig {
	return MindFlipConfig{
		Levels: LevelsConfig{
			Dir: "",
		},
		Pathfinding: PathfindingConfig{
			Heuristic: HeuristicEuclidean,
		},
		Storage: StorageConfig{
			DBPath: "~/" + AppDir + "/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
