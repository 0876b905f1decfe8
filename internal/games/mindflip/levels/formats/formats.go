// Package formats provides pluggable level file format parsers.
package formats

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
	"gopkg.in/yaml.v3"
)

// FileLevel is the on-disk structure shared by the YAML and JSON formats.
//
// Tiles and obstacles are listed top row first; starting is a board
// coordinate [column, row] with row 0 at the bottom.
type FileLevel struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Tiles     [][]int `yaml:"tiles" json:"tiles"`
	Obstacles [][]int `yaml:"obstacles" json:"obstacles"`
	Starting  []int   `yaml:"starting" json:"starting"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	Tiles     [][]int
	Obstacles [][]int
	Start     core.Coord
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var fl FileLevel
	if err := yaml.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return fl.toLevel()
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Level, error) {
	var fl FileLevel
	if err := json.Unmarshal(data, &fl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return fl.toLevel()
}

func (fl FileLevel) toLevel() (Level, error) {
	if len(fl.Starting) != 2 {
		return Level{}, &core.LevelError{
			Code:    core.CodeBadStart,
			Message: fmt.Sprintf("starting must be [column, row], got %v", fl.Starting),
		}
	}
	return Level{
		ID:        fl.ID,
		Name:      fl.Name,
		Tiles:     fl.Tiles,
		Obstacles: fl.Obstacles,
		Start:     core.C(fl.Starting[0], fl.Starting[1]),
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Parse routes data to the parser for the given extension.
func Parse(data []byte, ext string) (Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
