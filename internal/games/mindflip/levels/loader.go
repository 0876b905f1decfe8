// Package levels provides level loading functionality for MindFlip.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
	"github.com/vovakirdan/mindflip/internal/games/mindflip/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Definition is a validated level file.
type Definition struct {
	ID        string
	Name      string
	Tiles     [][]int
	Obstacles [][]int
	Start     core.Coord
	Dims      core.Dims
	FilePath  string
}

// Build constructs a fresh playable level from the definition.
func (d *Definition) Build(opts ...core.LevelOption) (*core.Level, error) {
	return core.BuildLevel(d.Tiles, d.Obstacles, d.Start, opts...)
}

// Loader handles loading levels from a file system.
type Loader struct {
	Root   string
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// Builtin returns a loader over the level pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin pack: %v", err))
	}
	return NewFSLoader(sub, "builtin")
}

// SetLogger makes the loader report files it skips.
func (l *Loader) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Definition, error) {
	var defs []Definition

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		def, err := l.LoadFile(p)
		if err != nil {
			if l.logger != nil {
				l.logger.Warn("skipping level file", "path", p, "error", err)
			}
			return nil
		}

		defs = append(defs, def)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadFile loads and validates a single level file.
// The ID defaults to the file name without its extension.
func (l *Loader) LoadFile(p string) (Definition, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	def := Definition{
		ID:        id,
		Name:      parsed.Name,
		Tiles:     parsed.Tiles,
		Obstacles: parsed.Obstacles,
		Start:     parsed.Start,
		FilePath:  p,
	}

	lv, err := def.Build()
	if err != nil {
		return Definition{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	def.Dims = lv.Dims()

	return def, nil
}

// ErrNotFound is returned by LoadByID when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Definition{}, err
	}

	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
