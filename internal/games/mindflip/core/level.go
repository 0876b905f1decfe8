package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Tile and obstacle codes used by level matrices.
const (
	TileVoid  = 0
	TileFloor = 1

	ObstacleNone        = 0
	ObstacleBlock       = 1
	ObstacleCollectable = 3
)

// ObjectInfo is a read-only snapshot of a game object.
type ObjectInfo struct {
	ID        ObjectID
	Kind      Kind
	Pos       Coord
	Walkable  bool
	Flippable bool
	View      any
}

// Level ties the grid model, its current graph snapshot and the pathfinder
// together and is the surface the UI talks to.
// A Level is not safe for concurrent use.
type Level struct {
	grid       *Grid
	graph      *Graph
	pathfinder *Pathfinder
	hero       *GameObject
	marker     *GameObject
	phase      Phase

	logger    *log.Logger
	phaseHook func(from, to Phase)
}

// LevelOption configures a Level at build time.
type LevelOption func(*Level)

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(l *log.Logger) LevelOption {
	return func(lv *Level) {
		if l != nil {
			lv.logger = l
		}
	}
}

// WithHeuristic sets the pathfinder heuristic. nil keeps the Euclidean default.
func WithHeuristic(h Heuristic) LevelOption {
	return func(lv *Level) {
		lv.pathfinder.Heuristic = h
	}
}

// WithPhaseHook registers a callback invoked on every phase transition.
func WithPhaseHook(fn func(from, to Phase)) LevelOption {
	return func(lv *Level) {
		lv.phaseHook = fn
	}
}

// BuildLevel validates the level matrices and constructs a level.
//
// tiles holds 1 for playable cells and 0 for void; obstacles holds 1 for a
// block, 3 for a collectable and 0 for nothing. Matrix row 0 is the top of the
// board, so it lands on board row H-1. start places both the hero and the
// destination marker and must be a walkable cell.
// On failure the returned error wraps ErrInvalidLevelData and no level is built.
func BuildLevel(tiles, obstacles [][]int, start Coord, opts ...LevelOption) (*Level, error) {
	d, err := validateMatrices(tiles, obstacles)
	if err != nil {
		return nil, err
	}
	if !d.InBounds(start) {
		return nil, levelErrorf(CodeBadStart, "starting position %s outside %dx%d board", start, d.W, d.H)
	}

	grid := NewGrid(d.W, d.H)
	for row, values := range tiles {
		boardRow := d.H - row - 1
		for col, v := range values {
			if v == TileFloor {
				_ = grid.SetTile(C(col, boardRow), true)
			}
		}
	}
	for row, values := range obstacles {
		boardRow := d.H - row - 1
		for col, v := range values {
			switch v {
			case ObstacleBlock:
				_, _ = grid.Spawn(KindBlock, C(col, boardRow))
			case ObstacleCollectable:
				_, _ = grid.Spawn(KindCollectable, C(col, boardRow))
			}
		}
	}

	if !grid.IsWalkable(start) {
		return nil, levelErrorf(CodeBadStart, "starting position %s is not a walkable cell", start)
	}

	hero, _ := grid.Spawn(KindHero, start)
	marker, _ := grid.Spawn(KindDestinationMarker, start)

	lv := &Level{
		grid:       grid,
		pathfinder: NewPathfinder(nil),
		hero:       hero,
		marker:     marker,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(lv)
	}
	lv.graph = BuildGraph(grid)

	lv.logger.Debug("level built", "width", d.W, "height", d.H, "objects", len(grid.objects), "start", start)
	return lv, nil
}

// validateMatrices checks both matrices are non-empty, rectangular, the
// same shape, and use only known codes.
func validateMatrices(tiles, obstacles [][]int) (Dims, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return Dims{}, levelErrorf(CodeEmpty, "tiles matrix is empty")
	}
	d := Dims{W: len(tiles[0]), H: len(tiles)}

	for row, values := range tiles {
		if len(values) != d.W {
			return Dims{}, levelErrorf(CodeNonRectangular, "tiles row %d has %d columns, want %d", row, len(values), d.W)
		}
		for col, v := range values {
			if v != TileVoid && v != TileFloor {
				return Dims{}, levelErrorf(CodeBadTile, "tiles[%d][%d] = %d", row, col, v)
			}
		}
	}

	if len(obstacles) != d.H {
		return Dims{}, levelErrorf(CodeShapeMismatch, "obstacles has %d rows, tiles has %d", len(obstacles), d.H)
	}
	for row, values := range obstacles {
		if len(values) != d.W {
			return Dims{}, levelErrorf(CodeShapeMismatch, "obstacles row %d has %d columns, want %d", row, len(values), d.W)
		}
		for col, v := range values {
			if v != ObstacleNone && v != ObstacleBlock && v != ObstacleCollectable {
				return Dims{}, levelErrorf(CodeBadObstacle, "obstacles[%d][%d] = %d", row, col, v)
			}
		}
	}

	return d, nil
}

// Dims returns the board dimensions.
func (lv *Level) Dims() Dims {
	return lv.grid.Dims()
}

// Grid returns the underlying grid model.
func (lv *Level) Grid() *Grid {
	return lv.grid
}

// Graph returns the current graph snapshot.
func (lv *Level) Graph() *Graph {
	return lv.graph
}

// Phase returns the current state machine phase. Outside a running
// operation this is always PhaseIdle.
func (lv *Level) Phase() Phase {
	return lv.phase
}

// IsWalkable reports the walkability of c in the current graph snapshot.
func (lv *Level) IsWalkable(c Coord) (bool, error) {
	n, err := lv.currentGraph().NodeAt(c)
	if err != nil {
		return false, err
	}
	return n.walkable, nil
}

// ResetGraph discards the current snapshot and builds a new one from the grid.
func (lv *Level) ResetGraph() {
	lv.graph = BuildGraph(lv.grid)
	lv.logger.Debug("graph rebuilt", "version", lv.graph.Version())
}

// currentGraph returns the snapshot, rebuilding it first if the grid moved on.
func (lv *Level) currentGraph() *Graph {
	if lv.graph.Stale(lv.grid) {
		lv.ResetGraph()
	}
	return lv.graph
}

// RequestMove points the destination marker at target and walks the hero there.
//
// The returned path runs from the hero's position to target inclusive and is
// meant for animation only: the hero's recorded position jumps straight to
// target. An empty path means no route exists and the hero stays put.
func (lv *Level) RequestMove(target Coord) ([]Coord, error) {
	if err := lv.grid.dims.check(target); err != nil {
		return nil, fmt.Errorf("request move: %w", err)
	}

	graph := lv.currentGraph()
	lv.setPhase(PhasePathComputing)
	defer lv.setPhase(PhaseIdle)

	_ = lv.MoveDestinationMarker(target)

	from := lv.hero.pos
	path, err := lv.pathfinder.FindPath(graph, from, target)
	if err != nil {
		return nil, fmt.Errorf("request move: %w", err)
	}
	if len(path) == 0 {
		lv.logger.Debug("no path", "from", from, "to", target)
		return path, nil
	}

	if target != from {
		if err := lv.grid.MoveObject(lv.hero, target); err != nil {
			return nil, fmt.Errorf("request move: %w", err)
		}
	}
	lv.logger.Debug("hero moved", "from", from, "to", target, "steps", len(path)-1)
	return path, nil
}

// MoveDestinationMarker relocates the marker without pathfinding or walkability checks.
func (lv *Level) MoveDestinationMarker(target Coord) error {
	if err := lv.grid.MoveObject(lv.marker, target); err != nil {
		return fmt.Errorf("move marker: %w", err)
	}
	return nil
}

// RequestFlip applies a board-wide transform and rebuilds the graph.
// A diagonal flip that would push an object off a non-square board is
// rejected and leaves the level unchanged.
func (lv *Level) RequestFlip(f Flip) error {
	lv.setPhase(PhaseTransforming)
	defer lv.setPhase(PhaseIdle)

	if err := lv.grid.ApplyFlip(f); err != nil {
		lv.logger.Debug("flip rejected", "flip", f, "error", err)
		return fmt.Errorf("request flip: %w", err)
	}

	lv.setPhase(PhaseGraphRebuilding)
	lv.ResetGraph()
	lv.logger.Debug("flipped", "flip", f)
	return nil
}

// HeroPosition returns the hero's current coordinate.
func (lv *Level) HeroPosition() Coord {
	return lv.hero.pos
}

// DestinationMarkerPosition returns the marker's current coordinate.
func (lv *Level) DestinationMarkerPosition() Coord {
	return lv.marker.pos
}

// Hero returns a snapshot of the hero.
func (lv *Level) Hero() ObjectInfo {
	return snapshot(lv.hero)
}

// Objects returns snapshots of every object in ID order.
func (lv *Level) Objects() []ObjectInfo {
	out := make([]ObjectInfo, 0, len(lv.grid.objects))
	for _, o := range lv.grid.objects {
		out = append(out, snapshot(o))
	}
	return out
}

// AttachView stores opaque UI state on an object.
func (lv *Level) AttachView(id ObjectID, view any) error {
	obj := lv.grid.Object(id)
	if obj == nil {
		return fmt.Errorf("attach view: unknown object %d", id)
	}
	obj.View = view
	return nil
}

func (lv *Level) setPhase(p Phase) {
	if lv.phase == p {
		return
	}
	from := lv.phase
	lv.phase = p
	if lv.phaseHook != nil {
		lv.phaseHook(from, p)
	}
}

func snapshot(o *GameObject) ObjectInfo {
	return ObjectInfo{
		ID:        o.id,
		Kind:      o.kind,
		Pos:       o.pos,
		Walkable:  o.walkable,
		Flippable: o.flippable,
		View:      o.View,
	}
}
