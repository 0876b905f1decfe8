package core

import "fmt"

// ObjectID uniquely identifies a game object within one level.
type ObjectID uint32

// GameObject is a dynamic occupant of a cell: the hero, a block,
// the destination marker or a collectable.
// Two objects are the same object only if their IDs match; sharing a
// position does not make them equal. Position changes only through
// Grid.MoveObject so the grid version stays in step.
type GameObject struct {
	id        ObjectID
	kind      Kind
	pos       Coord
	walkable  bool // false means the object blocks movement through its cell
	flippable bool // true means the object takes part in flips

	// View is opaque presentation state owned by the UI layer.
	View any
}

// ID returns the object's identifier.
func (o *GameObject) ID() ObjectID { return o.id }

// Kind returns the object's kind.
func (o *GameObject) Kind() Kind { return o.kind }

// Pos returns the object's current coordinate.
func (o *GameObject) Pos() Coord { return o.pos }

// Walkable reports whether the object lets the hero through its cell.
func (o *GameObject) Walkable() bool { return o.walkable }

// Flippable reports whether the object takes part in flips.
func (o *GameObject) Flippable() bool { return o.flippable }

// Cell is one board position: an optional floor tile and the objects standing on it.
type Cell struct {
	tile    bool
	objects []*GameObject
}

// HasTile reports whether the cell is part of the playable board.
func (c *Cell) HasTile() bool {
	return c.tile
}

// Objects returns the objects currently in the cell.
func (c *Cell) Objects() []*GameObject {
	out := make([]*GameObject, len(c.objects))
	copy(out, c.objects)
	return out
}

// Walkable reports whether the cell has a tile and every object in it is walkable.
func (c *Cell) Walkable() bool {
	if !c.tile {
		return false
	}
	for _, o := range c.objects {
		if !o.walkable {
			return false
		}
	}
	return true
}

func (c *Cell) remove(obj *GameObject) bool {
	for i, o := range c.objects {
		if o == obj {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Grid represents the board as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	dims    Dims
	cells   []Cell
	objects []*GameObject // creation order, which is also ID order
	nextID  ObjectID
	version uint64
}

// NewGrid creates a grid with no tiles and no objects.
// Panics if either dimension is not positive.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	d := Dims{W: w, H: h}
	return &Grid{
		dims:   d,
		cells:  make([]Cell, d.Area()),
		nextID: 1,
	}
}

// Dims returns the board dimensions.
func (g *Grid) Dims() Dims {
	return g.dims
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return g.dims.InBounds(c)
}

// Version increases on every mutation that can change a cell's walkability.
// Graphs remember the version they were built from.
func (g *Grid) Version() uint64 {
	return g.version
}

// CellAt returns the cell at the given coordinate.
func (g *Grid) CellAt(c Coord) (*Cell, error) {
	if err := g.dims.check(c); err != nil {
		return nil, err
	}
	return &g.cells[g.dims.index(c)], nil
}

// cell is CellAt for coordinates already known to be in range.
func (g *Grid) cell(c Coord) *Cell {
	if !g.dims.InBounds(c) {
		panic(fmt.Sprintf("core: no cell at %s", c))
	}
	return &g.cells[g.dims.index(c)]
}

// SetTile adds or removes the floor tile at c.
func (g *Grid) SetTile(c Coord, present bool) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	cell.tile = present
	g.version++
	return nil
}

// IsWalkable reports whether the cell at c is walkable.
// Out-of-bounds coordinates are never walkable.
func (g *Grid) IsWalkable(c Coord) bool {
	if !g.dims.InBounds(c) {
		return false
	}
	return g.cell(c).Walkable()
}

// Spawn creates an object of the given kind at c with the kind's default traits.
func (g *Grid) Spawn(kind Kind, c Coord) (*GameObject, error) {
	if err := g.dims.check(c); err != nil {
		return nil, err
	}
	walkable, flippable := kind.Traits()
	obj := &GameObject{
		id:        g.nextID,
		kind:      kind,
		pos:       c,
		walkable:  walkable,
		flippable: flippable,
	}
	g.nextID++
	g.objects = append(g.objects, obj)
	cell := g.cell(c)
	cell.objects = append(cell.objects, obj)
	if !obj.walkable {
		g.version++
	}
	return obj, nil
}

// Objects returns every object on the grid in ID order.
func (g *Grid) Objects() []*GameObject {
	out := make([]*GameObject, len(g.objects))
	copy(out, g.objects)
	return out
}

// Object returns the object with the given ID, or nil.
func (g *Grid) Object(id ObjectID) *GameObject {
	if id == 0 || int(id) > len(g.objects) {
		return nil
	}
	return g.objects[id-1]
}

// MoveObject relocates obj from its current cell to the cell at to.
// It never checks walkability; callers consult the graph before moving.
func (g *Grid) MoveObject(obj *GameObject, to Coord) error {
	if err := g.dims.check(to); err != nil {
		return err
	}
	if !g.cell(obj.pos).remove(obj) {
		panic(fmt.Sprintf("core: object %d not found in its cell %s", obj.id, obj.pos))
	}
	target := g.cell(to)
	target.objects = append(target.objects, obj)
	obj.pos = to
	if !obj.walkable {
		g.version++
	}
	return nil
}
