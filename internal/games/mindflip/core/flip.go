package core

import "fmt"

// Apply maps a coordinate through the transform on a board of the given size.
// The result can fall outside the board for the diagonal flips on non-square boards.
func (f Flip) Apply(d Dims, c Coord) Coord {
	maxCol := d.W - 1
	maxRow := d.H - 1
	switch f {
	case FlipUp:
		return Coord{X: c.X, Y: maxRow - c.Y}
	case FlipRight:
		return Coord{X: maxCol - c.X, Y: c.Y}
	case FlipUpRight:
		return Coord{X: maxCol - c.Y, Y: maxRow - c.X}
	case FlipUpLeft:
		return Coord{X: c.Y, Y: c.X}
	default:
		panic(fmt.Sprintf("core: unknown flip %d", f))
	}
}

// relocation is one staged move of a flip.
type relocation struct {
	obj *GameObject
	to  Coord
}

// ApplyFlip repositions every flippable object simultaneously.
//
// All targets are computed from the pre-flip positions before anything
// moves, then committed through MoveObject. If any target lies outside the
// board the grid is left untouched and an error wrapping ErrOutOfBounds is
// returned. Non-flippable objects stay where they are.
func (g *Grid) ApplyFlip(f Flip) error {
	staged := make([]relocation, 0, len(g.objects))
	for i := range g.cells {
		for _, obj := range g.cells[i].objects {
			if !obj.flippable {
				continue
			}
			to := f.Apply(g.dims, obj.pos)
			if err := g.dims.check(to); err != nil {
				return fmt.Errorf("flip %s of object %d at %s: %w", f, obj.id, obj.pos, err)
			}
			staged = append(staged, relocation{obj: obj, to: to})
		}
	}

	for _, r := range staged {
		if err := g.MoveObject(r.obj, r.to); err != nil {
			// Every target was validated above.
			panic(fmt.Sprintf("core: staged flip move failed: %v", err))
		}
	}
	return nil
}
