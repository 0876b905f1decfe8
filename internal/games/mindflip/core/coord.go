package core

import "fmt"

// Coord represents a 2D coordinate on the board.
// X is the column and increases to the right, Y is the row and increases upward
// (row 0 is the bottom row of the board).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Manhattan returns the Manhattan distance to another coordinate on the unwrapped plane.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Dims holds the board dimensions. Every component that needs the board
// size receives it explicitly.
type Dims struct {
	W int
	H int
}

// InBounds returns true if the coordinate is within [0,W) x [0,H).
func (d Dims) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < d.W && c.Y >= 0 && c.Y < d.H
}

// Area returns the number of cells on the board.
func (d Dims) Area() int {
	return d.W * d.H
}

// Square reports whether the board is as wide as it is tall.
func (d Dims) Square() bool {
	return d.W == d.H
}

// Wrap maps any coordinate onto the torus.
func (d Dims) Wrap(c Coord) Coord {
	return Coord{X: mod(c.X, d.W), Y: mod(c.Y, d.H)}
}

// index converts an in-bounds coordinate to a flat row-major index.
func (d Dims) index(c Coord) int {
	return c.Y*d.W + c.X
}

// coordAt is the inverse of index.
func (d Dims) coordAt(i int) Coord {
	return Coord{X: i % d.W, Y: i / d.W}
}

// check returns a *BoundsError if c is outside the board.
func (d Dims) check(c Coord) error {
	if !d.InBounds(c) {
		return &BoundsError{Coord: c, Dims: d}
	}
	return nil
}

func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
