package core

import (
	"fmt"
	"math"
)

// neighborOffsets is the wiring order for every node: up, right, left, down.
// The order feeds the pathfinder's insertion-order tie-break, so it is fixed.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {-1, 0}, {0, -1}}

// Node is one graph vertex, mirroring a cell's coordinate and walkability.
// Nodes are read-only once their graph is built.
type Node struct {
	pos       Coord
	walkable  bool
	neighbors [4]*Node
}

// Pos returns the node's coordinate.
func (n *Node) Pos() Coord {
	return n.pos
}

// Walkable reports the walkability of the cell at build time.
func (n *Node) Walkable() bool {
	return n.walkable
}

// Neighbors returns a copy of the node's toroidal neighbours in up, right,
// left, down order. On boards one cell wide or tall some entries repeat or
// point back at the node itself.
func (n *Node) Neighbors() []*Node {
	nbs := n.neighbors
	return nbs[:]
}

// Graph is an immutable walkability snapshot of a grid.
// A graph is never updated in place; a grid mutation makes it stale and a
// new graph must be built.
type Graph struct {
	dims    Dims
	nodes   []Node // direct-addressed by Dims.index
	version uint64
}

// BuildGraph creates one node per coordinate and wires toroidal 4-neighbour edges.
func BuildGraph(g *Grid) *Graph {
	d := g.Dims()
	graph := &Graph{
		dims:    d,
		nodes:   make([]Node, d.Area()),
		version: g.Version(),
	}

	for i := range graph.nodes {
		c := d.coordAt(i)
		graph.nodes[i] = Node{pos: c, walkable: g.IsWalkable(c)}
	}

	for i := range graph.nodes {
		n := &graph.nodes[i]
		for k, off := range neighborOffsets {
			n.neighbors[k] = graph.node(d.Wrap(n.pos.Add(off[0], off[1])))
		}
	}

	return graph
}

// Dims returns the dimensions of the board the graph was built from.
func (gr *Graph) Dims() Dims {
	return gr.dims
}

// Version returns the grid version this snapshot reflects.
func (gr *Graph) Version() uint64 {
	return gr.version
}

// Stale reports whether the grid changed since this graph was built.
func (gr *Graph) Stale(g *Grid) bool {
	return gr.version != g.Version() || gr.dims != g.Dims()
}

// NodeAt returns the node at the given coordinate.
func (gr *Graph) NodeAt(c Coord) (*Node, error) {
	if err := gr.dims.check(c); err != nil {
		return nil, err
	}
	return gr.node(c), nil
}

// IsWalkable reports the walkability recorded at build time.
func (gr *Graph) IsWalkable(c Coord) bool {
	if !gr.dims.InBounds(c) {
		return false
	}
	return gr.node(c).walkable
}

// Adjacent reports whether b is one toroidal step away from a.
func (gr *Graph) Adjacent(a, b Coord) bool {
	if !gr.dims.InBounds(a) || !gr.dims.InBounds(b) {
		return false
	}
	for _, n := range gr.node(a).neighbors {
		if n.pos == b {
			return true
		}
	}
	return false
}

func (gr *Graph) node(c Coord) *Node {
	if !gr.dims.InBounds(c) {
		panic(fmt.Sprintf("core: no node at %s", c))
	}
	return &gr.nodes[gr.dims.index(c)]
}

// StepCost is the cost of moving between two adjacent nodes.
const StepCost = 1

// Heuristic estimates the remaining cost from a to b. It only orders the
// open set; it never affects which edges exist.
type Heuristic func(a, b Coord) float64

// Euclidean is straight-line distance on the unwrapped plane.
// Under wraparound it can overestimate the true distance, so searches
// using it are not guaranteed optimal on boards with wrap shortcuts.
func Euclidean(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ToroidalManhattan returns a heuristic that measures Manhattan distance
// taking the shorter way around each axis. It never overestimates, so A*
// returns true shortest paths, but tie-breaking between equal-length paths
// differs from Euclidean.
func ToroidalManhattan(d Dims) Heuristic {
	return func(a, b Coord) float64 {
		dx := abs(a.X - b.X)
		dy := abs(a.Y - b.Y)
		if d.W-dx < dx {
			dx = d.W - dx
		}
		if d.H-dy < dy {
			dy = d.H - dy
		}
		return float64(dx + dy)
	}
}
