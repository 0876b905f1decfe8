package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
)

func TestGraphMirrorsGridWalkability(t *testing.T) {
	tiles, obstacles := mirrorRoom()
	lv := mustBuild(t, tiles, obstacles, core.C(3, 3))

	g := lv.Graph()
	for _, c := range allCoords(lv.Dims()) {
		n, err := g.NodeAt(c)
		if err != nil {
			t.Fatalf("NodeAt(%v) failed: %v", c, err)
		}
		if n.Pos() != c {
			t.Errorf("node at %v reports position %v", c, n.Pos())
		}
		if n.Walkable() != lv.Grid().IsWalkable(c) {
			t.Errorf("at %v: graph walkable=%v, grid walkable=%v", c, n.Walkable(), lv.Grid().IsWalkable(c))
		}
	}

	// Void corners and blocks
	testCases := []struct {
		coord    core.Coord
		walkable bool
	}{
		{core.C(0, 0), false},
		{core.C(7, 7), false},
		{core.C(1, 6), false}, // block
		{core.C(6, 6), true},  // collectable
		{core.C(3, 3), true},  // hero + marker
	}
	for _, tc := range testCases {
		if got := g.IsWalkable(tc.coord); got != tc.walkable {
			t.Errorf("IsWalkable(%v) = %v, want %v", tc.coord, got, tc.walkable)
		}
	}
}

func TestGraphToroidalNeighbors(t *testing.T) {
	tiles, obstacles := openMatrices(3, 3)
	lv := mustBuild(t, tiles, obstacles, core.C(1, 1))

	n, err := lv.Graph().NodeAt(core.C(0, 0))
	if err != nil {
		t.Fatalf("NodeAt failed: %v", err)
	}

	// up, right, left, down
	want := []core.Coord{core.C(0, 1), core.C(1, 0), core.C(2, 0), core.C(0, 2)}
	got := n.Neighbors()
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %d", len(want), len(got))
	}
	for i, nb := range got {
		if nb.Pos() != want[i] {
			t.Errorf("neighbor %d: expected %v, got %v", i, want[i], nb.Pos())
		}
	}
}

func TestGraphAdjacent(t *testing.T) {
	tiles, obstacles := openMatrices(4, 3)
	lv := mustBuild(t, tiles, obstacles, core.C(0, 0))
	g := lv.Graph()

	testCases := []struct {
		a, b     core.Coord
		adjacent bool
	}{
		{core.C(0, 0), core.C(1, 0), true},
		{core.C(0, 0), core.C(3, 0), true}, // horizontal wrap
		{core.C(2, 0), core.C(2, 2), true}, // vertical wrap
		{core.C(0, 0), core.C(1, 1), false},
		{core.C(0, 0), core.C(2, 0), false},
		{core.C(0, 0), core.C(0, 0), false},
		{core.C(0, 0), core.C(4, 0), false}, // out of bounds
	}
	for _, tc := range testCases {
		if got := g.Adjacent(tc.a, tc.b); got != tc.adjacent {
			t.Errorf("Adjacent(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.adjacent)
		}
	}
}

func TestGraphNodeAtOutOfBounds(t *testing.T) {
	tiles, obstacles := openMatrices(3, 3)
	lv := mustBuild(t, tiles, obstacles, core.C(0, 0))

	for _, c := range []core.Coord{core.C(-1, 0), core.C(3, 0), core.C(0, 3), core.C(0, -1)} {
		_, err := lv.Graph().NodeAt(c)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("NodeAt(%v): expected ErrOutOfBounds, got %v", c, err)
		}
		var be *core.BoundsError
		if !errors.As(err, &be) || be.Coord != c {
			t.Errorf("NodeAt(%v): expected BoundsError for the coordinate, got %v", c, err)
		}
		if lv.Graph().IsWalkable(c) {
			t.Errorf("IsWalkable(%v) should be false out of bounds", c)
		}
	}
}

func TestGraphStaleness(t *testing.T) {
	g := core.NewGrid(3, 3)
	for _, c := range allCoords(g.Dims()) {
		if err := g.SetTile(c, true); err != nil {
			t.Fatalf("SetTile failed: %v", err)
		}
	}

	graph := core.BuildGraph(g)
	if graph.Stale(g) {
		t.Fatal("fresh graph should not be stale")
	}

	// Walkable objects never change walkability
	if _, err := g.Spawn(core.KindHero, core.C(0, 0)); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if graph.Stale(g) {
		t.Error("spawning a hero should not make the graph stale")
	}

	block, err := g.Spawn(core.KindBlock, core.C(1, 1))
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if !graph.Stale(g) {
		t.Error("spawning a block should make the graph stale")
	}
	if !graph.IsWalkable(core.C(1, 1)) {
		t.Error("snapshot must not change after the grid does")
	}

	graph = core.BuildGraph(g)
	if graph.IsWalkable(core.C(1, 1)) {
		t.Error("rebuilt graph should see the block")
	}

	if err := g.MoveObject(block, core.C(2, 2)); err != nil {
		t.Fatalf("MoveObject failed: %v", err)
	}
	if !graph.Stale(g) {
		t.Error("moving a block should make the graph stale")
	}
}

func TestSingleCellBoard(t *testing.T) {
	lv := mustBuild(t, [][]int{{1}}, [][]int{{0}}, core.C(0, 0))

	n, err := lv.Graph().NodeAt(core.C(0, 0))
	if err != nil {
		t.Fatalf("NodeAt failed: %v", err)
	}
	for i, nb := range n.Neighbors() {
		if nb != n {
			t.Errorf("neighbor %d of the only node should be itself", i)
		}
	}

	path, err := lv.RequestMove(core.C(0, 0))
	if err != nil {
		t.Fatalf("RequestMove failed: %v", err)
	}
	if len(path) != 1 {
		t.Errorf("expected single-cell path, got %v", path)
	}
}

func TestGraphNeighborsAreCopies(t *testing.T) {
	tiles, obstacles := openMatrices(3, 3)
	lv := mustBuild(t, tiles, obstacles, core.C(0, 0))

	n, err := lv.Graph().NodeAt(core.C(0, 0))
	if err != nil {
		t.Fatalf("NodeAt failed: %v", err)
	}

	nbs := n.Neighbors()
	nbs[0] = nbs[3]
	nbs[1] = nil

	again := n.Neighbors()
	if again[0].Pos() != core.C(0, 1) {
		t.Errorf("up neighbor changed to %v", again[0].Pos())
	}
	if again[1] == nil || again[1].Pos() != core.C(1, 0) {
		t.Error("right neighbor should still be (1,0)")
	}

	path, err := lv.RequestMove(core.C(1, 1))
	if err != nil {
		t.Fatalf("RequestMove failed: %v", err)
	}
	want := []core.Coord{core.C(0, 0), core.C(0, 1), core.C(1, 1)}
	if len(path) != len(want) {
		t.Fatalf("expected %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("step %d: expected %v, got %v", i, want[i], path[i])
		}
	}
}
