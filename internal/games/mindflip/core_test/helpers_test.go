package core_test

import (
	"testing"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
)

// openMatrices returns an all-floor tile matrix and an empty obstacle matrix.
func openMatrices(w, h int) (tiles, obstacles [][]int) {
	tiles = make([][]int, h)
	obstacles = make([][]int, h)
	for r := 0; r < h; r++ {
		tiles[r] = make([]int, w)
		obstacles[r] = make([]int, w)
		for c := 0; c < w; c++ {
			tiles[r][c] = core.TileFloor
		}
	}
	return tiles, obstacles
}

// putBlock places a block at a board coordinate (row 0 at the bottom).
func putBlock(obstacles [][]int, c core.Coord) {
	obstacles[len(obstacles)-c.Y-1][c.X] = core.ObstacleBlock
}

func mustBuild(t *testing.T, tiles, obstacles [][]int, start core.Coord, opts ...core.LevelOption) *core.Level {
	t.Helper()
	lv, err := core.BuildLevel(tiles, obstacles, start, opts...)
	if err != nil {
		t.Fatalf("BuildLevel failed: %v", err)
	}
	return lv
}

// gapMatrices is an 8x8 board whose row 4 is walled off except column 7,
// with row 0 fully blocked so the vertical wrap cannot bypass the wall.
func gapMatrices() (tiles, obstacles [][]int) {
	tiles, obstacles = openMatrices(8, 8)
	for x := 0; x < 8; x++ {
		putBlock(obstacles, core.C(x, 0))
		if x != 7 {
			putBlock(obstacles, core.C(x, 4))
		}
	}
	return tiles, obstacles
}

// mirrorRoom is an irregular 8x8 board with void corners, blocks and collectables.
func mirrorRoom() (tiles, obstacles [][]int) {
	tiles = [][]int{
		{0, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 0},
	}
	obstacles = [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 3, 0},
		{0, 1, 0, 0, 1, 0, 0, 0},
		{0, 1, 1, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 3, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	return tiles, obstacles
}

// allCoords lists every coordinate of a board in row-major order.
func allCoords(d core.Dims) []core.Coord {
	out := make([]core.Coord, 0, d.Area())
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			out = append(out, core.C(x, y))
		}
	}
	return out
}

// bfsDistances returns the number of steps from start to every reachable cell.
func bfsDistances(g *core.Graph, start core.Coord) map[core.Coord]int {
	dist := map[core.Coord]int{start: 0}
	n, _ := g.NodeAt(start)
	queue := []*core.Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range cur.Neighbors() {
			if !nb.Walkable() {
				continue
			}
			if _, seen := dist[nb.Pos()]; seen {
				continue
			}
			dist[nb.Pos()] = dist[cur.Pos()] + 1
			queue = append(queue, nb)
		}
	}
	return dist
}
