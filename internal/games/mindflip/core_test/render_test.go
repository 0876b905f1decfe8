package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
)

func TestRenderASCII(t *testing.T) {
	tiles := [][]int{
		{1, 1, 0},
		{1, 1, 1},
	}
	obstacles := [][]int{
		{1, 0, 0},
		{0, 3, 0},
	}
	lv := mustBuild(t, tiles, obstacles, core.C(2, 0))

	want := "Board: 3x2 | Hero: (2,0) | Marker: (2,0)\n" +
		"B.#\n" +
		".CH\n"
	if got := core.RenderASCII(lv); got != want {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", got, want)
	}

	if err := lv.MoveDestinationMarker(core.C(0, 0)); err != nil {
		t.Fatalf("MoveDestinationMarker failed: %v", err)
	}
	want = "Board: 3x2 | Hero: (2,0) | Marker: (0,0)\n" +
		"B.#\n" +
		"DCH\n"
	if got := core.RenderASCII(lv); got != want {
		t.Errorf("unexpected render after marker move:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderASCIIAfterFlip(t *testing.T) {
	tiles, obstacles := openMatrices(3, 3)
	putBlock(obstacles, core.C(0, 0))
	lv := mustBuild(t, tiles, obstacles, core.C(1, 1))

	if err := lv.RequestFlip(core.FlipUpRight); err != nil {
		t.Fatalf("RequestFlip failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(core.RenderASCII(lv), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines", len(lines))
	}
	if lines[1] != "..B" || lines[2] != ".H." || lines[3] != "..." {
		t.Errorf("unexpected board:\n%s", strings.Join(lines[1:], "\n"))
	}
}
