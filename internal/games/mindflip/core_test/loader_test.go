package core_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
	"github.com/vovakirdan/mindflip/internal/games/mindflip/levels"
	"github.com/vovakirdan/mindflip/internal/games/mindflip/levels/formats"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml is skipped, notes.txt is ignored
	wantIDs := []string{"corner", "lvl01", "lvl02"}
	if len(lvls) != len(wantIDs) {
		t.Fatalf("expected %d levels, got %d", len(wantIDs), len(lvls))
	}
	for i, id := range wantIDs {
		if lvls[i].ID != id {
			t.Errorf("level %d: expected ID %q, got %q", i, id, lvls[i].ID)
		}
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	def, err := loader.LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if def.Name != "Small Gap" {
		t.Errorf("expected Name 'Small Gap', got %q", def.Name)
	}
	if def.Dims.W != 4 || def.Dims.H != 4 {
		t.Errorf("expected 4x4, got %dx%d", def.Dims.W, def.Dims.H)
	}
	if def.Start != core.C(0, 0) {
		t.Errorf("expected start (0,0), got %v", def.Start)
	}

	lv, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	path, err := lv.RequestMove(core.C(0, 2))
	if err != nil {
		t.Fatalf("RequestMove failed: %v", err)
	}
	through := false
	for _, c := range path {
		if c == core.C(3, 1) {
			through = true
		}
	}
	if !through {
		t.Errorf("path should pass the gap at (3,1): %v", path)
	}
}

func TestLoaderLoadJSON(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	def, err := loader.LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if def.Name != "Json Room" {
		t.Errorf("expected Name 'Json Room', got %q", def.Name)
	}
	if def.Dims.W != 6 || def.Dims.H != 3 {
		t.Errorf("expected 6x3, got %dx%d", def.Dims.W, def.Dims.H)
	}
	if filepath.Ext(def.FilePath) != ".json" {
		t.Errorf("expected json file, got %q", def.FilePath)
	}

	lv, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if ok, _ := lv.IsWalkable(core.C(2, 1)); ok {
		t.Error("expected block at (2,1)")
	}
	if ok, _ := lv.IsWalkable(core.C(0, 0)); ok {
		t.Error("expected void at (0,0)")
	}
}

func TestLoaderIDFromFileName(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	def, err := loader.LoadByID("corner")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if def.Name != "Unnamed Corner" {
		t.Errorf("expected Name 'Unnamed Corner', got %q", def.Name)
	}
	if def.FilePath != "extra/corner.yml" {
		t.Errorf("expected nested path, got %q", def.FilePath)
	}
}

func TestLoaderInvalidFile(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, err := loader.LoadFile("broken.yaml")
	if !errors.Is(err, core.ErrInvalidLevelData) {
		t.Fatalf("expected ErrInvalidLevelData, got %v", err)
	}
	var le *core.LevelError
	if !errors.As(err, &le) || le.Code != core.CodeNonRectangular {
		t.Errorf("expected %s, got %v", core.CodeNonRectangular, err)
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, err := loader.LoadByID("nonexistent")
	if !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoaderListIDs(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	// Should be sorted
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestLoaderFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"tiles": [[1, 1]], "obstacles": [[0, 0]], "starting": [1, 0]}`)},
		"b.json": {Data: []byte(`{"tiles": [[1, 1]], "obstacles": [[0, 0]], "starting": [1]}`)},
		"c.yaml": {Data: []byte("tiles: [[1]]\nobstacles: [[0]]\nstarting: [0, 0]\n")},
	}
	loader := levels.NewFSLoader(fsys, "mem")

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Errorf("expected [a c], got %v", ids)
	}
}

func TestBuiltinLevels(t *testing.T) {
	loader := levels.Builtin()

	defs, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 builtin levels, got %d", len(defs))
	}

	for _, def := range defs {
		if def.Name == "" {
			t.Errorf("builtin level %s has no name", def.ID)
		}
		if _, err := def.Build(); err != nil {
			t.Errorf("builtin level %s does not build: %v", def.ID, err)
		}
	}

	def, err := loader.LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	lv, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	path, err := lv.RequestMove(core.C(0, 6))
	if err != nil {
		t.Fatalf("RequestMove failed: %v", err)
	}
	through := false
	for _, c := range path {
		if c == core.C(7, 4) {
			through = true
		}
	}
	if !through {
		t.Errorf("lvl01 path should pass the gap at (7,4): %v", path)
	}
}

func TestFormatsStarting(t *testing.T) {
	_, err := formats.ParseJSON([]byte(`{"tiles": [[1]], "obstacles": [[0]], "starting": [0, 0, 0]}`))
	var le *core.LevelError
	if !errors.As(err, &le) || le.Code != core.CodeBadStart {
		t.Errorf("expected %s, got %v", core.CodeBadStart, err)
	}

	if _, err := formats.ParseYAML([]byte("tiles: [[1]\n")); err == nil {
		t.Error("expected YAML syntax error")
	}

	if _, err := formats.Parse([]byte("{}"), ".toml"); err == nil {
		t.Error("expected unsupported extension error")
	}
}
