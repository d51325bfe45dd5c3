package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/config"
	"github.com/dshills/softboard/internal/keyboard"
)

func testBoardSource(t *testing.T, dir string) *boardSource {
	t.Helper()
	cfg := config.Default()
	cfg.LayoutDir = dir
	s, err := newBoardSource(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newBoardSource() error = %v", err)
	}
	return s
}

func TestBoardSourceCachesVariants(t *testing.T) {
	s := testBoardSource(t, t.TempDir())

	first, err := s.Keyboard(false)
	if err != nil {
		t.Fatalf("Keyboard() error = %v", err)
	}
	second, err := s.Keyboard(false)
	if err != nil {
		t.Fatalf("Keyboard() error = %v", err)
	}
	if first != second {
		t.Error("Keyboard() should return the cached variant")
	}

	symbols, err := s.Keyboard(true)
	if err != nil {
		t.Fatalf("Keyboard(symbols) error = %v", err)
	}
	if symbols == first {
		t.Error("symbol and alphabetic variants must be distinct")
	}
	if symbols.ID.Mode != keyboard.ModeSymbols {
		t.Errorf("symbols ID.Mode = %s, want symbols", symbols.ID.Mode)
	}
}

func TestBoardSourceBuiltinFallbacks(t *testing.T) {
	// An empty layout directory serves both views from the built-ins.
	s := testBoardSource(t, t.TempDir())

	alpha, err := s.Keyboard(false)
	if err != nil {
		t.Fatalf("Keyboard() error = %v", err)
	}
	if alpha.Geometry.IndexOfCode('q') < 0 {
		t.Error("alphabetic fallback should carry 'q'")
	}

	symbols, err := s.Keyboard(true)
	if err != nil {
		t.Fatalf("Keyboard(symbols) error = %v", err)
	}
	if symbols.Geometry.IndexOfCode('1') < 0 {
		t.Error("symbols fallback should carry '1'")
	}
}

func TestBoardSourceLoadsLayoutFiles(t *testing.T) {
	dir := t.TempDir()
	base := `name = "tiny"
[[rows]]
keys = [{ codes = "ab" }]
`
	if err := os.WriteFile(filepath.Join(dir, "qwerty.toml"), []byte(base), 0o644); err != nil {
		t.Fatal(err)
	}

	s := testBoardSource(t, dir)
	kbd, err := s.Keyboard(false)
	if err != nil {
		t.Fatalf("Keyboard() error = %v", err)
	}
	if got := kbd.Geometry.Len(); got != 1 {
		t.Errorf("Geometry.Len() = %d, want 1 (from the file, not the built-in)", got)
	}
}

func TestBoardSourceInvalidatePicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qwerty.toml")
	one := `[[rows]]
keys = [{ codes = "a" }]
`
	two := `[[rows]]
keys = [{ codes = "a" }, { codes = "b" }]
`
	if err := os.WriteFile(path, []byte(one), 0o644); err != nil {
		t.Fatal(err)
	}

	s := testBoardSource(t, dir)
	kbd, err := s.Keyboard(false)
	if err != nil {
		t.Fatalf("Keyboard() error = %v", err)
	}
	if got := kbd.Geometry.Len(); got != 1 {
		t.Fatalf("Geometry.Len() = %d, want 1", got)
	}

	if err := os.WriteFile(path, []byte(two), 0o644); err != nil {
		t.Fatal(err)
	}

	// Still cached until the watcher invalidates.
	kbd, _ = s.Keyboard(false)
	if got := kbd.Geometry.Len(); got != 1 {
		t.Errorf("Geometry.Len() before invalidation = %d, want 1", got)
	}

	s.Invalidate()
	kbd, err = s.Keyboard(false)
	if err != nil {
		t.Fatalf("Keyboard() after invalidation error = %v", err)
	}
	if got := kbd.Geometry.Len(); got != 2 {
		t.Errorf("Geometry.Len() after invalidation = %d, want 2", got)
	}
}
