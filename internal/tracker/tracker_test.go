package tracker

import (
	"testing"

	"github.com/dshills/softboard/internal/geometry"
	"github.com/dshills/softboard/internal/locale"
	"github.com/dshills/softboard/internal/switcher"
)

// testGeometry is a two-row layout: letters on top, space row below.
//
//	a: 0..20, b: 20..40 (y 0..20)
//	space: 0..40 (y 20..40)
func testGeometry() *geometry.Geometry {
	return geometry.New([]geometry.Key{
		{Rect: geometry.Rect{X: 0, Y: 0, Width: 20, Height: 20}, Codes: []geometry.Code{'a'}},
		{Rect: geometry.Rect{X: 20, Y: 0, Width: 20, Height: 20}, Codes: []geometry.Code{'b'}},
		{Rect: geometry.Rect{X: 0, Y: 20, Width: 40, Height: 20}, Codes: []geometry.Code{geometry.CodeSpace}},
	})
}

// capture collects callback invocations.
type capture struct {
	commits []geometry.Code
	modes   []bool
	locales []int
}

func (c *capture) callbacks() Callbacks {
	return Callbacks{
		OnKeyCommitted:        func(code geometry.Code) { c.commits = append(c.commits, code) },
		OnModeChangeRequested: func(symbols bool) { c.modes = append(c.modes, symbols) },
		OnLocaleChanged:       func(delta int, _ locale.Locale) { c.locales = append(c.locales, delta) },
	}
}

func newTestTracker(cap *capture, locales ...string) *Tracker {
	return New(Options{
		Geometry:  testGeometry(),
		Locales:   locale.NewRing(locales),
		Callbacks: cap.callbacks(),
	})
}

func TestTapCommitsKey(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	p := geometry.Point{X: 10, Y: 10}
	tr.PointerDown(0, p)
	tr.PointerUp(0, p)

	if len(cap.commits) != 1 || cap.commits[0] != 'a' {
		t.Errorf("commits = %v, want [a]", cap.commits)
	}
}

func TestTapOutsideCommitsNothing(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	p := geometry.Point{X: 500, Y: 500}
	tr.PointerDown(0, p)
	tr.PointerUp(0, p)

	if len(cap.commits) != 0 {
		t.Errorf("commits = %v, want none", cap.commits)
	}
	if got := tr.Metrics().GetSnapshot().NoHits; got != 1 {
		t.Errorf("NoHits = %d, want 1", got)
	}
}

func TestSpaceDragCyclesLocale(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap, "en", "de")

	tr.PointerDown(0, geometry.Point{X: 20, Y: 30})
	tr.PointerMove(0, geometry.Point{X: 45, Y: 30})
	tr.PointerUp(0, geometry.Point{X: 45, Y: 30})

	if len(cap.locales) != 1 || cap.locales[0] != 1 {
		t.Errorf("locales = %v, want [1]", cap.locales)
	}
	if len(cap.commits) != 0 {
		t.Errorf("commits = %v, want none (drag does not commit a space)", cap.commits)
	}
	if got := tr.Metrics().GetSnapshot().LocaleChanges; got != 1 {
		t.Errorf("LocaleChanges = %d, want 1", got)
	}
}

func TestShortSpaceTapCommitsSpace(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap, "en", "de")

	p := geometry.Point{X: 20, Y: 30}
	tr.PointerDown(0, p)
	tr.PointerUp(0, p)

	if len(cap.commits) != 1 || cap.commits[0] != geometry.CodeSpace {
		t.Errorf("commits = %v, want [Space]", cap.commits)
	}
	if len(cap.locales) != 0 {
		t.Errorf("locales = %v, want none", cap.locales)
	}
}

func TestChordSuppressesMomentaryRevert(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	tr.HoldSymbols()
	cap.modes = nil

	// Two pointers down; the chord key lifts while the first pointer
	// is still held.
	tr.PointerDown(0, geometry.Point{X: 10, Y: 10})
	tr.PointerDown(1, geometry.Point{X: 30, Y: 10})
	tr.PointerUp(1, geometry.Point{X: 30, Y: 10})

	if got := tr.Machine().State(); got != switcher.StateChording {
		t.Fatalf("State() = %s, want chording", got)
	}
	if len(cap.modes) != 0 {
		t.Error("chorded commit must not request a layout change")
	}

	// The remaining pointer lifts: a single-pointer commit reverts.
	tr.PointerUp(0, geometry.Point{X: 10, Y: 10})
	if got := tr.Machine().State(); got != switcher.StateAlpha {
		t.Errorf("State() = %s, want alpha", got)
	}
	if len(cap.modes) != 1 || cap.modes[0] {
		t.Errorf("modes = %v, want [false]", cap.modes)
	}
}

func TestCancelResetsWithoutCommit(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap, "en", "de")

	tr.PointerDown(0, geometry.Point{X: 20, Y: 30})
	tr.PointerMove(0, geometry.Point{X: 45, Y: 30})
	tr.PointerCancel(0)

	if len(cap.commits) != 0 || len(cap.locales) != 0 {
		t.Error("cancelled touch must commit nothing")
	}
	if got := tr.Metrics().GetSnapshot().Cancels; got != 1 {
		t.Errorf("Cancels = %d, want 1", got)
	}
}

func TestSetGeometryDiscardsTouch(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	tr.PointerDown(0, geometry.Point{X: 10, Y: 10})
	tr.SetGeometry(testGeometry())
	tr.PointerUp(0, geometry.Point{X: 10, Y: 10})

	if len(cap.commits) != 0 {
		t.Errorf("commits = %v, want none (touch discarded on swap)", cap.commits)
	}
}

func TestToggleSymbolsForwarded(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	tr.ToggleSymbols()
	if len(cap.modes) != 1 || !cap.modes[0] {
		t.Errorf("modes = %v, want [true]", cap.modes)
	}
	if got := tr.Machine().State(); got != switcher.StateSymbolBegin {
		t.Errorf("State() = %s, want symbol-begin", got)
	}
}

func TestResolveTouchIsPure(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	code, cands := tr.ResolveTouch(geometry.Point{X: 10, Y: 10})
	if code != 'a' {
		t.Errorf("ResolveTouch() = %v, want a", code)
	}
	if cands.Len() == 0 {
		t.Error("ResolveTouch() returned no candidates")
	}
	if len(cap.commits) != 0 {
		t.Error("ResolveTouch() must not commit")
	}
}

func TestMetricsSnapshotCounts(t *testing.T) {
	var cap capture
	tr := newTestTracker(&cap)

	p := geometry.Point{X: 10, Y: 10}
	tr.PointerDown(0, p)
	tr.PointerUp(0, p)

	snap := tr.Metrics().GetSnapshot()
	if snap.Touches != 1 {
		t.Errorf("Touches = %d, want 1", snap.Touches)
	}
	if snap.Commits != 1 {
		t.Errorf("Commits = %d, want 1", snap.Commits)
	}
}
