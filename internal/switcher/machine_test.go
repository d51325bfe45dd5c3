package switcher

import (
	"testing"

	"github.com/dshills/softboard/internal/geometry"
)

// recorder captures layout requests.
type recorder struct {
	requests []bool
}

func (r *recorder) request(symbols bool) {
	r.requests = append(r.requests, symbols)
}

func (r *recorder) last() (bool, bool) {
	if len(r.requests) == 0 {
		return false, false
	}
	return r.requests[len(r.requests)-1], true
}

func TestMachineInitialState(t *testing.T) {
	m := NewMachine(nil, nil)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() = %s, want alpha", got)
	}
	if m.ShowingSymbols() {
		t.Error("ShowingSymbols() = true, want false")
	}
}

func TestExplicitToggleThroughSymbolsAndBack(t *testing.T) {
	// alpha -> toggle -> symbol-begin -> 'a' -> symbol -> space ->
	// revert to alpha.
	var rec recorder
	m := NewMachine(rec.request, nil)

	m.ToggleSymbols()
	if got := m.State(); got != StateSymbolBegin {
		t.Fatalf("State() after toggle = %s, want symbol-begin", got)
	}
	if sym, ok := rec.last(); !ok || !sym {
		t.Fatal("toggle should request the symbol layout immediately")
	}

	m.OnKey('a', 1)
	if got := m.State(); got != StateSymbol {
		t.Fatalf("State() after key = %s, want symbol", got)
	}

	m.OnKey(geometry.CodeSpace, 1)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() after space = %s, want alpha", got)
	}
	if sym, ok := rec.last(); !ok || sym {
		t.Error("space in symbol state should request the alphabetic layout")
	}
}

func TestSymbolBeginNotArmedBySpaceOrEnter(t *testing.T) {
	tests := []struct {
		name string
		code geometry.Code
	}{
		{"space", geometry.CodeSpace},
		{"enter", geometry.CodeEnter},
		{"function code", geometry.CodeDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(nil, nil)
			m.ToggleSymbols()
			m.OnKey(tt.code, 1)
			if got := m.State(); got != StateSymbolBegin {
				t.Errorf("State() = %s, want symbol-begin (not armed)", got)
			}
		})
	}
}

func TestReenteringSymbolsAfterSpaceDoesNotBounce(t *testing.T) {
	var rec recorder
	m := NewMachine(rec.request, nil)

	m.ToggleSymbols()
	m.OnKey('1', 1)
	m.OnKey(geometry.CodeSpace, 1) // reverts to alpha
	m.ToggleSymbols()              // straight back into symbols

	n := len(rec.requests)
	m.OnKey(geometry.CodeSpace, 1)
	if got := m.State(); got != StateSymbolBegin {
		t.Errorf("State() = %s, want symbol-begin", got)
	}
	if len(rec.requests) != n {
		t.Error("space right after re-entering symbols must not revert")
	}
}

func TestMomentaryRevertsOnSinglePointerKey(t *testing.T) {
	var rec recorder
	m := NewMachine(rec.request, nil)

	m.HoldSymbols()
	if got := m.State(); got != StateMomentary {
		t.Fatalf("State() = %s, want momentary", got)
	}

	m.OnKey('#', 1)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() = %s, want alpha", got)
	}
	if sym, ok := rec.last(); !ok || sym {
		t.Error("single-pointer key while momentary should revert the layout")
	}
}

func TestMomentaryChordSuppressesRevert(t *testing.T) {
	// Two pointers down: the first key commit moves to chording
	// without reverting; a later single-pointer commit reverts.
	var rec recorder
	m := NewMachine(rec.request, nil)

	m.HoldSymbols()
	n := len(rec.requests)

	m.OnKey('#', 2)
	if got := m.State(); got != StateChording {
		t.Fatalf("State() = %s, want chording", got)
	}
	if len(rec.requests) != n {
		t.Fatal("chorded key must not revert the layout")
	}

	m.OnKey('%', 2)
	if got := m.State(); got != StateChording {
		t.Fatalf("State() = %s, want chording (still mid-chord)", got)
	}

	m.OnKey('a', 1)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() = %s, want alpha after chord resolves", got)
	}
	if sym, ok := rec.last(); !ok || sym {
		t.Error("fresh single-pointer key should revert to alphabetic")
	}
}

func TestMomentaryModeChangeKeySettles(t *testing.T) {
	m := NewMachine(nil, nil)

	m.HoldSymbols()
	m.OnKey(geometry.CodeModeChange, 1)
	if got := m.State(); got != StateSymbolBegin {
		t.Errorf("State() = %s, want symbol-begin (already on symbols)", got)
	}
}

func TestCancelWhileMomentaryReverts(t *testing.T) {
	var rec recorder
	m := NewMachine(rec.request, nil)

	m.HoldSymbols()
	m.OnCancel(1)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() = %s, want alpha", got)
	}
	if sym, ok := rec.last(); !ok || sym {
		t.Error("cancel while momentary should revert the layout")
	}
}

func TestCancelElsewhereIsNoOp(t *testing.T) {
	m := NewMachine(nil, nil)

	m.OnCancel(1)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() = %s, want alpha", got)
	}

	m.ToggleSymbols()
	m.OnCancel(2)
	if got := m.State(); got != StateSymbolBegin {
		t.Errorf("State() = %s, want symbol-begin (cancel ignored)", got)
	}
}

func TestKeysInAlphaAreNoOps(t *testing.T) {
	var rec recorder
	m := NewMachine(rec.request, nil)

	m.OnKey('a', 1)
	m.OnKey(geometry.CodeSpace, 1)
	if got := m.State(); got != StateAlpha {
		t.Errorf("State() = %s, want alpha", got)
	}
	if len(rec.requests) != 0 {
		t.Error("typing in alpha must not request layout changes")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAlpha, "alpha"},
		{StateSymbolBegin, "symbol-begin"},
		{StateSymbol, "symbol"},
		{StateMomentary, "momentary"},
		{StateChording, "chording"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
