package switcher

import (
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/geometry"
)

// LayoutRequest asks the host to show the symbol or alphabetic layout.
type LayoutRequest func(symbols bool)

// Machine is the auto-mode-switch state machine.
//
// Machine is safe for concurrent use; the mutex is held only for the
// duration of a single transition, never across geometry work.
type Machine struct {
	mu      sync.Mutex
	state   State
	symbols bool
	request LayoutRequest
	logger  *zap.Logger
}

// NewMachine creates a machine in StateAlpha. The request callback may
// be nil; the logger may be nil for no logging.
func NewMachine(request LayoutRequest, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		state:   StateAlpha,
		request: request,
		logger:  logger,
	}
}

// State returns the current automaton state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ShowingSymbols returns true while the symbol layout is active.
func (m *Machine) ShowingSymbols() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.symbols
}

// ToggleSymbols is the explicit symbols/alphabet toggle. Entering
// symbols moves to StateSymbolBegin; returning moves to StateAlpha.
// The layout is swapped immediately.
func (m *Machine) ToggleSymbols() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.symbols = !m.symbols
	from := m.state
	if m.symbols {
		m.state = StateSymbolBegin
	} else {
		m.state = StateAlpha
	}
	m.logger.Debug("symbols toggled",
		zap.Stringer("from", from),
		zap.Stringer("to", m.state),
		zap.Bool("symbols", m.symbols))
	m.swap(m.symbols)
}

// HoldSymbols enters the momentary symbol view, held via a modifier.
func (m *Machine) HoldSymbols() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.symbols = true
	m.state = StateMomentary
	m.swap(true)
}

// OnKey consumes one resolved key commit. pointerCount is the number
// of pointers down at commit time, which gates the momentary revert.
func (m *Machine) OnKey(code geometry.Code, pointerCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateMomentary, StateChording:
		m.onKeyMomentary(code, pointerCount)
	case StateSymbolBegin:
		if code != geometry.CodeSpace && code != geometry.CodeEnter && code >= 0 {
			m.state = StateSymbol
		}
	case StateSymbol:
		if code == geometry.CodeSpace || code == geometry.CodeEnter {
			m.revert()
		}
	case StateAlpha:
		// Normal typing; nothing to do.
	default:
		m.logger.Warn("key in unrecognized state, ignoring",
			zap.Stringer("state", m.state),
			zap.Stringer("code", code))
	}
}

// onKeyMomentary handles commits while the symbol view is held.
// Callers hold the mutex.
func (m *Machine) onKeyMomentary(code geometry.Code, pointerCount int) {
	if code == geometry.CodeModeChange {
		// The held modifier itself: already on the right layout,
		// just settle the state.
		if m.symbols {
			m.state = StateSymbolBegin
		} else {
			m.state = StateAlpha
		}
		return
	}
	if pointerCount > 1 {
		// Mid-chord. Suppress the revert until the chord resolves.
		m.state = StateChording
		return
	}
	m.revert()
}

// OnCancel consumes an input-cancel event. A cancel with exactly one
// pointer while momentary reverts to the alphabetic layout.
func (m *Machine) OnCancel(pointerCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateMomentary && pointerCount == 1 {
		m.revert()
		return
	}
	m.logger.Debug("cancel ignored",
		zap.Stringer("state", m.state),
		zap.Int("pointers", pointerCount))
}

// revert requests the alphabetic layout and resets the automaton.
// Callers hold the mutex.
func (m *Machine) revert() {
	m.symbols = false
	m.state = StateAlpha
	m.swap(false)
}

// swap fires the layout request callback. Callers hold the mutex; the
// callback must not call back into the machine.
func (m *Machine) swap(symbols bool) {
	if m.request != nil {
		m.request(symbols)
	}
}
