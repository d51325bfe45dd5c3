package switcher

// State is the auto-mode-switch automaton state. Exactly one state is
// active per machine at a time.
type State uint8

const (
	// StateAlpha is the initial state: the alphabetic layout is
	// showing and no auto-switch is pending.
	StateAlpha State = iota

	// StateSymbolBegin means the symbol layout was just entered and
	// no ordinary key has been typed on it yet.
	StateSymbolBegin

	// StateSymbol means at least one ordinary key has been typed on
	// the symbol layout; the next space or enter reverts.
	StateSymbol

	// StateMomentary means the symbol layout is held via a modifier
	// and reverts on the next single-pointer key.
	StateMomentary

	// StateChording means a multi-pointer chord is in progress while
	// momentary; revert is suppressed until the chord resolves.
	StateChording
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAlpha:
		return "alpha"
	case StateSymbolBegin:
		return "symbol-begin"
	case StateSymbol:
		return "symbol"
	case StateMomentary:
		return "momentary"
	case StateChording:
		return "chording"
	default:
		return "unknown"
	}
}
