// Package switcher implements the automaton that flips the keyboard
// between alphabetic and symbol layouts as the user types.
//
// The Machine consumes the stream of resolved key codes and two
// explicit events (the symbols toggle and the held momentary switch)
// and decides when to request a layout change:
//
//   - A momentary symbol view reverts the instant a normal key is
//     tapped with a single finger, but never mid-chord: a second
//     pointer held down suppresses the revert so multi-finger shifted
//     symbol entry works.
//
//   - After an explicit switch to symbols, the first ordinary key arms
//     auto-revert; the following space or enter then flips back to the
//     alphabet. The arming step exists so that re-entering symbols
//     right after a space does not bounce straight back out.
//
// Transitions on unrecognized event/state combinations are logged
// no-ops; the machine never enters an undefined state.
package switcher
