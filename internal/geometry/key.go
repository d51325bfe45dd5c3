package geometry

import "fmt"

// Code identifies a logical key code. Positive values are Unicode code
// points; negative values are function codes understood by the mode
// switcher and the host IME.
type Code int32

// Function codes. These match the values the host shell dispatches on,
// so they survive round trips through external key-event plumbing.
const (
	// CodeNone indicates no key / no resolution.
	CodeNone Code = -1000

	// CodeShift toggles the shift modifier.
	CodeShift Code = -1

	// CodeModeChange requests the symbols/alphabet layout toggle.
	CodeModeChange Code = -2

	// CodeCancel aborts the current input gesture.
	CodeCancel Code = -3

	// CodeDelete is the backspace key.
	CodeDelete Code = -5

	// CodeSpace is the space character.
	CodeSpace Code = ' '

	// CodeEnter is the enter/return character.
	CodeEnter Code = '\n'
)

// IsCharacter returns true if the code commits a printable character.
func (c Code) IsCharacter() bool {
	return c >= 0
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeShift:
		return "Shift"
	case CodeModeChange:
		return "ModeChange"
	case CodeCancel:
		return "Cancel"
	case CodeDelete:
		return "Delete"
	case CodeSpace:
		return "Space"
	case CodeEnter:
		return "Enter"
	}
	if c >= 0 {
		return string(rune(c))
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}

// HitTester is the capability a key exposes for point resolution.
type HitTester interface {
	// ContainsPoint returns true if the point lies inside the key's
	// hit region.
	ContainsPoint(p Point) bool

	// SquaredDistanceTo returns the squared Euclidean distance from
	// the key's center to the point.
	SquaredDistanceTo(p Point) int
}

// Key is one key of a built layout. Keys are immutable once the layout
// is built; the resolver only ever reads them.
type Key struct {
	// Index is the key's stable position in its Geometry.
	Index int

	// Rect is the hit region used for containment testing.
	Rect Rect

	// Codes is the ordered, non-empty list of codes this key can
	// produce. Codes[0] is the primary code.
	Codes []Code

	// Modifier marks keys such as shift that modify other keys.
	Modifier bool

	// Sticky marks modifier keys that latch (e.g. shift lock).
	Sticky bool
}

// Code returns the key's primary code, or CodeNone for a key with no
// codes assigned.
func (k *Key) Code() Code {
	if len(k.Codes) == 0 {
		return CodeNone
	}
	return k.Codes[0]
}

// HasCode returns true if any of the key's codes equals c.
func (k *Key) HasCode(c Code) bool {
	for _, code := range k.Codes {
		if code == c {
			return true
		}
	}
	return false
}

// ContainsPoint implements HitTester.
func (k *Key) ContainsPoint(p Point) bool {
	return k.Rect.Contains(p)
}

// SquaredDistanceTo implements HitTester.
func (k *Key) SquaredDistanceTo(p Point) int {
	dx := k.Rect.CenterX() - p.X
	dy := k.Rect.CenterY() - p.Y
	return dx*dx + dy*dy
}
