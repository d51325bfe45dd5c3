package keyboard

import (
	"fmt"

	"github.com/dshills/softboard/internal/geometry"
)

// Mode is the logical input mode a keyboard variant serves.
type Mode int

const (
	// ModeText is ordinary prose entry.
	ModeText Mode = iota

	// ModeSymbols is the punctuation/number layer.
	ModeSymbols

	// ModeURL biases the layout toward URL entry.
	ModeURL

	// ModeEmail biases the layout toward address entry.
	ModeEmail

	// ModeIM is chat-style entry with smiley access.
	ModeIM

	// ModePhone is the dial pad.
	ModePhone
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeSymbols:
		return "symbols"
	case ModeURL:
		return "url"
	case ModeEmail:
		return "email"
	case ModeIM:
		return "im"
	case ModePhone:
		return "phone"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ID names one keyboard variant. Two IDs are equal iff all fields
// match; the type is comparable so it serves directly as a cache key.
// Touch state is deliberately not part of identity.
type ID struct {
	// LayoutRes identifies the layout definition resource.
	LayoutRes int

	// Mode is the logical input mode.
	Mode Mode

	// EnableShiftLock marks variants whose shift key latches.
	EnableShiftLock bool

	// HasVoice marks variants carrying a voice-input key.
	HasVoice bool

	// HeightPercent is the locale-derived keyboard height as a
	// percentage of the default.
	HeightPercent int

	// Extension marks the extension (overflow) row variant.
	Extension bool
}

// Equal reports field-wise equality. Equivalent to ==; provided for
// call sites that read better with a method.
func (id ID) Equal(other ID) bool {
	return id == other
}

// String returns a debug representation of the identity tuple.
func (id ID) String() string {
	return fmt.Sprintf("kbd[res=%d mode=%s shiftlock=%t voice=%t height=%d%% ext=%t]",
		id.LayoutRes, id.Mode, id.EnableShiftLock, id.HasVoice, id.HeightPercent, id.Extension)
}

// Spec is the tuple the mode switcher derives a concrete identity
// from. Identical tuples always produce equal IDs.
type Spec struct {
	Mode        Mode
	Symbols     bool
	HasSettings bool
	HasVoice    bool
	FullMode    bool
}

// IDFor maps a switcher tuple to a concrete keyboard identity. The
// mapping is pure: it reads nothing but its arguments.
func IDFor(spec Spec, layoutRes, heightPercent int) ID {
	mode := spec.Mode
	if spec.Symbols {
		mode = ModeSymbols
	}
	return ID{
		LayoutRes:       layoutRes,
		Mode:            mode,
		EnableShiftLock: !spec.Symbols && spec.Mode == ModeText,
		HasVoice:        spec.HasVoice,
		HeightPercent:   heightPercent,
		Extension:       spec.FullMode,
	}
}

// Keyboard is one built keyboard variant: an identity plus the key
// geometry compiled for it.
type Keyboard struct {
	// ID is the variant identity.
	ID ID

	// Geometry is the compiled key layout.
	Geometry *geometry.Geometry
}
