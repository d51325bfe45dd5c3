package layout

import (
	"fmt"

	"github.com/dshills/softboard/internal/geometry"
)

// Default cell dimensions, in layout units, used when a definition
// omits them. One unit is a tenth of a standard key.
const (
	DefaultKeyWidth  = 10
	DefaultKeyHeight = 12
)

// KeyDef describes one key in a layout definition.
type KeyDef struct {
	// Codes is the key's code list as a string; each rune is one
	// candidate code, the first being primary. Empty when Code is
	// set.
	Codes string `toml:"codes"`

	// Code is a numeric code for function keys (shift, mode change)
	// that have no character form. Used when Codes is empty.
	Code int32 `toml:"code"`

	// Width overrides the row's default key width.
	Width int `toml:"width"`

	// Modifier marks modifier keys.
	Modifier bool `toml:"modifier"`

	// Sticky marks latching modifier keys.
	Sticky bool `toml:"sticky"`
}

// codes returns the key's code list in geometry form.
func (k *KeyDef) codes() []geometry.Code {
	if k.Codes != "" {
		out := make([]geometry.Code, 0, len(k.Codes))
		for _, r := range k.Codes {
			out = append(out, geometry.Code(r))
		}
		return out
	}
	if k.Code != 0 {
		return []geometry.Code{geometry.Code(k.Code)}
	}
	return nil
}

// RowDef is one row of keys.
type RowDef struct {
	// Keys is the row's key list, left to right.
	Keys []KeyDef `toml:"keys"`

	// Height overrides the definition's default key height.
	Height int `toml:"height"`

	// Offset indents the row by the given number of layout units.
	Offset int `toml:"offset"`
}

// Definition is a parsed, uncompiled layout.
type Definition struct {
	// Name labels the layout in logs and the demo UI.
	Name string `toml:"name"`

	// KeyWidth is the default key width in layout units.
	KeyWidth int `toml:"key-width"`

	// KeyHeight is the default key height in layout units.
	KeyHeight int `toml:"key-height"`

	// Rows are the key rows, top to bottom.
	Rows []RowDef `toml:"rows"`
}

// validate checks the definition for structural problems.
func (d *Definition) validate(path string) error {
	if len(d.Rows) == 0 {
		return &ParseError{Path: path, Message: "no rows defined"}
	}
	for ri, row := range d.Rows {
		for ki, key := range row.Keys {
			if key.Codes == "" && key.Code == 0 {
				return &ParseError{
					Path:    path,
					Message: keyErrMsg(ri, ki, "has no codes"),
				}
			}
			if key.Width < 0 {
				return &ParseError{
					Path:    path,
					Message: keyErrMsg(ri, ki, "has negative width"),
				}
			}
		}
	}
	return nil
}

func keyErrMsg(row, key int, what string) string {
	return fmt.Sprintf("row %d key %d %s", row, key, what)
}

// Build compiles the definition into key geometry. Keys are emitted in
// scan order, top-left to bottom-right, which fixes the candidate
// tie-break order downstream.
func (d *Definition) Build() *geometry.Geometry {
	keyWidth := d.KeyWidth
	if keyWidth <= 0 {
		keyWidth = DefaultKeyWidth
	}
	keyHeight := d.KeyHeight
	if keyHeight <= 0 {
		keyHeight = DefaultKeyHeight
	}

	var keys []geometry.Key
	y := 0
	for _, row := range d.Rows {
		height := row.Height
		if height <= 0 {
			height = keyHeight
		}
		x := row.Offset
		for _, def := range row.Keys {
			width := def.Width
			if width <= 0 {
				width = keyWidth
			}
			keys = append(keys, geometry.Key{
				Rect:     geometry.Rect{X: x, Y: y, Width: width, Height: height},
				Codes:    def.codes(),
				Modifier: def.Modifier,
				Sticky:   def.Sticky,
			})
			x += width
		}
		y += height
	}
	return geometry.New(keys)
}
