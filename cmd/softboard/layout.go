package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/softboard/internal/layout"
)

// defaultDisplayWidth is the layout-unit width Lua generators are
// asked to fill in the demo.
const defaultDisplayWidth = 66

// loadDefinition loads the named layout from dir, preferring a TOML
// file and falling back to a Lua generator. When neither file exists
// the error wraps fs.ErrNotExist so callers can substitute a built-in.
func loadDefinition(dir, name string) (*layout.Definition, error) {
	tomlPath := filepath.Join(dir, name+".toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return layout.Load(tomlPath)
	}
	luaPath := filepath.Join(dir, name+".lua")
	if _, err := os.Stat(luaPath); err == nil {
		return layout.LoadScript(luaPath, defaultDisplayWidth)
	}
	return nil, fmt.Errorf("layout %s: %w", name, fs.ErrNotExist)
}

// defaultLayout is the built-in qwerty used when no layout file is
// found. Cell sizes are chosen for terminal rendering: one layout unit
// is one terminal cell.
func defaultLayout() *layout.Definition {
	return &layout.Definition{
		Name:      "qwerty",
		KeyWidth:  6,
		KeyHeight: 3,
		Rows: []layout.RowDef{
			{Keys: []layout.KeyDef{
				{Codes: "q"}, {Codes: "w"}, {Codes: "e"}, {Codes: "r"},
				{Codes: "t"}, {Codes: "y"}, {Codes: "u"}, {Codes: "i"},
				{Codes: "o"}, {Codes: "p"},
			}},
			{Offset: 3, Keys: []layout.KeyDef{
				{Codes: "a"}, {Codes: "s"}, {Codes: "d"}, {Codes: "f"},
				{Codes: "g"}, {Codes: "h"}, {Codes: "j"}, {Codes: "k"},
				{Codes: "l"},
			}},
			{Keys: []layout.KeyDef{
				{Code: -1, Width: 9, Modifier: true, Sticky: true},
				{Codes: "z"}, {Codes: "x"}, {Codes: "c"}, {Codes: "v"},
				{Codes: "b"}, {Codes: "n"}, {Codes: "m"},
				{Code: -5, Width: 9},
			}},
			{Keys: []layout.KeyDef{
				{Code: -2, Width: 12},
				{Codes: " ", Width: 30},
				{Codes: ".,?!"},
				{Codes: "\n", Width: 12},
			}},
		},
	}
}

// defaultSymbolsLayout is the built-in punctuation/number layer shown
// when the mode switcher requests symbols and no "<layout>-symbols"
// file exists.
func defaultSymbolsLayout() *layout.Definition {
	return &layout.Definition{
		Name:      "symbols",
		KeyWidth:  6,
		KeyHeight: 3,
		Rows: []layout.RowDef{
			{Keys: []layout.KeyDef{
				{Codes: "1"}, {Codes: "2"}, {Codes: "3"}, {Codes: "4"},
				{Codes: "5"}, {Codes: "6"}, {Codes: "7"}, {Codes: "8"},
				{Codes: "9"}, {Codes: "0"},
			}},
			{Keys: []layout.KeyDef{
				{Codes: "@"}, {Codes: "#"}, {Codes: "$"}, {Codes: "%"},
				{Codes: "&"}, {Codes: "*"}, {Codes: "-"}, {Codes: "+"},
				{Codes: "("}, {Codes: ")"},
			}},
			{Keys: []layout.KeyDef{
				{Code: -1, Width: 9, Modifier: true, Sticky: true},
				{Codes: "!"}, {Codes: "\""}, {Codes: "'"}, {Codes: ":"},
				{Codes: ";"}, {Codes: "/"}, {Codes: "?"},
				{Code: -5, Width: 9},
			}},
			{Keys: []layout.KeyDef{
				{Code: -2, Width: 12},
				{Codes: " ", Width: 30},
				{Codes: ".,"},
				{Codes: "\n", Width: 12},
			}},
		},
	}
}
