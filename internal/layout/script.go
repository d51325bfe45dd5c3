package layout

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// generateFn is the global function a layout script must define.
const generateFn = "generate"

// LoadScript runs a Lua layout generator and returns the definition it
// produces for the given display width.
//
// The script must define a global function generate(width) returning a
// table shaped like a TOML definition:
//
//	function generate(width)
//	    return {
//	        name = "qwerty",
//	        key_width = 10,
//	        rows = {
//	            { keys = { { codes = "qw" }, { code = -1, modifier = true } } },
//	        },
//	    }
//	end
//
// Scripts run with only the base, table, string, and math libraries
// open; no file system or OS access is available to them.
func LoadScript(path string, displayWidth int) (*Definition, error) {
	L := newScriptState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, &ParseError{Path: path, Message: "script failed", Err: err}
	}
	return callGenerate(L, path, displayWidth)
}

// LoadScriptString runs a layout generator from source text. Used by
// tests and embedded layouts.
func LoadScriptString(source string, displayWidth int) (*Definition, error) {
	L := newScriptState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return nil, &ParseError{Path: "<script>", Message: "script failed", Err: err}
	}
	return callGenerate(L, "<script>", displayWidth)
}

// newScriptState creates a Lua state with only safe libraries open.
// io, os, debug, and package stay closed; layout scripts are pure
// functions of the display width.
func newScriptState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

// callGenerate invokes the script's generate function and converts the
// returned table into a Definition.
func callGenerate(L *lua.LState, path string, displayWidth int) (*Definition, error) {
	fn := L.GetGlobal(generateFn)
	if fn.Type() != lua.LTFunction {
		return nil, &ParseError{
			Path:    path,
			Message: fmt.Sprintf("script does not define %s()", generateFn),
		}
	}
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(displayWidth)); err != nil {
		return nil, &ParseError{Path: path, Message: "generate() failed", Err: err}
	}
	ret := L.Get(-1)
	L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Path:    path,
			Message: fmt.Sprintf("generate() returned %s, want table", ret.Type()),
		}
	}

	def := definitionFromTable(tbl)
	if err := def.validate(path); err != nil {
		return nil, err
	}
	return def, nil
}

// definitionFromTable converts the script's result table.
func definitionFromTable(tbl *lua.LTable) *Definition {
	def := &Definition{
		Name:      luaString(tbl, "name"),
		KeyWidth:  luaInt(tbl, "key_width"),
		KeyHeight: luaInt(tbl, "key_height"),
	}
	rows, ok := tbl.RawGetString("rows").(*lua.LTable)
	if !ok {
		return def
	}
	rows.ForEach(func(_, v lua.LValue) {
		rowTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		row := RowDef{
			Height: luaInt(rowTbl, "height"),
			Offset: luaInt(rowTbl, "offset"),
		}
		if keys, ok := rowTbl.RawGetString("keys").(*lua.LTable); ok {
			keys.ForEach(func(_, kv lua.LValue) {
				keyTbl, ok := kv.(*lua.LTable)
				if !ok {
					return
				}
				row.Keys = append(row.Keys, KeyDef{
					Codes:    luaString(keyTbl, "codes"),
					Code:     int32(luaInt(keyTbl, "code")),
					Width:    luaInt(keyTbl, "width"),
					Modifier: luaBool(keyTbl, "modifier"),
					Sticky:   luaBool(keyTbl, "sticky"),
				})
			})
		}
		def.Rows = append(def.Rows, row)
	})
	return def
}

func luaString(tbl *lua.LTable, field string) string {
	if s, ok := tbl.RawGetString(field).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func luaInt(tbl *lua.LTable, field string) int {
	if n, ok := tbl.RawGetString(field).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

func luaBool(tbl *lua.LTable, field string) bool {
	if b, ok := tbl.RawGetString(field).(lua.LBool); ok {
		return bool(b)
	}
	return false
}
