package lua

import (
	"fmt"

	"github.com/dshills/vimotion/internal/engine"
	"github.com/dshills/vimotion/internal/input/key"
	lua "github.com/yuin/gopher-lua"
)

// Driver is what scripts control. *engine.Engine satisfies it.
type Driver interface {
	HandleKey(code key.Code) engine.Outcome
	State() engine.State
	Lines() []string
}

// Bind registers the engine functions in s. Every call goes through d.
func Bind(s *State, d Driver) {
	b := &binding{driver: d}
	s.RegisterFuncs(map[string]lua.LGFunction{
		"press":  b.press,
		"keys":   b.keys,
		"cursor": b.cursor,
		"lines":  b.lines,
		"mode":   b.mode,
	})
}

type binding struct {
	driver Driver
}

// press(code) handles one key given as a number or a key name.
func (b *binding) press(L *lua.LState) int {
	var code key.Code
	switch v := L.CheckAny(1).(type) {
	case lua.LNumber:
		code = key.Code(int(v))
	case lua.LString:
		codes, err := key.ParseSequence(string(v))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		if len(codes) != 1 {
			L.ArgError(1, fmt.Sprintf("expected one key, got %d", len(codes)))
			return 0
		}
		code = codes[0]
	default:
		L.TypeError(1, lua.LTNumber)
		return 0
	}

	out := b.driver.HandleKey(code)
	L.Push(lua.LBool(out.IsApplied()))
	return 1
}

// keys(spec) handles a key sequence and returns how many keys applied.
func (b *binding) keys(L *lua.LState) int {
	spec := L.CheckString(1)
	codes, err := key.ParseSequence(spec)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	applied := 0
	for _, code := range codes {
		if b.driver.HandleKey(code).IsApplied() {
			applied++
		}
	}
	L.Push(lua.LNumber(applied))
	return 1
}

// cursor() returns row, col, and mode name.
func (b *binding) cursor(L *lua.LState) int {
	st := b.driver.State()
	L.Push(lua.LNumber(st.Cursor.Row))
	L.Push(lua.LNumber(st.Cursor.Col))
	L.Push(lua.LString(st.Mode.String()))
	return 3
}

// lines() returns the document as an array of strings.
func (b *binding) lines(L *lua.LState) int {
	tbl := L.NewTable()
	for _, line := range b.driver.Lines() {
		tbl.Append(lua.LString(line))
	}
	L.Push(tbl)
	return 1
}

// mode() returns the current mode name.
func (b *binding) mode(L *lua.LState) int {
	L.Push(lua.LString(b.driver.State().Mode.String()))
	return 1
}
