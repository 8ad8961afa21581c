package lua

import (
	"sync/atomic"

	"github.com/dshills/vimotion/internal/engine"
	"github.com/dshills/vimotion/internal/input/key"
	lua "github.com/yuin/gopher-lua"
)

// KeyHookName is the global a script defines to observe keys handled after
// it has finished loading.
const KeyHookName = "on_key"

// KeyHook calls a script's on_key(code, command, applied) function.
//
// Keys pressed from inside on_key are not reported again.
type KeyHook struct {
	state *State
	busy  atomic.Bool
}

// NewKeyHook returns a hook for s, or false if the script did not define
// on_key as a function.
func NewKeyHook(s *State) (*KeyHook, bool) {
	if s.GetGlobal(KeyHookName).Type() != lua.LTFunction {
		return nil, false
	}
	return &KeyHook{state: s}, true
}

// Active returns true while the script state is open.
func (h *KeyHook) Active() bool {
	return !h.state.IsClosed()
}

// Notify reports one handled key to the script.
func (h *KeyHook) Notify(code key.Code, out engine.Outcome) error {
	if !h.busy.CompareAndSwap(false, true) {
		return nil
	}
	defer h.busy.Store(false)

	_, err := h.state.Call(KeyHookName,
		lua.LNumber(code),
		lua.LString(out.Command.String()),
		lua.LBool(out.IsApplied()),
	)
	return err
}

// Close closes the script state.
func (h *KeyHook) Close() error {
	return h.state.Close()
}
