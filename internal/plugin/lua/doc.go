// Package lua drives the motion engine from Lua scripts.
//
// A State wraps a gopher-lua runtime with only the base, table, string,
// and math libraries opened. File loading, module loading, and
// environment manipulation are removed, and print writes to a
// configurable writer:
//
//	state, err := lua.NewState(lua.WithOutput(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
// Bind exposes an engine to scripts as global functions:
//
//	press(code)  -- handle one key, by code or key name; true if applied
//	keys(spec)   -- handle a key sequence such as "wwx<Esc>"; applied count
//	cursor()     -- row, col, mode
//	lines()      -- the document as a table of strings
//	mode()       -- "normal" or "insert"
//
// A script that defines a global on_key(code, command, applied) function
// can be kept as a KeyHook, which calls it for keys handled afterwards.
//
// Execution is synchronous. A State must not be shared between
// goroutines that run scripts concurrently.
package lua
