package lua

import (
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removedGlobals are base-library functions scripts may not use.
var removedGlobals = []string{
	"dofile",     // Load and execute file
	"loadfile",   // Load file as function
	"load",       // Load string as function
	"loadstring", // Load string as function
	"require",    // Load modules
	"module",     // Define modules
	"getfenv",    // Inspect function environments
	"setfenv",    // Replace function environments
	"collectgarbage",
}

// installSandbox removes dangerous globals and routes print to out.
func installSandbox(L *lua.LState, out io.Writer) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(printTo(out)))
}

// printTo returns a print implementation writing to out. Arguments are
// converted with tostring and separated by tabs.
func printTo(out io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		_, _ = io.WriteString(out, strings.Join(parts, "\t")+"\n")
		return 0
	}
}
