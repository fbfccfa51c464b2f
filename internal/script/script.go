// Package script runs the user's Lua init script. The script may
// return a table of keymaps, e.g.
//
//	return {
//	    normal = { ["q"] = "x" },
//	    visual = { ["s"] = "y" },
//	}
//
// which the caller installs as remaps on the controller.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Keymaps are the remap tables an init script may return.
type Keymaps struct {
	Normal map[string]string
	Visual map[string]string
}

// RunFile executes a Lua init script from disk.
func RunFile(path string) (Keymaps, error) {
	L := newState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return Keymaps{}, fmt.Errorf("init script %s: %w", path, err)
	}
	return keymapsFromStack(L), nil
}

// RunString executes Lua source directly.
func RunString(src string) (Keymaps, error) {
	L := newState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return Keymaps{}, fmt.Errorf("init script: %w", err)
	}
	return keymapsFromStack(L), nil
}

// newState creates a Lua state with only the safe standard libraries.
// io, os, debug, and package stay closed; an init script computes
// keymaps, nothing more.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

// keymapsFromStack reads the script's return value, tolerating scripts
// that return nothing.
func keymapsFromStack(L *lua.LState) Keymaps {
	km := Keymaps{
		Normal: map[string]string{},
		Visual: map[string]string{},
	}
	if L.GetTop() == 0 {
		return km
	}
	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return km
	}
	collect(tbl, "normal", km.Normal)
	collect(tbl, "visual", km.Visual)
	return km
}

func collect(tbl *lua.LTable, name string, into map[string]string) {
	sub, ok := tbl.RawGetString(name).(*lua.LTable)
	if !ok {
		return
	}
	sub.ForEach(func(k, v lua.LValue) {
		ks, kok := k.(lua.LString)
		vs, vok := v.(lua.LString)
		if kok && vok {
			into[string(ks)] = string(vs)
		}
	})
}
