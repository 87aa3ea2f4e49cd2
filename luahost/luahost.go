// Package luahost exposes the binding layer's script built-ins to an
// embedded Lua interpreter. It is a reference client of the runtime
// Bridge: the core itself does not depend on any particular VM, but the
// contract is only proven by wiring a real one against it.
package luahost

import (
	"github.com/Shopify/go-lua"
	"github.com/wippyai/gamebind/props"
	"github.com/wippyai/gamebind/runtime"
)

// Host registers game built-ins into a Lua state.
type Host struct {
	bridge *runtime.Bridge
}

// New creates a host over a session bridge.
func New(bridge *runtime.Bridge) *Host {
	return &Host{bridge: bridge}
}

// Register installs the "Game" global table. Scripts then call
//
//	Game.GetField("cEgo", 16)
//	Game.SetProperty("iKey", "Weight", 9)
//
// addressing objects by their script-visible names.
func (h *Host) Register(l *lua.State) {
	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{
		{Name: "GetField", Function: h.getField},
		{Name: "SetField", Function: h.setField},
		{Name: "GetArrayField", Function: h.getArrayField},
		{Name: "SetArrayField", Function: h.setArrayField},
		{Name: "GetProperty", Function: h.getProperty},
		{Name: "SetProperty", Function: h.setProperty},
		{Name: "GetTextProperty", Function: h.getTextProperty},
		{Name: "SetTextProperty", Function: h.setTextProperty},
	}, 0)
	l.SetGlobal("Game")
}

func (h *Host) getField(l *lua.State) int {
	name := lua.CheckString(l, 1)
	offset := lua.CheckInteger(l, 2)
	l.PushInteger(int(h.bridge.ReadSymbolField(name, int32(offset))))
	return 1
}

func (h *Host) setField(l *lua.State) int {
	name := lua.CheckString(l, 1)
	offset := lua.CheckInteger(l, 2)
	value := lua.CheckInteger(l, 3)
	h.bridge.WriteSymbolField(name, int32(offset), int32(value))
	return 0
}

func (h *Host) getArrayField(l *lua.State) int {
	category := lua.CheckString(l, 1)
	offset := lua.CheckInteger(l, 2)
	l.PushInteger(int(h.bridge.ReadArrayField(category, int32(offset))))
	return 1
}

func (h *Host) setArrayField(l *lua.State) int {
	category := lua.CheckString(l, 1)
	offset := lua.CheckInteger(l, 2)
	value := lua.CheckInteger(l, 3)
	h.bridge.WriteArrayField(category, int32(offset), int32(value))
	return 0
}

// property built-ins surface faults as Lua errors so the script author
// sees which property name was wrong, matching how the engine halts a
// script on a bad property call.
func (h *Host) getProperty(l *lua.State) int {
	handle, err := h.bridge.SymbolHandle(lua.CheckString(l, 1))
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	v, err := h.bridge.GetIntProperty(handle, lua.CheckString(l, 2))
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	l.PushInteger(v)
	return 1
}

func (h *Host) setProperty(l *lua.State) int {
	handle, err := h.bridge.SymbolHandle(lua.CheckString(l, 1))
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	ok, _ := h.bridge.SetIntProperty(handle, lua.CheckString(l, 2), lua.CheckInteger(l, 3))
	l.PushBoolean(ok)
	return 1
}

func (h *Host) getTextProperty(l *lua.State) int {
	handle, err := h.bridge.SymbolHandle(lua.CheckString(l, 1))
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	buf := make([]byte, props.MaxTextLength)
	n, err := h.bridge.GetTextProperty(handle, lua.CheckString(l, 2), buf)
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	l.PushString(string(buf[:n]))
	return 1
}

func (h *Host) setTextProperty(l *lua.State) int {
	handle, err := h.bridge.SymbolHandle(lua.CheckString(l, 1))
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	ok, _ := h.bridge.SetTextProperty(handle, lua.CheckString(l, 2), lua.CheckString(l, 3))
	l.PushBoolean(ok)
	return 1
}
