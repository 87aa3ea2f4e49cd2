package game

import (
	"github.com/wippyai/gamebind/props"
	"github.com/wippyai/gamebind/registry"
	"github.com/wippyai/gamebind/symbols"
)

// Runtime is the binding state of one loaded game session: the managed
// object registry, the script symbol table, the property schema, and the
// per-category static arrays. It is constructed at load, passed
// explicitly to every operation, and torn down wholesale at unload.
// It is never ambient global state, so reload semantics stay testable.
type Runtime struct {
	Registry *registry.Registry
	Symbols  *symbols.Table
	Schema   *props.Schema
	Arrays   map[string]*symbols.StaticArray

	Characters    []*Character
	Objects       []*RoomObject
	Hotspots      []*Hotspot
	Regions       []*Region
	InvItems      []*InvItem
	Dialogs       []*Dialog
	GUIs          []*GUI
	AudioChannels []*AudioChannel
	AudioClips    []*AudioClip

	Player *Character
}

// NewRuntime creates an empty session.
func NewRuntime() *Runtime {
	return &Runtime{
		Registry: registry.New(),
		Symbols:  symbols.NewTable(),
		Schema:   props.NewSchema(),
		Arrays:   make(map[string]*symbols.StaticArray),
	}
}

// Array returns the static array bound for a category, if any.
func (rt *Runtime) Array(category string) (*symbols.StaticArray, bool) {
	a, ok := rt.Arrays[category]
	return a, ok
}

// Close tears the session down. No entry survives into the next load;
// the caller builds a fresh Runtime for it.
func (rt *Runtime) Close() {
	rt.Symbols.Clear()
	rt.Registry.Clear()
	rt.Arrays = make(map[string]*symbols.StaticArray)
	rt.Characters = nil
	rt.Objects = nil
	rt.Hotspots = nil
	rt.Regions = nil
	rt.InvItems = nil
	rt.Dialogs = nil
	rt.GUIs = nil
	rt.AudioChannels = nil
	rt.AudioClips = nil
	rt.Player = nil
}
