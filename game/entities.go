package game

import (
	"github.com/wippyai/gamebind/props"
	"github.com/wippyai/gamebind/registry"
)

// The entity structs below are the native runtime state scripts bind to.
// Script-visible int32 fields are exposed through the category
// descriptors in descriptors.go; everything else (names, property maps)
// is reached through built-ins, never through raw offsets.
//
// Entities are owned by the loaded game's collections. The registry and
// symbol table hold non-owning references into them.

// Character is a game character.
type Character struct {
	ID             int32
	View           int32
	Room           int32
	PrevRoom       int32
	X              int32
	Y              int32
	Walking        int32
	Animating      int32
	Loop           int32
	Frame          int32
	WalkWait       int32
	BlinkInterval  int32
	BlinkTimer     int32
	PicXOffs       int32
	PicYOffs       int32
	BlockingWidth  int32
	BlockingHeight int32

	ScriptName string
	Name       string

	StaticProps  *props.ValueMap
	RuntimeProps *props.ValueMap

	Handle registry.Handle
}

// RoomObject is an object placed in a room.
type RoomObject struct {
	ID       int32
	X        int32
	Y        int32
	Visible  int32
	Baseline int32

	ScriptName string

	StaticProps  *props.ValueMap
	RuntimeProps *props.ValueMap

	Handle registry.Handle
}

// Hotspot is a clickable room area.
type Hotspot struct {
	ID       int32
	Enabled  int32
	Reserved int32

	ScriptName string
	Name       string

	StaticProps  *props.ValueMap
	RuntimeProps *props.ValueMap

	Handle registry.Handle
}

// Region is a walk-behind room region.
type Region struct {
	ID         int32
	Enabled    int32
	LightLevel int32

	Handle registry.Handle
}

// InvItem is an inventory item.
type InvItem struct {
	ID            int32
	Graphic       int32
	CursorGraphic int32

	ScriptName string
	Name       string

	StaticProps  *props.ValueMap
	RuntimeProps *props.ValueMap

	Handle registry.Handle
}

// Dialog is a conversation topic.
type Dialog struct {
	ID          int32
	OptionCount int32
	Reserved    int32

	ScriptName string

	Handle registry.Handle
}

// GUIPopupStyle mirrors how a GUI decides its initial visibility.
type GUIPopupStyle int32

const (
	GUIPopupNone GUIPopupStyle = iota
	GUIPopupMouseY
	GUIPopupScript
	GUIPopupNoAutoRemove
)

// GUI is one script-controllable interface surface.
type GUI struct {
	ID           int32
	Visible      int32
	X            int32
	Y            int32
	ZOrder       int32
	Transparency int32

	PopupStyle GUIPopupStyle
	ScriptName string

	Handle registry.Handle
}

// AudioChannel is one mixer slot.
type AudioChannel struct {
	ID      int32
	Volume  int32
	Playing int32

	Handle registry.Handle
}

// AudioClip is one declared sound asset.
type AudioClip struct {
	ID          int32
	Type        int32
	IsAvailable int32

	ScriptName string

	Handle registry.Handle
}

// ObjectHandle returns the registry handle assigned at initialization.
func (c *Character) ObjectHandle() registry.Handle { return c.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (o *RoomObject) ObjectHandle() registry.Handle { return o.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (h *Hotspot) ObjectHandle() registry.Handle { return h.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (r *Region) ObjectHandle() registry.Handle { return r.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (i *InvItem) ObjectHandle() registry.Handle { return i.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (d *Dialog) ObjectHandle() registry.Handle { return d.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (g *GUI) ObjectHandle() registry.Handle { return g.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (a *AudioChannel) ObjectHandle() registry.Handle { return a.Handle }

// ObjectHandle returns the registry handle assigned at initialization.
func (a *AudioClip) ObjectHandle() registry.Handle { return a.Handle }

// PropertyMaps exposes the character's custom property tiers.
func (c *Character) PropertyMaps() (static, runtime *props.ValueMap) {
	return c.StaticProps, c.RuntimeProps
}

// PropertyMaps exposes the room object's custom property tiers.
func (o *RoomObject) PropertyMaps() (static, runtime *props.ValueMap) {
	return o.StaticProps, o.RuntimeProps
}

// PropertyMaps exposes the hotspot's custom property tiers.
func (h *Hotspot) PropertyMaps() (static, runtime *props.ValueMap) {
	return h.StaticProps, h.RuntimeProps
}

// PropertyMaps exposes the inventory item's custom property tiers.
func (i *InvItem) PropertyMaps() (static, runtime *props.ValueMap) {
	return i.StaticProps, i.RuntimeProps
}

// ensureProps lazily allocates an entity's property maps so loaders can
// leave them nil.
func ensureProps(static, runtime **props.ValueMap) {
	if *static == nil {
		*static = props.NewValueMap()
	}
	if *runtime == nil {
		*runtime = props.NewValueMap()
	}
}
