package game

import (
	"github.com/wippyai/gamebind/dispatch"
)

// Category descriptors. The offset values are the script ABI: compiled
// scripts bake them into bytecode, so they are append-only. ID-style and
// engine-maintained fields are read-only to scripts.

var CharacterDescriptor = dispatch.NewTypeDescriptor(CategoryCharacter, 68, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Character).ID }},
	{Name: "View", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).View },
		Set: func(o any, v int32) { o.(*Character).View = v }},
	{Name: "Room", Offset: 8, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).Room },
		Set: func(o any, v int32) { o.(*Character).Room = v }},
	{Name: "PrevRoom", Offset: 12, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Character).PrevRoom }},
	{Name: "X", Offset: 16, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).X },
		Set: func(o any, v int32) { o.(*Character).X = v }},
	{Name: "Y", Offset: 20, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).Y },
		Set: func(o any, v int32) { o.(*Character).Y = v }},
	{Name: "Walking", Offset: 24, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Character).Walking }},
	{Name: "Animating", Offset: 28, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Character).Animating }},
	{Name: "Loop", Offset: 32, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).Loop },
		Set: func(o any, v int32) { o.(*Character).Loop = v }},
	{Name: "Frame", Offset: 36, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).Frame },
		Set: func(o any, v int32) { o.(*Character).Frame = v }},
	{Name: "WalkWait", Offset: 40, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Character).WalkWait }},
	{Name: "BlinkInterval", Offset: 44, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).BlinkInterval },
		Set: func(o any, v int32) { o.(*Character).BlinkInterval = v }},
	{Name: "BlinkTimer", Offset: 48, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).BlinkTimer },
		Set: func(o any, v int32) { o.(*Character).BlinkTimer = v }},
	{Name: "PicXOffs", Offset: 52, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).PicXOffs },
		Set: func(o any, v int32) { o.(*Character).PicXOffs = v }},
	{Name: "PicYOffs", Offset: 56, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).PicYOffs },
		Set: func(o any, v int32) { o.(*Character).PicYOffs = v }},
	{Name: "BlockingWidth", Offset: 60, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).BlockingWidth },
		Set: func(o any, v int32) { o.(*Character).BlockingWidth = v }},
	{Name: "BlockingHeight", Offset: 64, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Character).BlockingHeight },
		Set: func(o any, v int32) { o.(*Character).BlockingHeight = v }},
})

var RoomObjectDescriptor = dispatch.NewTypeDescriptor(CategoryRoomObject, 20, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*RoomObject).ID }},
	{Name: "X", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*RoomObject).X },
		Set: func(o any, v int32) { o.(*RoomObject).X = v }},
	{Name: "Y", Offset: 8, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*RoomObject).Y },
		Set: func(o any, v int32) { o.(*RoomObject).Y = v }},
	{Name: "Visible", Offset: 12, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*RoomObject).Visible },
		Set: func(o any, v int32) { o.(*RoomObject).Visible = v }},
	{Name: "Baseline", Offset: 16, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*RoomObject).Baseline },
		Set: func(o any, v int32) { o.(*RoomObject).Baseline = v }},
})

var HotspotDescriptor = dispatch.NewTypeDescriptor(CategoryHotspot, 12, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Hotspot).ID }},
	{Name: "Enabled", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Hotspot).Enabled },
		Set: func(o any, v int32) { o.(*Hotspot).Enabled = v }},
	{Name: "Reserved", Offset: 8, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Hotspot).Reserved }},
})

var RegionDescriptor = dispatch.NewTypeDescriptor(CategoryRegion, 12, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Region).ID }},
	{Name: "Enabled", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Region).Enabled },
		Set: func(o any, v int32) { o.(*Region).Enabled = v }},
	{Name: "LightLevel", Offset: 8, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*Region).LightLevel },
		Set: func(o any, v int32) { o.(*Region).LightLevel = v }},
})

var InvItemDescriptor = dispatch.NewTypeDescriptor(CategoryInvItem, 12, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*InvItem).ID }},
	{Name: "Graphic", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*InvItem).Graphic },
		Set: func(o any, v int32) { o.(*InvItem).Graphic = v }},
	{Name: "CursorGraphic", Offset: 8, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*InvItem).CursorGraphic },
		Set: func(o any, v int32) { o.(*InvItem).CursorGraphic = v }},
})

var DialogDescriptor = dispatch.NewTypeDescriptor(CategoryDialog, 12, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Dialog).ID }},
	{Name: "OptionCount", Offset: 4, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Dialog).OptionCount }},
	{Name: "Reserved", Offset: 8, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*Dialog).Reserved }},
})

var GUIDescriptor = dispatch.NewTypeDescriptor(CategoryGUI, 24, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*GUI).ID }},
	{Name: "Visible", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*GUI).Visible },
		Set: func(o any, v int32) { o.(*GUI).Visible = v }},
	{Name: "X", Offset: 8, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*GUI).X },
		Set: func(o any, v int32) { o.(*GUI).X = v }},
	{Name: "Y", Offset: 12, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*GUI).Y },
		Set: func(o any, v int32) { o.(*GUI).Y = v }},
	{Name: "ZOrder", Offset: 16, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*GUI).ZOrder },
		Set: func(o any, v int32) { o.(*GUI).ZOrder = v }},
	{Name: "Transparency", Offset: 20, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*GUI).Transparency },
		Set: func(o any, v int32) { o.(*GUI).Transparency = v }},
})

var AudioChannelDescriptor = dispatch.NewTypeDescriptor(CategoryAudioChannel, 12, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*AudioChannel).ID }},
	{Name: "Volume", Offset: 4, Mode: dispatch.ReadWrite,
		Get: func(o any) int32 { return o.(*AudioChannel).Volume },
		Set: func(o any, v int32) { o.(*AudioChannel).Volume = v }},
	{Name: "Playing", Offset: 8, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*AudioChannel).Playing }},
})

var AudioClipDescriptor = dispatch.NewTypeDescriptor(CategoryAudioClip, 12, []dispatch.Field{
	{Name: "ID", Offset: 0, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*AudioClip).ID }},
	{Name: "Type", Offset: 4, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*AudioClip).Type }},
	{Name: "IsAvailable", Offset: 8, Mode: dispatch.ReadOnly,
		Get: func(o any) int32 { return o.(*AudioClip).IsAvailable }},
})
