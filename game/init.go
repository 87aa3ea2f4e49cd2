package game

import (
	"strings"

	"github.com/wippyai/gamebind/errors"
	"github.com/wippyai/gamebind/symbols"
	"go.uber.org/zap"
)

// InitResult is the single enumerated outcome of InitGameState, returned
// to the bootstrap. Text() carries the fixed user-facing message.
type InitResult int

const (
	InitNoError InitResult = iota
	InitNoFonts
	InitTooManyAudioTypes
	InitTooManyPlugins
	InitPluginNameInvalid
	InitScriptLinkFailed
	InitCapacityExceeded
)

// Text returns the fixed human-readable message for an outcome.
func (r InitResult) Text() string {
	switch r {
	case InitNoError:
		return "No error"
	case InitNoFonts:
		return "No fonts specified to be used in this game"
	case InitTooManyAudioTypes:
		return "Too many audio types for this engine to handle"
	case InitTooManyPlugins:
		return "Too many plugins for this engine to handle"
	case InitPluginNameInvalid:
		return "Plugin name is invalid"
	case InitScriptLinkFailed:
		return "Script link failed"
	case InitCapacityExceeded:
		return "Too many entities in one category for this engine to handle"
	}
	return "Unknown error"
}

// PluginInfo identifies one plugin the loaded game requests.
type PluginInfo struct {
	Name string
}

// ScriptModule is a compiled script module awaiting linkage against the
// completed symbol table. The interpreter that will execute it is an
// external collaborator.
type ScriptModule interface {
	Name() string
	Link(syms *symbols.Table) error
}

// LoadedEntities is everything the external loaders hand the
// orchestrator: one ordered collection per category plus global game
// facts. The core never parses game files itself.
type LoadedEntities struct {
	FontCount       int
	AudioTypeCount  int
	PlayerCharacter int

	Characters    []*Character
	Objects       []*RoomObject
	Hotspots      []*Hotspot
	Regions       []*Region
	InvItems      []*InvItem
	Dialogs       []*Dialog
	GUIs          []*GUI
	AudioChannels []*AudioChannel
	AudioClips    []*AudioClip

	Plugins []PluginInfo
	Modules []ScriptModule
}

// InitGameState drives session initialization: validate, index, register
// handles, bind symbols, build static arrays, link scripts. Stages run
// in order and the first failure aborts the rest; there is no partial
// rollback, the caller discards the whole Runtime on any outcome other
// than InitNoError.
func InitGameState(rt *Runtime, ents *LoadedEntities) (InitResult, error) {
	log := Logger()

	// 1. Check that the loaded data is valid and compatible with the
	// current engine capabilities.
	if ents.FontCount == 0 {
		return InitNoFonts, &errors.Error{Phase: errors.PhaseInit, Kind: errors.KindNoFonts, Detail: InitNoFonts.Text()}
	}
	if ents.AudioTypeCount > MaxAudioTypes {
		return InitTooManyAudioTypes, &errors.Error{Phase: errors.PhaseInit, Kind: errors.KindTooManyAudioTypes, Detail: InitTooManyAudioTypes.Text()}
	}
	if len(ents.Plugins) > MaxPlugins {
		return InitTooManyPlugins, &errors.Error{Phase: errors.PhaseInit, Kind: errors.KindTooManyPlugins, Detail: InitTooManyPlugins.Text()}
	}
	for _, p := range ents.Plugins {
		if !validPluginName(p.Name) {
			return InitPluginNameInvalid, errors.PluginNameInvalid(p.Name)
		}
	}

	// 2. Per-category capacity checks, all before any registration, so
	// an oversized batch never leaves a partially bound category behind.
	if err := checkCapacities(ents); err != nil {
		return InitCapacityExceeded, err
	}

	// 3-6. Per-category init and registration.
	initAndRegisterAudioObjects(rt, ents)
	if err := initAndRegisterCharacters(rt, ents); err != nil {
		return InitScriptLinkFailed, err
	}
	if err := initAndRegisterDialogs(rt, ents); err != nil {
		return InitScriptLinkFailed, err
	}
	if err := initAndRegisterGUIs(rt, ents); err != nil {
		return InitScriptLinkFailed, err
	}
	if err := initAndRegisterInvItems(rt, ents); err != nil {
		return InitScriptLinkFailed, err
	}
	initAndRegisterHotspots(rt, ents)
	initAndRegisterRegions(rt, ents)
	initAndRegisterRoomObjects(rt, ents)
	registerStaticArrays(rt)

	if n := len(rt.Characters); n > 0 {
		idx := ents.PlayerCharacter
		if idx < 0 || idx >= n {
			idx = 0
		}
		rt.Player = rt.Characters[idx]
		if err := rt.Symbols.Bind("player", rt.Player, CharacterDescriptor); err != nil {
			return InitScriptLinkFailed, err
		}
	}

	// 7. Link compiled script modules against the now-complete table.
	for _, mod := range ents.Modules {
		if err := mod.Link(rt.Symbols); err != nil {
			return InitScriptLinkFailed, errors.ScriptLinkFailed(mod.Name(), err)
		}
	}

	log.Info("game session initialized",
		zap.Int("handles", rt.Registry.Len()),
		zap.Int("symbols", rt.Symbols.Len()),
		zap.Int("modules", len(ents.Modules)))
	return InitNoError, nil
}

func checkCapacities(ents *LoadedEntities) error {
	checks := []struct {
		category string
		count    int
		capacity int
	}{
		{CategoryCharacter, len(ents.Characters), MaxCharacters},
		{CategoryRoomObject, len(ents.Objects), MaxRoomObjects},
		{CategoryHotspot, len(ents.Hotspots), MaxHotspots},
		{CategoryRegion, len(ents.Regions), MaxRegions},
		{CategoryInvItem, len(ents.InvItems), MaxInvItems},
		{CategoryDialog, len(ents.Dialogs), MaxDialogs},
		{CategoryGUI, len(ents.GUIs), MaxGUIs},
		{CategoryAudioChannel, len(ents.AudioChannels), MaxAudioChannels},
		{CategoryAudioClip, len(ents.AudioClips), MaxAudioClips},
	}
	for _, c := range checks {
		if c.count > c.capacity {
			return errors.CapacityExceeded(c.category, c.count, c.capacity)
		}
	}
	return nil
}

func validPluginName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	for _, r := range name {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}

// initAndRegisterAudioObjects initializes audio channels and clips and
// registers them in the script system. Channel 0 is the reserved speech
// channel; when the loader supplies none, the default channel bank is
// created here.
func initAndRegisterAudioObjects(rt *Runtime, ents *LoadedEntities) {
	channels := ents.AudioChannels
	if len(channels) == 0 {
		channels = make([]*AudioChannel, DefaultAudioChannels+1)
		for i := range channels {
			channels[i] = &AudioChannel{}
		}
	}
	for i, ch := range channels {
		ch.ID = int32(i)
		ch.Handle = rt.Registry.Register(ch, AudioChannelDescriptor)
	}
	rt.AudioChannels = channels

	for i, clip := range ents.AudioClips {
		clip.ID = int32(i)
		clip.Handle = rt.Registry.Register(clip, AudioClipDescriptor)
	}
	rt.AudioClips = ents.AudioClips
}

// initAndRegisterCharacters initializes characters and registers them in
// the script system.
func initAndRegisterCharacters(rt *Runtime, ents *LoadedEntities) error {
	for i, ch := range ents.Characters {
		ch.ID = int32(i)
		ch.Walking = 0
		ch.Animating = 0
		ch.PicXOffs = 0
		ch.PicYOffs = 0
		ch.BlinkInterval = 140
		ch.BlinkTimer = ch.BlinkInterval
		ch.BlockingWidth = 0
		ch.BlockingHeight = 0
		ch.PrevRoom = -1
		ch.Loop = 0
		ch.Frame = 0
		ch.WalkWait = -1
		ensureProps(&ch.StaticProps, &ch.RuntimeProps)

		ch.Handle = rt.Registry.Register(ch, CharacterDescriptor)
		if ch.ScriptName != "" {
			if err := rt.Symbols.Bind(ch.ScriptName, ch, CharacterDescriptor); err != nil {
				return err
			}
		}
	}
	rt.Characters = ents.Characters
	return nil
}

// initAndRegisterDialogs initializes dialogs and registers them in the
// script system. Audio clips bind their script names here too; both
// categories export by name only when the game data names them.
func initAndRegisterDialogs(rt *Runtime, ents *LoadedEntities) error {
	for i, d := range ents.Dialogs {
		d.ID = int32(i)
		d.Reserved = 0
		d.Handle = rt.Registry.Register(d, DialogDescriptor)
		if d.ScriptName != "" {
			if err := rt.Symbols.Bind(d.ScriptName, d, DialogDescriptor); err != nil {
				return err
			}
		}
	}
	rt.Dialogs = ents.Dialogs

	for _, clip := range rt.AudioClips {
		if clip.ScriptName != "" {
			if err := rt.Symbols.Bind(clip.ScriptName, clip, AudioClipDescriptor); err != nil {
				return err
			}
		}
	}
	return nil
}

// initAndRegisterGUIs initializes GUIs and registers them in the script
// system. Initial visibility follows the popup style: always-on styles
// start visible, popup styles start hidden.
func initAndRegisterGUIs(rt *Runtime, ents *LoadedEntities) error {
	for i, g := range ents.GUIs {
		g.ID = int32(i)
		if g.PopupStyle == GUIPopupNone || g.PopupStyle == GUIPopupNoAutoRemove {
			g.Visible = 1
		} else {
			g.Visible = 0
		}
		g.Handle = rt.Registry.Register(g, GUIDescriptor)
		if g.ScriptName != "" {
			if err := rt.Symbols.Bind(g.ScriptName, g, GUIDescriptor); err != nil {
				return err
			}
		}
	}
	rt.GUIs = ents.GUIs
	return nil
}

// initAndRegisterInvItems initializes inventory items and registers them
// in the script system.
func initAndRegisterInvItems(rt *Runtime, ents *LoadedEntities) error {
	for i, item := range ents.InvItems {
		item.ID = int32(i)
		ensureProps(&item.StaticProps, &item.RuntimeProps)
		item.Handle = rt.Registry.Register(item, InvItemDescriptor)
		if item.ScriptName != "" {
			if err := rt.Symbols.Bind(item.ScriptName, item, InvItemDescriptor); err != nil {
				return err
			}
		}
	}
	rt.InvItems = ents.InvItems
	return nil
}

// initAndRegisterHotspots initializes room hotspots and registers them in
// the script system. Hotspots are addressed by index, not by name.
func initAndRegisterHotspots(rt *Runtime, ents *LoadedEntities) {
	for i, h := range ents.Hotspots {
		h.ID = int32(i)
		h.Reserved = 0
		ensureProps(&h.StaticProps, &h.RuntimeProps)
		h.Handle = rt.Registry.Register(h, HotspotDescriptor)
	}
	rt.Hotspots = ents.Hotspots
}

// initAndRegisterRegions initializes room regions and registers them in
// the script system.
func initAndRegisterRegions(rt *Runtime, ents *LoadedEntities) {
	for i, r := range ents.Regions {
		r.ID = int32(i)
		r.Handle = rt.Registry.Register(r, RegionDescriptor)
	}
	rt.Regions = ents.Regions
}

// initAndRegisterRoomObjects initializes room objects and registers them
// in the script system.
func initAndRegisterRoomObjects(rt *Runtime, ents *LoadedEntities) {
	for i, o := range ents.Objects {
		o.ID = int32(i)
		ensureProps(&o.StaticProps, &o.RuntimeProps)
		o.Handle = rt.Registry.Register(o, RoomObjectDescriptor)
	}
	rt.Objects = ents.Objects
}

// registerStaticArrays binds the per-category entity arrays in the
// script system under their global names.
func registerStaticArrays(rt *Runtime) {
	bind := func(category string, arr *symbols.StaticArray) {
		rt.Arrays[category] = arr
	}

	bind(CategoryCharacter, symbols.NewStaticArray(CharacterDescriptor,
		func(i int) any { return rt.Characters[i] }, CharacterDescriptor.Stride(), len(rt.Characters)))
	bind(CategoryRoomObject, symbols.NewStaticArray(RoomObjectDescriptor,
		func(i int) any { return rt.Objects[i] }, RoomObjectDescriptor.Stride(), len(rt.Objects)))
	bind(CategoryGUI, symbols.NewStaticArray(GUIDescriptor,
		func(i int) any { return rt.GUIs[i] }, GUIDescriptor.Stride(), len(rt.GUIs)))
	bind(CategoryHotspot, symbols.NewStaticArray(HotspotDescriptor,
		func(i int) any { return rt.Hotspots[i] }, HotspotDescriptor.Stride(), len(rt.Hotspots)))
	bind(CategoryRegion, symbols.NewStaticArray(RegionDescriptor,
		func(i int) any { return rt.Regions[i] }, RegionDescriptor.Stride(), len(rt.Regions)))
	bind(CategoryInvItem, symbols.NewStaticArray(InvItemDescriptor,
		func(i int) any { return rt.InvItems[i] }, InvItemDescriptor.Stride(), len(rt.InvItems)))
	bind(CategoryDialog, symbols.NewStaticArray(DialogDescriptor,
		func(i int) any { return rt.Dialogs[i] }, DialogDescriptor.Stride(), len(rt.Dialogs)))
}
