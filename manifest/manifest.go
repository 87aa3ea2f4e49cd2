// Package manifest loads a declarative game definition from TOML. It is
// one of the external loaders that produce entity collections for the
// initialization orchestrator; the binding core itself never parses
// files.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/wippyai/gamebind/game"
	"github.com/wippyai/gamebind/props"
)

// Manifest represents a game definition file.
type Manifest struct {
	Game       GameInfo         `toml:"game"`
	Properties []PropertyDecl   `toml:"property"`
	Characters []CharacterDecl  `toml:"character"`
	Objects    []RoomObjectDecl `toml:"object"`
	Hotspots   []HotspotDecl    `toml:"hotspot"`
	Regions    []RegionDecl     `toml:"region"`
	Inventory  []InvItemDecl    `toml:"inventory"`
	Dialogs    []DialogDecl     `toml:"dialog"`
	GUIs       []GUIDecl        `toml:"gui"`
	AudioClips []AudioClipDecl  `toml:"audioclip"`
	Plugins    []string         `toml:"plugins"`
}

// GameInfo contains global game metadata.
type GameInfo struct {
	Title           string `toml:"title"`
	Fonts           int    `toml:"fonts"`
	AudioTypes      int    `toml:"audio-types"`
	AudioChannels   int    `toml:"audio-channels"`
	PlayerCharacter int    `toml:"player-character"`
}

// PropertyDecl declares one custom property in the global schema.
type PropertyDecl struct {
	Name    string `toml:"name"`
	Type    string `toml:"type"` // "int" or "text"
	Default string `toml:"default"`
}

// CharacterDecl declares one character.
type CharacterDecl struct {
	ScriptName string            `toml:"script-name"`
	Name       string            `toml:"name"`
	Room       int32             `toml:"room"`
	X          int32             `toml:"x"`
	Y          int32             `toml:"y"`
	View       int32             `toml:"view"`
	Properties map[string]string `toml:"properties"`
}

// RoomObjectDecl declares one room object.
type RoomObjectDecl struct {
	ScriptName string            `toml:"script-name"`
	X          int32             `toml:"x"`
	Y          int32             `toml:"y"`
	Visible    int32             `toml:"visible"`
	Baseline   int32             `toml:"baseline"`
	Properties map[string]string `toml:"properties"`
}

// HotspotDecl declares one room hotspot.
type HotspotDecl struct {
	Name       string            `toml:"name"`
	Enabled    int32             `toml:"enabled"`
	Properties map[string]string `toml:"properties"`
}

// RegionDecl declares one room region.
type RegionDecl struct {
	Enabled    int32 `toml:"enabled"`
	LightLevel int32 `toml:"light-level"`
}

// InvItemDecl declares one inventory item.
type InvItemDecl struct {
	ScriptName string            `toml:"script-name"`
	Name       string            `toml:"name"`
	Graphic    int32             `toml:"graphic"`
	Properties map[string]string `toml:"properties"`
}

// DialogDecl declares one dialog topic.
type DialogDecl struct {
	ScriptName string `toml:"script-name"`
	Options    int32  `toml:"options"`
}

// GUIDecl declares one GUI.
type GUIDecl struct {
	ScriptName string `toml:"script-name"`
	X          int32  `toml:"x"`
	Y          int32  `toml:"y"`
	ZOrder     int32  `toml:"z-order"`
	Popup      string `toml:"popup"` // "none", "mousey", "script", "noautoremove"
}

// AudioClipDecl declares one audio clip.
type AudioClipDecl struct {
	ScriptName string `toml:"script-name"`
	Type       int32  `toml:"type"`
}

// Load parses a game definition file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a game definition from TOML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse game definition: %w", err)
	}
	for _, p := range m.Properties {
		switch p.Type {
		case "int", "text":
		default:
			return nil, fmt.Errorf("property %q: unknown type %q", p.Name, p.Type)
		}
	}
	for _, g := range m.GUIs {
		if _, err := popupStyle(g.Popup); err != nil {
			return nil, fmt.Errorf("gui %q: %w", g.ScriptName, err)
		}
	}
	return &m, nil
}

func popupStyle(s string) (game.GUIPopupStyle, error) {
	switch s {
	case "", "none":
		return game.GUIPopupNone, nil
	case "mousey":
		return game.GUIPopupMouseY, nil
	case "script":
		return game.GUIPopupScript, nil
	case "noautoremove":
		return game.GUIPopupNoAutoRemove, nil
	}
	return 0, fmt.Errorf("unknown popup style %q", s)
}

func staticProps(values map[string]string) *props.ValueMap {
	m := props.NewValueMap()
	for k, v := range values {
		m.Set(k, v)
	}
	return m
}

// DeclareSchema installs the manifest's property declarations into a
// session's schema.
func (m *Manifest) DeclareSchema(schema *props.Schema) {
	for _, p := range m.Properties {
		t := props.Integer
		if p.Type == "text" {
			t = props.String
		}
		schema.Declare(props.PropertyDesc{Name: p.Name, Type: t, Default: p.Default})
	}
}

// Entities materializes the declared entity collections in the form the
// orchestrator consumes.
func (m *Manifest) Entities() *game.LoadedEntities {
	ents := &game.LoadedEntities{
		FontCount:       m.Game.Fonts,
		AudioTypeCount:  m.Game.AudioTypes,
		PlayerCharacter: m.Game.PlayerCharacter,
	}

	for _, d := range m.Characters {
		ents.Characters = append(ents.Characters, &game.Character{
			ScriptName:  d.ScriptName,
			Name:        d.Name,
			Room:        d.Room,
			X:           d.X,
			Y:           d.Y,
			View:        d.View,
			StaticProps: staticProps(d.Properties),
		})
	}
	for _, d := range m.Objects {
		ents.Objects = append(ents.Objects, &game.RoomObject{
			ScriptName:  d.ScriptName,
			X:           d.X,
			Y:           d.Y,
			Visible:     d.Visible,
			Baseline:    d.Baseline,
			StaticProps: staticProps(d.Properties),
		})
	}
	for _, d := range m.Hotspots {
		ents.Hotspots = append(ents.Hotspots, &game.Hotspot{
			Name:        d.Name,
			Enabled:     d.Enabled,
			StaticProps: staticProps(d.Properties),
		})
	}
	for _, d := range m.Regions {
		ents.Regions = append(ents.Regions, &game.Region{
			Enabled:    d.Enabled,
			LightLevel: d.LightLevel,
		})
	}
	for _, d := range m.Inventory {
		ents.InvItems = append(ents.InvItems, &game.InvItem{
			ScriptName:  d.ScriptName,
			Name:        d.Name,
			Graphic:     d.Graphic,
			StaticProps: staticProps(d.Properties),
		})
	}
	for _, d := range m.Dialogs {
		ents.Dialogs = append(ents.Dialogs, &game.Dialog{
			ScriptName:  d.ScriptName,
			OptionCount: d.Options,
		})
	}
	for _, d := range m.GUIs {
		style, _ := popupStyle(d.Popup)
		ents.GUIs = append(ents.GUIs, &game.GUI{
			ScriptName: d.ScriptName,
			X:          d.X,
			Y:          d.Y,
			ZOrder:     d.ZOrder,
			PopupStyle: style,
		})
	}
	if n := m.Game.AudioChannels; n > 0 {
		for i := 0; i <= n; i++ {
			ents.AudioChannels = append(ents.AudioChannels, &game.AudioChannel{})
		}
	}
	for _, d := range m.AudioClips {
		ents.AudioClips = append(ents.AudioClips, &game.AudioClip{
			ScriptName:  d.ScriptName,
			Type:        d.Type,
			IsAvailable: 1,
		})
	}
	for _, name := range m.Plugins {
		ents.Plugins = append(ents.Plugins, game.PluginInfo{Name: name})
	}
	return ents
}
