package manifest

import (
	"testing"

	"github.com/wippyai/gamebind/game"
)

const sampleDefinition = `
[game]
title = "Demo Quest"
fonts = 2
audio-types = 3
audio-channels = 4
player-character = 0

[[property]]
name = "Weight"
type = "int"
default = "5"

[[property]]
name = "Description"
type = "text"
default = "nothing special"

[[character]]
script-name = "cEgo"
name = "Ego"
room = 1
x = 160
y = 120
[character.properties]
Weight = "7"

[[character]]
script-name = "cBartender"
name = "Bartender"
room = 2

[[hotspot]]
name = "Door"
enabled = 1

[[inventory]]
script-name = "iKey"
name = "Brass key"
graphic = 12

[[dialog]]
script-name = "dIntro"
options = 3

[[gui]]
script-name = "gStatusline"
popup = "none"

[[gui]]
script-name = "gVerbs"
popup = "mousey"

[[audioclip]]
script-name = "aDoorbell"
type = 1
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Game.Title != "Demo Quest" || m.Game.Fonts != 2 {
		t.Fatalf("game info = %+v", m.Game)
	}
	if len(m.Characters) != 2 || len(m.Properties) != 2 {
		t.Fatal("wrong collection counts")
	}
}

func TestParseRejectsBadPropertyType(t *testing.T) {
	_, err := Parse([]byte(`
[[property]]
name = "Weight"
type = "float"
`))
	if err == nil {
		t.Fatal("expected error for unknown property type")
	}
}

func TestParseRejectsBadPopup(t *testing.T) {
	_, err := Parse([]byte(`
[[gui]]
script-name = "gBad"
popup = "sideways"
`))
	if err == nil {
		t.Fatal("expected error for unknown popup style")
	}
}

func TestEntitiesFeedInit(t *testing.T) {
	m, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatal(err)
	}

	rt := game.NewRuntime()
	m.DeclareSchema(rt.Schema)
	if rt.Schema.Len() != 2 {
		t.Fatalf("schema has %d entries, want 2", rt.Schema.Len())
	}

	res, err := game.InitGameState(rt, m.Entities())
	if res != game.InitNoError {
		t.Fatalf("init = %v, %v", res, err)
	}

	if _, err := rt.Symbols.Resolve("cBartender"); err != nil {
		t.Fatal("manifest character not bound")
	}

	// Static property from the manifest resolves through the chain.
	ego := rt.Characters[0]
	if v, err := rt.Schema.GetInt(ego.StaticProps, ego.RuntimeProps, "Weight"); err != nil || v != 7 {
		t.Fatalf("Weight = %d, %v; want 7", v, err)
	}

	// audio-channels = 4 plus the reserved speech channel.
	if len(rt.AudioChannels) != 5 {
		t.Fatalf("got %d audio channels, want 5", len(rt.AudioChannels))
	}

	// Popup GUI hidden, always-on GUI visible.
	if rt.GUIs[0].Visible != 1 || rt.GUIs[1].Visible != 0 {
		t.Fatal("GUI visibility defaults wrong")
	}
}
