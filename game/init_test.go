package game

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/wippyai/gamebind/errors"
	"github.com/wippyai/gamebind/symbols"
)

func minimalEntities() *LoadedEntities {
	return &LoadedEntities{
		FontCount: 1,
		Characters: []*Character{
			{ScriptName: "cEgo", Name: "Ego"},
			{ScriptName: "cBartender", Name: "Bartender"},
		},
		Hotspots: []*Hotspot{{}, {}, {}},
		Regions:  []*Region{{}},
		InvItems: []*InvItem{{ScriptName: "iKey", Name: "Key"}},
		Dialogs:  []*Dialog{{ScriptName: "dIntro", OptionCount: 3}},
		GUIs: []*GUI{
			{ScriptName: "gStatusline", PopupStyle: GUIPopupNone},
			{ScriptName: "gInventory", PopupStyle: GUIPopupMouseY},
		},
		AudioClips: []*AudioClip{{ScriptName: "aDoorbell"}},
	}
}

func TestInitGameStateSuccess(t *testing.T) {
	rt := NewRuntime()
	res, err := InitGameState(rt, minimalEntities())
	if res != InitNoError || err != nil {
		t.Fatalf("init = %v, %v; want InitNoError", res, err)
	}

	// Sequential indices per category.
	for i, ch := range rt.Characters {
		if ch.ID != int32(i) {
			t.Fatalf("character %d has ID %d", i, ch.ID)
		}
		if ch.Handle == 0 {
			t.Fatalf("character %d not registered", i)
		}
	}

	// Character runtime defaults.
	ego := rt.Characters[0]
	if ego.BlinkInterval != 140 || ego.BlinkTimer != 140 {
		t.Fatalf("blink defaults = %d/%d, want 140/140", ego.BlinkInterval, ego.BlinkTimer)
	}
	if ego.PrevRoom != -1 || ego.WalkWait != -1 {
		t.Fatal("prevroom/walkwait defaults wrong")
	}

	// Script names bound; player bound to character 0 by default.
	for _, name := range []string{"cEgo", "cBartender", "iKey", "dIntro", "gStatusline", "aDoorbell", "player"} {
		if _, err := rt.Symbols.Resolve(name); err != nil {
			t.Fatalf("symbol %q not bound: %v", name, err)
		}
	}
	if rt.Player != rt.Characters[0] {
		t.Fatal("player not bound to character 0")
	}

	// GUI visibility follows popup style.
	if rt.GUIs[0].Visible != 1 {
		t.Fatal("always-on GUI should start visible")
	}
	if rt.GUIs[1].Visible != 0 {
		t.Fatal("popup GUI should start hidden")
	}

	// Default audio channel bank incl. reserved speech channel 0.
	if len(rt.AudioChannels) != DefaultAudioChannels+1 {
		t.Fatalf("got %d audio channels, want %d", len(rt.AudioChannels), DefaultAudioChannels+1)
	}

	// One static array per category.
	for _, cat := range []string{CategoryCharacter, CategoryRoomObject, CategoryGUI,
		CategoryHotspot, CategoryRegion, CategoryInvItem, CategoryDialog} {
		if _, ok := rt.Array(cat); !ok {
			t.Fatalf("no static array for %s", cat)
		}
	}
	arr, _ := rt.Array(CategoryCharacter)
	if arr.Capacity() != 2 {
		t.Fatalf("character array capacity = %d, want 2", arr.Capacity())
	}
}

func TestInitNoFonts(t *testing.T) {
	rt := NewRuntime()
	ents := minimalEntities()
	ents.FontCount = 0

	res, err := InitGameState(rt, ents)
	if res != InitNoFonts {
		t.Fatalf("got %v, want InitNoFonts", res)
	}
	if err == nil {
		t.Fatal("expected error detail")
	}
	if rt.Registry.Len() != 0 {
		t.Fatal("entities registered despite fatal precondition")
	}
}

func TestInitTooManyAudioTypes(t *testing.T) {
	rt := NewRuntime()
	ents := minimalEntities()
	ents.AudioTypeCount = MaxAudioTypes + 1

	if res, _ := InitGameState(rt, ents); res != InitTooManyAudioTypes {
		t.Fatalf("got %v, want InitTooManyAudioTypes", res)
	}
}

func TestInitPluginChecks(t *testing.T) {
	rt := NewRuntime()
	ents := minimalEntities()
	for i := 0; i < MaxPlugins+1; i++ {
		ents.Plugins = append(ents.Plugins, PluginInfo{Name: fmt.Sprintf("plugin%d", i)})
	}
	if res, _ := InitGameState(rt, ents); res != InitTooManyPlugins {
		t.Fatalf("got %v, want InitTooManyPlugins", res)
	}

	rt = NewRuntime()
	ents = minimalEntities()
	ents.Plugins = []PluginInfo{{Name: "agsjoy"}, {Name: "../evil"}}
	if res, _ := InitGameState(rt, ents); res != InitPluginNameInvalid {
		t.Fatalf("got %v, want InitPluginNameInvalid", res)
	}
}

func TestInitCapacityExceededRegistersNothing(t *testing.T) {
	rt := NewRuntime()
	ents := minimalEntities()
	ents.Hotspots = nil
	for i := 0; i < MaxHotspots+1; i++ {
		ents.Hotspots = append(ents.Hotspots, &Hotspot{})
	}

	res, err := InitGameState(rt, ents)
	if res != InitCapacityExceeded {
		t.Fatalf("got %v, want InitCapacityExceeded", res)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseInit, Kind: errors.KindCapacityExceeded}) {
		t.Fatalf("got %v, want capacity_exceeded", err)
	}
	// Not one of the 51 hotspots, nor anything else, is partially bound.
	if rt.Registry.Len() != 0 {
		t.Fatalf("%d handles registered after capacity failure", rt.Registry.Len())
	}
	if rt.Symbols.Len() != 0 {
		t.Fatal("symbols bound after capacity failure")
	}
}

type fakeModule struct {
	name     string
	needs    []string
	linkErr  error
	resolved int
}

func (m *fakeModule) Name() string { return m.name }

func (m *fakeModule) Link(syms *symbols.Table) error {
	if m.linkErr != nil {
		return m.linkErr
	}
	for _, name := range m.needs {
		if _, err := syms.Resolve(name); err != nil {
			return err
		}
		m.resolved++
	}
	return nil
}

func TestInitLinksModules(t *testing.T) {
	rt := NewRuntime()
	ents := minimalEntities()
	mod := &fakeModule{name: "globalscript", needs: []string{"cEgo", "player", "gStatusline"}}
	ents.Modules = []ScriptModule{mod}

	res, err := InitGameState(rt, ents)
	if res != InitNoError || err != nil {
		t.Fatalf("init = %v, %v", res, err)
	}
	if mod.resolved != 3 {
		t.Fatalf("module resolved %d imports, want 3", mod.resolved)
	}
}

func TestInitScriptLinkFailed(t *testing.T) {
	rt := NewRuntime()
	ents := minimalEntities()
	ents.Modules = []ScriptModule{
		&fakeModule{name: "room2", needs: []string{"cMissing"}},
	}

	res, err := InitGameState(rt, ents)
	if res != InitScriptLinkFailed {
		t.Fatalf("got %v, want InitScriptLinkFailed", res)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLink, Kind: errors.KindScriptLinkFailed}) {
		t.Fatalf("got %v, want script_link_failed", err)
	}
}

func TestReloadDropsSymbols(t *testing.T) {
	rt := NewRuntime()
	if res, err := InitGameState(rt, minimalEntities()); res != InitNoError {
		t.Fatal(err)
	}
	rt.Close()

	// Session 2 with different entities: session 1 names must be gone.
	rt2 := NewRuntime()
	ents := minimalEntities()
	ents.Characters = []*Character{{ScriptName: "cNarrator"}}
	if res, err := InitGameState(rt2, ents); res != InitNoError {
		t.Fatal(err)
	}
	if _, err := rt2.Symbols.Resolve("cBartender"); err == nil {
		t.Fatal("session 1 symbol visible in session 2")
	}
	if _, err := rt2.Symbols.Resolve("cNarrator"); err != nil {
		t.Fatal("session 2 symbol missing")
	}
}

func TestInitResultText(t *testing.T) {
	results := []InitResult{
		InitNoError, InitNoFonts, InitTooManyAudioTypes, InitTooManyPlugins,
		InitPluginNameInvalid, InitScriptLinkFailed, InitCapacityExceeded,
	}
	seen := make(map[string]bool)
	for _, r := range results {
		text := r.Text()
		if text == "" || text == "Unknown error" {
			t.Fatalf("result %d has no message", r)
		}
		if seen[text] {
			t.Fatalf("duplicate message %q", text)
		}
		seen[text] = true
	}
	if InitResult(99).Text() != "Unknown error" {
		t.Fatal("unknown result should map to the unknown message")
	}
}
