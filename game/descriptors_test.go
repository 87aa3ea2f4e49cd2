package game

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/gamebind/errors"
)

func TestCharacterDescriptorRoundTrip(t *testing.T) {
	ch := &Character{ID: 4, X: 100, Y: 50, Room: 2}

	// ID at offset 0, read-only.
	v, err := CharacterDescriptor.ReadInt32(ch, 0)
	if err != nil || v != 4 {
		t.Fatalf("ID read = %d, %v", v, err)
	}
	err = CharacterDescriptor.WriteInt32(ch, 0, 9)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindReadOnlyWrite}) {
		t.Fatalf("ID write: got %v, want readonly_write", err)
	}
	if ch.ID != 4 {
		t.Fatal("rejected write changed ID")
	}

	// X at offset 16, read-write.
	if err := CharacterDescriptor.WriteInt32(ch, 16, 160); err != nil {
		t.Fatal(err)
	}
	if ch.X != 160 {
		t.Fatalf("X = %d after write", ch.X)
	}

	// Offset past the declared table.
	if _, err := CharacterDescriptor.ReadInt32(ch, CharacterDescriptor.Stride()); err == nil {
		t.Fatal("offset at stride boundary must be unsupported")
	}
}

func TestDescriptorCategories(t *testing.T) {
	tests := []struct {
		category string
		typeID   uint32
	}{
		{CharacterDescriptor.Category(), CharacterDescriptor.TypeID()},
		{RoomObjectDescriptor.Category(), RoomObjectDescriptor.TypeID()},
		{HotspotDescriptor.Category(), HotspotDescriptor.TypeID()},
		{RegionDescriptor.Category(), RegionDescriptor.TypeID()},
		{InvItemDescriptor.Category(), InvItemDescriptor.TypeID()},
		{DialogDescriptor.Category(), DialogDescriptor.TypeID()},
		{GUIDescriptor.Category(), GUIDescriptor.TypeID()},
		{AudioChannelDescriptor.Category(), AudioChannelDescriptor.TypeID()},
		{AudioClipDescriptor.Category(), AudioClipDescriptor.TypeID()},
	}
	seenCat := make(map[string]bool)
	seenID := make(map[uint32]bool)
	for _, tt := range tests {
		if seenCat[tt.category] {
			t.Fatalf("category %q reused", tt.category)
		}
		if seenID[tt.typeID] {
			t.Fatalf("type ID %d reused", tt.typeID)
		}
		seenCat[tt.category] = true
		seenID[tt.typeID] = true
	}
}

func TestHotspotDescriptorClosed(t *testing.T) {
	h := &Hotspot{ID: 1, Enabled: 1}
	for _, off := range []int32{-4, 2, 12, 100} {
		if _, err := HotspotDescriptor.ReadInt32(h, off); err == nil {
			t.Fatalf("offset %d should be rejected", off)
		}
	}
}
