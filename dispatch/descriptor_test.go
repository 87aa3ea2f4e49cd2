package dispatch

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/gamebind/errors"
)

type probe struct {
	x, y int32
	id   int32
}

func probeDescriptor() *TypeDescriptor {
	return NewTypeDescriptor("probe", 12, []Field{
		{Name: "X", Offset: 0, Mode: ReadWrite,
			Get: func(o any) int32 { return o.(*probe).x },
			Set: func(o any, v int32) { o.(*probe).x = v }},
		{Name: "Y", Offset: 4, Mode: ReadWrite,
			Get: func(o any) int32 { return o.(*probe).y },
			Set: func(o any, v int32) { o.(*probe).y = v }},
		{Name: "ID", Offset: 8, Mode: ReadOnly,
			Get: func(o any) int32 { return o.(*probe).id }},
	})
}

func TestReadWrite(t *testing.T) {
	d := probeDescriptor()
	p := &probe{x: 10, y: 20, id: 3}

	v, err := d.ReadInt32(p, 0)
	if err != nil || v != 10 {
		t.Fatalf("ReadInt32(0) = %d, %v; want 10, nil", v, err)
	}

	if err := d.WriteInt32(p, 4, 99); err != nil {
		t.Fatalf("WriteInt32(4) failed: %v", err)
	}
	if p.y != 99 {
		t.Fatalf("y = %d after write, want 99", p.y)
	}
}

func TestUnsupportedOffset(t *testing.T) {
	d := probeDescriptor()
	p := &probe{x: 1, y: 2, id: 3}

	if _, err := d.ReadInt32(p, 16); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindUnsupportedOffset}) {
		t.Fatalf("read at undeclared offset: got %v, want unsupported_offset", err)
	}

	// Misaligned offset between declared fields is just as undeclared.
	err := d.WriteInt32(p, 2, 7)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindUnsupportedOffset}) {
		t.Fatalf("write at undeclared offset: got %v, want unsupported_offset", err)
	}
	if p.x != 1 || p.y != 2 || p.id != 3 {
		t.Fatal("failed write must not touch the object")
	}
}

func TestReadOnlyWrite(t *testing.T) {
	d := probeDescriptor()
	p := &probe{id: 42}

	err := d.WriteInt32(p, 8, 0)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindReadOnlyWrite}) {
		t.Fatalf("got %v, want readonly_write", err)
	}
	if p.id != 42 {
		t.Fatalf("id changed to %d after rejected write", p.id)
	}
}

func TestDuplicateOffsetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate offset")
		}
	}()
	NewTypeDescriptor("bad", 8, []Field{
		{Name: "A", Offset: 0, Mode: ReadOnly, Get: func(any) int32 { return 0 }},
		{Name: "B", Offset: 0, Mode: ReadOnly, Get: func(any) int32 { return 0 }},
	})
}

func TestFieldsOrdered(t *testing.T) {
	d := probeDescriptor()
	fields := d.Fields()
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	for i := 1; i < len(fields); i++ {
		if fields[i-1].Offset >= fields[i].Offset {
			t.Fatal("fields not ordered by offset")
		}
	}
}

func TestTypeIDsDistinct(t *testing.T) {
	a := probeDescriptor()
	b := probeDescriptor()
	if a.TypeID() == b.TypeID() {
		t.Fatal("descriptors must have distinct type IDs")
	}
}
