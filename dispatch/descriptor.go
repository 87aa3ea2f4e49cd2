package dispatch

import (
	"fmt"
	"sort"

	"github.com/wippyai/gamebind/errors"
)

// AccessMode controls whether a field offset accepts writes.
type AccessMode uint8

const (
	ReadWrite AccessMode = iota
	ReadOnly
)

// Field binds one byte offset of a category's script-visible layout to a
// typed accessor pair. Offsets are agreed at script-compile time; the
// interpreter carries no field names, only offsets baked into bytecode.
type Field struct {
	Name   string
	Offset int32
	Mode   AccessMode

	// Get reads the field from the native object. Always set.
	Get func(obj any) int32
	// Set writes the field. Nil for ReadOnly fields.
	Set func(obj any, v int32)
}

// TypeDescriptor is the closed capability table for one entity category:
// the only offsets a script may touch are the ones declared here. One
// instance is shared by every object of the category and is immutable
// after construction.
type TypeDescriptor struct {
	category string
	typeID   uint32
	fields   map[int32]Field
	stride   int32
}

var nextTypeID uint32

// NewTypeDescriptor builds the descriptor for one category. stride is the
// script-side element size used for static array address math. Duplicate
// offsets are a programming error in the category's field table and panic
// at package init time rather than surfacing at run time.
func NewTypeDescriptor(category string, stride int32, fields []Field) *TypeDescriptor {
	nextTypeID++
	d := &TypeDescriptor{
		category: category,
		typeID:   nextTypeID,
		fields:   make(map[int32]Field, len(fields)),
		stride:   stride,
	}
	for _, f := range fields {
		if _, dup := d.fields[f.Offset]; dup {
			panic(fmt.Sprintf("dispatch: %s declares offset %d twice", category, f.Offset))
		}
		if f.Get == nil {
			panic(fmt.Sprintf("dispatch: %s field %q has no getter", category, f.Name))
		}
		if f.Mode == ReadWrite && f.Set == nil {
			panic(fmt.Sprintf("dispatch: %s field %q is read-write but has no setter", category, f.Name))
		}
		d.fields[f.Offset] = f
	}
	return d
}

// Category returns the entity category name this descriptor serves.
func (d *TypeDescriptor) Category() string {
	return d.category
}

// TypeID returns the process-unique numeric tag for this descriptor.
func (d *TypeDescriptor) TypeID() uint32 {
	return d.typeID
}

// Stride returns the script-side element size of one object.
func (d *TypeDescriptor) Stride() int32 {
	return d.stride
}

// ReadInt32 resolves offset against the field table and reads the field.
// Unknown offsets yield errors.KindUnsupportedOffset and touch nothing.
func (d *TypeDescriptor) ReadInt32(obj any, offset int32) (int32, error) {
	f, ok := d.fields[offset]
	if !ok {
		return 0, errors.UnsupportedOffset(d.category, offset)
	}
	return f.Get(obj), nil
}

// WriteInt32 resolves offset and writes the field. Writes to unknown
// offsets or read-only fields leave the object bit-for-bit unchanged.
func (d *TypeDescriptor) WriteInt32(obj any, offset int32, v int32) error {
	f, ok := d.fields[offset]
	if !ok {
		return errors.UnsupportedOffset(d.category, offset)
	}
	if f.Mode == ReadOnly {
		return errors.ReadOnlyWrite(d.category, offset)
	}
	f.Set(obj, v)
	return nil
}

// FieldAt returns the declared field at offset, if any.
func (d *TypeDescriptor) FieldAt(offset int32) (Field, bool) {
	f, ok := d.fields[offset]
	return f, ok
}

// Fields returns the declared fields ordered by offset. Used by
// diagnostic tooling; the hot path goes through ReadInt32/WriteInt32.
func (d *TypeDescriptor) Fields() []Field {
	out := make([]Field, 0, len(d.fields))
	for _, f := range d.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}
