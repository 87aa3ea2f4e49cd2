package symbols

import (
	"github.com/wippyai/gamebind/dispatch"
	"github.com/wippyai/gamebind/errors"
)

// StaticArray exposes a fixed-capacity native array as an indexable,
// strided, typed sequence without registering every element in the
// handle registry. Element i is valid iff 0 <= i < capacity.
//
// Scripts address the whole array with flat byte offsets; the proxy
// splits an offset into element index and intra-element offset using the
// declared stride, then defers to the category descriptor.
type StaticArray struct {
	desc     *dispatch.TypeDescriptor
	elem     func(i int) any
	stride   int32
	capacity int
}

// NewStaticArray binds a proxy over a backing store. elem resolves an
// index to the native element; stride is the script-side element size
// used for address math (conceptually base + i*stride).
func NewStaticArray(desc *dispatch.TypeDescriptor, elem func(i int) any, stride int32, capacity int) *StaticArray {
	if stride <= 0 {
		stride = desc.Stride()
	}
	return &StaticArray{
		desc:     desc,
		elem:     elem,
		stride:   stride,
		capacity: capacity,
	}
}

// Desc returns the descriptor shared by all elements.
func (a *StaticArray) Desc() *dispatch.TypeDescriptor {
	return a.desc
}

// Stride returns the script-side element size.
func (a *StaticArray) Stride() int32 {
	return a.stride
}

// Capacity returns the declared element count.
func (a *StaticArray) Capacity() int {
	return a.capacity
}

// ElementAt resolves index i to its native element.
func (a *StaticArray) ElementAt(i int) (any, error) {
	if i < 0 || i >= a.capacity {
		return nil, errors.IndexOutOfRange(a.desc.Category(), i, a.capacity)
	}
	return a.elem(i), nil
}

// ReadInt32 reads the field at flat byte offset off, i.e. element
// off/stride at intra-element offset off%stride.
func (a *StaticArray) ReadInt32(off int32) (int32, error) {
	obj, inner, err := a.locate(off)
	if err != nil {
		return 0, err
	}
	return a.desc.ReadInt32(obj, inner)
}

// WriteInt32 writes the field at flat byte offset off.
func (a *StaticArray) WriteInt32(off int32, v int32) error {
	obj, inner, err := a.locate(off)
	if err != nil {
		return err
	}
	return a.desc.WriteInt32(obj, inner, v)
}

func (a *StaticArray) locate(off int32) (any, int32, error) {
	if off < 0 {
		return nil, 0, errors.IndexOutOfRange(a.desc.Category(), int(off), a.capacity)
	}
	i := int(off / a.stride)
	if i >= a.capacity {
		return nil, 0, errors.IndexOutOfRange(a.desc.Category(), i, a.capacity)
	}
	return a.elem(i), off % a.stride, nil
}
