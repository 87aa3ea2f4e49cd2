package registry

import (
	"github.com/wippyai/gamebind/dispatch"
	"github.com/wippyai/gamebind/errors"
	"go.uber.org/zap"
)

// Handle is an opaque reference to a managed object.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Observer receives a notification when an object is fully released.
// The interpreter uses this to drop cached references to the handle.
type Observer interface {
	OnObjectReleased(h Handle, value any, desc *dispatch.TypeDescriptor)
}

type entry struct {
	value    any
	desc     *dispatch.TypeDescriptor
	refCount int32
	valid    bool
}

// Registry is the managed object table: it maps handles to non-owning
// references paired with the category's TypeDescriptor, with explicit
// reference counting driven by the interpreter. The registry never frees
// the native object itself; storage belongs to the entity collections.
//
// Sessions are single-threaded; the registry performs no locking.
type Registry struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	live      int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Register stores a non-owning reference bound to its category descriptor
// and returns a fresh handle with reference count 1 (the caller's
// implicit ownership). Released handles are reused off a free list.
func (r *Registry) Register(value any, desc *dispatch.TypeDescriptor) Handle {
	e := entry{
		value:    value,
		desc:     desc,
		refCount: 1,
		valid:    true,
	}

	r.live++
	if n := len(r.freeList); n > 0 {
		h := r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.entries[h-1] = e
		return h
	}

	r.entries = append(r.entries, e)
	return Handle(len(r.entries))
}

// AddRef increments the reference count of a live handle.
func (r *Registry) AddRef(h Handle) error {
	e := r.at(h)
	if e == nil {
		return errors.InvalidHandle(uint32(h))
	}
	e.refCount++
	return nil
}

// Release decrements the reference count and returns the new count.
// At zero the entry is removed, the handle goes back on the free list,
// and observers are notified exactly once. Releasing an unknown or
// already fully released handle is an error; the count never goes
// negative.
func (r *Registry) Release(h Handle) (int32, error) {
	e := r.at(h)
	if e == nil {
		return 0, errors.InvalidHandle(uint32(h))
	}

	e.refCount--
	if e.refCount > 0 {
		return e.refCount, nil
	}

	value := e.value
	desc := e.desc
	e.valid = false
	e.value = nil
	e.desc = nil
	e.refCount = 0
	r.freeList = append(r.freeList, h)
	r.live--

	for _, o := range r.observers {
		o.OnObjectReleased(h, value, desc)
	}
	return 0, nil
}

// Lookup resolves a live handle to its object reference and descriptor.
func (r *Registry) Lookup(h Handle) (any, *dispatch.TypeDescriptor, error) {
	e := r.at(h)
	if e == nil {
		return nil, nil, errors.InvalidHandle(uint32(h))
	}
	return e.value, e.desc, nil
}

// RefCount reports the current reference count of a live handle.
// Used by lifetime diagnostics and tests.
func (r *Registry) RefCount(h Handle) (int32, error) {
	e := r.at(h)
	if e == nil {
		return 0, errors.InvalidHandle(uint32(h))
	}
	return e.refCount, nil
}

// Subscribe adds an observer for full-release events.
func (r *Registry) Subscribe(o Observer) {
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return r.live
}

// Each iterates over all live entries in handle order.
func (r *Registry) Each(fn func(h Handle, value any, desc *dispatch.TypeDescriptor) bool) {
	for i := range r.entries {
		e := &r.entries[i]
		if !e.valid {
			continue
		}
		if !fn(Handle(i+1), e.value, e.desc) {
			return
		}
	}
}

// Clear tears the table down at session unload. Remaining live entries
// are logged: the interpreter should have balanced its references.
func (r *Registry) Clear() {
	if r.live > 0 {
		Logger().Warn("registry cleared with live handles", zap.Int("live", r.live))
	}
	r.entries = r.entries[:0]
	r.freeList = r.freeList[:0]
	r.live = 0
}

func (r *Registry) at(h Handle) *entry {
	if h == 0 || int(h) > len(r.entries) {
		return nil
	}
	e := &r.entries[h-1]
	if !e.valid {
		return nil
	}
	return e
}
