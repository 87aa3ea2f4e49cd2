package runtime

import (
	"github.com/wippyai/gamebind/errors"
	"github.com/wippyai/gamebind/game"
	"github.com/wippyai/gamebind/props"
	"github.com/wippyai/gamebind/registry"
	"go.uber.org/zap"
)

// ScriptErrorFunc receives non-fatal scripted access errors. The
// interpreter keeps running; the handler decides whether to surface the
// fault to the game author.
type ScriptErrorFunc func(err error)

// PropertyBearer is implemented by entities that carry custom property
// maps. Not every category does; regions and audio channels, for
// example, have none.
type PropertyBearer interface {
	PropertyMaps() (static, runtime *props.ValueMap)
}

// Bridge is the field-access surface the interpreter calls on every
// scripted read and write. Faulty accesses never abort the host: they
// are reported to the script-error handler and yield a safe default.
type Bridge struct {
	rt      *game.Runtime
	onError ScriptErrorFunc
}

// NewBridge wraps a loaded session for interpreter consumption.
func NewBridge(rt *game.Runtime) *Bridge {
	return &Bridge{
		rt: rt,
		onError: func(err error) {
			Logger().Warn("script error", zap.Error(err))
		},
	}
}

// OnScriptError replaces the script-error handler.
func (b *Bridge) OnScriptError(fn ScriptErrorFunc) {
	if fn != nil {
		b.onError = fn
	}
}

// Session returns the wrapped session state.
func (b *Bridge) Session() *game.Runtime {
	return b.rt
}

// ReadField reads the int32 field at offset off of the object behind a
// handle. Invalid handles and undeclared offsets yield 0.
func (b *Bridge) ReadField(h registry.Handle, off int32) int32 {
	obj, desc, err := b.rt.Registry.Lookup(h)
	if err != nil {
		b.onError(err)
		return 0
	}
	v, err := desc.ReadInt32(obj, off)
	if err != nil {
		b.onError(err)
		return 0
	}
	return v
}

// WriteField writes the int32 field at offset off of the object behind a
// handle. Faulty writes are a reported no-op.
func (b *Bridge) WriteField(h registry.Handle, off int32, v int32) {
	obj, desc, err := b.rt.Registry.Lookup(h)
	if err != nil {
		b.onError(err)
		return
	}
	if err := desc.WriteInt32(obj, off, v); err != nil {
		b.onError(err)
	}
}

// ReadSymbolField reads a field of the object bound to a script name.
func (b *Bridge) ReadSymbolField(name string, off int32) int32 {
	e, err := b.rt.Symbols.Resolve(name)
	if err != nil {
		b.onError(err)
		return 0
	}
	v, err := e.Desc.ReadInt32(e.Ref, off)
	if err != nil {
		b.onError(err)
		return 0
	}
	return v
}

// WriteSymbolField writes a field of the object bound to a script name.
func (b *Bridge) WriteSymbolField(name string, off int32, v int32) {
	e, err := b.rt.Symbols.Resolve(name)
	if err != nil {
		b.onError(err)
		return
	}
	if err := e.Desc.WriteInt32(e.Ref, off, v); err != nil {
		b.onError(err)
	}
}

// ReadArrayField reads through a category's static array proxy using the
// flat byte offset the script computed (index*stride + field offset).
func (b *Bridge) ReadArrayField(category string, off int32) int32 {
	arr, ok := b.rt.Array(category)
	if !ok {
		b.onError(errors.SymbolNotFound(category))
		return 0
	}
	v, err := arr.ReadInt32(off)
	if err != nil {
		b.onError(err)
		return 0
	}
	return v
}

// WriteArrayField writes through a category's static array proxy.
func (b *Bridge) WriteArrayField(category string, off int32, v int32) {
	arr, ok := b.rt.Array(category)
	if !ok {
		b.onError(errors.SymbolNotFound(category))
		return
	}
	if err := arr.WriteInt32(off, v); err != nil {
		b.onError(err)
	}
}

// AddRef increments a handle's reference count on behalf of the
// interpreter.
func (b *Bridge) AddRef(h registry.Handle) {
	if err := b.rt.Registry.AddRef(h); err != nil {
		b.onError(err)
	}
}

// Release decrements a handle's reference count on behalf of the
// interpreter.
func (b *Bridge) Release(h registry.Handle) {
	if _, err := b.rt.Registry.Release(h); err != nil {
		b.onError(err)
	}
}

// SymbolHandle resolves a script name to the handle of the bound object,
// for built-ins that take a first-class object value.
func (b *Bridge) SymbolHandle(name string) (registry.Handle, error) {
	e, err := b.rt.Symbols.Resolve(name)
	if err != nil {
		return 0, err
	}
	managed, ok := e.Ref.(interface{ ObjectHandle() registry.Handle })
	if !ok {
		return 0, errors.InvalidInput(errors.PhaseAccess,
			"symbol "+name+" is not a handle-managed object")
	}
	return managed.ObjectHandle(), nil
}

// bearer resolves a handle to its property maps.
func (b *Bridge) bearer(h registry.Handle) (PropertyBearer, error) {
	obj, desc, err := b.rt.Registry.Lookup(h)
	if err != nil {
		return nil, err
	}
	pb, ok := obj.(PropertyBearer)
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseProperty,
			"category "+desc.Category()+" has no custom properties")
	}
	return pb, nil
}

// GetIntProperty resolves an integer custom property of the object
// behind a handle. Property errors go back to the calling built-in,
// which decides whether to halt the script.
func (b *Bridge) GetIntProperty(h registry.Handle, name string) (int, error) {
	pb, err := b.bearer(h)
	if err != nil {
		return 0, err
	}
	static, runtime := pb.PropertyMaps()
	return b.rt.Schema.GetInt(static, runtime, name)
}

// GetTextProperty resolves a text custom property into buf, truncating
// and NUL-terminating as needed. Returns the number of text bytes.
func (b *Bridge) GetTextProperty(h registry.Handle, name string, buf []byte) (int, error) {
	pb, err := b.bearer(h)
	if err != nil {
		return 0, err
	}
	static, runtime := pb.PropertyMaps()
	return b.rt.Schema.GetText(static, runtime, name, buf)
}

// GetTextPropertyString resolves a text custom property as an immutable
// string.
func (b *Bridge) GetTextPropertyString(h registry.Handle, name string) (string, error) {
	pb, err := b.bearer(h)
	if err != nil {
		return "", err
	}
	static, runtime := pb.PropertyMaps()
	return b.rt.Schema.GetTextString(static, runtime, name)
}

// SetIntProperty writes an integer custom property into the runtime
// override map. Returns false when the schema rejects the write.
func (b *Bridge) SetIntProperty(h registry.Handle, name string, value int) (bool, error) {
	pb, err := b.bearer(h)
	if err != nil {
		return false, err
	}
	_, runtime := pb.PropertyMaps()
	return b.rt.Schema.SetInt(runtime, name, value)
}

// SetTextProperty writes a text custom property into the runtime
// override map.
func (b *Bridge) SetTextProperty(h registry.Handle, name, value string) (bool, error) {
	pb, err := b.bearer(h)
	if err != nil {
		return false, err
	}
	_, runtime := pb.PropertyMaps()
	return b.rt.Schema.SetText(runtime, name, value)
}
