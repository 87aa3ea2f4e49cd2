package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit     Phase = "init"     // game session initialization
	PhaseAccess   Phase = "access"   // scripted field access
	PhaseProperty Phase = "property" // custom property resolution
	PhaseLink     Phase = "link"     // script module linking
	PhaseLoad     Phase = "load"     // game data loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidHandle        Kind = "invalid_handle"
	KindDuplicateSymbol      Kind = "duplicate_symbol"
	KindSymbolNotFound       Kind = "symbol_not_found"
	KindUnsupportedOffset    Kind = "unsupported_offset"
	KindReadOnlyWrite        Kind = "readonly_write"
	KindIndexOutOfRange      Kind = "index_out_of_range"
	KindPropertyNotFound     Kind = "property_not_found"
	KindPropertyTypeMismatch Kind = "property_type_mismatch"
	KindCapacityExceeded     Kind = "capacity_exceeded"
	KindNoFonts              Kind = "no_fonts"
	KindTooManyAudioTypes    Kind = "too_many_audio_types"
	KindTooManyPlugins       Kind = "too_many_plugins"
	KindPluginNameInvalid    Kind = "plugin_name_invalid"
	KindScriptLinkFailed     Kind = "script_link_failed"
	KindInvalidInput         Kind = "invalid_input"
)

// Error is the structured error type used throughout the binding layer
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Category string // entity category the error relates to, if any
	Symbol   string // script-visible name, if any
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Category != "" {
		b.WriteString(" in ")
		b.WriteString(e.Category)
	}
	if e.Symbol != "" {
		b.WriteString(": symbol ")
		b.WriteString(fmt.Sprintf("%q", e.Symbol))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// InvalidHandle reports use of a handle that is not currently registered
func InvalidHandle(handle uint32) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("handle %d is not registered", handle),
		Value:  handle,
	}
}

// DuplicateSymbol reports an attempt to bind an already-bound script name
func DuplicateSymbol(name string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindDuplicateSymbol,
		Symbol: name,
		Detail: "name already bound",
	}
}

// SymbolNotFound reports resolution of an unbound script name
func SymbolNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindSymbolNotFound,
		Symbol: name,
		Detail: "no such symbol",
	}
}

// UnsupportedOffset reports a field access at an offset the category
// descriptor does not declare
func UnsupportedOffset(category string, offset int32) *Error {
	return &Error{
		Phase:    PhaseAccess,
		Kind:     KindUnsupportedOffset,
		Category: category,
		Detail:   fmt.Sprintf("unsupported variable offset %d", offset),
		Value:    offset,
	}
}

// ReadOnlyWrite reports a write to a declared read-only offset
func ReadOnlyWrite(category string, offset int32) *Error {
	return &Error{
		Phase:    PhaseAccess,
		Kind:     KindReadOnlyWrite,
		Category: category,
		Detail:   fmt.Sprintf("attempt to write readonly variable at offset %d", offset),
		Value:    offset,
	}
}

// IndexOutOfRange reports static array indexing outside [0, capacity)
func IndexOutOfRange(category string, index, capacity int) *Error {
	return &Error{
		Phase:    PhaseAccess,
		Kind:     KindIndexOutOfRange,
		Category: category,
		Detail:   fmt.Sprintf("index %d out of range (capacity %d)", index, capacity),
		Value:    index,
	}
}

// PropertyNotFound reports a property name absent from the schema
func PropertyNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseProperty,
		Kind:   KindPropertyNotFound,
		Symbol: name,
		Detail: "property not declared in the schema; use the property's name, not its description",
	}
}

// PropertyTypeMismatch reports access through the wrong-typed accessor
func PropertyTypeMismatch(name, wantType string) *Error {
	return &Error{
		Phase:  PhaseProperty,
		Kind:   KindPropertyTypeMismatch,
		Symbol: name,
		Detail: fmt.Sprintf("property is not a %s property", wantType),
	}
}

// CapacityExceeded reports an entity batch larger than its category cap
func CapacityExceeded(category string, count, capacity int) *Error {
	return &Error{
		Phase:    PhaseInit,
		Kind:     KindCapacityExceeded,
		Category: category,
		Detail:   fmt.Sprintf("%d entities exceed capacity %d", count, capacity),
		Value:    count,
	}
}

// ScriptLinkFailed wraps a script module linking failure
func ScriptLinkFailed(module string, cause error) *Error {
	return &Error{
		Phase:  PhaseLink,
		Kind:   KindScriptLinkFailed,
		Detail: fmt.Sprintf("link module %q", module),
		Cause:  cause,
	}
}

// PluginNameInvalid reports a plugin with an unusable name
func PluginNameInvalid(name string) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindPluginNameInvalid,
		Symbol: name,
		Detail: "plugin name is invalid",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
