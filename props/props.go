package props

import (
	"strconv"
	"strings"

	"github.com/wippyai/gamebind/errors"
)

// PropertyType is the declared type of a custom property.
type PropertyType uint8

const (
	Integer PropertyType = iota
	String
)

func (t PropertyType) String() string {
	if t == String {
		return "text"
	}
	return "integer"
}

// MaxTextLength caps the text a property read will place into a
// caller-supplied buffer, terminator included.
const MaxTextLength = 200

// PropertyDesc is one global schema entry: name, type and default value
// as text. Shared by every entity that declares the property.
type PropertyDesc struct {
	Name    string
	Type    PropertyType
	Default string
}

// Schema is the global property name -> description table. Property
// names match case-insensitively, as scripts reference the same property
// with inconsistent casing.
type Schema struct {
	descs map[string]PropertyDesc
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{descs: make(map[string]PropertyDesc)}
}

// Declare adds or replaces a schema entry. Called by the game loader
// before any entity is bound.
func (s *Schema) Declare(desc PropertyDesc) {
	s.descs[strings.ToLower(desc.Name)] = desc
}

// Describe resolves a property name against the schema.
func (s *Schema) Describe(name string) (PropertyDesc, error) {
	desc, ok := s.descs[strings.ToLower(name)]
	if !ok {
		return PropertyDesc{}, errors.PropertyNotFound(name)
	}
	return desc, nil
}

// Len returns the number of declared properties.
func (s *Schema) Len() int {
	return len(s.descs)
}

// describe also checks the accessor's expected type, mirroring the split
// between integer and text script built-ins.
func (s *Schema) describe(name string, want PropertyType) (PropertyDesc, error) {
	desc, err := s.Describe(name)
	if err != nil {
		return PropertyDesc{}, err
	}
	if desc.Type != want {
		return PropertyDesc{}, errors.PropertyTypeMismatch(name, want.String())
	}
	return desc, nil
}

// ValueMap is a case-insensitive property name -> text value map. Each
// property-bearing entity owns two: author-time static values and
// script-time runtime overrides.
type ValueMap struct {
	values map[string]string
}

// NewValueMap creates an empty value map.
func NewValueMap() *ValueMap {
	return &ValueMap{values: make(map[string]string)}
}

// Set stores a value.
func (m *ValueMap) Set(name, value string) {
	m.values[strings.ToLower(name)] = value
}

// Get looks a value up.
func (m *ValueMap) Get(name string) (string, bool) {
	v, ok := m.values[strings.ToLower(name)]
	return v, ok
}

// Delete removes one entry.
func (m *ValueMap) Delete(name string) {
	delete(m.values, strings.ToLower(name))
}

// Clear removes every entry.
func (m *ValueMap) Clear() {
	m.values = make(map[string]string)
}

// Len returns the number of stored values.
func (m *ValueMap) Len() int {
	return len(m.values)
}

// resolve applies the fixed override chain: runtime value, then static
// value, then the schema default.
func resolve(static, runtime *ValueMap, name, def string) string {
	if runtime != nil {
		if v, ok := runtime.Get(name); ok {
			return v
		}
	}
	if static != nil {
		if v, ok := static.Get(name); ok {
			return v
		}
	}
	return def
}

// GetInt resolves an integer property's effective value. Text that does
// not parse as an integer resolves to 0; a bad value in game data is not
// a reason to halt the script.
func (s *Schema) GetInt(static, runtime *ValueMap, name string) (int, error) {
	desc, err := s.describe(name, Integer)
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(resolve(static, runtime, name, desc.Default)))
	return n, nil
}

// GetText resolves a text property into buf, truncating to len(buf)-1
// bytes and always NUL-terminating. Returns the number of text bytes
// written, terminator excluded.
func (s *Schema) GetText(static, runtime *ValueMap, name string, buf []byte) (int, error) {
	desc, err := s.describe(name, String)
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	val := resolve(static, runtime, name, desc.Default)
	n := copy(buf[:len(buf)-1], val)
	buf[n] = 0
	return n, nil
}

// GetTextString resolves a text property as an immutable string, for
// callers that hand out string handles instead of filling a buffer.
func (s *Schema) GetTextString(static, runtime *ValueMap, name string) (string, error) {
	desc, err := s.describe(name, String)
	if err != nil {
		return "", err
	}
	return resolve(static, runtime, name, desc.Default), nil
}

// SetInt writes an integer property into the runtime map only. The
// schema and static maps are never touched. Returns false with the
// rejection cause when the property is undeclared or not an integer;
// the calling built-in decides how to surface that.
func (s *Schema) SetInt(runtime *ValueMap, name string, value int) (bool, error) {
	desc, err := s.describe(name, Integer)
	if err != nil {
		return false, err
	}
	runtime.Set(desc.Name, strconv.Itoa(value))
	return true, nil
}

// SetText writes a text property into the runtime map only.
func (s *Schema) SetText(runtime *ValueMap, name, value string) (bool, error) {
	desc, err := s.describe(name, String)
	if err != nil {
		return false, err
	}
	runtime.Set(desc.Name, value)
	return true, nil
}
