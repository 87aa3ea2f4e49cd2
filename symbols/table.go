package symbols

import (
	"github.com/wippyai/gamebind/dispatch"
	"github.com/wippyai/gamebind/errors"
)

// Entry is one script-visible name binding: a non-owning object reference
// tagged with its category descriptor. The tag forces every resolution
// site to dispatch through the category's closed offset table instead of
// treating the reference as an untyped pointer.
type Entry struct {
	Ref  any
	Desc *dispatch.TypeDescriptor
}

// Table maps script-visible names to native objects. Names are
// case-sensitive and unique; the table is rebuilt wholesale on every game
// load, so nothing bound in one session is visible in the next.
type Table struct {
	entries map[string]Entry
	order   []string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]Entry, 256),
	}
}

// Bind inserts a unique name binding. Binding a name that already exists
// is a programming error in the game data and is reported, never
// silently overwritten.
func (t *Table) Bind(name string, ref any, desc *dispatch.TypeDescriptor) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseLoad, "symbol name cannot be empty")
	}
	if _, exists := t.entries[name]; exists {
		return errors.DuplicateSymbol(name)
	}
	t.entries[name] = Entry{Ref: ref, Desc: desc}
	t.order = append(t.order, name)
	return nil
}

// Resolve looks a name up.
func (t *Table) Resolve(name string) (Entry, error) {
	e, ok := t.entries[name]
	if !ok {
		return Entry{}, errors.SymbolNotFound(name)
	}
	return e, nil
}

// Len returns the number of bound names.
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns all bound names in binding order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Clear removes every binding. Called at session teardown so stale
// entries from a previous load cannot survive a reload.
func (t *Table) Clear() {
	t.entries = make(map[string]Entry, 256)
	t.order = t.order[:0]
}
