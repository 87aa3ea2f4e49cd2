package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseAccess,
				Kind:     KindUnsupportedOffset,
				Category: "character",
				Detail:   "unsupported variable offset 132",
			},
			contains: []string{"[access]", "unsupported_offset", "character", "offset 132"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseInit,
				Kind:  KindNoFonts,
			},
			contains: []string{"[init]", "no_fonts"},
		},
		{
			name: "error with symbol",
			err: &Error{
				Phase:  PhaseAccess,
				Kind:   KindSymbolNotFound,
				Symbol: "cEgo",
				Detail: "no such symbol",
			},
			contains: []string{"[access]", "symbol_not_found", `"cEgo"`},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLink,
				Kind:   KindScriptLinkFailed,
				Detail: `link module "globalscript"`,
				Cause:  errors.New("unresolved import"),
			},
			contains: []string{"[link]", "script_link_failed", "globalscript", "caused by", "unresolved import"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q missing %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := UnsupportedOffset("hotspot", 8)

	if !errors.Is(err, &Error{Phase: PhaseAccess, Kind: KindUnsupportedOffset}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseAccess, Kind: KindReadOnlyWrite}) {
		t.Error("expected no match on different kind")
	}
	if errors.Is(err, &Error{Phase: PhaseInit, Kind: KindUnsupportedOffset}) {
		t.Error("expected no match on different phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := ScriptLinkFailed("room2", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be found via errors.Is")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"invalid handle", InvalidHandle(7), KindInvalidHandle},
		{"duplicate symbol", DuplicateSymbol("player"), KindDuplicateSymbol},
		{"symbol not found", SymbolNotFound("gIcons"), KindSymbolNotFound},
		{"readonly write", ReadOnlyWrite("mouse", 0), KindReadOnlyWrite},
		{"index out of range", IndexOutOfRange("region", 16, 16), KindIndexOutOfRange},
		{"property not found", PropertyNotFound("Weight"), KindPropertyNotFound},
		{"property type mismatch", PropertyTypeMismatch("Weight", "text"), KindPropertyTypeMismatch},
		{"capacity exceeded", CapacityExceeded("hotspot", 51, 50), KindCapacityExceeded},
		{"plugin name invalid", PluginNameInvalid(""), KindPluginNameInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
