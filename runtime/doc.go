// Package runtime exposes a loaded game session to the script
// interpreter.
//
// The Bridge is the trust boundary on the hot path: every scripted field
// access arrives here as a handle or symbol name plus a raw byte offset,
// and leaves as a bounds- and mode-checked dispatch through the
// category's TypeDescriptor. Access faults are non-fatal: they are
// reported to the script-error handler and yield 0 or a no-op so the
// interpreter keeps running. Property faults are returned to the calling
// built-in instead, which decides whether to halt the script.
package runtime
