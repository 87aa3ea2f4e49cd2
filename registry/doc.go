// Package registry implements the managed object table shared between the
// engine and the script interpreter.
//
// Scripts never see native references; they hold opaque handles issued at
// registration. Each handle pairs a non-owning object reference with the
// TypeDescriptor of its entity category, so every downstream field access
// is forced through the category's closed offset table.
//
// Lifetime is driven imperatively by the interpreter through AddRef and
// Release, mirroring the call shape compiled scripts expect. A handle is
// deregistered exactly once, at the Release that takes its count to zero,
// and its slot is then reusable for future registrations.
package registry
