// Package dispatch implements offset-based field access for script-managed
// objects.
//
// Compiled scripts address native object fields by raw byte offset, not by
// name. Each entity category owns one TypeDescriptor: a closed table from
// offset to a named, typed accessor with an access mode. Accesses at
// undeclared offsets are always rejected; they are never forwarded to the
// underlying object, so a misbehaving script cannot corrupt native state.
//
// All values crossing this contract are 4-byte signed integers. Wider
// fields are composed by the category layer from this primitive.
package dispatch
