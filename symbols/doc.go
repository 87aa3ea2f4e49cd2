// Package symbols holds the name-keyed surface compiled scripts link
// against: the external symbol table and the static array proxies.
//
// Both hold non-owning references. Everything here is rebuilt from
// scratch on every game load; a name bound in one session does not exist
// in the next unless re-bound.
package symbols
