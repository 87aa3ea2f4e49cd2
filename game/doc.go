// Package game defines the engine-side entity categories, their capacity
// constants and script descriptors, and the initialization orchestrator
// that binds a loaded game's entities into the script system.
//
// Initialization is staged and fail-fast: global preconditions, capacity
// checks, index assignment and runtime defaults, handle registration,
// symbol binding, static array construction, script linking. The first
// failure aborts the load; the caller discards the whole session rather
// than rolling back.
package game
