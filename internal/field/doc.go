// Package field implements the editing engine for one masked input
// field: a fixed-width buffer governed by a compiled mask, a cursor bound
// to section boundaries, and the grid editing operations.
//
// All operations are total: invalid input is silently ignored and the
// buffer width never changes. The only fallible call is SetMask. Higher
// layers observe mutations through change records, which carry enough
// context for undo merging.
package field
