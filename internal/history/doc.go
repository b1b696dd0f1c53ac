// Package history is the undo/redo collaborator for masked fields. It
// consumes change records, coalesces bursts of typing on the same run,
// and replays the before/after run slices to step the field state
// backward and forward.
package history
