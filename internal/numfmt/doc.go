// Package numfmt is the numeric formatter collaborator: it parses the
// current number out of a masked field and renders values back in by
// replaying them through the engine's own typing path.
package numfmt
