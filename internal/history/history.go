package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/maskform/internal/field"
)

// Errors returned by history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Entry wraps a change record with grouping metadata.
type Entry struct {
	GroupID string
	Change  field.Change
	When    time.Time
}

// History records change records from a field state and replays them for
// undo/redo. Consecutive edits to the same run within the merge window
// coalesce into one entry, so typing "123" undoes in one step.
//
// History implements field.Listener; register it with AddListener.
type History struct {
	mu sync.Mutex

	undo []*Entry
	redo []*Entry

	groupID string
	grouped bool

	maxEntries  int
	mergeWindow time.Duration

	// replaying suppresses recording while Undo/Redo mutate the state.
	replaying bool

	now func() time.Time
}

// Option configures a History.
type Option func(*History)

// WithMaxEntries bounds the undo stack; older entries fall off.
func WithMaxEntries(n int) Option {
	return func(h *History) { h.maxEntries = n }
}

// WithMergeWindow sets the interval within which same-run edits coalesce.
// Zero disables merging.
func WithMergeWindow(d time.Duration) Option {
	return func(h *History) { h.mergeWindow = d }
}

// New creates a history with the given options.
func New(opts ...Option) *History {
	h := &History{
		maxEntries:  1000,
		mergeWindow: time.Second,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EditApplied records a change. It implements field.Listener.
func (h *History) EditApplied(ch field.Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.replaying {
		return
	}
	h.redo = h.redo[:0]

	when := h.now()
	if last := h.last(); last != nil && h.canMerge(last, ch, when) {
		last.Change.After = ch.After
		last.Change.CursorAfter = ch.CursorAfter
		last.When = when
		return
	}

	id := h.groupID
	if !h.grouped {
		id = uuid.New().String()
	}
	h.undo = append(h.undo, &Entry{GroupID: id, Change: ch, When: when})
	if len(h.undo) > h.maxEntries {
		h.undo = h.undo[len(h.undo)-h.maxEntries:]
	}
}

// BeginGroup starts a group: subsequent records share one group id and
// undo together. Returns the group id for correlation elsewhere.
func (h *History) BeginGroup() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.groupID = uuid.New().String()
	h.grouped = true
	return h.groupID
}

// EndGroup closes the current group.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.grouped = false
}

// Undo reverts the most recent entry (or group) on the state.
func (h *History) Undo(s *field.State) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}

	group := h.undo[len(h.undo)-1].GroupID
	h.replaying = true
	for len(h.undo) > 0 {
		e := h.undo[len(h.undo)-1]
		if e.GroupID != group {
			break
		}
		h.undo = h.undo[:len(h.undo)-1]
		s.Restore(e.Change.Start, e.Change.Before, e.Change.CursorBefore)
		h.redo = append(h.redo, e)
	}
	h.replaying = false
	return nil
}

// Redo reapplies the most recently undone entry (or group).
func (h *History) Redo(s *field.State) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}

	group := h.redo[len(h.redo)-1].GroupID
	h.replaying = true
	for len(h.redo) > 0 {
		e := h.redo[len(h.redo)-1]
		if e.GroupID != group {
			break
		}
		h.redo = h.redo[:len(h.redo)-1]
		s.Restore(e.Change.Start, e.Change.After, e.Change.CursorAfter)
		h.undo = append(h.undo, e)
	}
	h.replaying = false
	return nil
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Clear drops all recorded entries, for mask or value resets.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Len returns the undo stack depth.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

func (h *History) last() *Entry {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

// canMerge allows coalescing of consecutive same-kind edits on the same
// run: the later change must pick up exactly where the earlier left off.
func (h *History) canMerge(last *Entry, ch field.Change, when time.Time) bool {
	if h.grouped || h.mergeWindow <= 0 {
		return false
	}
	if when.Sub(last.When) > h.mergeWindow {
		return false
	}
	if last.Change.Op != ch.Op {
		return false
	}
	if last.Change.Start != ch.Start || last.Change.End != ch.End {
		return false
	}
	return last.Change.CursorAfter == ch.CursorBefore
}
