package field

import (
	"errors"
	"unicode"

	"github.com/dshills/maskform/internal/mask"
)

// Errors returned by field operations.
var (
	ErrRangeInvalid = errors.New("invalid column range")
)

// Op identifies the edit operation that produced a Change.
type Op uint8

const (
	OpInsert Op = iota
	OpRemove
	OpClear
)

// Change describes one buffer mutation, reported to listeners after the
// fact. Start/End span the affected run(s); Before/After carry the run
// text on both sides of the edit.
type Change struct {
	Op           Op
	Start, End   int
	Before       string
	After        string
	CursorBefore int
	CursorAfter  int
}

// Listener receives change records after every successful mutation.
// The undo buffer is the primary consumer.
type Listener interface {
	EditApplied(Change)
}

// State is the complete editing state of one masked field: the compiled
// mask, the fixed-width buffer, the cursor, and the sign flag. The buffer
// length always equals the mask width; edit operations never change it.
//
// State is not safe for concurrent use. It is owned by the enclosing
// widget and mutated from a single goroutine.
type State struct {
	mask      *mask.Mask
	sym       mask.Symbols
	buf       []rune
	cursor    int
	neg       bool
	listeners []Listener
}

// New returns a State with an empty mask. All edit operations on it are
// no-ops until SetMask is called.
func New() *State {
	s := &State{sym: mask.DefaultSymbols()}
	s.mask, _ = mask.Compile("", s.sym) // empty pattern cannot fail
	return s
}

// NewWithMask returns a State for the given pattern and symbol table.
func NewWithMask(pattern string, sym mask.Symbols) (*State, error) {
	s := &State{sym: sym}
	m, err := mask.Compile(pattern, sym)
	if err != nil {
		return nil, err
	}
	s.mask = m
	s.Reset()
	return s, nil
}

// SetMask compiles pattern with the current symbol table, replacing any
// previous mask and resetting the buffer to its all-defaults rendering.
func (s *State) SetMask(pattern string) error {
	m, err := mask.Compile(pattern, s.sym)
	if err != nil {
		return err
	}
	s.mask = m
	s.Reset()
	return nil
}

// SetSymbols rebinds the symbol table and recompiles the current pattern.
// The buffer is reset.
func (s *State) SetSymbols(sym mask.Symbols) error {
	m, err := mask.Compile(s.mask.Pattern(), sym)
	if err != nil {
		return err
	}
	s.sym = sym
	s.mask = m
	s.Reset()
	return nil
}

// Mask returns the compiled mask.
func (s *State) Mask() *mask.Mask { return s.mask }

// Width returns the mask width.
func (s *State) Width() int { return s.mask.Width() }

// Cursor returns the cursor column, in the range 0..Width.
func (s *State) Cursor() int { return s.cursor }

// SetCursor places the cursor, clamped to the valid range.
func (s *State) SetCursor(col int) {
	if col < 0 {
		col = 0
	}
	if col > s.Width() {
		col = s.Width()
	}
	s.cursor = col
}

// Negative reports the value's sign flag. It is re-derived from the
// buffer after every mutation, so SetText keeps it consistent.
func (s *State) Negative() bool { return s.neg }

// AddListener registers a change listener.
func (s *State) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Text returns the full fixed-width buffer including fill characters.
func (s *State) Text() string { return string(s.buf) }

// SetText overwrites the buffer verbatim. The caller is trusted to supply
// text matching the mask's width and class constraints; no re-validation
// happens. Shorter input leaves the tail at its defaults, longer input is
// truncated. The cursor moves to the mask's default position.
func (s *State) SetText(text string) {
	s.buf = []rune(s.mask.Blank())
	copy(s.buf, []rune(text))
	s.cursor = s.mask.DefaultCursor()
	s.syncNegative()
}

// Reset restores the all-defaults rendering and the default cursor.
func (s *State) Reset() {
	s.buf = []rune(s.mask.Blank())
	s.cursor = s.mask.DefaultCursor()
	s.neg = false
}

// Restore writes text at the given column without notifying listeners and
// places the cursor. It exists for undo collaborators replaying change
// records; out-of-range input is clamped.
func (s *State) Restore(start int, text string, cursor int) {
	if start < 0 {
		start = 0
	}
	for i, r := range []rune(text) {
		if start+i >= s.Width() {
			break
		}
		s.buf[start+i] = r
	}
	s.SetCursor(cursor)
	s.syncNegative()
}

// cellAt returns the section at col, sentinel-safe.
func (s *State) cellAt(col int) *mask.Section { return s.mask.Cell(col) }

// peekAt returns the section left of col, sentinel-safe.
func (s *State) peekAt(col int) *mask.Section { return s.mask.Peek(col) }

// runEmpty reports whether the columns hold nothing but default fills.
func (s *State) runEmpty(start, end int) bool {
	for i := start; i < end && i < len(s.buf); i++ {
		if s.buf[i] != s.mask.FillAt(i) {
			return false
		}
	}
	return true
}

// isSignChar reports whether ch toggles the sign.
func (s *State) isSignChar(ch rune) bool {
	return ch == s.sym.Negative || ch == '-'
}

// isValid reports whether ch is acceptable input for the section.
func (s *State) isValid(cell *mask.Section, ch rune) bool {
	switch cell.Kind {
	case mask.KindDigit:
		return isDigit(ch) || s.isSignChar(ch)
	case mask.KindDigit0, mask.KindDec:
		return isDigit(ch)
	case mask.KindDecimalSep:
		return ch == s.sym.Decimal
	case mask.KindSign, mask.KindPlus:
		return s.isSignChar(ch)
	case mask.KindHex:
		return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
	case mask.KindLetter:
		return isLetter(ch)
	case mask.KindAlnum:
		return isLetter(ch) || isDigit(ch)
	case mask.KindAlnumSpace:
		return isLetter(ch) || isDigit(ch) || ch == ' '
	case mask.KindAny:
		return true
	case mask.KindLiteral:
		// '.' and ',' jump to any literal separator, as on a numpad date.
		return ch == cell.Lit || ch == '.' || ch == ',' ||
			ch == s.sym.Decimal || ch == s.sym.Group
	default:
		return false
	}
}

// isIntegerPart reports whether col sits in the integer part of a number.
func (s *State) isIntegerPart(col int) bool {
	peek := s.peekAt(col)
	cell := s.cellAt(col)
	return peek.IsRtol() || (peek.Kind == mask.KindNone && cell.IsRtol())
}

// syncNegative re-derives the sign flag from the buffer.
func (s *State) syncNegative() {
	f, ok := s.mask.NumberField()
	if !ok {
		s.neg = false
		return
	}
	if idx := s.mask.SignCell(); idx >= 0 {
		s.neg = s.buf[idx] == '-'
		return
	}
	for i := f.Start; i < f.End; i++ {
		if s.buf[i] == '-' {
			s.neg = true
			return
		}
	}
	s.neg = false
}

// snapshot copies the buffer for change reporting.
func (s *State) snapshot() []rune {
	out := make([]rune, len(s.buf))
	copy(out, s.buf)
	return out
}

// emit reports the span that changed between before and the current
// buffer, widened to run boundaries. No-ops are not reported.
func (s *State) emit(op Op, before []rune, cursorBefore int) {
	if len(s.listeners) == 0 {
		return
	}
	lo, hi := diffSpan(before, s.buf)
	if lo < 0 {
		return
	}
	lo = s.cellAt(lo).RunStart
	hi = s.cellAt(hi - 1).RunEnd
	ch := Change{
		Op:           op,
		Start:        lo,
		End:          hi,
		Before:       string(before[lo:hi]),
		After:        string(s.buf[lo:hi]),
		CursorBefore: cursorBefore,
		CursorAfter:  s.cursor,
	}
	for _, l := range s.listeners {
		l.EditApplied(ch)
	}
}

// diffSpan returns the half-open span where a and b differ, or (-1, -1).
func diffSpan(a, b []rune) (int, int) {
	lo := 0
	for lo < len(a) && lo < len(b) && a[lo] == b[lo] {
		lo++
	}
	if lo == len(a) && lo == len(b) {
		return -1, -1
	}
	hi := len(a)
	for hi > lo && a[hi-1] == b[hi-1] {
		hi--
	}
	return lo, hi
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch rune) bool { return unicode.IsLetter(ch) }
