package widget

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskform/internal/field"
	"github.com/dshills/maskform/internal/formdef"
	"github.com/dshills/maskform/internal/history"
	"github.com/dshills/maskform/internal/mask"
)

// Input is one masked entry line: a field state, its undo history, and
// the key handling that drives them.
type Input struct {
	def   formdef.FieldDef
	state *field.State
	hist  *history.History
}

// NewInput builds an input from a field definition.
func NewInput(def formdef.FieldDef) (*Input, error) {
	st, err := field.NewWithMask(def.Mask, def.Symbols())
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", def.Name, err)
	}
	h := history.New()
	st.AddListener(h)
	if def.Initial != "" {
		st.SetText(def.Initial)
	}
	return &Input{def: def, state: st, hist: h}, nil
}

// Name returns the field's name.
func (in *Input) Name() string { return in.def.Name }

// Label returns the display label, falling back to the name.
func (in *Input) Label() string {
	if in.def.Label != "" {
		return in.def.Label
	}
	return in.def.Name
}

// State exposes the underlying field state.
func (in *Input) State() *field.State { return in.state }

// History exposes the input's undo history.
func (in *Input) History() *history.History { return in.hist }

// Text returns the current display text.
func (in *Input) Text() string { return in.state.Text() }

// Width returns the input's column count.
func (in *Input) Width() int { return in.state.Width() }

// HandleKey applies a key event to the field. It reports whether the
// event was consumed; an accepted rune or a buffer-changing edit both
// count as consumed.
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	s := in.state
	switch ev.Key() {
	case tcell.KeyRune:
		ch := ev.Rune()
		s.AdvanceCursor(ch)
		s.InsertChar(ch)
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.RemovePrev()
		return true
	case tcell.KeyDelete:
		s.RemoveNext()
		return true
	case tcell.KeyLeft:
		s.SetCursor(s.Cursor() - 1)
		return true
	case tcell.KeyRight:
		s.SetCursor(s.Cursor() + 1)
		return true
	case tcell.KeyHome:
		s.SetCursor(0)
		return true
	case tcell.KeyEnd:
		s.SetCursor(s.Width())
		return true
	case tcell.KeyCtrlU:
		_, _ = s.RemoveRange(0, s.Width())
		return true
	case tcell.KeyCtrlZ:
		_ = in.hist.Undo(s)
		return true
	case tcell.KeyCtrlY:
		_ = in.hist.Redo(s)
		return true
	}
	return false
}

// Draw renders the input's cells at (x, y) and returns the screen
// column of the field cursor. Cells still holding their fill character
// draw dimmed so the remaining shape of the mask stays visible.
func (in *Input) Draw(s *Screen, x, y int, th Theme, focused bool) int {
	m := in.state.Mask()
	text := []rune(in.state.Text())
	entered := th.InputStyle(focused)
	filled := th.FillStyle(focused)

	for i, ch := range text {
		st := entered
		if m.Cell(i).Kind != mask.KindLiteral && ch == m.FillAt(i) {
			st = filled
		}
		s.SetCell(x+i, y, ch, st)
	}
	// One trailing cell so the cursor has a home past the last column.
	s.SetCell(x+len(text), y, ' ', entered)

	return x + in.state.Cursor()
}
