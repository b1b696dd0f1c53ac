package widget

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/maskform/internal/formdef"
)

// Form lays out a column of inputs with Tab/Shift-Tab focus cycling.
type Form struct {
	title  string
	inputs []*Input
	focus  int

	labelWidth int
}

// NewForm builds the widget tree for a form definition.
func NewForm(def *formdef.Form) (*Form, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	f := &Form{title: def.Title}
	for _, fd := range def.Fields {
		in, err := NewInput(fd)
		if err != nil {
			return nil, err
		}
		f.inputs = append(f.inputs, in)
		if w := uniseg.StringWidth(in.Label()); w > f.labelWidth {
			f.labelWidth = w
		}
	}
	return f, nil
}

// Title returns the form title.
func (f *Form) Title() string { return f.title }

// Inputs returns the form's inputs in definition order.
func (f *Form) Inputs() []*Input { return f.inputs }

// Focused returns the input holding focus.
func (f *Form) Focused() *Input { return f.inputs[f.focus] }

// Input returns the named input, or nil.
func (f *Form) Input(name string) *Input {
	for _, in := range f.inputs {
		if in.Name() == name {
			return in
		}
	}
	return nil
}

// FocusNext advances focus, wrapping at the end.
func (f *Form) FocusNext() {
	f.focus = (f.focus + 1) % len(f.inputs)
}

// FocusPrev moves focus backward, wrapping at the start.
func (f *Form) FocusPrev() {
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
}

// HandleKey routes a key event: Tab and Shift-Tab move focus, anything
// else goes to the focused input.
func (f *Form) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab:
		f.FocusNext()
		return true
	case tcell.KeyBacktab:
		f.FocusPrev()
		return true
	}
	return f.Focused().HandleKey(ev)
}

// Draw renders the whole form and parks the hardware cursor on the
// focused input's cell.
func (f *Form) Draw(s *Screen, th Theme) {
	s.Clear(th.BaseStyle())

	y := 1
	if f.title != "" {
		s.DrawText(2, y, f.title, th.TitleStyle())
		y += 2
	}

	cx, cy := -1, -1
	for i, in := range f.inputs {
		focused := i == f.focus
		label := in.Label()
		lx := 2 + f.labelWidth - uniseg.StringWidth(label)
		s.DrawText(lx, y, label, th.LabelStyle(focused))
		x := 2 + f.labelWidth + 2
		col := in.Draw(s, x, y, th, focused)
		if focused {
			cx, cy = col, y
		}
		y += 2
	}

	in := f.Focused()
	status := fmt.Sprintf("%s  col %d/%d  Tab next · ^Z undo · ^U clear · Esc quit",
		in.Name(), in.State().Cursor(), in.Width())
	_, h := s.Size()
	s.DrawText(2, h-1, status, th.StatusStyle())

	if cx >= 0 {
		s.ShowCursor(cx, cy)
	} else {
		s.HideCursor()
	}
	s.Show()
}
