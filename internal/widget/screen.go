package widget

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Screen wraps a tcell screen behind a mutex so the event loop and
// asynchronous reloads can both draw.
type Screen struct {
	mu sync.Mutex
	tc tcell.Screen
}

// NewScreen allocates a terminal screen.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// NewScreenFrom wraps an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Init prepares the terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tc.Init(); err != nil {
		return err
	}
	s.tc.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tc.Size()
}

// Clear fills the screen with the style's background.
func (s *Screen) Clear(style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.SetStyle(style)
	s.tc.Clear()
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.Show()
}

// SetCell places a single rune.
func (s *Screen) SetCell(x, y int, ch rune, style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.SetContent(x, y, ch, nil, style)
}

// DrawText renders a string starting at (x, y), stepping by grapheme
// cluster so combining marks and wide runes occupy the right columns.
// It returns the column after the last cluster.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.tc.SetContent(x, y, runes[0], runes[1:], style)
		x += g.Width()
	}
	return x
}

// ShowCursor moves the hardware cursor.
func (s *Screen) ShowCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (s *Screen) HideCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tc.HideCursor()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// PostEvent queues an event, waking a blocked PollEvent.
func (s *Screen) PostEvent(ev tcell.Event) {
	_ = s.tc.PostEvent(ev)
}
