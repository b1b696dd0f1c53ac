package widget

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colors the form widgets draw with. The focused input
// background is derived from Background by lightening it in LCh space,
// so one base color yields a consistent focus shade.
type Theme struct {
	Background tcell.Color
	Text       tcell.Color
	Fill       tcell.Color
	Label      tcell.Color
	Title      tcell.Color
	Status     tcell.Color
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: tcell.NewRGBColor(0x1e, 0x1e, 0x2e),
		Text:       tcell.NewRGBColor(0xcd, 0xd6, 0xf4),
		Fill:       tcell.NewRGBColor(0x58, 0x5b, 0x70),
		Label:      tcell.NewRGBColor(0x89, 0xb4, 0xfa),
		Title:      tcell.NewRGBColor(0xf9, 0xe2, 0xaf),
		Status:     tcell.NewRGBColor(0xa6, 0xad, 0xc8),
	}
}

// BaseStyle is the style used to clear the screen.
func (t Theme) BaseStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Text).Background(t.Background)
}

// InputStyle returns the style for entered characters.
func (t Theme) InputStyle(focused bool) tcell.Style {
	bg := t.Background
	if focused {
		bg = lighten(t.Background, 0.12)
	}
	return tcell.StyleDefault.Foreground(t.Text).Background(bg)
}

// FillStyle returns the dimmed style for cells still holding their
// fill character.
func (t Theme) FillStyle(focused bool) tcell.Style {
	bg := t.Background
	if focused {
		bg = lighten(t.Background, 0.12)
	}
	return tcell.StyleDefault.Foreground(t.Fill).Background(bg)
}

// LabelStyle returns the style for field labels.
func (t Theme) LabelStyle(focused bool) tcell.Style {
	st := tcell.StyleDefault.Foreground(t.Label).Background(t.Background)
	if focused {
		st = st.Bold(true)
	}
	return st
}

// TitleStyle returns the style for the form title.
func (t Theme) TitleStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Title).Background(t.Background).Bold(true)
}

// StatusStyle returns the style for the status line.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Status).Background(t.Background)
}

// lighten raises the lightness of a color in LuvLCh space. amt is on
// the 0..1 lightness scale.
func lighten(c tcell.Color, amt float64) tcell.Color {
	r, g, b := c.TrueColor().RGB()
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, ch, h := col.LuvLCh()
	l += amt
	if l > 1 {
		l = 1
	}
	out := colorful.LuvLCh(l, ch, h).Clamped()
	ri, gi, bi := out.RGB255()
	return tcell.NewRGBColor(int32(ri), int32(gi), int32(bi))
}
