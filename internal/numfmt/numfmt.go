package numfmt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dshills/maskform/internal/field"
	"github.com/dshills/maskform/internal/mask"
)

// Errors returned by the formatter.
var (
	ErrNotNumeric = errors.New("mask has no numeric field")
	ErrEmpty      = errors.New("field holds no number")
	ErrOverflow   = errors.New("value does not fit the mask")
)

// Formatter converts between a masked field's text and numeric values.
// It layers on Text/SetText and the edit operations; the grid invariants
// stay with the engine.
type Formatter struct{}

// New returns a Formatter.
func New() *Formatter { return &Formatter{} }

// Parse reads the field's current number: fills and grouping characters
// are dropped, the sign flag is honored, and the result parses with the
// canonical decimal point.
func (f *Formatter) Parse(s *field.State) (float64, error) {
	m := s.Mask()
	nf, ok := m.NumberField()
	if !ok {
		return 0, ErrNotNumeric
	}

	text := []rune(s.Text())
	var b strings.Builder
	for i := nf.Start; i < nf.End && i < len(text); i++ {
		switch m.Cell(i).Kind {
		case mask.KindDigit, mask.KindDigit0:
			if ch := text[i]; ch >= '0' && ch <= '9' {
				b.WriteRune(ch)
			}
		case mask.KindDecimalSep:
			b.WriteRune('.')
		}
	}

	raw := b.String()
	if !strings.ContainsAny(raw, "0123456789") {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrEmpty
	}
	if s.Negative() {
		v = -v
	}
	return v, nil
}

// Format renders v into the field by replaying it through the engine's
// own advance/insert path, exactly as a paste would, so grouping and
// alignment follow the mask. Digits that do not fit report ErrOverflow
// and leave the most significant part in place.
func (f *Formatter) Format(s *field.State, v float64) error {
	m := s.Mask()
	nf, ok := m.NumberField()
	if !ok {
		return ErrNotNumeric
	}

	neg := v < 0
	if neg {
		v = -v
	}

	prec := fractionDigits(m, nf)
	text := strconv.FormatFloat(v, 'f', prec, 64)
	text = strings.TrimRight(text, "0")
	text = strings.TrimRight(text, ".")

	s.Reset()
	overflow := false
	for _, ch := range text {
		if ch == '.' && !m.HasDecimal() {
			break
		}
		s.AdvanceCursor(ch)
		if !s.InsertChar(ch) && ch != '.' {
			overflow = true
		}
	}
	if neg {
		s.AdvanceCursor('-')
		s.InsertChar('-')
	}
	if overflow {
		return ErrOverflow
	}
	return nil
}

// fractionDigits counts digit columns right of the decimal separator.
func fractionDigits(m *mask.Mask, nf mask.Field) int {
	n := 0
	for i := nf.Start; i < nf.End; i++ {
		c := m.Cell(i)
		if c.IsFraction() {
			n++
		}
	}
	return n
}
