package mask

import "strings"

// Mask is a compiled pattern: an ordered list of Sections with precomputed
// run and field boundaries. A Mask is immutable after Compile.
type Mask struct {
	pattern string
	sym     Symbols
	cells   []Section // width+1 entries, the last is the KindNone sentinel
	runs    []Run
	fields  []Field
}

// Width returns the number of columns governed by the mask.
func (m *Mask) Width() int { return len(m.cells) - 1 }

// Pattern returns the pattern the mask was compiled from.
func (m *Mask) Pattern() string { return m.pattern }

// Symbols returns the symbol table bound at compile time.
func (m *Mask) Symbols() Symbols { return m.sym }

// Cell returns the section at the given column. Out-of-range columns
// return the sentinel, so callers may probe cursor position width safely.
func (m *Mask) Cell(col int) *Section {
	if col < 0 || col >= len(m.cells) {
		return &m.cells[len(m.cells)-1]
	}
	return &m.cells[col]
}

// Peek returns the section left of the given column, or the sentinel at
// column zero.
func (m *Mask) Peek(col int) *Section {
	if col <= 0 || col > m.Width() {
		return &m.cells[len(m.cells)-1]
	}
	return &m.cells[col-1]
}

// Runs returns all runs in column order.
func (m *Mask) Runs() []Run { return m.runs }

// Fields returns all fields in column order.
func (m *Mask) Fields() []Field { return m.fields }

// FillAt returns the default fill character for the column, rendered
// with the mask's symbol table.
func (m *Mask) FillAt(col int) rune {
	c := m.Cell(col)
	if c.Kind == KindDecimalSep {
		return m.sym.Decimal
	}
	return c.Fill()
}

// Blank returns the all-defaults rendering of the mask.
func (m *Mask) Blank() string {
	var b strings.Builder
	b.Grow(m.Width())
	for i := 0; i < m.Width(); i++ {
		b.WriteRune(m.FillAt(i))
	}
	return b.String()
}

// BlankRange returns the default rendering for the half-open column range.
func (m *Mask) BlankRange(start, end int) []rune {
	out := make([]rune, 0, end-start)
	for i := start; i < end && i < m.Width(); i++ {
		out = append(out, m.FillAt(i))
	}
	return out
}

// HasDecimal reports whether the mask contains a decimal separator.
func (m *Mask) HasDecimal() bool {
	for i := range m.runs {
		if m.cells[m.runs[i].Start].Kind == KindDecimalSep {
			return true
		}
	}
	return false
}

// SignCell returns the column of the explicit sign marker, or -1.
func (m *Mask) SignCell() int {
	for i := 0; i < m.Width(); i++ {
		if m.cells[i].Kind == KindSign || m.cells[i].Kind == KindPlus {
			return i
		}
	}
	return -1
}

// NumberField returns the first numeric field, if any.
func (m *Mask) NumberField() (Field, bool) {
	for _, f := range m.fields {
		if f.Number {
			return f, true
		}
	}
	return Field{}, false
}
