package mask

// numberCursor returns the natural cursor for a numeric field: one past
// its last integer digit, so typed digits grow leftward from there.
func (m *Mask) numberCursor(start, end int) int {
	for i := end - 1; i >= start; i-- {
		c := &m.cells[i]
		if c.IsDigit() && c.Rtol {
			return i + 1
		}
	}
	return start
}

// SectionCursor returns the default cursor for the field containing col.
// It reports false when col sits on a literal or past the last column,
// where no boundary is defined.
func (m *Mask) SectionCursor(col int) (int, bool) {
	if col < 0 || col >= m.Width() {
		return 0, false
	}
	cell := &m.cells[col]
	switch {
	case cell.IsNumber():
		return m.numberCursor(cell.FieldStart, cell.FieldEnd), true
	case cell.Kind == KindLiteral:
		return 0, false
	default:
		return cell.FieldStart, true
	}
}

// NextSectionCursor scans forward from col to the default cursor of the
// next editable field, skipping literal stretches.
func (m *Mask) NextSectionCursor(col int) (int, bool) {
	if col < 0 || col >= m.Width() {
		return 0, false
	}
	next := m.cells[col].FieldEnd
	for next < m.Width() {
		cell := &m.cells[next]
		if cell.Kind == KindLiteral {
			next = cell.FieldEnd
			continue
		}
		if cell.IsNumber() {
			return m.numberCursor(cell.FieldStart, cell.FieldEnd), true
		}
		return cell.FieldStart, true
	}
	return 0, false
}

// PrevSectionCursor scans backward from col to the default cursor of the
// previous editable field, skipping literal stretches.
func (m *Mask) PrevSectionCursor(col int) (int, bool) {
	if col < 0 || col > m.Width() {
		return 0, false
	}
	if col == m.Width() {
		col = m.Width() - 1
		if col < 0 {
			return 0, false
		}
	}
	prev := m.cells[col].FieldStart
	for prev > 0 {
		cell := &m.cells[prev-1]
		if cell.Kind == KindLiteral {
			prev = cell.FieldStart
			continue
		}
		if cell.IsNumber() {
			return m.numberCursor(cell.FieldStart, cell.FieldEnd), true
		}
		return cell.FieldStart, true
	}
	return 0, false
}

// DefaultCursor returns the cursor used after a mask or value reset: the
// first field's boundary, or the first defined boundary after a literal
// prefix, or zero.
func (m *Mask) DefaultCursor() int {
	if pos, ok := m.SectionCursor(0); ok {
		return pos
	}
	if pos, ok := m.NextSectionCursor(0); ok {
		return pos
	}
	return 0
}
