package field

import "github.com/dshills/maskform/internal/mask"

// AdvanceCursor finds the column at which InsertChar should act for the
// candidate input ch, starting at the current cursor, and moves the
// cursor there. The buffer is not touched. Digits scan forward across
// literals, the decimal point jumps to the separator, and the cursor
// stays put when nothing ahead accepts ch.
func (s *State) AdvanceCursor(ch rune) int {
	if s.Width() == 0 {
		return s.cursor
	}

	start := s.cursor
	nc := s.cursor
	for {
		cell := s.cellAt(nc)
		if s.canInsertIntegerLeft(nc, ch) {
			// Right edge of an integer run with room to shift.
			break
		}
		if s.canInsertInteger(nc, ch) {
			// In front of an existing integer digit.
			break
		}
		if s.canInsertSign(nc, ch) {
			break
		}
		if cell.Kind == mask.KindDecimalSep && s.isValid(cell, ch) {
			break
		}
		if cell.Kind == mask.KindGroupSep {
			// Never a stop.
			nc++
			continue
		}
		if cell.Kind == mask.KindLiteral && s.isValid(cell, ch) {
			break
		}
		if s.canMoveLeftInFraction(start, nc, ch) {
			nc--
			continue
		}
		if s.canInsertFraction(start, nc, ch) {
			break
		}
		if cell.IsClass() && s.isValid(cell, ch) {
			break
		}
		if cell.Kind == mask.KindNone {
			// Nothing ahead accepts ch.
			nc = s.cursor
			break
		}
		nc++
	}

	s.cursor = nc
	return nc
}

// canInsertIntegerLeft reports whether col is the gap just right of an
// integer run that still has room. Integer runs are served before
// whatever starts at col.
func (s *State) canInsertIntegerLeft(col int, ch rune) bool {
	peek := s.peekAt(col)
	cell := s.cellAt(col)
	if !peek.IsRtol() {
		return false
	}
	if !cell.IsLtor() && cell.Kind != mask.KindNone {
		return false
	}
	left := s.cellAt(col - 1)
	if !s.isValid(left, ch) {
		return false
	}
	first := s.cellAt(left.RunStart)
	return first.CanDrop(s.buf[left.RunStart])
}

// canInsertInteger reports whether col holds an integer digit that ch
// should be inserted in front of.
func (s *State) canInsertInteger(col int, ch rune) bool {
	cell := s.cellAt(col)
	if !cell.IsRtol() {
		return false
	}
	if !s.isValid(cell, ch) {
		return false
	}
	g := s.buf[col]
	if cell.CanDrop(g) || g == '-' {
		return false
	}
	return true
}

// canInsertSign reports whether a sign toggle is possible for the number
// field at (or just left of) col.
func (s *State) canInsertSign(col int, ch rune) bool {
	if !s.isSignChar(ch) {
		return false
	}
	cell := s.cellAt(col)
	if s.peekAt(col).IsNumber() && (cell.IsLtor() || cell.Kind == mask.KindNone) {
		cell = s.cellAt(col - 1)
	}
	if !cell.IsNumber() {
		return false
	}
	for i := cell.FieldStart; i < cell.FieldEnd; i++ {
		c := s.cellAt(i)
		switch {
		case c.Kind == mask.KindSign || c.Kind == mask.KindPlus:
			return true
		case c.Kind == mask.KindDigit && c.Rtol:
			// A '#' column can hold the sign if not otherwise occupied.
			return c.CanDrop(s.buf[i]) || s.buf[i] == '-'
		}
	}
	return false
}

// canMoveLeftInFraction reports whether the scan may step left to keep
// fraction digits left-aligned. start is the column the scan began at.
func (s *State) canMoveLeftInFraction(start, col int, ch rune) bool {
	peek := s.peekAt(col)
	if !peek.IsFraction() {
		return false
	}
	if !s.isValid(peek, ch) {
		return false
	}
	// Never jump from the integer part into the fraction.
	if s.isIntegerPart(start) {
		return false
	}
	return s.buf[col-1] == ' '
}

// canInsertFraction reports whether col is a valid fraction insert
// position for a scan that began at start.
func (s *State) canInsertFraction(start, col int, ch rune) bool {
	cell := s.cellAt(col)
	if !cell.IsFraction() {
		return false
	}
	if !s.isValid(cell, ch) {
		return false
	}
	return !s.isIntegerPart(start)
}

// InsertChar applies ch at the cursor. Digits shift run content, the sign
// character toggles the value's sign wherever the cursor is, the decimal
// point steps past the separator, and a literal's own character jumps to
// the next section. It reports whether the input was accepted; buffer
// mutations are additionally reported to listeners.
//
// AdvanceCursor should run first for the documented typing behavior.
func (s *State) InsertChar(ch rune) bool {
	if s.Width() == 0 {
		return false
	}

	before := s.snapshot()
	cursorBefore := s.cursor

	ok := s.insertChar(ch)
	if ok {
		s.syncNegative()
		s.emit(OpInsert, before, cursorBefore)
	}
	return ok
}

func (s *State) insertChar(ch rune) bool {
	cell := s.cellAt(s.cursor)
	peek := s.peekAt(s.cursor)
	atRightEdge := cell.IsLtor() || cell.Kind == mask.KindNone

	if (cell.IsNumber() || (peek.IsNumber() && atRightEdge)) && s.canInsertSign(s.cursor, ch) {
		if s.insertSign(ch) {
			return true
		}
	}
	if cell.IsRtol() || (peek.IsRtol() && atRightEdge) {
		if s.insertRtol(ch) {
			return true
		}
	}
	if cell.IsLtor() {
		if s.insertLtor(ch) {
			return true
		}
	}
	return false
}

// insertSign toggles the sign of the number field at the cursor. The sign
// renders into the explicit sign column when the mask has one, else into
// an existing sign position, else into the rightmost free '#' column.
// The cursor does not move and no column is consumed.
func (s *State) insertSign(ch rune) bool {
	if !s.isSignChar(ch) {
		return false
	}
	cell := s.cellAt(s.cursor)
	if s.peekAt(s.cursor).IsNumber() && (cell.IsLtor() || cell.Kind == mask.KindNone) {
		cell = s.cellAt(s.cursor - 1)
	}

	idx := -1
	for i := cell.FieldStart; i < cell.FieldEnd; i++ {
		if k := s.cellAt(i).Kind; k == mask.KindSign || k == mask.KindPlus {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i := cell.FieldStart; i < cell.FieldEnd; i++ {
			if s.buf[i] == '-' || s.buf[i] == '+' {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		// Moving sign: rightmost '#' column that holds nothing.
		for i := cell.FieldEnd - 1; i >= cell.FieldStart; i-- {
			c := s.cellAt(i)
			if c.Kind == mask.KindDigit && c.Rtol && c.CanDrop(s.buf[i]) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return false
	}

	switch s.cellAt(idx).Kind {
	case mask.KindPlus:
		if s.buf[idx] == '-' {
			s.buf[idx] = '+'
		} else {
			s.buf[idx] = '-'
		}
	default:
		if s.buf[idx] == '-' {
			s.buf[idx] = ' '
		} else {
			s.buf[idx] = '-'
		}
	}
	return true
}

// insertRtol inserts ch into an integer run: content left of the cursor
// shifts one column toward the run start, dropping the vacated edge, and
// ch lands immediately left of the cursor. The cursor stays.
func (s *State) insertRtol(ch rune) bool {
	cur := s.cursor
	cell := s.cellAt(cur)
	if s.peekAt(cur).IsRtol() && (cell.IsLtor() || cell.Kind == mask.KindNone) {
		cell = s.cellAt(cur - 1)
	}
	rs, re := cell.RunStart, cell.RunEnd
	if cur <= rs {
		return false
	}
	if !s.cellAt(rs).CanDrop(s.buf[rs]) {
		return false
	}
	if !s.isValid(cell, ch) {
		return false
	}

	copy(s.buf[rs:cur-1], s.buf[rs+1:cur])
	s.buf[cur-1] = ch
	s.reformatRun(rs, re)
	return true
}

// insertLtor inserts ch into a left-to-right run: overwrite a default
// cell, step over a separator, or shift the tail right.
func (s *State) insertLtor(ch rune) bool {
	cur := s.cursor
	cell := s.cellAt(cur)
	if cell.Kind == mask.KindNone {
		return false
	}
	re := cell.RunEnd
	g := s.buf[cur]

	// Overwrite a default digit when everything right of it is empty, so
	// fraction input stays left-aligned.
	if cell.IsFraction() && s.isValid(cell, ch) && g == s.mask.FillAt(cur) && s.runEmpty(cur+1, re) {
		s.buf[cur] = ch
		s.cursor = cur + 1
		return true
	}

	if s.isValid(cell, ch) {
		switch {
		case cell.Kind == mask.KindLiteral && g == cell.Lit:
			// Typing the separator jumps to the next section.
			if pos, ok := s.mask.NextSectionCursor(cur); ok {
				s.cursor = pos
			} else {
				s.cursor = s.Width()
			}
			return true
		case cell.Kind == mask.KindDecimalSep && g == s.sym.Decimal:
			s.cursor = cur + 1
			return true
		}
	}

	// Shift right if the run's far edge can absorb the spill.
	last := s.cellAt(re - 1)
	if last.CanDrop(s.buf[re-1]) && s.isValid(cell, ch) {
		copy(s.buf[cur+1:re], s.buf[cur:re-1])
		s.buf[cur] = ch
		s.cursor = cur + 1
		return true
	}
	return false
}
