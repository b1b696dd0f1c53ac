package field

// RemovePrev removes the character left of the cursor. In an integer run
// the surviving left content shifts right into the gap; in a fraction or
// class run the tail shifts left with the run's default refilling the far
// edge. Removal never crosses a literal or the decimal separator. It
// reports whether the buffer changed; cursor-only moves report false.
func (s *State) RemovePrev() bool {
	if s.cursor == 0 || s.Width() == 0 {
		return false
	}

	before := s.snapshot()
	cursorBefore := s.cursor
	cur := s.cursor
	left := s.cellAt(cur - 1)
	rs, re := left.RunStart, left.RunEnd

	switch {
	case left.IsRtol():
		// The cursor holds position while the run still has content and
		// collapses to the run start once it is back to its defaults.
		wasEmpty := s.runEmpty(rs, re)
		copy(s.buf[rs+1:cur], s.buf[rs:cur-1])
		s.buf[rs] = s.mask.FillAt(rs)
		s.reformatRun(rs, re)
		if wasEmpty {
			s.cursor = rs
		}
	case left.IsLtor():
		copy(s.buf[cur-1:re-1], s.buf[cur:re])
		s.buf[re-1] = s.mask.FillAt(re - 1)
		s.reformatRun(rs, re)
		s.cursor = cur - 1
	default:
		return false
	}

	changed := s.finish(OpRemove, before, cursorBefore)
	return changed
}

// RemoveNext removes the character at the cursor, the mirror image of
// RemovePrev. In a fraction run the cursor holds position until the run
// is empty, then steps past its end.
func (s *State) RemoveNext() bool {
	if s.cursor >= s.Width() {
		return false
	}

	before := s.snapshot()
	cursorBefore := s.cursor
	cur := s.cursor
	cell := s.cellAt(cur)
	rs, re := cell.RunStart, cell.RunEnd

	switch {
	case cell.IsRtol():
		copy(s.buf[rs+1:cur+1], s.buf[rs:cur])
		s.buf[rs] = s.mask.FillAt(rs)
		s.reformatRun(rs, re)
		s.cursor = cur + 1
	case cell.IsLtor():
		wasEmpty := s.runEmpty(rs, re)
		copy(s.buf[cur:re-1], s.buf[cur+1:re])
		s.buf[re-1] = s.mask.FillAt(re - 1)
		s.reformatRun(rs, re)
		if wasEmpty {
			s.cursor = re
		}
	default:
		return false
	}

	changed := s.finish(OpRemove, before, cursorBefore)
	return changed
}

// RemoveRange clears the half-open column span. Content surviving in a
// partially covered run shifts toward the removed side and the vacated
// columns refill with their defaults; literals and the decimal separator
// keep their characters. Runs never exchange content across their
// boundaries. The cursor does not move.
func (s *State) RemoveRange(start, end int) (bool, error) {
	if start < 0 || end > s.Width() || start > end {
		return false, ErrRangeInvalid
	}
	if start == end {
		return false, nil
	}

	before := s.snapshot()
	cursorBefore := s.cursor

	cell := s.cellAt(start)
	if start >= cell.RunStart && end <= cell.RunEnd {
		s.clearWithin(cell.RunStart, cell.RunEnd, start, end)
		return s.finish(OpClear, before, cursorBefore), nil
	}

	pos := start
	for pos < end {
		c := s.cellAt(pos)
		rs, re := c.RunStart, c.RunEnd
		switch {
		case rs < start:
			// Partially covered head run.
			s.clearWithin(rs, re, start, re)
		case re > end:
			// Partially covered tail run.
			s.clearWithin(rs, re, rs, end)
		default:
			for i := rs; i < re; i++ {
				s.buf[i] = s.mask.FillAt(i)
			}
		}
		pos = re
	}
	return s.finish(OpClear, before, cursorBefore), nil
}

// clearWithin removes the columns [from, to) inside the run [rs, re),
// shifting the survivors and refilling the vacated side.
func (s *State) clearWithin(rs, re, from, to int) {
	cell := s.cellAt(rs)
	n := to - from
	switch {
	case cell.IsRtol():
		copy(s.buf[rs+n:to], s.buf[rs:from])
		for i := rs; i < rs+n; i++ {
			s.buf[i] = s.mask.FillAt(i)
		}
		s.reformatRun(rs, re)
	case cell.IsLtor():
		copy(s.buf[from:re-n], s.buf[to:re])
		for i := re - n; i < re; i++ {
			s.buf[i] = s.mask.FillAt(i)
		}
		s.reformatRun(rs, re)
	}
}

// finish syncs derived state, reports the change, and tells whether the
// buffer content differs from before.
func (s *State) finish(op Op, before []rune, cursorBefore int) bool {
	s.syncNegative()
	lo, _ := diffSpan(before, s.buf)
	if lo < 0 {
		return false
	}
	s.emit(op, before, cursorBefore)
	return true
}
