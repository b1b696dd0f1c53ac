package field

import "github.com/dshills/maskform/internal/mask"

// reformatRun normalizes a run after its content shifted. Integer runs
// re-render right-aligned with grouping separators placed on demand;
// left-to-right runs restore the zero fill of required digit columns.
func (s *State) reformatRun(start, end int) {
	if start >= end {
		return
	}
	if s.cellAt(start).IsRtol() {
		s.renderInteger(start, end)
		return
	}
	for i := start; i < end; i++ {
		if s.cellAt(i).Kind == mask.KindDigit0 && s.buf[i] == ' ' {
			s.buf[i] = '0'
		}
	}
}

// renderInteger rebuilds an integer run from its digits: leading zeros
// drop, digits pack against the right edge, group columns show their
// separator only with digits on their left, and required digit columns
// fall back to '0' when the run is empty. A sign character travels as
// the leftmost content character.
func (s *State) renderInteger(start, end int) {
	var content []rune
	neg := false
	for i := start; i < end; i++ {
		ch := s.buf[i]
		switch {
		case isDigit(ch):
			content = append(content, ch)
		case ch == '-':
			neg = true
		}
	}
	for len(content) > 0 && content[0] == '0' {
		content = content[1:]
	}
	if neg {
		content = append([]rune{'-'}, content...)
	}

	k := len(content) - 1
	for i := end - 1; i >= start; i-- {
		cell := s.cellAt(i)
		switch cell.Kind {
		case mask.KindGroupSep:
			if k >= 0 {
				s.buf[i] = s.sym.Group
			} else {
				s.buf[i] = ' '
			}
		case mask.KindDigit, mask.KindDigit0:
			if k >= 0 {
				s.buf[i] = content[k]
				k--
			} else {
				s.buf[i] = cell.Fill()
			}
		default:
			// Sign and plus columns keep their own toggle state and are
			// separate runs; anything else resets to its default.
			s.buf[i] = s.mask.FillAt(i)
		}
	}
}
