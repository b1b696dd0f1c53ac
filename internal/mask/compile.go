package mask

// Compile parses a pattern into a Mask bound to the given symbol table.
//
// Recognized pattern characters:
//
//	#        optional digit, blank fill, may hold the sign
//	0, 9     required digit, zero fill
//	.        decimal separator (at most one)
//	,        grouping separator
//	-, +     sign marker, final position only
//	H l a c _ d   character classes (hex, letter, alnum, alnum+space,
//	         any, digit)
//	\x       literal x
//	other    literal
//
// Compilation is a pure function of (pattern, symbols); editing never
// consults anything else.
func Compile(pattern string, sym Symbols) (*Mask, error) {
	runes := []rune(pattern)
	cells := make([]Section, 0, len(runes)+1)

	rtol := true
	decimalAt := -1

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		var sec Section

		switch r {
		case '\\':
			if i+1 >= len(runes) {
				return nil, patternErr(i, "unterminated escape")
			}
			i++
			sec = Section{Kind: KindLiteral, Lit: runes[i]}
		case '#':
			sec = Section{Kind: KindDigit, Rtol: rtol}
		case '0', '9':
			sec = Section{Kind: KindDigit0, Rtol: rtol}
		case '.':
			if decimalAt >= 0 {
				return nil, patternErr(i, "second decimal separator")
			}
			decimalAt = len(cells)
			sec = Section{Kind: KindDecimalSep}
		case ',':
			sec = Section{Kind: KindGroupSep}
		case '-', '+':
			if i != len(runes)-1 {
				return nil, patternErr(i, "sign marker must be the final character")
			}
			if r == '-' {
				sec = Section{Kind: KindSign}
			} else {
				sec = Section{Kind: KindPlus}
			}
		case 'H':
			sec = Section{Kind: KindHex}
		case 'd':
			sec = Section{Kind: KindDec}
		case 'l':
			sec = Section{Kind: KindLetter}
		case 'a':
			sec = Section{Kind: KindAlnum}
		case 'c':
			sec = Section{Kind: KindAlnumSpace}
		case '_':
			sec = Section{Kind: KindAny}
		default:
			sec = Section{Kind: KindLiteral, Lit: r}
		}

		// Digits after the decimal separator edit left-to-right; a
		// class or literal column starts a fresh number context.
		switch sec.Kind {
		case KindDecimalSep:
			rtol = false
		case KindHex, KindDec, KindLetter, KindAlnum, KindAlnumSpace, KindAny, KindLiteral:
			rtol = true
		}

		cells = append(cells, sec)
	}

	cells = append(cells, Section{Kind: KindNone}) // cursor sentinel

	m := &Mask{
		pattern: pattern,
		sym:     sym,
		cells:   cells,
	}
	m.index()
	return m, nil
}

// index assigns run and field boundaries to every cell. Literal columns
// always stand alone; otherwise adjacent cells of the same class merge.
func (m *Mask) index() {
	width := m.Width()

	closeRun := func(start, end int) {
		if start >= end {
			return
		}
		id := len(m.runs)
		first := &m.cells[start]
		m.runs = append(m.runs, Run{
			Start:   start,
			End:     end,
			Rtol:    first.IsRtol(),
			Literal: first.Kind == KindLiteral,
		})
		for i := start; i < end; i++ {
			m.cells[i].Run = id
			m.cells[i].RunStart = start
			m.cells[i].RunEnd = end
		}
	}
	closeField := func(start, end int) {
		if start >= end {
			return
		}
		id := len(m.fields)
		m.fields = append(m.fields, Field{
			Start:  start,
			End:    end,
			Number: m.cells[start].IsNumber(),
		})
		for i := start; i < end; i++ {
			m.cells[i].Field = id
			m.cells[i].FieldStart = start
			m.cells[i].FieldEnd = end
		}
	}

	runStart, fieldStart := 0, 0
	for i := 1; i < width; i++ {
		cur := &m.cells[i]
		prev := &m.cells[i-1]
		if cur.Kind == KindLiteral || cur.runClass() != prev.runClass() {
			closeRun(runStart, i)
			runStart = i
		}
		if cur.Kind == KindLiteral || prev.Kind == KindLiteral ||
			cur.fieldClass() != prev.fieldClass() {
			closeField(fieldStart, i)
			fieldStart = i
		}
	}
	closeRun(runStart, width)
	closeField(fieldStart, width)

	// The sentinel spans nothing.
	s := &m.cells[width]
	s.Run, s.Field = -1, -1
	s.RunStart, s.RunEnd = width, width
	s.FieldStart, s.FieldEnd = width, width
}
