package mask

// Kind identifies the semantics of one mask column.
type Kind uint8

const (
	// KindNone is the sentinel past the last column. It is a valid cursor
	// position but never editable.
	KindNone Kind = iota

	KindDigit      // '#': optional digit, may hold the sign, blank fill
	KindDigit0     // '0' or '9': required digit, zero fill
	KindDecimalSep // '.': decimal separator
	KindGroupSep   // ',': grouping separator, rendered on demand
	KindSign       // trailing '-': blank for positive values
	KindPlus       // trailing '+': '+' for positive values

	KindHex        // 'H': hex digit
	KindDec        // 'd': decimal digit character class
	KindLetter     // 'l': letter
	KindAlnum      // 'a': letter or digit
	KindAlnumSpace // 'c': letter, digit or space
	KindAny        // '_': any character

	KindLiteral // escaped or non-grammar character, fixed in place
)

// String returns the pattern character for the kind.
func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "#"
	case KindDigit0:
		return "0"
	case KindDecimalSep:
		return "."
	case KindGroupSep:
		return ","
	case KindSign:
		return "-"
	case KindPlus:
		return "+"
	case KindHex:
		return "H"
	case KindDec:
		return "d"
	case KindLetter:
		return "l"
	case KindAlnum:
		return "a"
	case KindAlnumSpace:
		return "c"
	case KindAny:
		return "_"
	case KindLiteral:
		return "\\"
	default:
		return ""
	}
}

// Section describes one column of a compiled mask.
type Section struct {
	Kind Kind
	Lit  rune // literal character, set for KindLiteral only

	// Rtol marks digit columns left of the decimal separator. Content in
	// an Rtol run grows from the right edge; Ltor runs grow from the left.
	Rtol bool

	// Run and Field index into Mask.Runs and Mask.Fields.
	Run   int
	Field int

	// Precomputed boundaries of the enclosing run and field.
	RunStart, RunEnd     int
	FieldStart, FieldEnd int
}

// Fill returns the default fill character for the column.
func (s *Section) Fill() rune {
	switch s.Kind {
	case KindDigit0:
		return '0'
	case KindDecimalSep:
		return '.'
	case KindPlus:
		return '+'
	case KindLiteral:
		return s.Lit
	case KindNone:
		return 0
	default:
		return ' '
	}
}

// IsDigit reports whether the column accepts a numeric digit.
func (s *Section) IsDigit() bool {
	return s.Kind == KindDigit || s.Kind == KindDigit0
}

// IsNumber reports whether the column belongs to a numeric field.
func (s *Section) IsNumber() bool {
	switch s.Kind {
	case KindDigit, KindDigit0, KindDecimalSep, KindGroupSep, KindSign, KindPlus:
		return true
	default:
		return false
	}
}

// IsClass reports whether the column is a generic character class.
func (s *Section) IsClass() bool {
	switch s.Kind {
	case KindHex, KindDec, KindLetter, KindAlnum, KindAlnumSpace, KindAny:
		return true
	default:
		return false
	}
}

// IsRtol reports whether content at the column shifts right-to-left.
func (s *Section) IsRtol() bool {
	switch s.Kind {
	case KindDigit, KindDigit0:
		return s.Rtol
	case KindGroupSep, KindSign, KindPlus:
		return true
	default:
		return false
	}
}

// IsLtor reports whether content at the column shifts left-to-right.
func (s *Section) IsLtor() bool {
	switch s.Kind {
	case KindDigit, KindDigit0:
		return !s.Rtol
	case KindDecimalSep, KindLiteral:
		return true
	default:
		return s.IsClass()
	}
}

// IsFraction reports whether the column is a digit right of the decimal
// separator.
func (s *Section) IsFraction() bool {
	return s.IsDigit() && !s.Rtol
}

// CanDrop reports whether ch may silently fall off the run when content
// shifts across the column.
func (s *Section) CanDrop(ch rune) bool {
	switch s.Kind {
	case KindDigit0:
		return ch == '0'
	case KindDigit, KindHex, KindDec, KindLetter, KindAlnum, KindAlnumSpace, KindAny:
		return ch == ' '
	case KindGroupSep:
		return true
	default:
		return false
	}
}

// runClass groups kinds that merge into one run. Digits and grouping
// separators form a single shiftable unit; everything else stands alone.
func (s *Section) runClass() int {
	switch s.Kind {
	case KindDigit, KindDigit0, KindGroupSep:
		return 0
	case KindSign:
		return 1
	case KindPlus:
		return 2
	case KindDecimalSep:
		return 3
	case KindHex:
		return 4
	case KindDec:
		return 5
	case KindLetter:
		return 6
	case KindAlnum:
		return 7
	case KindAlnumSpace:
		return 8
	case KindAny:
		return 9
	case KindLiteral:
		return 10
	default:
		return 11
	}
}

// fieldClass groups kinds that merge into one navigable field. A number
// with integer part, separators, fraction and sign is one field.
func (s *Section) fieldClass() int {
	switch {
	case s.IsNumber():
		return 0
	case s.IsClass():
		return 1
	case s.Kind == KindLiteral:
		return 2
	default:
		return 3
	}
}

// Run is a maximal contiguous sequence of compatible columns, shifted and
// refilled as one unit. End is exclusive.
type Run struct {
	Start, End int
	Rtol       bool
	Literal    bool
}

// Len returns the number of columns in the run.
func (r Run) Len() int { return r.End - r.Start }

// Field is a contiguous group of runs edited as one logical value, such as
// a complete number including separators and sign. End is exclusive.
type Field struct {
	Start, End int
	Number     bool
}
