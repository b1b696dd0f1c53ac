package field

import (
	"testing"

	"github.com/dshills/maskform/internal/mask"
)

func newState(t *testing.T, pattern string) *State {
	t.Helper()
	s, err := NewWithMask(pattern, mask.DefaultSymbols())
	if err != nil {
		t.Fatalf("NewWithMask(%q): %v", pattern, err)
	}
	return s
}

// typeChar plays one keystroke: advance, then insert.
func typeChar(s *State, ch rune) bool {
	s.AdvanceCursor(ch)
	return s.InsertChar(ch)
}

func TestInsert_SingleDigit(t *testing.T) {
	s := newState(t, "#")
	if s.Cursor() != 1 {
		t.Fatalf("initial cursor = %d, want 1", s.Cursor())
	}
	s.AdvanceCursor('1')
	if s.Cursor() != 1 {
		t.Errorf("cursor after advance = %d, want 1", s.Cursor())
	}
	s.InsertChar('1')
	if s.Text() != "1" {
		t.Errorf("text = %q, want %q", s.Text(), "1")
	}
}

func TestInsert_IntegerGrowsLeft(t *testing.T) {
	s := newState(t, "##")
	if s.Cursor() != 2 {
		t.Fatalf("initial cursor = %d, want 2", s.Cursor())
	}

	s.AdvanceCursor('1')
	if s.Cursor() != 2 {
		t.Errorf("cursor after advance = %d, want 2", s.Cursor())
	}
	s.InsertChar('1')
	if s.Text() != " 1" || s.Cursor() != 2 {
		t.Errorf("after '1': text %q cursor %d, want %q 2", s.Text(), s.Cursor(), " 1")
	}
	s.InsertChar('2')
	if s.Text() != "12" || s.Cursor() != 2 {
		t.Errorf("after '2': text %q cursor %d, want %q 2", s.Text(), s.Cursor(), "12")
	}

	// Full run rejects further input.
	if s.InsertChar('3') {
		t.Error("insert into a full run should be rejected")
	}
	if s.Text() != "12" || s.Cursor() != 2 {
		t.Errorf("after rejected '3': text %q cursor %d", s.Text(), s.Cursor())
	}
}

func TestInsert_InFrontOfDigit(t *testing.T) {
	s := newState(t, "##0")

	s.SetCursor(0)
	s.AdvanceCursor('1')
	if s.Cursor() != 3 {
		t.Fatalf("advance '1' over empty run: cursor = %d, want 3", s.Cursor())
	}
	s.InsertChar('1')
	if s.Text() != "  1" {
		t.Fatalf("text = %q, want %q", s.Text(), "  1")
	}

	// A second digit typed from the far left stops in front of the
	// existing one.
	s.SetCursor(0)
	s.AdvanceCursor('2')
	if s.Cursor() != 2 {
		t.Fatalf("advance '2' before existing digit: cursor = %d, want 2", s.Cursor())
	}
	s.InsertChar('2')
	if s.Text() != " 21" || s.Cursor() != 2 {
		t.Errorf("text %q cursor %d, want %q 2", s.Text(), s.Cursor(), " 21")
	}
}

func TestInsert_IntegerWithDecimal(t *testing.T) {
	s := newState(t, "###.##")
	s.SetCursor(0)

	s.AdvanceCursor('1')
	if s.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", s.Cursor())
	}
	s.InsertChar('1')
	if s.Text() != "  1.  " {
		t.Fatalf("text = %q, want %q", s.Text(), "  1.  ")
	}
	typeChar(s, '2')
	if s.Text() != " 12.  " {
		t.Fatalf("text = %q, want %q", s.Text(), " 12.  ")
	}
	typeChar(s, '3')
	if s.Text() != "123.  " || s.Cursor() != 3 {
		t.Fatalf("text %q cursor %d, want %q 3", s.Text(), s.Cursor(), "123.  ")
	}

	// Full integer part: the cursor stays and nothing changes. The
	// fraction does not swallow integer input.
	s.AdvanceCursor('4')
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", s.Cursor())
	}
	s.InsertChar('4')
	if s.Text() != "123.  " {
		t.Errorf("text = %q, want %q", s.Text(), "123.  ")
	}
}

func TestInsert_Fraction(t *testing.T) {
	s := newState(t, "###.0##")
	if s.Text() != "   .0  " {
		t.Fatalf("blank = %q, want %q", s.Text(), "   .0  ")
	}
	s.SetCursor(0)

	// The decimal point jumps to the separator and steps over it.
	s.AdvanceCursor('.')
	if s.Cursor() != 3 {
		t.Fatalf("advance '.': cursor = %d, want 3", s.Cursor())
	}
	s.InsertChar('.')
	if s.Cursor() != 4 {
		t.Fatalf("insert '.': cursor = %d, want 4", s.Cursor())
	}

	// Fraction digits overwrite defaults left to right.
	s.InsertChar('1')
	if s.Text() != "   .1  " {
		t.Fatalf("text = %q, want %q", s.Text(), "   .1  ")
	}
	typeChar(s, '2')
	if s.Text() != "   .12 " {
		t.Fatalf("text = %q, want %q", s.Text(), "   .12 ")
	}
	typeChar(s, '3')
	if s.Text() != "   .123" {
		t.Fatalf("text = %q, want %q", s.Text(), "   .123")
	}

	// Full fraction rejects more digits.
	typeChar(s, '4')
	if s.Text() != "   .123" {
		t.Errorf("text = %q, want %q", s.Text(), "   .123")
	}
}

func TestInsert_FractionMidway(t *testing.T) {
	s := newState(t, "###.0##")
	s.SetText("   .0  ")
	s.SetCursor(5)

	s.AdvanceCursor('1')
	if s.Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5", s.Cursor())
	}
	s.InsertChar('1')
	if s.Text() != "   .01 " {
		t.Errorf("text = %q, want %q", s.Text(), "   .01 ")
	}
}

func TestInsert_Grouping(t *testing.T) {
	s := newState(t, "###,##0")
	if s.Cursor() != 7 {
		t.Fatalf("initial cursor = %d, want 7", s.Cursor())
	}

	for _, ch := range "123" {
		typeChar(s, ch)
	}
	if s.Text() != "    123" {
		t.Fatalf("text = %q, want %q", s.Text(), "    123")
	}

	// The fourth digit pulls the group separator in.
	typeChar(s, '4')
	if s.Text() != "  1,234" {
		t.Errorf("text = %q, want %q", s.Text(), "  1,234")
	}

	// Removing it drops the separator again.
	s.RemovePrev()
	if s.Text() != "    123" {
		t.Errorf("text after remove = %q, want %q", s.Text(), "    123")
	}
}

func TestInsert_SignToggle(t *testing.T) {
	s := newState(t, "###.###")
	s.SetText("  1.0  ")

	s.AdvanceCursor('-')
	if s.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", s.Cursor())
	}
	s.InsertChar('-')
	if s.Text() != " -1.0  " {
		t.Fatalf("text = %q, want %q", s.Text(), " -1.0  ")
	}
	if !s.Negative() {
		t.Error("Negative() = false after sign insert")
	}

	s.InsertChar('-')
	if s.Text() != "  1.0  " {
		t.Errorf("text = %q, want %q", s.Text(), "  1.0  ")
	}
	if s.Negative() {
		t.Error("Negative() = true after sign toggle back")
	}
}

func TestInsert_SignToggleAnywhere(t *testing.T) {
	s := newState(t, "###.###")
	s.SetText("  1.0  ")

	// The sign toggles from any cursor position in the number field
	// without consuming a column or moving the cursor.
	for col := 0; col <= 7; col++ {
		s.SetCursor(col)
		s.InsertChar('-')
		if s.Text() != " -1.0  " || s.Cursor() != col {
			t.Fatalf("col %d: text %q cursor %d, want %q %d",
				col, s.Text(), s.Cursor(), " -1.0  ", col)
		}
		s.InsertChar('-')
		if s.Text() != "  1.0  " || s.Cursor() != col {
			t.Fatalf("col %d: text %q cursor %d, want %q %d",
				col, s.Text(), s.Cursor(), "  1.0  ", col)
		}
	}
}

func TestInsert_ExplicitSignCell(t *testing.T) {
	s := newState(t, "###.###-")
	s.SetText("  1.0   ")

	typeChar(s, '-')
	if s.Text() != "  1.0  -" {
		t.Errorf("text = %q, want %q", s.Text(), "  1.0  -")
	}
	if !s.Negative() {
		t.Error("Negative() = false")
	}

	// '+' masks show '+' for positive values.
	s = newState(t, "###.###+")
	s.SetText("  1.0   ")
	typeChar(s, '-')
	if s.Text() != "  1.0  -" {
		t.Errorf("text = %q, want %q", s.Text(), "  1.0  -")
	}
}

func TestInsert_SignBehindLiteralPrefix(t *testing.T) {
	s := newState(t, `\X###.###-`)
	s.SetText("   1.0   ")

	s.AdvanceCursor('-')
	if s.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", s.Cursor())
	}
	s.InsertChar('-')
	if s.Text() != "   1.0  -" {
		t.Errorf("text = %q, want %q", s.Text(), "   1.0  -")
	}
}

func TestInsert_LiteralJump(t *testing.T) {
	s := newState(t, `##\/##\/####`)
	s.SetCursor(0)

	// Typing the separator character jumps to the next section.
	s.AdvanceCursor('/')
	if s.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", s.Cursor())
	}
	s.InsertChar('/')
	if s.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", s.Cursor())
	}
}

func TestInsert_LiteralJumpClasses(t *testing.T) {
	s := newState(t, `dd\°dd\'dd\"`)
	s.SetCursor(0)

	s.AdvanceCursor('\'')
	if s.Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5", s.Cursor())
	}
	s.InsertChar('\'')
	if s.Cursor() != 6 {
		t.Errorf("cursor = %d, want 6", s.Cursor())
	}
}

func TestInsert_LiteralJumpNumbers(t *testing.T) {
	s := newState(t, `90\°90\'90\"`)
	s.SetCursor(0)

	s.AdvanceCursor('\'')
	if s.Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5", s.Cursor())
	}
	s.InsertChar('\'')
	if s.Cursor() != 8 {
		t.Fatalf("cursor = %d, want 8", s.Cursor())
	}

	// The final literal jumps to the end of the mask.
	s.AdvanceCursor('"')
	if s.Cursor() != 8 {
		t.Fatalf("cursor = %d, want 8", s.Cursor())
	}
	s.InsertChar('"')
	if s.Cursor() != 9 {
		t.Errorf("cursor = %d, want 9", s.Cursor())
	}
}

func TestInsert_LiteralPrefixCurrency(t *testing.T) {
	s := newState(t, `\€ ###,##0.0##+`)
	s.SetCursor(0)

	s.AdvanceCursor('€')
	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", s.Cursor())
	}
	s.InsertChar('€')
	if s.Cursor() != 9 {
		t.Errorf("cursor = %d, want 9", s.Cursor())
	}
}

func TestInsert_Classes(t *testing.T) {
	s := newState(t, "lll")
	s.SetCursor(0)

	if !typeChar(s, 'a') || !typeChar(s, 'b') {
		t.Fatal("letters rejected by 'l' cells")
	}
	if s.Text() != "ab " || s.Cursor() != 2 {
		t.Errorf("text %q cursor %d, want %q 2", s.Text(), s.Cursor(), "ab ")
	}
	if typeChar(s, '1') {
		t.Error("digit accepted by 'l' cell")
	}

	s = newState(t, "HH")
	s.SetCursor(0)
	if !typeChar(s, 'f') || !typeChar(s, 'F') {
		t.Error("hex digits rejected by 'H' cells")
	}
	if typeChar(s, 'g') {
		t.Error("'g' accepted by 'H' cell")
	}
}

func TestInsert_EmptyMask(t *testing.T) {
	s := New()
	if s.InsertChar('1') {
		t.Error("insert into empty mask should be rejected")
	}
	if got := s.AdvanceCursor('1'); got != 0 {
		t.Errorf("AdvanceCursor = %d, want 0", got)
	}
}
