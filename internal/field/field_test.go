package field

import (
	"math/rand"
	"testing"

	"golang.org/x/text/language"

	"github.com/dshills/maskform/internal/mask"
)

func TestSetText(t *testing.T) {
	s := newState(t, "###.0##")

	s.SetText("123.456")
	if s.Text() != "123.456" {
		t.Errorf("Text() = %q, want %q", s.Text(), "123.456")
	}
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want default 3", s.Cursor())
	}

	// Short input leaves the tail at its defaults, long input truncates.
	s.SetText("12")
	if s.Text() != "12 .0  " {
		t.Errorf("Text() = %q, want %q", s.Text(), "12 .0  ")
	}
	s.SetText("123.45678")
	if s.Text() != "123.456" {
		t.Errorf("Text() = %q, want %q", s.Text(), "123.456")
	}
}

func TestReset(t *testing.T) {
	s := newState(t, "###.0##")
	s.SetText("123.456")
	s.Reset()
	if s.Text() != "   .0  " || s.Cursor() != 3 {
		t.Errorf("after Reset: text %q cursor %d", s.Text(), s.Cursor())
	}
}

func TestSetCursor_Clamps(t *testing.T) {
	s := newState(t, "###")
	s.SetCursor(-5)
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
	s.SetCursor(99)
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", s.Cursor())
	}
}

func TestNegative_SyncsFromText(t *testing.T) {
	s := newState(t, "###.###")
	s.SetText(" -1.0  ")
	if !s.Negative() {
		t.Error("Negative() = false for text with '-'")
	}
	s.SetText("  1.0  ")
	if s.Negative() {
		t.Error("Negative() = true for positive text")
	}

	s = newState(t, "###.###-")
	s.SetText("  1.0  -")
	if !s.Negative() {
		t.Error("Negative() = false with '-' in the sign cell")
	}
}

func TestSetMask_Resets(t *testing.T) {
	s := newState(t, "###")
	s.SetText("123")
	if err := s.SetMask("##0.0"); err != nil {
		t.Fatalf("SetMask: %v", err)
	}
	if s.Text() != "  0.0" || s.Width() != 5 {
		t.Errorf("text %q width %d", s.Text(), s.Width())
	}
	if err := s.SetMask(`##\`); err == nil {
		t.Error("SetMask with a bad pattern should fail")
	}
}

func TestSetSymbols_Recompiles(t *testing.T) {
	s := newState(t, "###,##0.0##")
	if err := s.SetSymbols(mask.SymbolsFor(language.German)); err != nil {
		t.Fatalf("SetSymbols: %v", err)
	}
	if s.Text() != "      0,0  " {
		t.Errorf("blank = %q, want %q", s.Text(), "      0,0  ")
	}

	// German typing: ',' is the decimal point, and the group separator
	// renders as '.'.
	for _, ch := range "1234,5" {
		typeChar(s, ch)
	}
	if s.Text() != "  1.234,5  " {
		t.Errorf("text = %q, want %q", s.Text(), "  1.234,5  ")
	}
}

type recorder struct {
	changes []Change
}

func (r *recorder) EditApplied(ch Change) { r.changes = append(r.changes, ch) }

func TestListener_InsertChange(t *testing.T) {
	s := newState(t, "##")
	rec := &recorder{}
	s.AddListener(rec)

	typeChar(s, '1')
	if len(rec.changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(rec.changes))
	}
	ch := rec.changes[0]
	if ch.Op != OpInsert || ch.Start != 0 || ch.End != 2 {
		t.Errorf("change = %+v", ch)
	}
	if ch.Before != "  " || ch.After != " 1" {
		t.Errorf("before %q after %q", ch.Before, ch.After)
	}
	if ch.CursorBefore != 2 || ch.CursorAfter != 2 {
		t.Errorf("cursors %d -> %d", ch.CursorBefore, ch.CursorAfter)
	}
}

func TestListener_NoChangeNoReport(t *testing.T) {
	s := newState(t, "##")
	s.SetText("12")
	rec := &recorder{}
	s.AddListener(rec)

	typeChar(s, '3') // run full, rejected
	s.SetCursor(1)
	if len(rec.changes) != 0 {
		t.Errorf("got %d changes, want 0: %+v", len(rec.changes), rec.changes)
	}
}

func TestListener_RemoveChange(t *testing.T) {
	s := newState(t, "###.0##")
	s.SetText("123.456")
	rec := &recorder{}
	s.AddListener(rec)

	if _, err := s.RemoveRange(0, 7); err != nil {
		t.Fatalf("RemoveRange: %v", err)
	}
	if len(rec.changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(rec.changes))
	}
	ch := rec.changes[0]
	if ch.Op != OpClear || ch.Before != "123.456" || ch.After != "   .0  " {
		t.Errorf("change = %+v", ch)
	}
}

// Editing never changes the buffer length: it always equals the mask
// width, whatever sequence of operations runs.
func TestWidthInvariant(t *testing.T) {
	s := newState(t, `\€ ###,##0.0##+`)
	width := s.Width()

	inputs := []rune("12x.3-45,€.9-06..71-")
	for i, ch := range inputs {
		typeChar(s, ch)
		if len([]rune(s.Text())) != width {
			t.Fatalf("after typing %q: width %d, want %d", ch, len([]rune(s.Text())), width)
		}
		switch i % 3 {
		case 0:
			s.RemovePrev()
		case 1:
			s.RemoveNext()
		case 2:
			if _, err := s.RemoveRange(2, 6); err != nil {
				t.Fatalf("RemoveRange: %v", err)
			}
		}
		if len([]rune(s.Text())) != width {
			t.Fatalf("after remove %d: width %d, want %d", i%3, len([]rune(s.Text())), width)
		}
		if c := s.Cursor(); c < 0 || c > width {
			t.Fatalf("cursor %d out of range 0..%d", c, width)
		}
	}
}

func TestWidthInvariant_RandomOps(t *testing.T) {
	masks := []string{
		"###",
		"###,##0",
		"###.0##",
		"###,##0.0##-",
		`\€ ###,##0.0##+`,
		`99\/99\/9999`,
		`lll\-0000`,
		"HH:HH:HH",
		"0.0",
	}
	chars := []rune("0123456789-+.,/:abxHF € ")

	for _, pattern := range masks {
		s := newState(t, pattern)
		width := s.Width()
		rng := rand.New(rand.NewSource(1))

		for step := 0; step < 400; step++ {
			switch rng.Intn(6) {
			case 0, 1, 2:
				typeChar(s, chars[rng.Intn(len(chars))])
			case 3:
				s.RemovePrev()
			case 4:
				s.RemoveNext()
			case 5:
				from := rng.Intn(width + 1)
				to := from + rng.Intn(width+1-from)
				if _, err := s.RemoveRange(from, to); err != nil {
					t.Fatalf("%q step %d: RemoveRange(%d, %d): %v",
						pattern, step, from, to, err)
				}
			}
			if got := len([]rune(s.Text())); got != width {
				t.Fatalf("%q step %d: width %d, want %d (text %q)",
					pattern, step, got, width, s.Text())
			}
			if c := s.Cursor(); c < 0 || c > width {
				t.Fatalf("%q step %d: cursor %d out of range 0..%d",
					pattern, step, c, width)
			}
		}
	}
}
