package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '●', ColorBrightYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != '●' {
		t.Errorf("GetCell rune = %q, want '●'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell color = %d, want ColorBrightYellow", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 2, 'x')
	if got := s.GetCell(2, 2).Color; got != ColorDefault {
		t.Errorf("Set should use default color, got %d", got)
	}

	// Out of bounds returns the default cell
	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(0, 0, '#', ColorRed)
	s.Clear()

	if got := s.GetCell(0, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("Resize dimensions = %dx%d, want 5x3", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Resize should preserve content in range, got %q", got)
	}

	// Growing back does not resurrect clipped content
	s.Resize(10, 5)
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("clipped content should be gone, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText row = %q", s.Row(1))
	}

	// Clipped text must not panic
	s.DrawText(8, 0, "long text")
	if s.Get(9, 0) != 'o' {
		t.Errorf("DrawText should clip, row = %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should have one newline for two rows")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	if got := s.Row(0); got != "abcd" {
		t.Errorf("Row(0) = %q, want \"abcd\"", got)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("out-of-range Row = %q, want spaces", got)
	}
}
