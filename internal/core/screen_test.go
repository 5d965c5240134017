package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetCell(3, 1, '*', ColorBrightMagenta)

	cell := s.GetCell(3, 1)
	if cell.Rune != '*' || cell.Color != ColorBrightMagenta {
		t.Errorf("GetCell(3, 1) = %+v, expected '*' in bright magenta", cell)
	}

	s.Clear()
	if got := s.GetCell(3, 1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("After Clear, GetCell(3, 1) = %+v", got)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "é*é")

	if s.Get(0, 0) != 'é' || s.Get(1, 0) != '*' || s.Get(2, 0) != 'é' {
		t.Errorf("Row = %q, expected runes placed in consecutive columns", s.Row(0))
	}
}

func TestScreenDrawTextClipping(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "hello")

	if got := s.Row(0); got != "   he" {
		t.Errorf("Row(0) = %q, expected %q", got, "   he")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "bud", ColorGreen)

	if got := s.Row(0); got != "    bud    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorGreen {
		t.Error("Centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox result:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenDrawGauge(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{"empty", 0, "░░░░"},
		{"half", 0.5, "██░░"},
		{"full", 1, "████"},
		{"over", 3, "████"},
		{"negative", -1, "░░░░"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 1)
			s.DrawGauge(0, 0, 4, tc.ratio, ColorBlue)
			if got := s.Row(0); got != tc.want {
				t.Errorf("DrawGauge(%v) = %q, expected %q", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("Grown area should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() lines = %q", lines)
	}
}
