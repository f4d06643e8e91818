package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("NewScreen(40, 12) = %dx%d", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(5, 2)

	// Writes outside the buffer are dropped
	s.Set(-1, 0, 'A')
	s.Set(5, 0, 'A')
	s.SetColored(0, -1, 'A', ColorTileExact)
	s.SetColored(0, 2, 'A', ColorTileExact)

	if got := s.String(); got != "     \n     " {
		t.Errorf("String() after out-of-bounds writes = %q", got)
	}
	if c := s.GetCell(-1, 0); c != blank {
		t.Errorf("GetCell(-1, 0) = %+v, expected blank", c)
	}
	if r := s.Get(0, 9); r != ' ' {
		t.Errorf("Get(0, 9) = %q, expected space", r)
	}
}

func TestScreenTileColors(t *testing.T) {
	s := NewScreen(12, 1)
	tiles := []struct {
		letter rune
		color  Color
	}{
		{'C', ColorTilePresent},
		{'R', ColorTileExact},
		{'A', ColorTileAbsent},
	}
	for i, tile := range tiles {
		s.SetColored(i*4+1, 0, tile.letter, tile.color)
	}

	for i, tile := range tiles {
		if c := s.GetCell(i*4+1, 0); c.Rune != tile.letter || c.Color != tile.color {
			t.Errorf("tile %d = %+v, expected %q in %v", i, c, tile.letter, tile.color)
		}
	}

	// Plain Set resets the color slot
	s.Set(1, 0, 'X')
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("Set kept color %v, expected default", c.Color)
	}

	s.Clear()
	if c := s.GetCell(5, 0); c != blank {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"fits", 2, "QWERTY", "  QWERTY  "},
		{"clipped right", 7, "ASDF", "       ASD"},
		{"clipped left", -2, "ZXCV", "CV        "},
		{"multibyte", 0, "·_·", "·_·       "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColored(tt.x, 0, tt.text, ColorGray)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(21, 1)
	s.DrawTextCentered(0, "W O R D L E", ColorBrightWhite)

	// 11 runes in 21 columns start at column 5
	if got := s.Row(0); got != "     W O R D L E     " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(5, 0); c.Color != ColorBrightWhite {
		t.Errorf("centered text color = %v, expected bright white", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(0, 0, 7, 4), ColorGray)

	want := []string{
		"┌─────┐",
		"│     │",
		"│     │",
		"└─────┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, want %q", y, got, line)
		}
	}
	if c := s.GetCell(0, 0); c.Color != ColorGray {
		t.Errorf("box color = %v, expected gray", c.Color)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "CRANE")
	s.SetColored(0, 0, 'C', ColorTileExact)
	s.DrawText(0, 5, "SLATE")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize(4, 3) = %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "CRAN" {
		t.Errorf("Row(0) after shrink = %q", got)
	}

	s.Resize(12, 8)
	if got := s.Row(0); !strings.HasPrefix(got, "CRAN ") {
		t.Errorf("Row(0) after grow = %q", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorTileExact {
		t.Errorf("Resize dropped cell color, got %v", c.Color)
	}
	if got := s.Row(5); strings.TrimSpace(got) != "" {
		t.Errorf("Row(5) should be blank after shrink and grow, got %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, want blanks", got)
	}
}
