package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen should be blank, got %q", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColor(p[0], p[1], 'X', ColorRed)
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) outside the screen should be a space", p[0], p[1])
		}
		if s.GetCell(p[0], p[1]) != blank {
			t.Errorf("GetCell(%d, %d) outside the screen should be blank", p[0], p[1])
		}
	}
	if s.String() != NewScreen(4, 4).String() {
		t.Error("writes outside the screen must be dropped")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(5, 5)

	s.SetColor(1, 2, '▓', ColorBrown)
	if cell := s.GetCell(1, 2); cell.Rune != '▓' || cell.Color != ColorBrown {
		t.Errorf("GetCell(1, 2) = %+v, expected brown '▓'", cell)
	}

	s.Set(1, 2, 'x')
	if cell := s.GetCell(1, 2); cell.Rune != 'x' || cell.Color != ColorDefault {
		t.Errorf("Set should write an uncolored rune, got %+v", cell)
	}

	s.Clear()
	if s.GetCell(1, 2) != blank {
		t.Error("Clear should blank every cell")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		row  int
		want string
	}{
		{"plain", func(s *Screen) { s.DrawText(2, 0, "moves") }, 0, "  moves   "},
		{"clipped right", func(s *Screen) { s.DrawText(7, 0, "pushes") }, 0, "       pus"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "goals") }, 0, "als       "},
		{"centered", func(s *Screen) { s.DrawTextCentered(1, "WIN", ColorGreen) }, 1, "   WIN    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 2)
			tc.draw(s)
			if got := s.Row(tc.row); got != tc.want {
				t.Errorf("Row(%d) = %q, expected %q", tc.row, got, tc.want)
			}
		})
	}
}

func TestScreenTextColor(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColor(0, 0, "REC", ColorRed)

	for x := 0; x < 3; x++ {
		if s.GetCell(x, 0).Color != ColorRed {
			t.Errorf("cell %d should be red", x)
		}
	}
	if s.GetCell(3, 0).Color != ColorDefault {
		t.Error("color should stop at the end of the text")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDarkGray)

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, want)
	}
	if s.GetCell(0, 0).Color != ColorDarkGray {
		t.Error("box should use the given color")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size after shrink = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if s.Row(0) != "Hel" {
		t.Errorf("row 0 after shrink = %q", s.Row(0))
	}

	s.Resize(8, 3)
	if !strings.HasPrefix(s.Row(0), "Hel     ") {
		t.Errorf("row 0 after grow = %q", s.Row(0))
	}
	if s.Row(2) != strings.Repeat(" ", 8) {
		t.Errorf("new rows should be blank, got %q", s.Row(2))
	}
	if s.Row(-1) != strings.Repeat(" ", 8) {
		t.Error("out of bounds row should be spaces")
	}
}
