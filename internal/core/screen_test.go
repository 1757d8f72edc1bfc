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

	// Check that it's initialized with blank black cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.Get(x, y)
			if c.Rune != ' ' || c.BG != ColorBlack {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, Cell{Rune: 'X', FG: ColorRed, BG: ColorBlack})
	if s.Get(5, 5).Rune != 'X' {
		t.Errorf("Get(5, 5).Rune = %q, expected 'X'", s.Get(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, Cell{Rune: 'A'})
	s.Set(100, 0, Cell{Rune: 'A'})
	s.Set(0, -1, Cell{Rune: 'A'})
	s.Set(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return a blank cell")
	}
	if s.Get(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), ColorRed)
	s.DrawText(0, 0, "XXXX", ColorWhite)

	s.SetBackground(ColorDarkGray)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.Get(x, y)
			if c.Rune != ' ' || c.BG != ColorDarkGray {
				t.Errorf("After Clear, expected blank gray at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y).BG != ColorGreen {
				t.Errorf("FillRect: expected green at (%d, %d), got %v", x, y, s.Get(x, y).BG)
			}
		}
	}

	if s.Get(1, 1).BG != ColorBlack {
		t.Error("FillRect should not affect outside area")
	}
	if s.Get(5, 5).BG != ColorBlack {
		t.Error("FillRect should not affect outside area")
	}

	// Partially off-screen rects are clipped
	s.FillRect(NewRect(-5, 8, 7, 10), ColorRed)
	if s.Get(0, 9).BG != ColorRed || s.Get(1, 8).BG != ColorRed {
		t.Error("FillRect should clip to the screen")
	}
}

func TestScreenPaintBlends(t *testing.T) {
	s := NewScreen(2, 1)
	s.Paint(0, 0, ColorWhite)
	s.Paint(0, 0, RGBA(0, 0, 0, 0x80))

	bg := s.Get(0, 0).BG
	if !bg.Opaque() || bg.R == 0 || bg.R == 0xff {
		t.Errorf("Paint should blend translucent colors, got %v", bg)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.FillRect(NewRect(0, 1, 20, 1), ColorGray)
	s.DrawText(2, 1, "Hello", ColorRed)

	expected := "Hello"
	for i, ch := range expected {
		c := s.Get(2+i, 1)
		if c.Rune != ch || c.FG != ColorRed {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
		if c.BG != ColorGray {
			t.Errorf("DrawText should keep background, got %v", c.BG)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite) // Only "He" should fit
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
	s.DrawText(-2, 2, "abcd", ColorWhite)
	if s.Get(0, 2).Rune != 'c' {
		t.Errorf("Text should be clipped at left boundary, got %q", s.Get(0, 2).Rune)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorWhite)
	s.DrawText(0, 1, "BBBBB", ColorWhite)
	s.DrawText(0, 2, "CCCCC", ColorWhite)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorWhite)
	s.DrawText(0, 5, "World", ColorWhite)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorWhite)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
