package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(24, 80)

	if s.Cols() != 80 {
		t.Errorf("Cols() = %d, expected 80", s.Cols())
	}
	if s.Rows() != 24 {
		t.Errorf("Rows() = %d, expected 24", s.Rows())
	}

	// Check that it's initialized with spaces
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			if s.Get(r, c) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(r, c), r, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', StyleBold)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Style != StyleBold {
		t.Errorf("GetCell(5, 5).Style = %v, expected bold", s.GetCell(5, 5).Style)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', StyleNormal)
	s.Set(100, 0, 'A', StyleNormal)
	s.Set(0, -1, 'A', StyleNormal)
	s.Set(0, 100, 'A', StyleNormal)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(0, 100) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawFrame(t *testing.T) {
	s := NewScreen(6, 10)
	frame := " __\n(o >\n ) (\n"

	s.DrawFrame(1, 2, frame, StyleNormal, false)

	if got := s.Row(1); got != "   __     " {
		t.Errorf("row 1 = %q", got)
	}
	if got := s.Row(2); got != "  (o >    " {
		t.Errorf("row 2 = %q", got)
	}
	if got := s.Row(3); got != "   ) (    " {
		t.Errorf("row 3 = %q", got)
	}
}

func TestScreenDrawFrameSpacesAreTransparent(t *testing.T) {
	s := NewScreen(3, 5)
	s.Set(1, 1, '*', StyleDim)

	s.DrawFrame(1, 0, "a b", StyleNormal, false)

	if s.Get(1, 1) != '*' {
		t.Errorf("space in frame overwrote existing cell, got %q", s.Get(1, 1))
	}
	if s.Get(1, 0) != 'a' || s.Get(1, 2) != 'b' {
		t.Errorf("frame not drawn, row = %q", s.Row(1))
	}
}

func TestScreenDrawFrameErase(t *testing.T) {
	s := NewScreen(5, 5)
	frame := "##\n##"

	s.DrawFrame(1, 1, frame, StyleBold, false)
	s.DrawFrame(1, 1, frame, StyleBold, true)

	if strings.Contains(s.String(), "#") {
		t.Errorf("erase left cells behind:\n%s", s.String())
	}
}

func TestScreenDrawFrameClipping(t *testing.T) {
	s := NewScreen(3, 3)

	// Must not panic on any side
	s.DrawFrame(-1, -1, "abc\ndef\nghi", StyleNormal, false)
	s.DrawFrame(2, 2, "abc\ndef", StyleNormal, false)
	s.DrawFrame(10, 10, "x", StyleNormal, false)

	if s.Get(0, 0) != 'e' {
		t.Errorf("expected clipped frame to place 'e' at (0,0), got %q", s.Get(0, 0))
	}
	if s.Get(2, 2) != 'a' {
		t.Errorf("expected 'a' at (2,2), got %q", s.Get(2, 2))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(5, 20)
	s.DrawText(1, 2, "Hello", StyleNormal)

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(1, 2+i) != ch {
			t.Errorf("DrawText: expected %q at (1, %d), got %q", ch, 2+i, s.Get(1, 2+i))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(0, 18, "Hello", StyleNormal)
	if s.Get(0, 18) != 'H' || s.Get(0, 19) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawBox(NewRect(1, 1, 3, 4), StyleDim)

	if got := s.Row(1); got != " +--+ " {
		t.Errorf("top edge = %q", got)
	}
	if got := s.Row(2); got != " |  | " {
		t.Errorf("middle = %q", got)
	}
	if got := s.Row(3); got != " +--+ " {
		t.Errorf("bottom edge = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 5)
	s.DrawText(0, 0, "AAAAA", StyleNormal)
	s.DrawText(1, 0, "BBBBB", StyleNormal)
	s.DrawText(2, 0, "CCCCC", StyleNormal)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 10)
	s.DrawText(2, 0, "Test", StyleNormal)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
