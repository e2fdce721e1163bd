package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' ', Style: StyleNormal}

// Screen is a 2D character buffer that tasks draw into.
// Unlike a per-frame canvas it is never cleared between ticks: each task erases
// what it drew before drawing again, the same way a curses window is used.
type Screen struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows: rows,
		cols: cols,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.rows)
	for r := range s.cells {
		s.cells[r] = make([]Cell, s.cols)
	}
}

// Rows returns the screen height in characters.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the screen width in characters.
func (s *Screen) Cols() int {
	return s.cols
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = blank
		}
	}
}

// InBounds reports whether (row, col) is a cell of the screen.
func (s *Screen) InBounds(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(row, col int, r rune, style Style) {
	if !s.InBounds(row, col) {
		return
	}
	s.cells[row][col] = Cell{Rune: r, Style: style}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(row, col int) rune {
	return s.GetCell(row, col).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(row, col int) Cell {
	if !s.InBounds(row, col) {
		return blank
	}
	return s.cells[row][col]
}

// DrawFrame draws a multi-line glyph with its top-left corner at (row, col).
// Spaces in the frame are transparent. With erase set, every non-space cell of
// the frame is blanked instead, which removes a frame previously drawn at the
// same position. Cells outside the screen are clipped.
func (s *Screen) DrawFrame(row, col int, frame string, style Style, erase bool) {
	for dr, line := range FrameLines(frame) {
		r := row + dr
		if r < 0 {
			continue
		}
		if r >= s.rows {
			break
		}
		dc := 0
		for _, ch := range line {
			c := col + dc
			dc++
			if c < 0 || ch == ' ' {
				continue
			}
			if c >= s.cols {
				break
			}
			if erase {
				s.cells[r][c] = blank
			} else {
				s.cells[r][c] = Cell{Rune: ch, Style: style}
			}
		}
	}
}

// DrawText writes a string horizontally starting at (row, col), spaces included.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(row, col int, text string, style Style) {
	i := 0
	for _, r := range text {
		s.Set(row, col+i, r, style)
		i++
	}
}

// DrawBox draws an ASCII outline around r.
func (s *Screen) DrawBox(r Rect, style Style) {
	if r.Empty() {
		return
	}
	for c := r.Col; c < r.Right(); c++ {
		s.Set(r.Row, c, '-', style)
		s.Set(r.Bottom()-1, c, '-', style)
	}
	for row := r.Row; row < r.Bottom(); row++ {
		s.Set(row, r.Col, '|', style)
		s.Set(row, r.Right()-1, '|', style)
	}
	s.Set(r.Row, r.Col, '+', style)
	s.Set(r.Row, r.Right()-1, '+', style)
	s.Set(r.Bottom()-1, r.Col, '+', style)
	s.Set(r.Bottom()-1, r.Right()-1, '+', style)
}

// String converts the screen buffer to plain text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.rows*s.cols + s.rows)

	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < s.cols; c++ {
			sb.WriteRune(s.cells[r][c].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(r int) string {
	if r < 0 || r >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	var sb strings.Builder
	for _, cell := range s.cells[r] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
