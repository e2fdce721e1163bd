package core

import (
	"strings"
	"unicode/utf8"
)

// FrameSize measures a multi-line glyph and returns its footprint in rows and
// columns. The width is the longest line in runes.
func FrameSize(frame string) (rows, cols int) {
	lines := FrameLines(frame)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > cols {
			cols = n
		}
	}
	return len(lines), cols
}

// FrameLines splits a frame into lines the way it is drawn.
// A single trailing newline does not produce an extra empty row.
func FrameLines(frame string) []string {
	if frame == "" {
		return nil
	}
	frame = strings.TrimSuffix(frame, "\n")
	frame = strings.ReplaceAll(frame, "\r\n", "\n")
	return strings.Split(frame, "\n")
}

// FrameRect returns the hit-box of a frame drawn with its corner at (row, col).
func FrameRect(row, col int, frame string) Rect {
	h, w := FrameSize(frame)
	return NewRect(row, col, h, w)
}
