package game

import (
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/sched"
)

// DebugBoxes outlines every registered obstacle box each tick.
// Cells under an outline are put back on the next tick unless another task
// drew over them in between.
type DebugBoxes struct {
	w     *World
	saved []savedCell
}

type savedCell struct {
	row, col int
	under    core.Cell
	drawn    core.Cell
}

// NewDebugBoxes creates the overlay task.
func NewDebugBoxes(w *World) *DebugBoxes {
	return &DebugBoxes{w: w}
}

// Resume implements sched.Task.
func (d *DebugBoxes) Resume() (sched.Status, error) {
	scr := d.w.Screen
	// Reverse order undoes overlapping outlines correctly.
	for i := len(d.saved) - 1; i >= 0; i-- {
		c := d.saved[i]
		if scr.GetCell(c.row, c.col) == c.drawn {
			scr.Set(c.row, c.col, c.under.Rune, c.under.Style)
		}
	}
	d.saved = d.saved[:0]

	for _, o := range d.w.Obstacles.Boxes() {
		start := len(d.saved)
		for _, p := range edgeCells(o.Box) {
			if scr.InBounds(p[0], p[1]) {
				d.saved = append(d.saved, savedCell{row: p[0], col: p[1], under: scr.GetCell(p[0], p[1])})
			}
		}
		scr.DrawBox(o.Box, core.StyleDim)
		for i := start; i < len(d.saved); i++ {
			d.saved[i].drawn = scr.GetCell(d.saved[i].row, d.saved[i].col)
		}
	}
	return sched.Suspended, nil
}

// edgeCells lists the (row, col) of every cell on the border of r.
func edgeCells(r core.Rect) [][2]int {
	if r.Empty() {
		return nil
	}
	var cells [][2]int
	for row := r.Row; row < r.Bottom(); row++ {
		for col := r.Col; col < r.Right(); col++ {
			if row == r.Row || row == r.Bottom()-1 || col == r.Col || col == r.Right()-1 {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}
