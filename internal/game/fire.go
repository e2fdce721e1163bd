package game

import (
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/sched"
)

const (
	muzzleFlash  = '*'
	beamVertical = '|'
	beamSideways = '-'
)

type firePhase int

const (
	fireFlash firePhase = iota
	fireFly
)

// Fire is a projectile. It flashes at its origin for one tick, then moves
// by its velocity every tick until it leaves the screen or hits an obstacle.
type Fire struct {
	w        *World
	row, col float64
	rowSpeed float64
	colSpeed float64
	symbol   rune
	phase    firePhase
}

// NewFire creates a projectile at (row, col).
func NewFire(w *World, row, col, rowSpeed, colSpeed float64) *Fire {
	symbol := beamVertical
	if colSpeed != 0 {
		symbol = beamSideways
	}
	return &Fire{
		w:        w,
		row:      row,
		col:      col,
		rowSpeed: rowSpeed,
		colSpeed: colSpeed,
		symbol:   symbol,
	}
}

// Resume implements sched.Task.
func (f *Fire) Resume() (sched.Status, error) {
	if f.phase == fireFlash {
		if f.w.Frozen() {
			return sched.Done, nil
		}
		f.draw(muzzleFlash)
		f.phase = fireFly
		return sched.Suspended, nil
	}

	f.draw(' ')
	if f.w.Frozen() {
		return sched.Done, nil
	}

	f.row += f.rowSpeed
	f.col += f.colSpeed
	if !f.inside() {
		return sched.Done, nil
	}

	if hit, ok := f.w.Obstacles.FindPoint(core.Round(f.row), core.Round(f.col)); ok {
		f.w.Hits.Mark(hit.ID)
		return sched.Done, nil
	}

	f.draw(f.symbol)
	return sched.Suspended, nil
}

// inside reports whether the projectile is strictly within the border.
func (f *Fire) inside() bool {
	maxRow := float64(f.w.Rows() - 1)
	maxCol := float64(f.w.Cols() - 1)
	return f.row > 0 && f.row < maxRow && f.col > 0 && f.col < maxCol
}

func (f *Fire) draw(r rune) {
	f.w.Screen.Set(core.Round(f.row), core.Round(f.col), r, core.StyleBold)
}
