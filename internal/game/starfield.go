package game

import (
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/sched"
)

// blinkStep is one brightness phase of a star.
type blinkStep struct {
	style core.Style
	ticks int
}

// A star cycles dim, normal, bold, normal forever.
var blinkCycle = [...]blinkStep{
	{core.StyleDim, 20},
	{core.StyleNormal, 3},
	{core.StyleBold, 5},
	{core.StyleNormal, 3},
}

// Blink is a star that cycles through brightness phases.
type Blink struct {
	w      *World
	row    int
	col    int
	symbol rune
	wait   int // Ticks left before the next phase is drawn
	phase  int
}

// NewBlink creates a star whose first phase is drawn after offset ticks.
func NewBlink(w *World, row, col, offset int, symbol rune) *Blink {
	return &Blink{w: w, row: row, col: col, symbol: symbol, wait: max(offset, 0)}
}

// Resume implements sched.Task.
func (b *Blink) Resume() (sched.Status, error) {
	if b.wait > 0 {
		b.wait--
		return sched.Suspended, nil
	}
	step := blinkCycle[b.phase]
	b.w.Screen.Set(b.row, b.col, b.symbol, step.style)
	b.wait = step.ticks - 1
	b.phase = (b.phase + 1) % len(blinkCycle)
	return sched.Suspended, nil
}

// spawnStars scatters the configured number of stars inside the border.
func spawnStars(w *World) {
	cfg := w.Cfg.Stars
	symbols := []rune(cfg.Symbols)
	if len(symbols) == 0 {
		return
	}
	for range cfg.Count {
		row := w.intn(1, w.Rows()-2)
		col := w.intn(1, w.Cols()-2)
		offset := w.intn(0, cfg.MaxOffset)
		symbol := symbols[w.rng.Intn(len(symbols))]
		w.Spawn(NewBlink(w, row, col, offset, symbol))
	}
}
