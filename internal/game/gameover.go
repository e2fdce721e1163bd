package game

import (
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/sched"
)

// GameOver redraws the game over banner in the middle of the screen every
// tick. It never finishes.
type GameOver struct {
	w *World
}

// NewGameOver creates the banner task.
func NewGameOver(w *World) *GameOver {
	return &GameOver{w: w}
}

// Resume implements sched.Task.
func (g *GameOver) Resume() (sched.Status, error) {
	banner := g.w.Frames.GameOver
	h, w := core.FrameSize(banner)
	row := g.w.Rows()/2 - h/2
	col := g.w.Cols()/2 - w/2
	g.w.Screen.DrawFrame(row, col, banner, core.StyleBold, false)
	return sched.Suspended, nil
}
