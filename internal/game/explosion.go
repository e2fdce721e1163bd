package game

import (
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/sched"
)

// Explosion plays its frames centered on a point, one frame per tick,
// erasing each frame before the next is drawn.
type Explosion struct {
	w         *World
	frames    []string
	centerRow int
	centerCol int
	next      int
	drawn     bool
}

// NewExplosion creates an explosion centered on (row, col).
func NewExplosion(w *World, row, col int) *Explosion {
	return &Explosion{w: w, frames: w.Frames.Explosion, centerRow: row, centerCol: col}
}

// Resume implements sched.Task.
func (e *Explosion) Resume() (sched.Status, error) {
	if e.drawn {
		e.drawFrame(e.frames[e.next], true)
		e.next++
		e.drawn = false
	}
	if e.next >= len(e.frames) {
		return sched.Done, nil
	}
	e.drawFrame(e.frames[e.next], false)
	e.drawn = true
	return sched.Suspended, nil
}

func (e *Explosion) drawFrame(frame string, erase bool) {
	h, w := core.FrameSize(frame)
	e.w.Screen.DrawFrame(e.centerRow-h/2, e.centerCol-w/2, frame, core.StyleBold, erase)
}
