package game

import (
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/registry"
	"github.com/vovakirdan/orbit/internal/sched"
)

type garbagePhase int

const (
	garbageEnter garbagePhase = iota
	garbageFall
	garbageExplode
)

// Garbage is a falling obstacle. While on screen its box is registered so
// shots and the ship can find it; a shot marks it and it explodes on its
// next turn.
type Garbage struct {
	w         *World
	frame     string
	row       float64
	col       int
	speed     float64
	id        registry.ID
	phase     garbagePhase
	explosion *Explosion
}

// NewGarbage creates an obstacle entering at the top of column col.
func NewGarbage(w *World, col int, frame string) *Garbage {
	return &Garbage{
		w:     w,
		frame: frame,
		col:   core.Clamp(col, 0, w.Cols()-1),
		speed: w.Cfg.Garbage.Speed,
	}
}

// Resume implements sched.Task.
func (g *Garbage) Resume() (sched.Status, error) {
	switch g.phase {
	case garbageEnter:
		g.show()
		g.phase = garbageFall
		return sched.Suspended, nil

	case garbageFall:
		g.hide()

		if g.w.Hits.Has(g.id) {
			g.w.Hits.Clear(g.id)
			g.w.destroyed++
			g.w.Log.Debug("obstacle destroyed", "id", g.id, "row", core.Round(g.row), "col", g.col)

			box := g.box()
			row, col := box.Center()
			g.explosion = NewExplosion(g.w, row, col)
			g.phase = garbageExplode
			return g.explosion.Resume()
		}
		if g.w.Frozen() {
			return sched.Done, nil
		}

		g.row += g.speed
		if g.row >= float64(g.w.Rows()) {
			return sched.Done, nil
		}
		g.show()
		return sched.Suspended, nil

	default:
		return g.explosion.Resume()
	}
}

// show registers the current box and draws the frame.
func (g *Garbage) show() {
	g.id = g.w.Obstacles.Register(g.box())
	g.w.Screen.DrawFrame(core.Round(g.row), g.col, g.frame, core.StyleNormal, false)
}

// hide deregisters the box and erases the frame.
func (g *Garbage) hide() {
	g.w.Obstacles.Deregister(g.id)
	g.w.Screen.DrawFrame(core.Round(g.row), g.col, g.frame, core.StyleNormal, true)
}

func (g *Garbage) box() core.Rect {
	return core.FrameRect(core.Round(g.row), g.col, g.frame)
}
