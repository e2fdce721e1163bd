package game

import (
	"fmt"

	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/physics"
	"github.com/vovakirdan/orbit/internal/sched"
)

// Ship is the player. It moves with inertia, fires once armed, and ends
// the game when its box touches an obstacle.
type Ship struct {
	w        *World
	row, col float64
	rowSpeed float64
	colSpeed float64
	params   physics.Params

	frame     int // Index into World.Frames.Ship
	frameTick int
	drawn     string // Frame currently on screen, "" if none
	drawnRow  int
	drawnCol  int
}

// NewShip creates the ship with its top-left corner at (row, col).
func NewShip(w *World, row, col float64) *Ship {
	return &Ship{
		w:      w,
		row:    row,
		col:    col,
		params: w.Cfg.Ship.PhysicsParams(),
	}
}

// Resume implements sched.Task.
func (s *Ship) Resume() (sched.Status, error) {
	if s.drawn != "" {
		s.w.Screen.DrawFrame(s.drawnRow, s.drawnCol, s.drawn, core.StyleNormal, true)
		s.drawn = ""
	}

	frame := s.w.Frames.Ship[s.frame]

	in := s.w.Input.Poll()
	if err := s.move(in, frame); err != nil {
		return sched.Done, err
	}

	box := core.FrameRect(core.Round(s.row), core.Round(s.col), frame)
	if hit, ok := s.w.Obstacles.FindRect(box); ok {
		row, col := box.Center()
		s.w.Spawn(NewExplosion(s.w, row, col))
		s.w.Spawn(NewGameOver(s.w))
		s.w.gameOver = true
		s.w.Log.Info("ship destroyed", "obstacle", hit.ID, "year", s.w.Clock.Year(), "score", s.w.destroyed)
		return sched.Done, nil
	}

	if in.Fire && s.w.Clock.Armed(s.w.Cfg.Ship.GunYear) {
		_, w := core.FrameSize(frame)
		p := s.w.Cfg.Projectile
		s.w.Spawn(NewFire(s.w, s.row, s.col+float64(w)/2, p.RowSpeed, p.ColSpeed))
		s.w.Sound.Fire()
	}

	s.drawnRow, s.drawnCol = box.Row, box.Col
	s.w.Screen.DrawFrame(s.drawnRow, s.drawnCol, frame, core.StyleNormal, false)
	s.drawn = frame

	s.frameTick++
	if s.frameTick >= s.w.Cfg.Ship.FrameTicks {
		s.frameTick = 0
		s.frame = (s.frame + 1) % len(s.w.Frames.Ship)
	}
	return sched.Suspended, nil
}

// move applies one tick of input and inertia, keeping the ship on screen.
// Hitting a wall stops motion along that axis.
func (s *Ship) move(in core.Controls, frame string) error {
	rowSpeed, colSpeed, err := physics.UpdateVelocity(s.rowSpeed, s.colSpeed, in.DRow, in.DCol, s.params)
	if err != nil {
		return fmt.Errorf("ship: %w", err)
	}
	s.rowSpeed, s.colSpeed = rowSpeed, colSpeed

	h, w := core.FrameSize(frame)
	maxRow := float64(max(s.w.Rows()-h, 0))
	maxCol := float64(max(s.w.Cols()-w, 0))

	row := s.row + float64(in.DRow) + s.rowSpeed
	col := s.col + float64(in.DCol) + s.colSpeed
	s.row = core.ClampF(row, 0, maxRow)
	s.col = core.ClampF(col, 0, maxCol)
	if s.row != row {
		s.rowSpeed = 0
	}
	if s.col != col {
		s.colSpeed = 0
	}
	return nil
}
