package game

import "github.com/vovakirdan/orbit/internal/sched"

// Spawner drops a new piece of garbage every spawn delay once the calendar
// allows it.
type Spawner struct {
	w    *World
	wait int
}

// NewSpawner creates the garbage spawner.
func NewSpawner(w *World) *Spawner {
	return &Spawner{w: w}
}

// Resume implements sched.Task.
func (s *Spawner) Resume() (sched.Status, error) {
	if s.w.Frozen() {
		return sched.Done, nil
	}
	if s.wait > 0 {
		s.wait--
		return sched.Suspended, nil
	}

	delay, ok := s.w.Clock.SpawnDelay()
	if !ok {
		return sched.Suspended, nil
	}
	frames := s.w.Frames.Garbage
	if len(frames) > 0 {
		frame := frames[s.w.rng.Intn(len(frames))]
		col := s.w.intn(0, s.w.Cols()-1)
		s.w.Spawn(NewGarbage(s.w, col, frame))
		s.w.Log.Debug("garbage spawned", "col", col, "year", s.w.Clock.Year(), "delay", delay)
	}
	s.wait = delay - 1
	return sched.Suspended, nil
}
