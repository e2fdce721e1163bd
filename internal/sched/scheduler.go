// Package sched runs cooperative tasks one step per tick.
//
// A tick merges newly spawned tasks into the live list, resumes every live
// task exactly once in spawn order, then drops the tasks that finished.
// Tasks spawned while a tick is running wait for the next tick.
package sched

import "fmt"

// Status is what a task reports after one step.
type Status int

const (
	// Suspended means the task wants to be resumed next tick.
	Suspended Status = iota
	// Done means the task has finished and must not be resumed again.
	Done
)

func (s Status) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Task is a resumable unit of animation. Resume runs until the task's next
// suspension point.
type Task interface {
	Resume() (Status, error)
}

// TaskFunc adapts a function to Task.
type TaskFunc func() (Status, error)

// Resume calls f.
func (f TaskFunc) Resume() (Status, error) { return f() }

// Scheduler owns the live task list. It is not safe for concurrent use.
type Scheduler struct {
	live    []Task
	pending []Task
	done    []bool
	ticks   int
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Spawn adds a task. It is first resumed on the next call to Tick, even when
// Spawn is called from inside a running task.
func (s *Scheduler) Spawn(t Task) {
	if t == nil {
		return
	}
	s.pending = append(s.pending, t)
}

// Tick runs one scheduling pass. The first task error stops the pass; the
// tasks not yet resumed keep their place for the next call.
func (s *Scheduler) Tick() error {
	s.ticks++

	s.live = append(s.live, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]

	snapshot := s.live
	if cap(s.done) < len(snapshot) {
		s.done = make([]bool, len(snapshot))
	}
	done := s.done[:len(snapshot)]
	clear(done)

	var runErr error
	for i, t := range snapshot {
		status, err := t.Resume()
		if err != nil {
			runErr = fmt.Errorf("sched: tick %d: task %d (%T): %w", s.ticks, i, t, err)
			break
		}
		done[i] = status == Done
	}

	kept := snapshot[:0]
	for i, t := range snapshot {
		if !done[i] {
			kept = append(kept, t)
		}
	}
	clear(snapshot[len(kept):])
	s.live = kept
	return runErr
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Pending returns the number of tasks waiting for their first tick.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Ticks returns how many passes have started.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Reset drops every task and the tick counter.
func (s *Scheduler) Reset() {
	clear(s.live)
	clear(s.pending)
	s.live = s.live[:0]
	s.pending = s.pending[:0]
	s.ticks = 0
}
