// Package registry tracks the hit-boxes of hazards currently on screen and the
// set of hazards a projectile has struck.
//
// Falling obstacles register their box when they appear and deregister it when
// they leave; projectiles and the ship only read. Obstacles are addressed by a
// stable ID so other tasks can refer to one without holding a pointer to it.
package registry

import (
	"github.com/vovakirdan/orbit/internal/core"
)

// ID identifies a registered obstacle. IDs are never reused within a Registry.
type ID uint64

// Obstacle is the bounding box of a hazard currently on screen.
type Obstacle struct {
	ID  ID
	Box core.Rect
}

// Registry is the shared collection of live obstacle boxes.
// It is not safe for concurrent use; all tasks run on one goroutine.
type Registry struct {
	obstacles []Obstacle
	nextID    ID
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		obstacles: make([]Obstacle, 0, 16),
	}
}

// Register appends a box and returns its ID.
func (r *Registry) Register(box core.Rect) ID {
	r.nextID++
	r.obstacles = append(r.obstacles, Obstacle{ID: r.nextID, Box: box})
	return r.nextID
}

// Deregister removes the obstacle with the given ID.
// Returns false if it was not registered.
func (r *Registry) Deregister(id ID) bool {
	for i, o := range r.obstacles {
		if o.ID != id {
			continue
		}
		// Build a fresh slice so copies handed out by Boxes stay intact.
		rest := make([]Obstacle, 0, len(r.obstacles)-1)
		rest = append(rest, r.obstacles[:i]...)
		rest = append(rest, r.obstacles[i+1:]...)
		r.obstacles = rest
		return true
	}
	return false
}

// Boxes returns the live obstacles in registration order.
// The returned slice must be treated as read-only.
func (r *Registry) Boxes() []Obstacle {
	return r.obstacles
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// FindRect returns the first registered obstacle overlapping box.
func (r *Registry) FindRect(box core.Rect) (Obstacle, bool) {
	for _, o := range r.obstacles {
		if o.Box.Intersects(box) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// FindPoint returns the first registered obstacle covering the cell (row, col).
func (r *Registry) FindPoint(row, col int) (Obstacle, bool) {
	return r.FindRect(core.NewRect(row, col, 1, 1))
}

// TestRect reports whether box overlaps any registered obstacle.
func (r *Registry) TestRect(box core.Rect) bool {
	_, ok := r.FindRect(box)
	return ok
}

// TestPoint reports whether the cell (row, col) lies inside any registered obstacle.
func (r *Registry) TestPoint(row, col int) bool {
	_, ok := r.FindPoint(row, col)
	return ok
}
