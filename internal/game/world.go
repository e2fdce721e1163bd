// Package game implements orbit: a ship dodging and shooting space garbage
// under a starfield, driven one tick at a time by a cooperative scheduler.
//
// Every moving thing on screen is a task. Tasks share a World and talk to
// each other only through it: falling garbage registers its box, shots mark
// hit boxes, and garbage reacts to its mark on its own next turn.
package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit/internal/assets"
	"github.com/vovakirdan/orbit/internal/audio"
	"github.com/vovakirdan/orbit/internal/config"
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/registry"
	"github.com/vovakirdan/orbit/internal/sched"
)

// World is the state shared by every task of one game.
type World struct {
	Screen    *core.Screen
	Obstacles *registry.Registry
	Hits      *registry.HitSet
	Clock     *config.DifficultyClock
	Cfg       config.GameConfig
	Frames    assets.Frames
	Input     core.InputSource
	Sound     audio.Player
	Log       *log.Logger

	rng       *rand.Rand
	spawn     func(sched.Task)
	gameOver  bool
	destroyed int
}

// Spawn queues a task for the next tick.
func (w *World) Spawn(t sched.Task) {
	w.spawn(t)
}

// Rows returns the screen height.
func (w *World) Rows() int { return w.Screen.Rows() }

// Cols returns the screen width.
func (w *World) Cols() int { return w.Screen.Cols() }

// GameOver reports whether the ship has been destroyed.
func (w *World) GameOver() bool { return w.gameOver }

// Destroyed returns how many obstacles were shot down.
func (w *World) Destroyed() int { return w.destroyed }

// Frozen reports whether the game is over and the freeze policy applies.
func (w *World) Frozen() bool {
	return w.gameOver && w.Cfg.AfterGameOver == config.AfterGameOverFreeze
}

// intn returns a random int in [lo, hi]. An empty range yields lo.
func (w *World) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}
