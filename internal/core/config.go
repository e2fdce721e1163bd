package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Rows         int           // Grid height in characters
	Cols         int           // Grid width in characters
	TickInterval time.Duration // Fixed pause between ticks
	Seed         int64         // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:         24,
		Cols:         80,
		TickInterval: 100 * time.Millisecond,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Obstacles destroyed
	Year     int  // Current in-universe year
	Ticks    int  // Ticks simulated so far
	GameOver bool // Whether the ship has been destroyed
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Tasks int // Live tasks after the tick
}
