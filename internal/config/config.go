// Package config provides YAML-based game configuration loading and the
// difficulty clock that drives spawn rates and captions.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/orbit/internal/physics"
)

// ErrInvalidScenario is returned when the year tables cannot drive a game.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// GameConfig contains all configuration for a game of orbit.
type GameConfig struct {
	TickIntervalMS int              `yaml:"tick_interval_ms"`
	Stars          StarsConfig      `yaml:"stars"`
	Ship           ShipConfig       `yaml:"ship"`
	Projectile     ProjectileConfig `yaml:"projectile"`
	Garbage        GarbageConfig    `yaml:"garbage"`
	Scenario       ScenarioConfig   `yaml:"scenario"`
	AfterGameOver  GameOverPolicy   `yaml:"after_game_over"`
	DebugBoxes     bool             `yaml:"debug_boxes"`
}

// StarsConfig defines the blinking starfield.
type StarsConfig struct {
	Count     int    `yaml:"count"`
	Symbols   string `yaml:"symbols"`    // One star is picked per rune
	MaxOffset int    `yaml:"max_offset"` // Upper bound of the random first-blink delay
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	SpeedLimit   float64 `yaml:"speed_limit"`
	Acceleration float64 `yaml:"acceleration"`
	Fading       float64 `yaml:"fading"`
	Deadzone     float64 `yaml:"deadzone"`
	FrameTicks   int     `yaml:"frame_ticks"` // Ticks each of the two frames is shown
	GunYear      int     `yaml:"gun_year"`    // Year from which the ship is armed
}

// PhysicsParams converts the ship tuning into inertia parameters.
func (s ShipConfig) PhysicsParams() physics.Params {
	return physics.Params{
		Limit:        s.SpeedLimit,
		Acceleration: s.Acceleration,
		Fading:       s.Fading,
		Deadzone:     s.Deadzone,
	}
}

// ProjectileConfig defines shots fired by the ship.
type ProjectileConfig struct {
	RowSpeed     float64 `yaml:"row_speed"`
	ColSpeed     float64 `yaml:"col_speed"`
	OpeningSalvo bool    `yaml:"opening_salvo"` // Fire one slow shot from the bottom at start
	SalvoSpeed   float64 `yaml:"salvo_speed"`
}

// GarbageConfig defines falling obstacles.
type GarbageConfig struct {
	Speed float64 `yaml:"speed"` // Rows per tick
}

// ScenarioConfig defines the in-universe calendar.
type ScenarioConfig struct {
	StartYear    int            `yaml:"start_year"`
	TicksPerYear int            `yaml:"ticks_per_year"`
	SpawnDelays  []SpawnStep    `yaml:"spawn_delays"`
	Captions     map[int]string `yaml:"captions"`
}

// SpawnStep sets the spawn delay from a given year on.
type SpawnStep struct {
	From  int `yaml:"from"`
	Delay int `yaml:"delay"` // Ticks between spawns
}

// GameOverPolicy decides which tasks keep running after the ship is destroyed.
type GameOverPolicy string

const (
	// AfterGameOverContinue leaves every task running.
	AfterGameOverContinue GameOverPolicy = "continue"
	// AfterGameOverFreeze stops spawning and the calendar, and clears
	// obstacles and projectiles; stars, explosions and the banner keep going.
	AfterGameOverFreeze GameOverPolicy = "freeze"
)

// ParseGameOverPolicy validates a policy name. Empty means continue.
func ParseGameOverPolicy(s string) (GameOverPolicy, error) {
	switch GameOverPolicy(s) {
	case "", AfterGameOverContinue:
		return AfterGameOverContinue, nil
	case AfterGameOverFreeze:
		return AfterGameOverFreeze, nil
	default:
		return "", fmt.Errorf("config: unknown after_game_over policy %q (want continue or freeze)", s)
	}
}

// TickInterval returns the pause between ticks.
func (c GameConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("config: tick_interval_ms must be positive, got %d", c.TickIntervalMS)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("config: stars.count must not be negative, got %d", c.Stars.Count)
	}
	if c.Stars.Count > 0 && c.Stars.Symbols == "" {
		return errors.New("config: stars.symbols must not be empty")
	}
	if c.Stars.MaxOffset < 0 {
		return fmt.Errorf("config: stars.max_offset must not be negative, got %d", c.Stars.MaxOffset)
	}
	if c.Ship.FrameTicks <= 0 {
		return fmt.Errorf("config: ship.frame_ticks must be positive, got %d", c.Ship.FrameTicks)
	}
	if err := c.Ship.PhysicsParams().Validate(); err != nil {
		return fmt.Errorf("config: ship: %w", err)
	}
	if c.Projectile.RowSpeed == 0 && c.Projectile.ColSpeed == 0 {
		return errors.New("config: projectile speed must not be zero")
	}
	if c.Garbage.Speed <= 0 {
		return fmt.Errorf("config: garbage.speed must be positive, got %v", c.Garbage.Speed)
	}
	if _, err := ParseGameOverPolicy(string(c.AfterGameOver)); err != nil {
		return err
	}
	return c.Scenario.Validate()
}

// Validate checks that the spawn table is ordered by year and its delays
// never grow as the years advance.
func (s ScenarioConfig) Validate() error {
	if s.TicksPerYear <= 0 {
		return fmt.Errorf("%w: ticks_per_year must be positive, got %d", ErrInvalidScenario, s.TicksPerYear)
	}
	for i, step := range s.SpawnDelays {
		if step.Delay <= 0 {
			return fmt.Errorf("%w: delay for %d must be positive, got %d", ErrInvalidScenario, step.From, step.Delay)
		}
		if i == 0 {
			continue
		}
		prev := s.SpawnDelays[i-1]
		if step.From <= prev.From {
			return fmt.Errorf("%w: spawn_delays not ordered by year (%d after %d)", ErrInvalidScenario, step.From, prev.From)
		}
		if step.Delay > prev.Delay {
			return fmt.Errorf("%w: delay grows from %d (%d) to %d (%d)",
				ErrInvalidScenario, prev.Delay, prev.From, step.Delay, step.From)
		}
	}
	return nil
}
