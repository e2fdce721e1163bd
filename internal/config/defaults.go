package config

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches the embedded defaults/orbit.yaml.
func DefaultConfig() GameConfig {
	return GameConfig{
		TickIntervalMS: 100,
		Stars: StarsConfig{
			Count:     100,
			Symbols:   "+*.:",
			MaxOffset: 20,
		},
		Ship: ShipConfig{
			SpeedLimit:   2.0,
			Acceleration: 0.75,
			Fading:       0.8,
			Deadzone:     0.1,
			FrameTicks:   2,
			GunYear:      2020,
		},
		Projectile: ProjectileConfig{
			RowSpeed:     -1.0,
			OpeningSalvo: true,
			SalvoSpeed:   -0.3,
		},
		Garbage: GarbageConfig{
			Speed: 0.5,
		},
		Scenario: ScenarioConfig{
			StartYear:    1957,
			TicksPerYear: 15,
			SpawnDelays: []SpawnStep{
				{From: 1961, Delay: 20},
				{From: 1969, Delay: 14},
				{From: 1981, Delay: 10},
				{From: 1995, Delay: 8},
				{From: 2010, Delay: 6},
				{From: 2020, Delay: 2},
			},
			Captions: map[int]string{
				1957: "First Sputnik",
				1961: "Gagarin flew!",
				1969: "Armstrong got on the moon!",
				1971: "First orbital space station Salute-1",
				1981: "Flight of the Shuttle Columbia",
				1998: "ISS start building",
				2011: "Messenger launch to Mercury",
				2020: "Take the plasma gun! Shoot the garbage!",
			},
		},
		AfterGameOver: AfterGameOverContinue,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
