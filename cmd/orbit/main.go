// orbit is a terminal space shooter: steer a rocket through falling space
// garbage and shoot it down once the plasma gun is invented.
//
// Usage:
//
//	orbit play              - Play in this terminal
//	orbit menu              - Pick a difficulty, then play
//	orbit serve             - Start SSH server for remote play
//	orbit scores            - Print the best runs
//	orbit board             - Browse run history interactively
//	orbit scenario          - Print the spawn table and year captions
//
// Global flags:
//
//	--tick <ms>     - Milliseconds per tick (default: from config, 100)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.orbit/orbit.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit/internal/config"
)

var (
	// Global flags
	flagTick   int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Orbit - dodge and shoot space garbage in your terminal",
	Long: `Orbit is a terminal space shooter. Your rocket starts in 1957 among the
first satellites; every year more garbage falls from orbit, and in 2020 you
finally get a plasma gun.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - Print the best runs
  board     - Browse run history interactively
  menu      - Pick a difficulty interactively, then play
  scenario  - Print the spawn table and year captions

Examples:
  orbit play
  orbit play --difficulty hard --sound
  orbit serve --ssh :2222
  orbit scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Milliseconds per tick (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbit/orbit.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(scenarioCmd)
}

// loadGameConfig loads the config file and applies the difficulty preset
// and the global tick flag.
func loadGameConfig(path, difficulty string) (config.GameConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagTick > 0 {
		cfg.TickIntervalMS = flagTick
	}
	return cfg, cfg.Validate()
}
