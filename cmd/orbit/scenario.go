package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit/internal/config"
)

var (
	flagScenarioConfig     string
	flagScenarioDifficulty string
	flagScenarioYAML       bool
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Print the garbage schedule and year captions",
	Long: `Print how often garbage falls in each era and the captions shown
under the year counter, after applying the config and difficulty preset.

Examples:
  orbit scenario
  orbit scenario --difficulty easy
  orbit scenario --yaml > ~/.orbit/configs/orbit.yaml`,
	Args: cobra.NoArgs,
	Run:  runScenario,
}

func init() {
	scenarioCmd.Flags().StringVar(&flagScenarioConfig, "config", "", "Path to custom game config YAML")
	scenarioCmd.Flags().StringVar(&flagScenarioDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	scenarioCmd.Flags().BoolVar(&flagScenarioYAML, "yaml", false, "Print the built-in default config instead")
}

func runScenario(_ *cobra.Command, _ []string) {
	if flagScenarioYAML {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadGameConfig(flagScenarioConfig, flagScenarioDifficulty)
	if err != nil {
		fail("%v", err)
	}
	clock := config.NewDifficultyClock(cfg.Scenario)

	fmt.Printf("Start: %d, one year every %d ticks (%v per year)\n",
		cfg.Scenario.StartYear, cfg.Scenario.TicksPerYear,
		cfg.TickInterval()*time.Duration(cfg.Scenario.TicksPerYear))
	fmt.Printf("Plasma gun: %d\n", cfg.Ship.GunYear)
	fmt.Println()

	fmt.Println("Garbage")
	steps := clock.Steps()
	if len(steps) == 0 || steps[0].From > cfg.Scenario.StartYear {
		fmt.Printf("  %-6d  none\n", cfg.Scenario.StartYear)
	}
	for _, s := range steps {
		fmt.Printf("  %-6d  every %d ticks\n", s.From, s.Delay)
	}
	fmt.Println()

	fmt.Println("Captions")
	for _, year := range clock.CaptionYears() {
		fmt.Printf("  %-6d  %s\n", year, clock.CaptionFor(year))
	}
}
