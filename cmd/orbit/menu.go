package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/orbit/internal/platform/tui"
	"github.com/vovakirdan/orbit/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively, then play",
	Long: `Show the start menu. Pick a difficulty to launch a game, or press Tab
to browse the run history. After a game you return to the menu.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	for {
		width, height := 80, 24
		if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}

		result, err := tui.RunMenu(width, height)
		if err != nil {
			fail("%v", err)
		}

		switch {
		case result.Play:
			flagDifficulty = string(result.Preset)
			runPlay(cmd, nil)
		case result.Scoreboard:
			showBoard(width, height)
		default:
			return
		}
	}
}

// showBoard opens the scoreboard, reporting problems without exiting.
func showBoard(width, height int) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return
	}
	defer store.Close()
	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
