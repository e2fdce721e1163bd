package main

import (
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history",
	Long: `Open an interactive table of recorded runs.

Tab switches between the best and the latest runs.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	showBoard(width, height)
}
