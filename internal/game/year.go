package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/sched"
)

// YearTicker shows the current year and its caption near the bottom of the
// screen and advances the clock once every ticks_per_year ticks.
type YearTicker struct {
	w       *World
	started bool
	wait    int
	width   int // Length of the last line drawn
}

// NewYearTicker creates the year display.
func NewYearTicker(w *World) *YearTicker {
	return &YearTicker{w: w}
}

// Resume implements sched.Task.
func (y *YearTicker) Resume() (sched.Status, error) {
	if y.started && y.wait > 0 {
		y.wait--
		return sched.Suspended, nil
	}
	if y.started && !y.w.Frozen() {
		year := y.w.Clock.Advance()
		if caption := y.w.Clock.Caption(); caption != "" {
			y.w.Log.Debug("new era", "year", year, "caption", caption)
		}
	}
	y.started = true
	y.draw()
	y.wait = y.w.Cfg.Scenario.TicksPerYear - 1
	return sched.Suspended, nil
}

func (y *YearTicker) draw() {
	line := fmt.Sprintf("Year: %d", y.w.Clock.Year())
	if caption := y.w.Clock.Caption(); caption != "" {
		line += " - " + caption
	}
	n := len([]rune(line))
	if n < y.width {
		line += strings.Repeat(" ", y.width-n)
	}
	y.width = n
	y.w.Screen.DrawText(y.w.Rows()-2, 2, line, core.StyleNormal)
}
