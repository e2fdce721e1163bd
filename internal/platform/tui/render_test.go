package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/orbit/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(3, 5)
	s.DrawText(0, 0, "ab", core.StyleDim)
	s.DrawText(0, 2, "cde", core.StyleBold)
	s.Set(1, 4, '*', core.StyleNormal)
	s.DrawFrame(2, 1, "xy", core.StyleNormal, false)

	got := ansi.Strip(RenderScreen(s))
	want := strings.Join([]string{"abcde", "    *", " xy  "}, "\n")
	if got != want {
		t.Errorf("RenderScreen() text =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(4, 2)
	got := RenderScreen(s)
	if n := strings.Count(got, "\n"); n != 3 {
		t.Errorf("RenderScreen() has %d newlines, want 3", n)
	}
}
