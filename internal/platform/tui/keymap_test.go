package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbit/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapControls(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Controls
		ok   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.Controls{DRow: -1}, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.Controls{DRow: 1}, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.Controls{DCol: -1}, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.Controls{DCol: 1}, true},
		{"wasd up", runeKey('w'), core.Controls{DRow: -1}, true},
		{"vim right", runeKey('l'), core.Controls{DCol: 1}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Controls{Fire: true}, true},
		{"pause is not a control", runeKey('p'), core.Controls{}, false},
		{"unbound", runeKey('z'), core.Controls{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Controls(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Controls(%q) = %+v, %v; want %+v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyMapRestartStartsDisabled(t *testing.T) {
	keys := DefaultKeyMap()
	if keys.Restart.Enabled() {
		t.Error("restart should be disabled until game over")
	}
	if key.Matches(runeKey('r'), keys.Restart) {
		t.Error("disabled restart binding matched")
	}
	keys.Restart.SetEnabled(true)
	if !key.Matches(runeKey('r'), keys.Restart) {
		t.Error("enabled restart binding did not match")
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()
	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 9 {
		t.Errorf("FullHelp lists %d bindings, want 9", n)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
}
