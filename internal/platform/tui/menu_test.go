package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbit/internal/config"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name  string
		moves []tea.KeyMsg
		want  config.DifficultyPreset
	}{
		{"default", nil, config.DifficultyNormal},
		{"down twice", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, config.DifficultyHard},
		{"clamped at bottom", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j')}, config.DifficultyFixed},
		{"clamped at top", []tea.KeyMsg{{Type: tea.KeyUp}, runeKey('j'), {Type: tea.KeyUp}, {Type: tea.KeyUp}}, config.DifficultyNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(80, 24)
			for _, msg := range tt.moves {
				m = menuUpdate(t, m, msg)
			}
			m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.Selected() == nil || m.Selected().Preset != tt.want {
				t.Errorf("Selected() = %+v, want %s", m.Selected(), tt.want)
			}
		})
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(80, 24), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() || m.Selected() != nil {
		t.Error("tab did not request the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(80, 24), runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q did not quit")
	}
}

func TestMenuViewListsPresets(t *testing.T) {
	view := NewMenuModel(80, 24).View()
	for _, item := range MenuItems() {
		if !strings.Contains(view, item.Title) {
			t.Errorf("view lacks %q", item.Title)
		}
	}
	if !strings.Contains(view, "> Normal") {
		t.Error("cursor not on the first item")
	}
}
