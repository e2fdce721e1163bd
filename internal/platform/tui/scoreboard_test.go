package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbit/internal/storage"
)

type fakeLister struct {
	top, recent []storage.Run
	err         error
}

func (f fakeLister) TopRuns(limit int) ([]storage.Run, error) {
	return f.top, f.err
}

func (f fakeLister) RecentRuns(limit int) ([]storage.Run, error) {
	return f.recent, f.err
}

func (f fakeLister) Stats() (*storage.Stats, error) {
	return &storage.Stats{Runs: len(f.top), BestScore: 9, BestYear: 2031}, f.err
}

func TestScoreboardToggle(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := fakeLister{
		top:    []storage.Run{{Player: "ann", Score: 9, Year: 2031, CreatedAt: when}, {Player: "bob", Score: 2, Year: 2022, CreatedAt: when}},
		recent: []storage.Run{{Player: "bob", Score: 2, Year: 2022, CreatedAt: when}},
	}
	m := NewScoreboardModel(store, 80, 24)
	if len(m.Runs()) != 2 || m.Runs()[0].Player != "ann" {
		t.Fatalf("top runs = %+v", m.Runs())
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("top view has no title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.Runs()) != 1 || m.Runs()[0].Player != "bob" {
		t.Fatalf("recent runs = %+v", m.Runs())
	}
	view := m.View()
	if !strings.Contains(view, "RECENT RUNS") || !strings.Contains(view, "best year 2031") {
		t.Errorf("recent view =\n%s", view)
	}
}

func TestScoreboardPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		store RunLister
		want  string
	}{
		{"no store", nil, "unavailable"},
		{"empty", fakeLister{}, "No runs recorded yet"},
		{"failing", fakeLister{err: errors.New("locked")}, "locked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.store, 80, 24)
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View() does not contain %q", tt.want)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText = %q", got)
	}
}
