package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/orbit/internal/storage"
)

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("tick_interval_ms: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	normal, err := loadGameConfig(path, "")
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if normal.TickIntervalMS != 50 {
		t.Errorf("TickIntervalMS = %d, want 50", normal.TickIntervalMS)
	}

	hard, err := loadGameConfig(path, "hard")
	if err != nil {
		t.Fatalf("loadGameConfig(hard) error = %v", err)
	}
	first := normal.Scenario.SpawnDelays[0].Delay
	if got := hard.Scenario.SpawnDelays[0].Delay; got != first/2 {
		t.Errorf("hard first delay = %d, want %d", got, first/2)
	}

	if _, err := loadGameConfig(path, "nightmare"); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestPlayerNameOverride(t *testing.T) {
	if got := playerName("ann"); got != "ann" {
		t.Errorf("playerName(ann) = %q", got)
	}
}

func TestClearScores(t *testing.T) {
	tests := []struct {
		name string
		runs []storage.Run
		want string
	}{
		{"empty history", nil, "Cleared 0 runs.\n"},
		{"two runs", []storage.Run{
			{Player: "ann", Score: 3, Year: 2021, Ticks: 960},
			{Player: "bob", Score: 7, Year: 2024, Ticks: 1010},
		}, "Cleared 2 runs.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := filepath.Join(t.TempDir(), "orbit.db")
			store, err := storage.Open(dbPath)
			if err != nil {
				t.Fatal(err)
			}
			for _, r := range tt.runs {
				if _, err := store.SaveRun(r); err != nil {
					t.Fatal(err)
				}
			}
			store.Close()

			var out bytes.Buffer
			if err := clearScores(dbPath, &out); err != nil {
				t.Fatalf("clearScores() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}

			store, err = storage.Open(dbPath)
			if err != nil {
				t.Fatal(err)
			}
			defer store.Close()
			runs, err := store.TopRuns(10)
			if err != nil {
				t.Fatal(err)
			}
			if len(runs) != 0 {
				t.Errorf("%d runs left after clear", len(runs))
			}
		})
	}
}
