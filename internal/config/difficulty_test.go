package config

import "testing"

func TestSpawnDelayForOriginalTable(t *testing.T) {
	clock := NewDifficultyClock(DefaultConfig().Scenario)

	tests := []struct {
		year   int
		want   int
		wantOK bool
	}{
		{1957, 0, false},
		{1960, 0, false},
		{1961, 20, true},
		{1968, 20, true},
		{1969, 14, true},
		{1980, 14, true},
		{1981, 10, true},
		{1995, 8, true},
		{2009, 8, true},
		{2010, 6, true},
		{2019, 6, true},
		{2020, 2, true},
		{2100, 2, true},
	}
	for _, tt := range tests {
		got, ok := clock.SpawnDelayFor(tt.year)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SpawnDelayFor(%d) = %d, %v; want %d, %v", tt.year, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSpawnDelayNonIncreasing(t *testing.T) {
	clock := NewDifficultyClock(DefaultConfig().Scenario)
	prev := -1
	for year := 1957; year <= 2100; year++ {
		d, ok := clock.SpawnDelayFor(year)
		if !ok {
			if prev != -1 {
				t.Fatalf("year %d has no spawns after spawns began", year)
			}
			continue
		}
		if prev != -1 && d > prev {
			t.Fatalf("delay grows at %d: %d > %d", year, d, prev)
		}
		prev = d
	}
}

func TestClockAdvanceAndCaptions(t *testing.T) {
	clock := NewDifficultyClock(DefaultConfig().Scenario)
	if clock.Year() != 1957 {
		t.Fatalf("Year() = %d, want 1957", clock.Year())
	}
	if clock.Caption() != "First Sputnik" {
		t.Errorf("Caption() = %q", clock.Caption())
	}
	if clock.Armed(2020) {
		t.Error("armed in 1957")
	}

	for clock.Year() < 2020 {
		before := clock.Year()
		if got := clock.Advance(); got != before+1 {
			t.Fatalf("Advance() = %d, want %d", got, before+1)
		}
	}
	if !clock.Armed(2020) {
		t.Error("not armed in 2020")
	}
	if clock.Caption() != "Take the plasma gun! Shoot the garbage!" {
		t.Errorf("Caption() = %q", clock.Caption())
	}
	if got := clock.CaptionFor(1958); got != "" {
		t.Errorf("CaptionFor(1958) = %q, want empty", got)
	}
	if d, ok := clock.SpawnDelay(); !ok || d != 2 {
		t.Errorf("SpawnDelay() = %d, %v", d, ok)
	}
}

func TestClockCopiesScenario(t *testing.T) {
	cfg := DefaultConfig().Scenario
	clock := NewDifficultyClock(cfg)
	cfg.SpawnDelays[0].Delay = 99
	cfg.Captions[1957] = "changed"

	if d, _ := clock.SpawnDelayFor(1961); d != 20 {
		t.Errorf("clock saw mutated delay %d", d)
	}
	if clock.CaptionFor(1957) != "First Sputnik" {
		t.Error("clock saw mutated caption")
	}
	years := clock.CaptionYears()
	if len(years) != 8 || years[0] != 1957 || years[7] != 2020 {
		t.Errorf("CaptionYears() = %v", years)
	}
}
