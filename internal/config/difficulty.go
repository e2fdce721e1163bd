package config

import "sort"

// DifficultyClock tracks the in-game year and maps it to the spawn rate
// and the caption shown under the year.
type DifficultyClock struct {
	year     int
	steps    []SpawnStep
	captions map[int]string
}

// NewDifficultyClock creates a clock starting at cfg.StartYear.
func NewDifficultyClock(cfg ScenarioConfig) *DifficultyClock {
	steps := make([]SpawnStep, len(cfg.SpawnDelays))
	copy(steps, cfg.SpawnDelays)
	sort.Slice(steps, func(i, j int) bool { return steps[i].From < steps[j].From })

	captions := make(map[int]string, len(cfg.Captions))
	for y, c := range cfg.Captions {
		captions[y] = c
	}
	return &DifficultyClock{
		year:     cfg.StartYear,
		steps:    steps,
		captions: captions,
	}
}

// Year returns the current year.
func (d *DifficultyClock) Year() int {
	return d.year
}

// Advance moves the clock one year forward and returns the new year.
func (d *DifficultyClock) Advance() int {
	d.year++
	return d.year
}

// SpawnDelayFor returns the ticks between spawns in the given year.
// ok is false when nothing spawns yet.
func (d *DifficultyClock) SpawnDelayFor(year int) (ticks int, ok bool) {
	for i := len(d.steps) - 1; i >= 0; i-- {
		if year >= d.steps[i].From {
			return d.steps[i].Delay, true
		}
	}
	return 0, false
}

// SpawnDelay returns the spawn delay for the current year.
func (d *DifficultyClock) SpawnDelay() (int, bool) {
	return d.SpawnDelayFor(d.year)
}

// CaptionFor returns the caption for a year, or "".
func (d *DifficultyClock) CaptionFor(year int) string {
	return d.captions[year]
}

// Caption returns the caption for the current year.
func (d *DifficultyClock) Caption() string {
	return d.CaptionFor(d.year)
}

// Armed reports whether the current year has reached threshold.
func (d *DifficultyClock) Armed(threshold int) bool {
	return d.year >= threshold
}

// CaptionYears returns the years that have a caption, in order.
func (d *DifficultyClock) CaptionYears() []int {
	years := make([]int, 0, len(d.captions))
	for y := range d.captions {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Steps returns the spawn table ordered by year.
func (d *DifficultyClock) Steps() []SpawnStep {
	out := make([]SpawnStep, len(d.steps))
	copy(out, d.steps)
	return out
}
