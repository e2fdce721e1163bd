// Package audio plays the short cue heard when the ship fires.
// Sound is best effort: without an audio device every call is a no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueLength  = 90 * time.Millisecond
)

// Player plays game sound effects.
type Player interface {
	Fire()
}

// Silent is a Player that plays nothing.
type Silent struct{}

// Fire does nothing.
func (Silent) Fire() {}

// Cue plays the fire cue through the system speaker.
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCue creates a cue player. Call Initialize before use.
func NewCue() *Cue {
	return &Cue{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. The returned error is informational;
// an uninitialized Cue stays silent.
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Fire queues one laser chirp.
func (c *Cue) Fire() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(beep.Take(sampleRate.N(cueLength), NewChirp(sampleRate, 1760, 440)))
	speaker.Unlock()
}

// Close silences pending cues.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Chirp is a sine sweep from one frequency to another over cueLength.
type Chirp struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

// NewChirp creates a sweep generator.
func NewChirp(sr beep.SampleRate, from, to float64) *Chirp {
	return &Chirp{sr: sr, from: from, to: to}
}

// Stream fills samples with the sweep. It never drains; wrap it in
// beep.Take to bound its length.
func (g *Chirp) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(cueLength))
	for i := range samples {
		progress := math.Min(float64(g.pos)/total, 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Linear fade out avoids a click at the end
		sample := 0.2 * math.Sin(g.phase) * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *Chirp) Err() error {
	return nil
}
