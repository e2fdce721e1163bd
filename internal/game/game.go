package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit/internal/assets"
	"github.com/vovakirdan/orbit/internal/audio"
	"github.com/vovakirdan/orbit/internal/config"
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/registry"
	"github.com/vovakirdan/orbit/internal/sched"
)

// Options configures a Game.
type Options struct {
	Config config.GameConfig
	Frames assets.Frames
	Sound  audio.Player // Nil means silent
	Logger *log.Logger  // Nil means discard
}

// Game drives one run of orbit. It is not safe for concurrent use: a
// driver calls Step from a single goroutine.
type Game struct {
	cfg    config.GameConfig
	frames assets.Frames
	sound  audio.Player
	log    *log.Logger

	sched  *sched.Scheduler
	world  *World
	input  latchedInput
	paused bool
	idle   int // consecutive steps with neutral input
}

// idleLogTicks is how many neutral steps pass before the player is logged as idle.
const idleLogTicks = 100

// latchedInput hands the controls of the current step to the ship.
type latchedInput struct {
	controls core.Controls
}

func (l *latchedInput) Poll() core.Controls {
	return l.controls
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if err := checkFrames(opts.Frames); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    opts.Config,
		frames: opts.Frames,
		sound:  opts.Sound,
		log:    opts.Logger,
	}
	if g.sound == nil {
		g.sound = audio.Silent{}
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	return g, nil
}

func checkFrames(f assets.Frames) error {
	switch {
	case f.Ship[0] == "" || f.Ship[1] == "":
		return fmt.Errorf("game: ship: %w", assets.ErrNoFrames)
	case len(f.Garbage) == 0:
		return fmt.Errorf("game: garbage: %w", assets.ErrNoFrames)
	case f.GameOver == "":
		return fmt.Errorf("game: game over banner: %w", assets.ErrNoFrames)
	case len(f.Explosion) == 0:
		return fmt.Errorf("game: explosion: %w", assets.ErrNoFrames)
	}
	return nil
}

// Reset starts a new run on a blank screen of the given size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.sched = sched.New()
	g.input = latchedInput{}
	g.paused = false
	g.idle = 0

	g.world = &World{
		Screen:    core.NewScreen(runtime.Rows, runtime.Cols),
		Obstacles: registry.New(),
		Hits:      registry.NewHitSet(),
		Clock:     config.NewDifficultyClock(g.cfg.Scenario),
		Cfg:       g.cfg,
		Frames:    g.frames,
		Input:     &g.input,
		Sound:     g.sound,
		Log:       g.log,
		rng:       rand.New(rand.NewSource(runtime.Seed)),
		spawn:     g.sched.Spawn,
	}
	g.spawnInitial()
	g.log.Debug("game reset", "rows", runtime.Rows, "cols", runtime.Cols, "seed", runtime.Seed)
}

// spawnInitial queues the tasks a run starts with.
func (g *Game) spawnInitial() {
	w := g.world
	rows, cols := w.Rows(), w.Cols()

	if p := g.cfg.Projectile; p.OpeningSalvo {
		w.Spawn(NewFire(w, float64(rows-1), float64(cols/2), p.SalvoSpeed, 0))
	}

	h, wd := core.FrameSize(g.frames.Ship[0])
	w.Spawn(NewShip(w, float64(rows/2-h/2), float64(cols/2-wd/2)))
	w.Spawn(NewSpawner(w))
	w.Spawn(NewYearTicker(w))
	spawnStars(w)

	if g.cfg.DebugBoxes {
		w.Spawn(NewDebugBoxes(w))
	}
}

// Step advances the game by one tick with the given controls.
// A paused game does not advance.
func (g *Game) Step(in core.Controls) (core.StepResult, error) {
	if g.world == nil {
		return core.StepResult{}, errors.New("game: Step before Reset")
	}
	if g.paused {
		return g.result(), nil
	}
	g.trackIdle(in)
	g.input.controls = in
	err := g.sched.Tick()
	g.input.controls = core.Controls{}
	if err != nil {
		return g.result(), fmt.Errorf("game: %w", err)
	}
	return g.result(), nil
}

// trackIdle logs once when input has been neutral for idleLogTicks steps
// and again when the player comes back.
func (g *Game) trackIdle(in core.Controls) {
	if !in.Neutral() {
		if g.idle >= idleLogTicks {
			g.log.Debug("player active", "idle_ticks", g.idle)
		}
		g.idle = 0
		return
	}
	g.idle++
	if g.idle == idleLogTicks {
		g.log.Debug("player idle", "ticks", g.idle)
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State: g.State(),
		Tasks: g.sched.Len() + g.sched.Pending(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.destroyed,
		Year:     g.world.Clock.Year(),
		Ticks:    g.sched.Ticks(),
		GameOver: g.world.gameOver,
		Paused:   g.paused,
	}
}

// TogglePause pauses or resumes the game.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Screen returns the render surface. Drivers read it after each Step.
func (g *Game) Screen() *core.Screen {
	if g.world == nil {
		return nil
	}
	return g.world.Screen
}

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
