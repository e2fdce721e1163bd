// Package term drives orbit directly on a tcell screen, without Bubble Tea.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/game"
	"github.com/vovakirdan/orbit/internal/storage"
)

// statusRows is the number of screen rows kept for the status line.
const statusRows = 1

// RunSaver records finished runs.
type RunSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a Driver.
type Options struct {
	Game    *game.Game
	Store   RunSaver // Nil disables run history
	Runtime core.RuntimeConfig
	Player  string
	Logger  *log.Logger // Nil means discard
}

var cellStyles = map[core.Style]tcell.Style{
	core.StyleNormal: tcell.StyleDefault,
	core.StyleDim:    tcell.StyleDefault.Dim(true),
	core.StyleBold:   tcell.StyleDefault.Bold(true),
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
)

// Driver runs a game on a tcell screen.
type Driver struct {
	screen  tcell.Screen
	game    *game.Game
	store   RunSaver
	config  core.RuntimeConfig
	player  string
	log     *log.Logger
	pending core.Controls
	state   core.GameState
	saved   bool
}

// NewDriver creates a driver for an initialized screen. The grid size is
// taken from the screen.
func NewDriver(screen tcell.Screen, opts Options) *Driver {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = opts.Game.Config().TickInterval()
	}
	width, height := screen.Size()
	cfg.Rows = max(height-statusRows, 1)
	cfg.Cols = max(width, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		screen: screen,
		game:   opts.Game,
		store:  opts.Store,
		config: cfg,
		player: opts.Player,
		log:    logger,
	}
}

// Reset starts a new run with the current seed.
func (d *Driver) Reset() {
	d.game.Reset(d.config)
	d.state = d.game.State()
	d.pending = core.Controls{}
	d.saved = false
}

// HandleEvent applies one terminal event. It returns false when the
// player asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventResize:
		d.screen.Sync()
		width, height := ev.Size()
		rows := max(height-statusRows, 1)
		if rows == d.config.Rows && width == d.config.Cols {
			return true
		}
		d.config.Rows, d.config.Cols = rows, max(width, 1)
		if !d.state.GameOver {
			d.Reset()
		}
	}
	return true
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	var c core.Controls
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.DRow = -1
	case tcell.KeyDown:
		c.DRow = 1
	case tcell.KeyLeft:
		c.DCol = -1
	case tcell.KeyRight:
		c.DCol = 1
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
			return false
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			if !d.state.GameOver {
				d.game.TogglePause()
				d.state = d.game.State()
			}
			return true
		case 'r':
			if d.state.GameOver {
				d.config.Seed = time.Now().UnixNano()
				d.Reset()
			}
			return true
		case ' ':
			c.Fire = true
		case 'w', 'k':
			c.DRow = -1
		case 's', 'j':
			c.DRow = 1
		case 'a', 'h':
			c.DCol = -1
		case 'd', 'l':
			c.DCol = 1
		}
	}
	d.pending = d.pending.Merge(c)
	return true
}

// Step advances the game one tick with the keys pressed since the last step.
func (d *Driver) Step() error {
	result, err := d.game.Step(d.pending)
	d.pending = core.Controls{}
	if err != nil {
		return err
	}
	d.state = result.State

	if d.state.GameOver && !d.saved {
		d.saved = true
		d.saveRun()
	}
	return nil
}

func (d *Driver) saveRun() {
	if d.store == nil {
		return
	}
	run := storage.Run{
		Player: d.player,
		Source: "local",
		Score:  d.state.Score,
		Year:   d.state.Year,
		Ticks:  d.state.Ticks,
	}
	if _, err := d.store.SaveRun(run); err != nil {
		d.log.Warn("could not save run", "error", err)
	}
}

// Draw copies the game grid and the status line to the screen.
func (d *Driver) Draw() {
	grid := d.game.Screen()
	if grid == nil {
		return
	}
	d.screen.Clear()
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			cell := grid.GetCell(row, col)
			d.screen.SetContent(col, row, cell.Rune, nil, cellStyles[cell.Style])
		}
	}

	col := drawText(d.screen, 1, grid.Rows(), fmt.Sprintf("Score: %d", d.state.Score), statusStyle)
	switch {
	case d.state.GameOver:
		col = drawText(d.screen, col+2, grid.Rows(), "GAME OVER", alertStyle)
		drawText(d.screen, col+2, grid.Rows(), "r restart  q quit", statusStyle)
	case d.state.Paused:
		col = drawText(d.screen, col+2, grid.Rows(), "PAUSED", alertStyle)
		drawText(d.screen, col+2, grid.Rows(), "p resume  q quit", statusStyle)
	default:
		drawText(d.screen, col+2, grid.Rows(), "arrows move  space fire  p pause  q quit", statusStyle)
	}
	d.screen.Show()
}

// drawText writes text at (x, y) and returns the column after it.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// State returns the last known game state.
func (d *Driver) State() core.GameState {
	return d.state
}

// Loop runs the game until the player quits, ctx is cancelled or a tick fails.
func (d *Driver) Loop(ctx context.Context) error {
	d.Reset()
	d.Draw()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := d.Step(); err != nil {
				return err
			}
			d.Draw()
		}
	}
}

// Run opens the terminal and plays until the player quits.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return NewDriver(screen, opts).Loop(ctx)
}
