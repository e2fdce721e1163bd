package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/game"
	"github.com/vovakirdan/orbit/internal/storage"
)

// statusRows is the number of terminal rows kept for the status line.
const statusRows = 1

// RunSaver records finished runs.
type RunSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a game Model.
type Options struct {
	Game    *game.Game
	Store   RunSaver // Nil disables run history
	Runtime core.RuntimeConfig
	Player  string
	Source  string      // "local" or "ssh"
	Logger  *log.Logger // Nil means discard
}

// Model is the Bubble Tea model for playing orbit.
type Model struct {
	game     *game.Game
	store    RunSaver
	config   core.RuntimeConfig
	player   string
	source   string
	log      *log.Logger
	keys     KeyMap
	help     help.Model
	pending  core.Controls // Keys pressed since the last tick
	state    core.GameState
	quitting bool
	runSaved bool // Whether the run has been saved for current game over
	err      error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = opts.Game.Config().TickInterval()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()

	return Model{
		game:   opts.Game,
		store:  opts.Store,
		config: cfg,
		player: opts.Player,
		source: opts.Source,
		log:    logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		if !m.state.GameOver {
			m.game.TogglePause()
			m.state = m.game.State()
		}
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	if c, ok := m.keys.Controls(msg); ok {
		m.pending = m.pending.Merge(c)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-statusRows, 1)
	if rows == m.config.Rows && msg.Width == m.config.Cols {
		return m, nil
	}
	m.config.Rows = rows
	m.config.Cols = msg.Width
	m.help.Width = msg.Width

	// The grid has a fixed size for the whole run, so a running game restarts.
	if !m.state.GameOver {
		m.game.Reset(m.config)
		m.state = m.game.State()
	}
	return m, nil
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.runSaved = false
	m.pending = core.Controls{}
	m.keys.Restart.SetEnabled(false)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result, err := m.game.Step(m.pending)
	m.pending = core.Controls{}
	if err != nil {
		m.err = err
		m.log.Error("game loop stopped", "error", err)
		return m, tea.Quit
	}
	m.state = result.State

	if m.state.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
		m.keys.Restart.SetEnabled(true)
	}

	return m, tickCmd(m.config.TickInterval)
}

// saveRun records the finished run. Failures are logged and the game goes on.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := storage.Run{
		Player: m.player,
		Source: m.source,
		Score:  m.state.Score,
		Year:   m.state.Year,
		Ticks:  m.state.Ticks,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("could not save run", "error", err)
		return
	}
	m.log.Debug("run saved", "player", run.Player, "score", run.Score, "year", run.Year)
}

// saveScreenshot saves the current grid to ~/.orbit/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	screen := m.game.Screen()
	if screen == nil {
		return "", errors.New("no screen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".orbit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("orbit_%s.txt", timestamp))
	return path, os.WriteFile(path, []byte(screen.String()), 0o600)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	pauseStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	screen := m.game.Screen()
	if screen == nil {
		return ""
	}
	if m.state.Paused {
		return m.pauseView(screen) + "\n" + m.statusLine()
	}
	return RenderScreen(screen) + "\n" + m.statusLine()
}

// pauseView hides the grid behind the full key help.
func (m Model) pauseView(screen *core.Screen) string {
	box := pauseStyle.Render(alertStyle.Render("PAUSED") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	return lipgloss.Place(screen.Cols(), screen.Rows(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) statusLine() string {
	status := fmt.Sprintf(" Score: %d ", m.state.Score)
	switch {
	case m.state.GameOver:
		status += alertStyle.Render("GAME OVER") + " "
	case m.state.Paused:
		status += alertStyle.Render("PAUSED") + " "
	}
	return statusStyle.Render(status) + m.help.View(m.keys)
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the error that stopped the game loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
