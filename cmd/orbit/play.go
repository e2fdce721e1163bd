package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/orbit/internal/assets"
	"github.com/vovakirdan/orbit/internal/audio"
	"github.com/vovakirdan/orbit/internal/config"
	"github.com/vovakirdan/orbit/internal/core"
	"github.com/vovakirdan/orbit/internal/game"
	"github.com/vovakirdan/orbit/internal/platform/term"
	"github.com/vovakirdan/orbit/internal/platform/tui"
	"github.com/vovakirdan/orbit/internal/storage"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagAssets        string
	flagBackend       string
	flagSound         bool
	flagLogFile       string
	flagDebugBoxes    bool
	flagAfterGameOver string
	flagPlayer        string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play orbit",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer the rocket
  Space        - Fire (once the gun is invented)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Screenshot (tea backend)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Garbage falls half again as rarely
  normal - The historical schedule
  hard   - Garbage falls twice as often
  fixed  - The first spawn rate for the whole game

Examples:
  orbit play
  orbit play --difficulty hard
  orbit play --backend tcell --sound
  orbit play --assets ./my-frames --config ./my-orbit.yaml
  orbit play --after-game-over freeze --log-file orbit.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with frames overriding the built-in ones")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Beep when the rocket fires")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug log to this file")
	playCmd.Flags().BoolVar(&flagDebugBoxes, "debug-boxes", false, "Outline every obstacle")
	playCmd.Flags().StringVar(&flagAfterGameOver, "after-game-over", "", "What keeps running after a crash: continue or freeze")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: current user)")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	if flagAfterGameOver != "" {
		policy, policyErr := config.ParseGameOverPolicy(flagAfterGameOver)
		if policyErr != nil {
			fail("%v", policyErr)
		}
		cfg.AfterGameOver = policy
	}
	if cmd.Flags().Changed("debug-boxes") {
		cfg.DebugBoxes = flagDebugBoxes
	}

	frames, err := loadFrames(flagAssets)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	var sound audio.Player = audio.Silent{}
	if flagSound {
		cue := audio.NewCue()
		if soundErr := cue.Initialize(); soundErr != nil {
			logger.Warn("sound disabled", "error", soundErr)
		} else {
			defer cue.Close()
			sound = cue
		}
	}

	g, err := game.New(game.Options{
		Config: cfg,
		Frames: frames,
		Sound:  sound,
		Logger: logger,
	})
	if err != nil {
		fail("creating game: %v", err)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		Rows:         max(height-1, 1), // Status line
		Cols:         width,
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}
	player := playerName(flagPlayer)

	var runErr error
	switch flagBackend {
	case "tea":
		opts := tui.Options{Game: g, Runtime: runtime, Player: player, Source: "local", Logger: logger}
		if store != nil {
			opts.Store = store
		}
		runErr = tui.Run(opts)
	case "tcell":
		opts := term.Options{Game: g, Runtime: runtime, Player: player, Logger: logger}
		if store != nil {
			opts.Store = store
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runErr = term.Run(ctx, opts)
		stop()
	default:
		runErr = fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fail("running game: %v", runErr)
	}
}

// loadFrames reads the built-in frames, overridden by files in dir.
func loadFrames(dir string) (assets.Frames, error) {
	lib := assets.New()
	if dir != "" {
		var err error
		if lib, err = assets.Open(dir); err != nil {
			return assets.Frames{}, err
		}
	}
	return lib.All()
}

// openLogger returns a debug logger writing to path, or a discarding
// logger when path is empty.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "orbit",
		Level:           log.DebugLevel,
	})
	closed := false
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}

// playerName returns name, or the login name of the current user.
func playerName(name string) string {
	if name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
