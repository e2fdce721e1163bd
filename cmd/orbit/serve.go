package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit/internal/config"
	"github.com/vovakirdan/orbit/internal/game"
	"github.com/vovakirdan/orbit/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeConfig     string
	flagServeDifficulty string
	flagServeAssets     string
	flagServeFreeze     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the orbit SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game sized to its terminal.
Runs are stored per-server (all users share the same history), under the
SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.orbit/host_key

Examples:
  orbit serve                           # Listen on :23234 with auto-generated key
  orbit serve --ssh :2222               # Listen on port 2222
  orbit serve --host-key ./my_host_key  # Use specific host key
  orbit serve --difficulty hard         # Harder schedule for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().StringVar(&flagServeAssets, "assets", "", "Directory with frames overriding the built-in ones")
	serveCmd.Flags().BoolVar(&flagServeFreeze, "freeze", false, "Freeze the game after a crash instead of letting it run")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagServeConfig, flagServeDifficulty)
	if err != nil {
		fail("%v", err)
	}
	if flagServeFreeze {
		cfg.AfterGameOver = config.AfterGameOverFreeze
	}
	frames, err := loadFrames(flagServeAssets)
	if err != nil {
		fail("%v", err)
	}

	serverCfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
		TickInterval: cfg.TickInterval(),
	}

	newGame := func(logger *log.Logger) (*game.Game, error) {
		return game.New(game.Options{Config: cfg, Frames: frames, Logger: logger})
	}

	server, err := tui.NewSSHServer(serverCfg, newGame)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting orbit SSH server on %s\n", serverCfg.Address)
	fmt.Printf("Connect with: ssh -t localhost -p %s\n", portOf(serverCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
