package tui

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbit/internal/assets"
	"github.com/vovakirdan/orbit/internal/config"
	"github.com/vovakirdan/orbit/internal/game"
)

func TestListenAndServeReturnsListenError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	tests := []struct {
		name string
		addr string
	}{
		{"port in use", taken.Addr().String()},
		{"bad port", "127.0.0.1:notaport"},
	}

	newGame := func(logger *log.Logger) (*game.Game, error) {
		frames, err := assets.New().All()
		if err != nil {
			return nil, err
		}
		return game.New(game.Options{Config: config.DefaultConfig(), Frames: frames, Logger: logger})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := DefaultSSHServerConfig()
			cfg.Address = tt.addr
			cfg.HostKeyPath = filepath.Join(dir, "host_key")
			cfg.DBPath = filepath.Join(dir, "orbit.db")

			srv, err := NewSSHServer(cfg, newGame)
			if err != nil {
				t.Fatalf("NewSSHServer() error = %v", err)
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case err := <-errCh:
				if err == nil {
					t.Fatal("ListenAndServe() returned nil on a failed listen")
				}
			case <-time.After(5 * time.Second):
				srv.Shutdown()
				t.Fatal("ListenAndServe() still blocked after the listener failed")
			}
		})
	}
}
