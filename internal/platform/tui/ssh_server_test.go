package tui

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
	if cfg.GameID != "climb" {
		t.Errorf("GameID = %q", cfg.GameID)
	}
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("TickRate = %d", cfg.Runtime.TickRate)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, newTestStore(t), nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr = %q, want %q", srv.Addr(), cfg.Address)
	}
}
