package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Address != ":3000" {
		t.Errorf("default address %q", cfg.Server.Address)
	}
	if cfg.Game.ClockSeconds != 600 {
		t.Errorf("default clock %d", cfg.Game.ClockSeconds)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  address: \":8080\"\ngame:\n  clock_seconds: 120\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("address %q", cfg.Server.Address)
	}
	if cfg.Game.ClockSeconds != 120 {
		t.Errorf("clock %d", cfg.Game.ClockSeconds)
	}
	// unset fields fall back to defaults
	if cfg.Server.AllowOrigin == "" {
		t.Error("allow_origin should default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}
