package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Addr != ":5000" {
		t.Errorf("expected Addr=:5000, got %s", cfg.Addr)
	}
	if cfg.DefaultProfileID != 1 {
		t.Errorf("expected DefaultProfileID=1, got %d", cfg.DefaultProfileID)
	}
	if cfg.DemoUsername != "demo" {
		t.Errorf("expected DemoUsername=demo, got %s", cfg.DemoUsername)
	}
	if cfg.LivePushInterval() != 3*time.Second {
		t.Errorf("expected 3s live push interval, got %s", cfg.LivePushInterval())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":9090\"\ndb_path: /tmp/sp.db\ndefault_profile_id: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected file to override addr, got %s", cfg.Addr)
	}
	if cfg.DefaultProfileID != 3 {
		t.Errorf("expected default_profile_id=3, got %d", cfg.DefaultProfileID)
	}
	// Unset fields keep their defaults.
	if cfg.DemoUsername != "demo" {
		t.Errorf("expected demo username default, got %s", cfg.DemoUsername)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SP_ADDR", ":7070")
	t.Setenv("SP_DEFAULT_PROFILE", "9")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("expected env to override addr, got %s", cfg.Addr)
	}
	if cfg.DefaultProfileID != 9 {
		t.Errorf("expected env to override profile id, got %d", cfg.DefaultProfileID)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
