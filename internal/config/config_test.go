package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.yaml")
	if err := os.WriteFile(path, []byte("Mode: test\nStore:\n  InMemory: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":2888" || c.Name != "chess-local" {
		t.Fatalf("defaults: got addr=%q name=%q", c.Addr, c.Name)
	}
	if c.Mode != "test" || !c.Store.InMemory {
		t.Fatalf("overrides: got mode=%q inMemory=%v", c.Mode, c.Store.InMemory)
	}
	if c.Store.Path != "data/games" {
		t.Fatalf("store path: got=%q", c.Store.Path)
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.yaml")
	if err := os.WriteFile(path, []byte("Mode: chaos\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for Mode=chaos")
	}
}

func TestLoadShippedConfig(t *testing.T) {
	c, err := Load("../../etc/chess.yaml")
	if err != nil {
		t.Fatalf("load etc/chess.yaml: %v", err)
	}
	if c.Mode != "dev" || c.Log.Mode != "console" {
		t.Fatalf("shipped config: got=%+v", c)
	}
}
