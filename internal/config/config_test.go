package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Match3Config
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultMatch3Config())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
board:
  width: 6
  gravity: flipped
timing:
  destroy_settle: 1s
powers:
  tiers:
    - min_size: 6
      kind: bomb
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 8 {
		t.Errorf("board = %dx%d, want 6x8", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.Gravity != "flipped" {
		t.Errorf("gravity = %q, want flipped", cfg.Board.Gravity)
	}
	if cfg.Timing.DestroySettle != time.Second {
		t.Errorf("destroy_settle = %v, want 1s", cfg.Timing.DestroySettle)
	}
	if cfg.Timing.SpawnInterval != DefaultMatch3Config().Timing.SpawnInterval {
		t.Errorf("spawn_interval = %v, want the default", cfg.Timing.SpawnInterval)
	}
	if len(cfg.Powers.Tiers) != 1 || cfg.Powers.Tiers[0].Kind != "bomb" {
		t.Errorf("tiers = %+v, want a single bomb tier", cfg.Powers.Tiers)
	}
}

func TestLoadMatch3MissingCustomPath(t *testing.T) {
	_, err := LoadMatch3(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadMatch3() error = nil, want read error")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("error = %q", err)
	}
}

func TestLoadMatch3FallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("LoadMatch3() = %+v, want defaults", cfg)
	}
}

func TestLoadMatch3UserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".match3", "configs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "match3.yaml"), []byte("board:\n  colors: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if cfg.Board.Colors != 4 {
		t.Errorf("colors = %d, want 4", cfg.Board.Colors)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		want   string
	}{
		{"small board", func(c *Match3Config) { c.Board.Width = 2 }, "below 3x3"},
		{"few colors", func(c *Match3Config) { c.Board.Colors = 2 }, "at least 3 colors"},
		{"bad gravity", func(c *Match3Config) { c.Board.Gravity = "sideways" }, "unknown gravity"},
		{"zero sensitivity", func(c *Match3Config) { c.Swipe.Sensitivity = 0 }, "sensitivity"},
		{"negative delay", func(c *Match3Config) { c.Timing.SpawnInterval = -time.Second }, "negative"},
		{"tier too small", func(c *Match3Config) { c.Powers.Tiers[0].MinSize = 3 }, "below 4"},
		{"unknown kind", func(c *Match3Config) { c.Powers.Tiers[0].Kind = "laser" }, "unknown kind"},
		{"negative radius", func(c *Match3Config) { c.Powers.BombRadius = -1 }, "bomb_radius"},
		{"zero speed", func(c *Match3Config) { c.Animation.Speed = 0 }, "speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultMatch3Config())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "destroy_settle: 250ms") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}
}
