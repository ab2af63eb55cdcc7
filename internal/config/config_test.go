package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := SnakeConfig{}
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, hard-coded defaults = %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 15 {
		t.Errorf("default grid = %dx%d, expected 20x15", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Movement.Interval != 150*time.Millisecond {
		t.Errorf("default interval = %s, expected 150ms", cfg.Movement.Interval)
	}
	if cfg.Food.AvoidSnake {
		t.Error("food should be allowed under the snake by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake(\"\") failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".tui-snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("movement:\n  interval: 80ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if cfg.Movement.Interval != 80*time.Millisecond {
		t.Errorf("interval = %s, expected 80ms from user config", cfg.Movement.Interval)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "grid:\n  width: 30\n  height: 20\nfood:\n  avoid_snake: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%q) failed: %v", path, err)
	}
	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 30x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if !cfg.Food.AvoidSnake {
		t.Error("avoid_snake should be true")
	}
	// Unset fields keep their defaults
	if cfg.Grid.CellSize != 30 || cfg.Movement.Interval != 150*time.Millisecond {
		t.Errorf("unset fields should keep defaults, got cell_size=%g interval=%s",
			cfg.Grid.CellSize, cfg.Movement.Interval)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "grid: [unclosed", "failed to parse"},
		{"zero width", "grid:\n  width: 0\n", "grid must be at least 1x1"},
		{"negative interval", "movement:\n  interval: -1s\n", "movement.interval must be positive"},
		{"start outside grid", "start:\n  x: 25\n  y: 5\n", "outside the 20x15 grid"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadSnake(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestMarshalRoundTripsDuration(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "interval: 150ms") {
		t.Errorf("marshaled config should contain a readable interval, got:\n%s", data)
	}
}
