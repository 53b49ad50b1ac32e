package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShootoutEmbeddedDefault(t *testing.T) {
	// No custom path and (presumably) no user/local config: the embedded
	// YAML must produce the same values as the hardcoded default.
	cfg, err := LoadShootout("")
	if err != nil {
		t.Fatalf("LoadShootout(\"\") returned error: %v", err)
	}

	def := DefaultShootoutConfig()
	if cfg.Field.Width != def.Field.Width || cfg.Field.GoalX != def.Field.GoalX {
		t.Errorf("embedded field config %+v differs from default %+v", cfg.Field, def.Field)
	}
	if cfg.Goalie.StanceSmoothing != 0.15 {
		t.Errorf("StanceSmoothing = %f, expected 0.15", cfg.Goalie.StanceSmoothing)
	}
	if cfg.Puck.TrailLen != 15 {
		t.Errorf("TrailLen = %d, expected 15", cfg.Puck.TrailLen)
	}
	if cfg.Puck.MagnetRadius != 100 {
		t.Errorf("MagnetRadius = %f, expected 100", cfg.Puck.MagnetRadius)
	}
	if cfg.Shooter.WindupMillis != 500 {
		t.Errorf("WindupMillis = %d, expected 500", cfg.Shooter.WindupMillis)
	}
}

func TestLoadShootoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("field:\n  width: 300\n  height: 150\n  goal_x: 25\n  goal_top: 50\n  goal_bottom: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadShootout(path)
	if err != nil {
		t.Fatalf("LoadShootout(%q) returned error: %v", path, err)
	}
	if cfg.Field.Width != 300 {
		t.Errorf("Field.Width = %f, expected 300", cfg.Field.Width)
	}
}

func TestLoadShootoutMissingCustomPath(t *testing.T) {
	_, err := LoadShootout("/nonexistent/shootout.yaml")
	if err == nil {
		t.Error("missing custom config path should return an error")
	}
}
