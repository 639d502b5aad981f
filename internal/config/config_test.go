package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Display.Height)
	}
	if cfg.Display.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Display.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.Dimension != 4 {
		t.Errorf("expected default dimension 4, got %d", cfg.Scene.Dimension)
	}
	if !cfg.Scene.EdgeShading {
		t.Error("expected edge shading on by default")
	}
	if cfg.Scene.FaceFill {
		t.Error("expected face fill off by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  dimension: 3
  edge_shading: false
  face_fill: true
  seed: 7

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	cfg.normalize()

	if cfg.Display.Width != 1920 || cfg.Display.Height != 1080 {
		t.Errorf("display = %dx%d, want 1920x1080", cfg.Display.Width, cfg.Display.Height)
	}
	if !cfg.Display.Fullscreen {
		t.Error("fullscreen not loaded")
	}
	if cfg.Scene.Dimension != 3 {
		t.Errorf("dimension = %d, want 3", cfg.Scene.Dimension)
	}
	if cfg.Scene.EdgeShading {
		t.Error("edge_shading should be false")
	}
	if !cfg.Scene.FaceFill {
		t.Error("face_fill should be true")
	}
	if cfg.Scene.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Scene.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %s, want debug", cfg.Logging.Level)
	}
}

func TestNormalizeRejectsBadDimension(t *testing.T) {
	for _, dim := range []int{0, 1, 5, -2} {
		cfg := Default()
		cfg.Scene.Dimension = dim
		cfg.normalize()
		if cfg.Scene.Dimension != 4 {
			t.Errorf("dimension %d normalized to %d, want 4", dim, cfg.Scene.Dimension)
		}
	}
	// valid dimensions pass through
	cfg := Default()
	cfg.Scene.Dimension = 2
	cfg.normalize()
	if cfg.Scene.Dimension != 2 {
		t.Errorf("dimension 2 normalized to %d", cfg.Scene.Dimension)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Dimension = 3
	cfg.Display.Width = 800
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.Dimension != 3 {
		t.Errorf("round-trip dimension = %d, want 3", loaded.Scene.Dimension)
	}
	if loaded.Display.Width != 800 {
		t.Errorf("round-trip width = %d, want 800", loaded.Display.Width)
	}
}
