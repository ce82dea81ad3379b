package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 30 || cfg.Height != 30 {
		t.Errorf("size = %dx%d, want 30x30", cfg.Width, cfg.Height)
	}
	if cfg.LandChance != 40 || cfg.VillageDivisor != 100 {
		t.Errorf("tuning = %d/%d, want 40/100", cfg.LandChance, cfg.VillageDivisor)
	}
	if cfg.CellSize != 15 || cfg.Indent != 50 || cfg.PanStep != 25 {
		t.Errorf("view = %v/%v/%v, want 15/50/25", cfg.CellSize, cfg.Indent, cfg.PanStep)
	}
	if cfg.TPS != 60 {
		t.Errorf("tps = %d, want 60", cfg.TPS)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hexisle.yaml")
	data := "width: 40\nheight: 24\nvillage_divisor: 150\nseed: 77\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HEXISLE_HEIGHT", "20")
	t.Setenv("HEXISLE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 {
		t.Errorf("width = %d, want 40 from file", cfg.Width)
	}
	if cfg.Height != 20 {
		t.Errorf("height = %d, want 20 from env", cfg.Height)
	}
	if cfg.VillageDivisor != 150 || cfg.Seed != 77 {
		t.Errorf("divisor/seed = %d/%d, want 150/77", cfg.VillageDivisor, cfg.Seed)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.SlogLevel())
	}

	gen := cfg.GenConfig()
	if gen.Width != 40 || gen.Height != 20 || gen.Seed != 77 {
		t.Errorf("GenConfig = %+v", gen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestValidate(t *testing.T) {
	base, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"chance over 100", func(c *Config) { c.LandChance = 120 }},
		{"zero divisor", func(c *Config) { c.VillageDivisor = 0 }},
		{"cell size above max", func(c *Config) { c.CellSize = 80 }},
		{"inverted bounds", func(c *Config) { c.MinCellSize = 60 }},
		{"zoom factor 1", func(c *Config) { c.ZoomFactor = 1 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
	}
	for _, tc := range tests {
		cfg := base
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
	if err := base.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}
