// Package config loads hexisle settings from defaults, an optional YAML
// file and HEXISLE_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/talgya/hexisle/internal/view"
	"github.com/talgya/hexisle/internal/world"
)

// EnvPrefix is prepended to every environment override, e.g. HEXISLE_SEED.
const EnvPrefix = "HEXISLE"

// Config is the full set of tunables for both binaries.
type Config struct {
	Width          int   `mapstructure:"width"`
	Height         int   `mapstructure:"height"`
	Seed           int64 `mapstructure:"seed"`
	LandChance     int   `mapstructure:"land_chance"`
	VillageDivisor int   `mapstructure:"village_divisor"`

	CellSize    float64 `mapstructure:"cell_size"`
	MinCellSize float64 `mapstructure:"min_cell_size"`
	MaxCellSize float64 `mapstructure:"max_cell_size"`
	ZoomFactor  float64 `mapstructure:"zoom_factor"`
	Indent      float64 `mapstructure:"indent"`
	PanStep     float64 `mapstructure:"pan_step"`
	TPS         int     `mapstructure:"tps"`

	Units       int `mapstructure:"units"`
	UnitSpacing int `mapstructure:"unit_spacing"`

	APIPort  int    `mapstructure:"api_port"`
	Serve    bool   `mapstructure:"serve"` // mapgen keeps serving the API after printing
	LogLevel string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	gen := world.DefaultGenConfig()
	vc := view.DefaultConfig()

	v.SetDefault("width", gen.Width)
	v.SetDefault("height", gen.Height)
	v.SetDefault("seed", gen.Seed)
	v.SetDefault("land_chance", gen.LandChance)
	v.SetDefault("village_divisor", gen.VillageDivisor)

	v.SetDefault("cell_size", vc.CellSize)
	v.SetDefault("min_cell_size", vc.MinCellSize)
	v.SetDefault("max_cell_size", vc.MaxCellSize)
	v.SetDefault("zoom_factor", vc.ZoomFactor)
	v.SetDefault("indent", vc.Indent)
	v.SetDefault("pan_step", vc.PanStep)
	v.SetDefault("tps", 60)

	v.SetDefault("units", 2)
	v.SetDefault("unit_spacing", 3)

	v.SetDefault("api_port", 8080)
	v.SetDefault("serve", false)
	v.SetDefault("log_level", "info")
}

// Load reads configuration. An empty path skips the file and uses only
// defaults and environment.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the generator or viewer cannot work with.
func (c Config) Validate() error {
	if err := c.GenConfig().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.MinCellSize <= 0 || c.MaxCellSize < c.MinCellSize {
		return fmt.Errorf("invalid config: cell size bounds %v..%v", c.MinCellSize, c.MaxCellSize)
	}
	if c.CellSize < c.MinCellSize || c.CellSize > c.MaxCellSize {
		return fmt.Errorf("invalid config: cell size %v outside %v..%v", c.CellSize, c.MinCellSize, c.MaxCellSize)
	}
	if c.ZoomFactor <= 1 {
		return fmt.Errorf("invalid config: zoom factor %v must exceed 1", c.ZoomFactor)
	}
	if c.TPS < 1 {
		return fmt.Errorf("invalid config: tps %d must be positive", c.TPS)
	}
	return nil
}

// GenConfig projects the generation settings.
func (c Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:          c.Width,
		Height:         c.Height,
		Seed:           c.Seed,
		LandChance:     c.LandChance,
		VillageDivisor: c.VillageDivisor,
	}
}

// ViewConfig projects the zoom and pan settings.
func (c Config) ViewConfig() view.Config {
	return view.Config{
		CellSize:    c.CellSize,
		MinCellSize: c.MinCellSize,
		MaxCellSize: c.MaxCellSize,
		ZoomFactor:  c.ZoomFactor,
		Indent:      c.Indent,
		PanStep:     c.PanStep,
	}
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
