// Package config loads islandnav settings from TOML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full islandnav configuration
type Config struct {
	Seed      int64           `toml:"seed"` // 0 picks a time-based seed
	World     WorldConfig     `toml:"world"`
	Camera    CameraConfig    `toml:"camera"`
	Avatar    AvatarConfig    `toml:"avatar"`
	Regions   RegionsConfig   `toml:"regions"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Display   DisplayConfig   `toml:"display"`
	Activity  ActivityConfig  `toml:"activity"`
}

// WorldConfig controls terrain generation
type WorldConfig struct {
	Generator    string  `toml:"generator"` // "island" or "spokes"
	Cols         int     `toml:"cols"`
	Rows         int     `toml:"rows"`
	TileSize     float64 `toml:"tile_size"`
	IslandRadius float64 `toml:"island_radius"` // 0 = 0.45 * min(cols, rows)
	SandWidth    float64 `toml:"sand_width"`
	PathRadius   int     `toml:"path_radius"`
	MaxBend      int     `toml:"max_bend"`
	Landmarks    bool    `toml:"landmarks"`
	Obstacles    int     `toml:"obstacles"`
}

// CameraConfig sets the viewport and follow behaviour
type CameraConfig struct {
	ViewportW float64 `toml:"viewport_w"`
	ViewportH float64 `toml:"viewport_h"`
	Smoothing float64 `toml:"smoothing"`
	Clamp     bool    `toml:"clamp"`
	Margin    float64 `toml:"margin"`
}

// AvatarConfig sets movement speed
type AvatarConfig struct {
	Speed          float64 `toml:"speed"` // world units per second
	FastMultiplier float64 `toml:"fast_multiplier"`
}

// RegionsConfig selects the region catalog and hit radius in tiles
type RegionsConfig struct {
	File      string `toml:"file"` // YAML catalog; empty uses the built-in regions
	HitRadius int    `toml:"hit_radius"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// TelemetryConfig toggles OTLP tracing; the endpoint comes from the standard OTEL_* variables
type TelemetryConfig struct {
	Enabled bool `toml:"enabled"`
}

// DisplayConfig picks the render backend and locale
type DisplayConfig struct {
	Renderer   string `toml:"renderer"` // "ebiten", "tui" or "none"
	Locale     string `toml:"locale"`
	LocalesDir string `toml:"locales_dir"`
}

// ActivityConfig configures region activity launches
type ActivityConfig struct {
	Script string `toml:"script"` // Lua dispatcher script; empty logs launches only
}

// Load reads a TOML file layered over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			Generator:  "island",
			Cols:       100,
			Rows:       100,
			TileSize:   32,
			SandWidth:  2,
			PathRadius: 1,
			MaxBend:    6,
			Landmarks:  true,
			Obstacles:  40,
		},
		Camera: CameraConfig{
			ViewportW: 1280,
			ViewportH: 720,
			Smoothing: 0.1,
			Clamp:     true,
			Margin:    64,
		},
		Avatar: AvatarConfig{
			Speed:          360,
			FastMultiplier: 3,
		},
		Regions: RegionsConfig{
			HitRadius: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Display: DisplayConfig{
			Renderer:   "ebiten",
			Locale:     "en_GB",
			LocalesDir: "locales",
		},
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	w := c.World
	if w.Cols <= 0 || w.Rows <= 0 {
		bad("world size %dx%d must be positive", w.Cols, w.Rows)
	}
	if !finitePositive(w.TileSize) {
		bad("world.tile_size %v must be positive", w.TileSize)
	}
	if w.IslandRadius < 0 || math.IsNaN(w.IslandRadius) {
		bad("world.island_radius %v must not be negative", w.IslandRadius)
	}
	if w.SandWidth < 0 || math.IsNaN(w.SandWidth) {
		bad("world.sand_width %v must not be negative", w.SandWidth)
	}
	if w.PathRadius < 0 {
		bad("world.path_radius %d must not be negative", w.PathRadius)
	}
	if w.MaxBend < 0 {
		bad("world.max_bend %d must not be negative", w.MaxBend)
	}
	if w.Obstacles < 0 {
		bad("world.obstacles %d must not be negative", w.Obstacles)
	}

	cam := c.Camera
	if !finitePositive(cam.ViewportW) || !finitePositive(cam.ViewportH) {
		bad("camera viewport %vx%v must be positive", cam.ViewportW, cam.ViewportH)
	}
	if !(cam.Smoothing > 0 && cam.Smoothing <= 1) {
		bad("camera.smoothing %v must be in (0, 1]", cam.Smoothing)
	}
	if cam.Margin < 0 || math.IsNaN(cam.Margin) {
		bad("camera.margin %v must not be negative", cam.Margin)
	}

	if !finitePositive(c.Avatar.Speed) {
		bad("avatar.speed %v must be positive", c.Avatar.Speed)
	}
	if !(c.Avatar.FastMultiplier >= 1) || math.IsInf(c.Avatar.FastMultiplier, 0) {
		bad("avatar.fast_multiplier %v must be at least 1", c.Avatar.FastMultiplier)
	}

	if c.Regions.HitRadius < 0 {
		bad("regions.hit_radius %d must not be negative", c.Regions.HitRadius)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		bad("logging.format %q must be json or console", c.Logging.Format)
	}
	switch c.Display.Renderer {
	case "ebiten", "tui", "none":
	default:
		bad("display.renderer %q must be ebiten, tui or none", c.Display.Renderer)
	}

	return errors.Join(errs...)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
