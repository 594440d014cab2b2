package spindle

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultTargetFPS    = 60
	defaultWindowTitle  = "spindle"
	defaultWindowWidth  = 640
	defaultWindowHeight = 480
)

// WindowConfig describes the host window used by the Ebitengine platform.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ShowFPS    bool   `yaml:"show_fps"`
	ClearColor Color  `yaml:"clear_color"`
}

// Config is passed once to NewKernel.
type Config struct {
	// TargetFPS caps the tick rate. Zero disables the cap.
	TargetFPS float64 `yaml:"target_fps"`
	// Debug enables per-tick timing logs and stack warnings on stderr.
	Debug bool `yaml:"debug"`
	// StepComposites makes composite buttons created by Kernel.BindExpr, from
	// Bindings or at runtime, get stepped by the keyboard each tick so their
	// Pressed and Released work.
	StepComposites bool `yaml:"step_composites"`
	// Bindings maps input IDs to binding expressions, e.g.
	// "Jump: or(Space, ArrowUp)".
	Bindings map[string]string `yaml:"bindings"`
	Window   WindowConfig      `yaml:"window"`
}

// DefaultConfig returns a Config with a 60 FPS cap and a 640x480 window.
func DefaultConfig() Config {
	return Config{
		TargetFPS: defaultTargetFPS,
		Window: WindowConfig{
			Title:      defaultWindowTitle,
			Width:      defaultWindowWidth,
			Height:     defaultWindowHeight,
			ClearColor: ColorBlack,
		},
	}
}

// LoadConfig parses YAML on top of DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.TargetFPS < 0 {
		return fmt.Errorf("invalid config: target_fps %v is negative", c.TargetFPS)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("invalid config: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	for id, expr := range c.Bindings {
		if id == "" {
			return errors.New("invalid config: binding with empty id")
		}
		if expr == "" {
			return fmt.Errorf("invalid config: binding %q has no expression", id)
		}
	}
	return nil
}
