package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

type WindowConfig struct {
	Width       int32   `json:"width"`
	Height      int32   `json:"height"`
	Title       string  `json:"title"`
	ClearColorR float32 `json:"clear_color_r"`
	ClearColorG float32 `json:"clear_color_g"`
	ClearColorB float32 `json:"clear_color_b"`
}

// ControlsConfig holds the mouse-look tunables. Angles are radians.
type ControlsConfig struct {
	PointerSpeed  float32 `json:"pointer_speed"`
	MinPolarAngle float32 `json:"min_polar_angle"`
	MaxPolarAngle float32 `json:"max_polar_angle"`
	MoveSpeed     float32 `json:"move_speed"`
	SprintFactor  float32 `json:"sprint_factor"`
}

type Config struct {
	Window   WindowConfig   `json:"window"`
	Controls ControlsConfig `json:"controls"`
	Debug    bool           `json:"debug"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:       1024,
			Height:      768,
			Title:       "GopherLook",
			ClearColorR: 0.1,
			ClearColorG: 0.12,
			ClearColorB: 0.16,
		},
		Controls: ControlsConfig{
			PointerSpeed:  1.0,
			MinPolarAngle: 0,
			MaxPolarAngle: math.Pi,
			MoveSpeed:     10,
			SprintFactor:  2.5,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("saving config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	ctl := c.Controls
	if ctl.PointerSpeed <= 0 {
		return fmt.Errorf("pointer_speed %v must be positive", ctl.PointerSpeed)
	}
	if ctl.MinPolarAngle < 0 || ctl.MaxPolarAngle > math.Pi || ctl.MinPolarAngle > ctl.MaxPolarAngle {
		return fmt.Errorf("polar angles [%v, %v] must satisfy 0 <= min <= max <= pi", ctl.MinPolarAngle, ctl.MaxPolarAngle)
	}
	if ctl.MoveSpeed < 0 || ctl.SprintFactor < 0 {
		return errors.New("move_speed and sprint_factor must not be negative")
	}
	return nil
}
