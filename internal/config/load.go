package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when loaded values are out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Render.MaxBounceCount < 0 {
		return fmt.Errorf("%w: max_bounce_count %d", ErrInvalidConfig, c.Render.MaxBounceCount)
	}
	if c.Render.NumRaysPerPixel < 1 {
		return fmt.Errorf("%w: num_rays_per_pixel %d", ErrInvalidConfig, c.Render.NumRaysPerPixel)
	}
	if c.Render.FieldOfView <= 0 || c.Render.FieldOfView >= 180 {
		return fmt.Errorf("%w: field_of_view %v", ErrInvalidConfig, c.Render.FieldOfView)
	}
	if c.Render.NearClip <= 0 {
		return fmt.Errorf("%w: near_clip %v", ErrInvalidConfig, c.Render.NearClip)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("%w: camera distance %v", ErrInvalidConfig, c.Camera.Distance)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./rtscene.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "rtscene")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "rtscene")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "rtscene")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "rtscene")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
