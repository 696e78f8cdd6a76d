// Package config loads the application settings: an optional YAML file for the sphere tuning,
// locale and frame rate, plus a .env file for relay credentials.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/samnmy/portfolio/constants"
	"github.com/samnmy/portfolio/physics"
)

// Config is the application configuration
type Config struct {
	Tuning      physics.Tuning `yaml:"tuning"`
	Locale      string         `yaml:"locale" validate:"oneof=en es"`
	FPS         int            `yaml:"fps" validate:"gte=1,lte=240"`
	CellWidthPx float64        `yaml:"cell_width_px" validate:"gt=0"`
	Muted       bool           `yaml:"muted"`
}

// DefaultConfig returns the reference settings
func DefaultConfig() *Config {
	return &Config{
		Tuning:      physics.DefaultTuning(),
		Locale:      "en",
		FPS:         constants.DefaultFPS,
		CellWidthPx: constants.CellWidthPx,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects out-of-range tuning and display settings
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads path over the defaults; an empty path returns the defaults
// Fields missing from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEnv loads .env files into the process environment without overriding set variables
// Missing files are skipped; with no arguments it tries ./.env
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
