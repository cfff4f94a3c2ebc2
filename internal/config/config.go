package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/arcanaland/patience/internal/board"
	"github.com/arcanaland/patience/internal/variant/shenzhen"
)

// Config represents the application configuration
type Config struct {
	Variant string        `toml:"variant" env:"PATIENCE_VARIANT"`
	Pattern board.Pattern `toml:"pattern" env:"PATIENCE_PATTERN"`
	Stacks  int           `toml:"stacks" env:"PATIENCE_STACKS"`
	// Seed fixes the shuffle. Zero draws a fresh seed for every deal.
	Seed  uint64 `toml:"seed" env:"PATIENCE_SEED"`
	Color bool   `toml:"color" env:"PATIENCE_COLOR"`
	// Palette maps suit names to a colour name ("red", "hiblue") or "#rrggbb".
	Palette map[string]string `toml:"palette"`
}

// Default returns the configuration for a standard game.
func Default() Config {
	return Config{
		Variant: shenzhen.Name,
		Pattern: shenzhen.Pattern,
		Stacks:  shenzhen.Stacks,
		Color:   true,
		Palette: map[string]string{
			"green":  "green",
			"red":    "red",
			"black":  "hiwhite",
			"flower": "magenta",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "patience", "config.toml")
}

// LoadDefault loads the config file at the default location.
func LoadDefault() (*Config, error) {
	return Load(GetConfigFilePath())
}

// Load reads the config file at path, writing a default one first if it
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, &cfg); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode reads a config file without creating it or applying the
// environment. It is what validation looks at.
func Decode(path string) (*Config, toml.MetaData, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, md, fmt.Errorf("error decoding config file: %w", err)
	}
	return &cfg, md, nil
}

// ApplyEnv overrides cfg with any PATIENCE_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
