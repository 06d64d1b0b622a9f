// Package config handles tripdash configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all tripdash configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Countdown  CountdownConfig  `toml:"countdown"`
	Photos     PhotosConfig     `toml:"photos"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	TripFile string `toml:"trip_file,omitempty"`
}

// CountdownConfig holds departure countdown settings. Departure overrides
// the trip file's start date when set.
type CountdownConfig struct {
	Departure *time.Time `toml:"departure,omitempty"`
}

// PhotosConfig holds attachment store limits.
type PhotosConfig struct {
	MaxStoreMB  int `toml:"max_store_mb"`
	MaxPerPhase int `toml:"max_per_phase"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Photos: PhotosConfig{
			MaxStoreMB:  256,
			MaxPerPhase: 64,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripdash")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultTripPath returns the default location of the trip definition file.
func DefaultTripPath() string {
	return filepath.Join(Dir(), "trip.toml")
}

// TripPath resolves the trip file location: explicit config value first,
// then the default location.
func TripPath(cfg Config) string {
	if cfg.General.TripFile != "" {
		return cfg.General.TripFile
	}
	return DefaultTripPath()
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
