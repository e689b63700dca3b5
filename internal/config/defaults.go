package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mateconpizza/dejavu/internal/db"
)

const (
	defaultFindLimit = 3
	defaultColor     = "always"
)

var (
	ErrConfigInvalid = errors.New("invalid config")
	ErrFindLimit     = errors.New("find_limit must be positive")
	ErrColorValue    = errors.New("color must be always or never")
)

// ConfigFile represents the configuration file.
type ConfigFile struct {
	DBPath        string `json:"db_path"        yaml:"db_path"`        // Database file path
	Driver        string `json:"driver"         yaml:"driver"`         // SQLite driver [sqlite3|sqlite]
	CaseSensitive bool   `json:"case_sensitive" yaml:"case_sensitive"` // Case sensitive search
	FindLimit     int    `json:"find_limit"     yaml:"find_limit"`     // Max results printed by find
	Color         string `json:"color"          yaml:"color"`          // Color output [always|never]
}

// Defaults returns the default configuration.
func Defaults() *ConfigFile {
	return &ConfigFile{
		DBPath:    DefaultDBPath,
		Driver:    db.DefaultDriver,
		FindLimit: defaultFindLimit,
		Color:     defaultColor,
	}
}

// Validate fills empty values with defaults and rejects invalid ones.
func Validate(cfg *ConfigFile) error {
	if cfg.DBPath == "" {
		slog.Warn("empty db_path, loading default", "db_path", DefaultDBPath)
		cfg.DBPath = DefaultDBPath
	}

	if cfg.Driver == "" {
		cfg.Driver = db.DefaultDriver
	}

	if !slices.Contains([]string{db.DriverCGO, db.DriverPureGo}, cfg.Driver) {
		return fmt.Errorf("%w: %w: %q", ErrConfigInvalid, db.ErrDriverUnknown, cfg.Driver)
	}

	if cfg.FindLimit == 0 {
		cfg.FindLimit = defaultFindLimit
	}

	if cfg.FindLimit < 0 {
		return fmt.Errorf("%w: %w: %d", ErrConfigInvalid, ErrFindLimit, cfg.FindLimit)
	}

	if cfg.Color == "" {
		cfg.Color = defaultColor
	}

	if cfg.Color != "always" && cfg.Color != "never" {
		return fmt.Errorf("%w: %w: %q", ErrConfigInvalid, ErrColorValue, cfg.Color)
	}

	return nil
}
