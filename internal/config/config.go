// Package config loads the TOML configuration of the entropy command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied to fields left unset.
const (
	DefaultInputPath = "file.txt"
	DefaultWorkers   = 1
	MaxWorkers       = 256
)

var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidLogLevel is returned when an unknown log level is configured.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidColorMode is returned when an unknown color mode is configured.
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// Config is the top-level configuration document.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Count  CountConfig  `toml:"count"`
	Report ReportConfig `toml:"report"`
	Log    LogConfig    `toml:"log"`
}

// InputConfig selects the text to encode.
type InputConfig struct {
	Path     string `toml:"path"`
	MaxBytes int64  `toml:"max_bytes"` // 0 = unlimited
}

// CountConfig controls the frequency counting stage.
type CountConfig struct {
	Workers int `toml:"workers"` // >1 counts chunks concurrently
}

// ReportConfig controls the human-readable output.
type ReportConfig struct {
	Color ColorMode `toml:"color"`
	Stats bool      `toml:"stats"`
	Tree  bool      `toml:"tree"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level LogLevel `toml:"level"`
}

// LogLevel is one of debug, info, warn or error.
type LogLevel string

// Log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// UnmarshalText implements encoding.TextUnmarshaler so that TOML parsing
// rejects unknown levels.
func (l *LogLevel) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch LogLevel(s) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		*l = LogLevel(s)
		return nil
	case "":
		*l = LogLevelInfo
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, string(text))
	}
}

// ToSlogLevel converts l for use with the slog package.
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch strings.ToLower(string(l)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, string(l))
	}
}

// ColorMode selects when the report is colored.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	mode, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseColorMode parses s, treating the empty string as ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: auto, always, never)", ErrInvalidColorMode, s)
	}
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(content)
}

// Parse parses TOML content, applies defaults and validates the result.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Input.Path == "" {
		cfg.Input.Path = DefaultInputPath
	}
	if cfg.Count.Workers == 0 {
		cfg.Count.Workers = DefaultWorkers
	}
	if cfg.Report.Color == "" {
		cfg.Report.Color = ColorAuto
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = LogLevelInfo
	}
}

// Validate checks value ranges.
func Validate(cfg *Config) error {
	if cfg.Input.MaxBytes < 0 {
		return fmt.Errorf("%w: input.max_bytes must not be negative, got %d", ErrInvalidConfig, cfg.Input.MaxBytes)
	}
	if cfg.Count.Workers < 1 || cfg.Count.Workers > MaxWorkers {
		return fmt.Errorf("%w: count.workers must be in [1, %d], got %d", ErrInvalidConfig, MaxWorkers, cfg.Count.Workers)
	}
	if _, err := ParseColorMode(string(cfg.Report.Color)); err != nil {
		return err
	}
	if _, err := cfg.Log.Level.ToSlogLevel(); err != nil {
		return err
	}
	return nil
}
