package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Output formats.
const (
	formatTable = "table"
	formatTree  = "tree"
	formatPlain = "plain"
)

// Log formats.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

const envPrefix = "BSTDEMO"

// Default configuration values, the scenario the tree was first exercised with.
var (
	defaultInsert = []int{10, 23, 4, 56, 73, 33, 44, 38}
	defaultQuery  = []int{33, 100}
	defaultRemove = []int{33}
)

// Config holds all configuration for a replay.
type Config struct {
	Insert  []int     `mapstructure:"insert"`
	Query   []int     `mapstructure:"query"`
	Remove  []int     `mapstructure:"remove"`
	Format  string    `mapstructure:"format"`
	NoColor bool      `mapstructure:"no_color"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig holds logging-specific configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("insert", defaultInsert)
	v.SetDefault("query", defaultQuery)
	v.SetDefault("remove", defaultRemove)
	v.SetDefault("format", formatTable)
	v.SetDefault("no_color", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logFormatText)
}

// LoadConfig loads configuration into v from defaults, the file at
// configPath when given, and BSTDEMO_ environment variables. Flags bound to
// v beforehand take precedence over all of them.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)

		readErr := v.ReadInConfig()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := v.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if !slices.Contains([]string{formatTable, formatTree, formatPlain}, config.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Format)
	}

	if _, err := parseLevel(config.Log.Level); err != nil {
		return err
	}

	if config.Log.Format != logFormatText && config.Log.Format != logFormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Log.Format)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(s))
	if err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}

	return level, nil
}

// newLogger builds the logger described by c writing to w. c must have
// passed validateConfig.
func newLogger(c LogConfig, w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Level)
	opts := &slog.HandlerOptions{Level: level}

	if c.Format == logFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
