package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DisplayFile     = "file"
	DisplayTerminal = "terminal"
	DisplayLive     = "live"
)

// Config is the merged configuration for one rlmetrics run.
type Config struct {
	Width         float64       `mapstructure:"width"`
	HeightPerPlot float64       `mapstructure:"height_per_plot"`
	DPI           float64       `mapstructure:"dpi"`
	Format        string        `mapstructure:"format"`
	Display       string        `mapstructure:"display"`
	Wait          bool          `mapstructure:"wait"`
	OutputDir     string        `mapstructure:"output_dir"`
	Output        string        `mapstructure:"output"`
	Listen        string        `mapstructure:"listen"`
	Refresh       time.Duration `mapstructure:"refresh"`
	Interval      time.Duration `mapstructure:"interval"`
	LogLevel      string        `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment lookup set
// up. Callers bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("rlmetrics")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("RLMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v.SetDefault)
	return v
}

// Load reads the config file, if any, and returns the merged settings.
// An explicit file must exist; the default rlmetrics.yaml is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel parses LogLevel, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
