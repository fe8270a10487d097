package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultFeedURL is the curated app feed the grid was built around
const DefaultFeedURL = "https://rss.itunes.apple.com/api/v1/us/ios-apps/new-apps-we-love/all/100/explicit.json"

// Config holds all application configuration
type Config struct {
	Feed    FeedConfig    `mapstructure:"feed"`
	Reveal  RevealConfig  `mapstructure:"reveal"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FeedConfig holds the feed endpoint configuration
type FeedConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RevealConfig holds skeleton-loading pacing
type RevealConfig struct {
	Delay time.Duration `mapstructure:"delay"` // Time before the grid widens
}

// UIConfig holds UI configuration
type UIConfig struct {
	GridColumns int `mapstructure:"grid_columns"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			URL:     DefaultFeedURL,
			Timeout: 30 * time.Second,
		},
		Reveal: RevealConfig{
			Delay: 2 * time.Second,
		},
		UI: UIConfig{
			GridColumns: 3,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "appgrid", "appgrid.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "appgrid", "appgrid.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "appgrid")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "appgrid")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working
// directory for config.yaml; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	// Register defaults so environment overrides apply to every key
	v.SetDefault("feed.url", cfg.Feed.URL)
	v.SetDefault("feed.timeout", cfg.Feed.Timeout)
	v.SetDefault("reveal.delay", cfg.Reveal.Delay)
	v.SetDefault("ui.grid_columns", cfg.UI.GridColumns)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (APPGRID_FEED_URL, ...)
	v.SetEnvPrefix("APPGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the rest of the application relies on
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required")
	}
	if c.Feed.Timeout < 0 {
		return fmt.Errorf("feed.timeout must not be negative")
	}
	if c.Reveal.Delay < 0 {
		return fmt.Errorf("reveal.delay must not be negative")
	}
	if c.UI.GridColumns < 1 {
		return fmt.Errorf("ui.grid_columns must be at least 1, got %d", c.UI.GridColumns)
	}
	return nil
}
