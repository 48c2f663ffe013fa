package cmd

import (
	"fmt"
	"time"

	"github.com/adinata/fintrack/sheets"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// FeedURL is the published CSV (or gviz) feed of the transactions tab.
	FeedURL string `mapstructure:"feed_url"`
	// ScriptURL is the Apps Script web app that appends records.
	ScriptURL string `mapstructure:"script_url"`
	// Goal is the savings target in major currency units.
	Goal float64 `mapstructure:"goal"`
	// Currency is the ISO code amounts are displayed in.
	Currency string `mapstructure:"currency"`
	// CacheTTL bounds the age of the cached feed, e.g. "90s".
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// CacheDir overrides the feed cache directory (system temp dir by default).
	CacheDir string `mapstructure:"cache_dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Goal:     10_000_000,
		Currency: "IDR",
		CacheTTL: sheets.DefaultTTL,
	}
}

// LoadConfig loads configuration from file and environment variables.
// Environment variables use the FINTRACK_ prefix: FINTRACK_FEED_URL,
// FINTRACK_GOAL, and so on, and take precedence over the file.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("feed_url", "")
	v.SetDefault("script_url", "")
	v.SetDefault("goal", 10_000_000)
	v.SetDefault("currency", "IDR")
	v.SetDefault("cache_ttl", sheets.DefaultTTL)
	v.SetDefault("cache_dir", "")

	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
