// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog query defaults
type CatalogConfig struct {
	Endpoint    string   `mapstructure:"endpoint"`     // GraphQL endpoint override, empty = production
	Country     string   `mapstructure:"country"`      // Default 2-letter country for searches
	Language    string   `mapstructure:"language"`     // Lowercase language code
	ResultCount int      `mapstructure:"result_count"` // Titles per search
	BestOnly    bool     `mapstructure:"best_only"`    // One offer per package
	Countries   []string `mapstructure:"countries"`    // Codes for the offer comparison view; empty = all supported
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Country:     "US",
			Language:    "en",
			ResultCount: 20,
			BestOnly:    false,
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// Validate normalizes and checks the catalog defaults
func (c *Config) Validate() error {
	c.Catalog.Country = strings.ToUpper(strings.TrimSpace(c.Catalog.Country))
	c.Catalog.Language = strings.ToLower(strings.TrimSpace(c.Catalog.Language))
	if len(c.Catalog.Country) != 2 {
		return fmt.Errorf("catalog.country %q: %w", c.Catalog.Country, domain.ErrInvalidCountryCode)
	}
	for i, code := range c.Catalog.Countries {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 2 {
			return fmt.Errorf("catalog.countries[%d] %q: %w", i, code, domain.ErrInvalidCountryCode)
		}
		c.Catalog.Countries[i] = code
	}
	if c.Catalog.ResultCount <= 0 {
		c.Catalog.ResultCount = DefaultConfig().Catalog.ResultCount
	}
	return nil
}

func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "watchmovies", "watchmovies.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "watchmovies", "watchmovies.log")
	}
}

func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "watchmovies")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "watchmovies")
	}
}

// defaultCachePath returns the cache directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "watchmovies", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "watchmovies", "cache")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("WATCHMOVIES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetCachePath returns the cache directory path
func GetCachePath() string {
	return defaultCachePath()
}

// ClearCache removes all cached data
func ClearCache() error {
	if err := os.RemoveAll(defaultCachePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
