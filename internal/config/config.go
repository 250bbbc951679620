package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "erralert"

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Notify NotifyConfig `koanf:"notify"`
	Jobs   JobsConfig   `koanf:"jobs"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Level      string `koanf:"level"`       // "debug", "info", "warn", "error" (default: "info")
	File       string `koanf:"file"`        // default: $XDG_STATE_HOME/erralert/erralert.log
	MaxSizeMB  int    `koanf:"max_size_mb"` // rotate after this size (default: 5)
	MaxBackups int    `koanf:"max_backups"` // rotated files to keep (default: 3)
}

// NotifyConfig controls desktop notification mirroring of alerts.
type NotifyConfig struct {
	Enabled bool `koanf:"enabled"`
}

// JobsConfig tunes the simulated background jobs.
type JobsConfig struct {
	FetchDelayMS int    `koanf:"fetch_delay_ms"` // time before a fetch fails (default: 800)
	FeedURL      string `koanf:"feed_url"`       // shown in fetch errors
}

// Load reads the user config then ./config.toml (last wins).
// Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files override
// earlier ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/erralert/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}

	return cfg
}

// FetchDelay returns how long a simulated fetch runs before failing.
func (c *Config) FetchDelay() time.Duration {
	if c.Jobs.FetchDelayMS <= 0 {
		return 800 * time.Millisecond
	}
	return time.Duration(c.Jobs.FetchDelayMS) * time.Millisecond
}

// FeedURL returns the feed URL shown in fetch errors.
func (c *Config) FeedURL() string {
	if c.Jobs.FeedURL == "" {
		return "https://feeds.example.org/news.xml"
	}
	return c.Jobs.FeedURL
}
