// Package config parses jester.toml configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "jester.toml"

// DefaultAccentColor is the default TUI accent color (magenta).
const DefaultAccentColor = "#FF00FF"

// hexColorRe matches a 6-digit hex color string like "#FF00FF".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Config is the top-level jester.toml configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	Timing TimingConfig `toml:"timing"`
	TUI    TUIConfig    `toml:"tui"`
	Log    LogConfig    `toml:"log"`

	// Path is the file the configuration was loaded from; "" for defaults.
	Path string `toml:"-"`
}

// APIConfig points at the joke service.
type APIConfig struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// TimingConfig controls the reveal and celebration choreography.
type TimingConfig struct {
	RevealDelayMS int `toml:"reveal_delay_ms"`
	CelebrationMS int `toml:"celebration_ms"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// LogConfig controls the diagnostic log. The TUI owns the terminal, so logs
// go to a rotating file; an empty File discards them.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Timeout returns the HTTP timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// RevealDelay returns the pause between a response and showing the joke.
func (t TimingConfig) RevealDelay() time.Duration {
	return time.Duration(t.RevealDelayMS) * time.Millisecond
}

// CelebrationWindow returns how long the confetti stays up.
func (t TimingConfig) CelebrationWindow() time.Duration {
	return time.Duration(t.CelebrationMS) * time.Millisecond
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.API.Endpoint == "" {
		errs = append(errs, fmt.Errorf("api.endpoint must not be empty"))
	} else {
		u, parseErr := url.ParseRequestURI(c.API.Endpoint)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("api.endpoint must be a valid http or https URL"))
		}
	}
	if c.API.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout_seconds must be > 0"))
	}

	if c.Timing.RevealDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.reveal_delay_ms must be >= 0"))
	}
	if c.Timing.CelebrationMS < 0 {
		errs = append(errs, fmt.Errorf("timing.celebration_ms must be >= 0"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#FF00FF\")"))
	}

	if !contains(validLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s", strings.Join(validLevels, ", ")))
	}
	if !contains(validFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s", strings.Join(validFormats, ", ")))
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be >= 0"))
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("log.max_backups must be >= 0 (0 = keep all)"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config matching the reference behavior: 1.2s reveal
// delay and a 2s celebration.
func Defaults() Config {
	return Config{
		API: APIConfig{
			Endpoint:       "https://official-joke-api.appspot.com/jokes/random",
			TimeoutSeconds: 10,
		},
		Timing: TimingConfig{
			RevealDelayMS: 1200,
			CelebrationMS: 2000,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			File:       filepath.Join(".jester", "jester.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads jester.toml from the given path. If path is empty, it walks up
// from the current working directory looking for jester.toml and falls back
// to Defaults when none exists. Returns an error if the file contains
// unknown keys (likely typos) or fails validation.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &cfg, nil
		}
		path = found
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}

	cfg.Path = path
	return &cfg, nil
}

// BaseDir is the directory relative paths in the configuration (the log
// file) resolve against: the directory holding jester.toml, or the user
// cache directory when running on defaults.
func (c *Config) BaseDir() (string, error) {
	if c.Path != "" {
		return filepath.Dir(c.Path), nil
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("config: locate cache directory: %w", err)
	}
	return filepath.Join(cache, "jester"), nil
}

// findConfig walks up from the current directory looking for jester.toml.
// It returns "" without error when the filesystem root is reached.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
