// Package config provides configuration loading and validation for the card service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/achievement-card/internal/cache"
	"github.com/jonathan/achievement-card/internal/ingestion"
	"github.com/jonathan/achievement-card/internal/types"
)

// Default values.
const (
	DefaultPort     = 3000
	DefaultLogLevel = "info"
)

// Config is the service configuration. It can be loaded from a JSON file and
// overlaid with environment variables.
type Config struct {
	Mode            types.Mode `json:"mode,omitempty" validate:"omitempty,oneof=structured page"`
	UpstreamBaseURL string     `json:"upstream_base_url,omitempty" validate:"omitempty,url"`
	Port            int        `json:"port,omitempty" validate:"gte=0,lte=65535"`
	CacheTTL        Duration   `json:"cache_ttl,omitempty" validate:"gte=0"`
	CacheCapacity   int        `json:"cache_capacity,omitempty" validate:"gte=0"`
	UseBrowser      bool       `json:"use_browser,omitempty"`
	LogLevel        string     `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// Duration is a time.Duration that reads "10m" style strings from JSON.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var secs float64
	if err := json.Unmarshal(data, &secs); err != nil {
		return fmt.Errorf("duration must be a string or number of seconds")
	}
	*d = Duration(time.Duration(secs * float64(time.Second)))
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:            types.ModeStructured,
		UpstreamBaseURL: ingestion.DefaultBaseURL,
		Port:            DefaultPort,
		CacheTTL:        Duration(cache.DefaultTTL),
		CacheCapacity:   cache.DefaultCapacity,
		LogLevel:        DefaultLogLevel,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays values from the environment onto c. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CARD_MODE"); ok && v != "" {
		c.Mode = types.Mode(strings.ToLower(v))
	}
	if v, ok := lookup("CARD_UPSTREAM_BASE_URL"); ok && v != "" {
		c.UpstreamBaseURL = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		c.Port = port
	}
	if v, ok := lookup("CARD_CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: CARD_CACHE_TTL: %w", err)
		}
		c.CacheTTL = Duration(ttl)
	}
	if v, ok := lookup("CARD_CACHE_CAPACITY"); ok && v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: CARD_CACHE_CAPACITY must be an integer: %w", err)
		}
		c.CacheCapacity = capacity
	}
	if v, ok := lookup("CARD_USE_BROWSER"); ok && v != "" {
		use, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: CARD_USE_BROWSER must be a boolean: %w", err)
		}
		c.UseBrowser = use
	}
	if v, ok := lookup("CARD_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Empty fields are allowed; MergeWithDefaults fills them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.UseBrowser && c.Mode != types.ModePage {
		return fmt.Errorf("config error: 'use_browser' requires mode 'page'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.UpstreamBaseURL == "" {
		result.UpstreamBaseURL = defaults.UpstreamBaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.CacheCapacity == 0 {
		result.CacheCapacity = defaults.CacheCapacity
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// Load reads the optional file at path, overlays the environment, validates, and
// fills defaults.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.MergeWithDefaults(Default()), nil
}
