// File: internal/config/config.go
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Highlight() HighlightConfig
	Session() SessionConfig

	// Highlight Setters
	SetHighlightEnabled(bool)
}

// Config holds the entire plugin configuration.
type Config struct {
	LoggerCfg    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	HighlightCfg HighlightConfig `mapstructure:"highlight" yaml:"highlight"`
	SessionCfg   SessionConfig   `mapstructure:"session" yaml:"session"`
}

// --- Interface Method Implementations ---

func (c *Config) Logger() LoggerConfig       { return c.LoggerCfg }
func (c *Config) Highlight() HighlightConfig { return c.HighlightCfg }
func (c *Config) Session() SessionConfig     { return c.SessionCfg }

func (c *Config) SetHighlightEnabled(b bool) { c.HighlightCfg.Enabled = b }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// HighlightConfig controls the suggestion highlight overlays. The hex values
// are "#RRGGBB" strings; the dump variants are used when the active suggestion
// is a liquidation.
type HighlightConfig struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled"`
	Blue          string `mapstructure:"blue" yaml:"blue"`
	BlueDump      string `mapstructure:"blue_dump" yaml:"blue_dump"`
	Red           string `mapstructure:"red" yaml:"red"`
	RedDump       string `mapstructure:"red_dump" yaml:"red_dump"`
	InventorySlot string `mapstructure:"inventory_slot" yaml:"inventory_slot"`
	// PulsePeriod is the full cycle time of the pulsing palettes.
	PulsePeriod time.Duration `mapstructure:"pulse_period" yaml:"pulse_period"`
	// RedrawInterval is the minimum spacing between redraw evaluations when
	// host events arrive in bursts.
	RedrawInterval time.Duration `mapstructure:"redraw_interval" yaml:"redraw_interval"`
}

// SessionConfig locates the persisted login cache.
type SessionConfig struct {
	// Dir is the plugin data directory; "~" expands to the home directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// File is the login-response cache file name inside Dir.
	File string `mapstructure:"file" yaml:"file"`
}

// CachePath resolves the on-disk location of the login cache, expanding a
// leading "~" in Dir.
func (s SessionConfig) CachePath() (string, error) {
	dir, err := homedir.Expand(s.Dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand session dir %q: %w", s.Dir, err)
	}
	return filepath.Join(dir, s.File), nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.HighlightCfg.Validate(); err != nil {
		return fmt.Errorf("highlight configuration invalid: %w", err)
	}
	if err := c.SessionCfg.Validate(); err != nil {
		return fmt.Errorf("session configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the Highlight configuration.
func (h HighlightConfig) Validate() error {
	if h.PulsePeriod <= 0 {
		return fmt.Errorf("pulse_period must be a positive duration")
	}
	if h.RedrawInterval < 0 {
		return fmt.Errorf("redraw_interval must not be negative")
	}
	return nil
}

// Validate checks the Session configuration.
func (s SessionConfig) Validate() error {
	if s.Dir == "" {
		return fmt.Errorf("dir is a required configuration field")
	}
	if s.File == "" || filepath.Base(s.File) != s.File {
		return fmt.Errorf("file must be a bare file name")
	}
	return nil
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "swagfliperino")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// Highlight defaults
	v.SetDefault("highlight.enabled", true)
	v.SetDefault("highlight.blue", "#00AAFF")
	v.SetDefault("highlight.blue_dump", "#AA00FF")
	v.SetDefault("highlight.red", "#FF3C3C")
	v.SetDefault("highlight.red_dump", "#FF7800")
	v.SetDefault("highlight.inventory_slot", "#F0E68C")
	v.SetDefault("highlight.pulse_period", "1200ms")
	v.SetDefault("highlight.redraw_interval", "50ms")

	// Session defaults
	v.SetDefault("session.dir", "~/.swagfliperino")
	v.SetDefault("session.file", "login-response.json")
}
