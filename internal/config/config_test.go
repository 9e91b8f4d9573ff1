// File: internal/config/config_test.go
package config

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "swagfliperino", cfg.Logger().ServiceName)
	assert.True(t, cfg.Highlight().Enabled)
	assert.Equal(t, "#00AAFF", cfg.Highlight().Blue)
	assert.Equal(t, "#FF3C3C", cfg.Highlight().Red)
	assert.Equal(t, 1200*time.Millisecond, cfg.Highlight().PulsePeriod)
	assert.Equal(t, 50*time.Millisecond, cfg.Highlight().RedrawInterval)
	assert.Equal(t, "~/.swagfliperino", cfg.Session().Dir)
	assert.Equal(t, "login-response.json", cfg.Session().File)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate(), "the defaults must validate")

	t.Run("Highlight Validation", func(t *testing.T) {
		bad := *cfg
		bad.HighlightCfg.PulsePeriod = 0
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pulse_period must be a positive duration")

		bad = *cfg
		bad.HighlightCfg.RedrawInterval = -time.Millisecond
		err = bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redraw_interval must not be negative")
	})

	t.Run("Session Validation", func(t *testing.T) {
		bad := *cfg
		bad.SessionCfg.Dir = ""
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dir is a required configuration field")

		bad = *cfg
		bad.SessionCfg.File = "nested/login.json"
		err = bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file must be a bare file name")
	})
}

// -- Unmarshalling Tests --

func TestConfigUnmarshalsFromYAML(t *testing.T) {
	yaml := []byte(`
highlight:
  enabled: false
  blue: "#112233"
  pulse_period: 900ms
session:
  dir: /tmp/swagfliperino-test
`)

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yaml)))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.False(t, cfg.Highlight().Enabled)
	assert.Equal(t, "#112233", cfg.Highlight().Blue)
	assert.Equal(t, 900*time.Millisecond, cfg.Highlight().PulsePeriod)
	// Untouched keys keep their defaults.
	assert.Equal(t, "#FF3C3C", cfg.Highlight().Red)
	assert.Equal(t, "login-response.json", cfg.Session().File)
	assert.Equal(t, "/tmp/swagfliperino-test", cfg.Session().Dir)
}

// -- Accessor Tests --

func TestSetHighlightEnabled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetHighlightEnabled(false)
	assert.False(t, cfg.Highlight().Enabled)
	cfg.SetHighlightEnabled(true)
	assert.True(t, cfg.Highlight().Enabled)
}

func TestCachePath(t *testing.T) {
	s := SessionConfig{Dir: "/var/lib/swagfliperino", File: "login-response.json"}
	path, err := s.CachePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib/swagfliperino", "login-response.json"), path)

	home, err := homedir.Dir()
	require.NoError(t, err)
	s.Dir = "~/.swagfliperino"
	path, err = s.CachePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".swagfliperino", "login-response.json"), path)
}
