package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Test loading config (will use defaults if file doesn't exist)
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/usr/bin/fish", cfg.Fish.Path)
	assert.Equal(t, "fish", cfg.Fish.Package)
	assert.Equal(t, "python3", cfg.Interpreter.Command)
	assert.Empty(t, cfg.Interpreter.MinVersion)
	assert.False(t, cfg.Install.AssumeYes)
	assert.False(t, cfg.Install.Confirm)
	assert.Equal(t, time.Duration(0), cfg.Run.Timeout)
	assert.NotEmpty(t, cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Paths.LogFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SHELLY_FISH_PATH", "/usr/local/bin/fish")
	t.Setenv("SHELLY_INSTALL_ASSUME_YES", "true")
	t.Setenv("SHELLY_RUN_TIMEOUT", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/fish", cfg.Fish.Path)
	assert.True(t, cfg.Install.AssumeYes)
	assert.Equal(t, 90*time.Second, cfg.Run.Timeout)
}

func TestLoad_InvalidFishPath(t *testing.T) {
	t.Setenv("SHELLY_FISH_PATH", "fish")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be absolute")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(_ *Config) {}, ""},
		{"empty fish path", func(c *Config) { c.Fish.Path = "" }, "fish.path cannot be empty"},
		{"relative fish path", func(c *Config) { c.Fish.Path = "bin/fish" }, "must be absolute"},
		{"empty package", func(c *Config) { c.Fish.Package = "" }, "fish.package"},
		{"option-like package", func(c *Config) { c.Fish.Package = "--noconfirm" }, "cannot start with a dash"},
		{"injected fish path", func(c *Config) { c.Fish.Path = "/usr/bin/fish;id" }, "dangerous pattern"},
		{"empty interpreter", func(c *Config) { c.Interpreter.Command = "" }, "interpreter.command"},
		{"negative timeout", func(c *Config) { c.Run.Timeout = -time.Second }, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()
	t.Setenv("SHELLY_TEST_DIR", "/tmp/shelly")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty path", "", ""},
		{"absolute path", "/var/log/shelly.log", "/var/log/shelly.log"},
		{"home expansion", "~/shelly.log", filepath.Join(homeDir, "shelly.log")},
		{"env expansion", "$SHELLY_TEST_DIR/shelly.log", "/tmp/shelly/shelly.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandPath(tt.input))
		})
	}
}
