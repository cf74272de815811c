package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantmind-br/shelly/internal/security"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Fish        FishConfig        `mapstructure:"fish"`
	Interpreter InterpreterConfig `mapstructure:"interpreter"`
	Install     InstallConfig     `mapstructure:"install"`
	Run         RunConfig         `mapstructure:"run"`
	Paths       PathsConfig       `mapstructure:"paths"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// FishConfig describes where fish lands once installed and which package provides it
type FishConfig struct {
	Path    string `mapstructure:"path"`
	Package string `mapstructure:"package"`
}

// InterpreterConfig controls the interpreter version probe
type InterpreterConfig struct {
	Command    string `mapstructure:"command"`
	MinVersion string `mapstructure:"min_version"`
}

// InstallConfig contains package installation options
type InstallConfig struct {
	AssumeYes bool `mapstructure:"assume_yes"`
	Confirm   bool `mapstructure:"confirm"`
}

// RunConfig bounds the whole run. Zero means no timeout.
type RunConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "shelly"))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// SHELLY_FISH_PATH overrides fish.path, and so on
	viper.SetEnvPrefix("SHELLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that would make the run meaningless
func (c *Config) Validate() error {
	if c.Fish.Path == "" {
		return fmt.Errorf("fish.path cannot be empty")
	}
	if err := security.ValidateShellPath(c.Fish.Path); err != nil {
		return fmt.Errorf("fish.path: %w", err)
	}
	if c.Fish.Package == "" {
		return fmt.Errorf("fish.package cannot be empty")
	}
	if err := security.ValidatePackageName(c.Fish.Package); err != nil {
		return fmt.Errorf("fish.package: %w", err)
	}
	if c.Interpreter.Command == "" {
		return fmt.Errorf("interpreter.command cannot be empty")
	}
	if c.Run.Timeout < 0 {
		return fmt.Errorf("run.timeout cannot be negative")
	}
	return nil
}

// Default returns a Config populated with the built-in defaults, ignoring files and environment
func Default() *Config {
	return &Config{
		Fish: FishConfig{
			Path:    "/usr/bin/fish",
			Package: "fish",
		},
		Interpreter: InterpreterConfig{
			Command: "python3",
		},
		Logging: LoggingConfig{
			Level: "warn",
			Color: "auto",
		},
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	def := Default()

	viper.SetDefault("fish.path", def.Fish.Path)
	viper.SetDefault("fish.package", def.Fish.Package)

	viper.SetDefault("interpreter.command", def.Interpreter.Command)
	viper.SetDefault("interpreter.min_version", "")

	viper.SetDefault("install.assume_yes", false)
	viper.SetDefault("install.confirm", false)

	viper.SetDefault("run.timeout", "0s")

	viper.SetDefault("paths.log_file", filepath.Join(homeDir, ".local", "state", "shelly", "shelly.log"))

	viper.SetDefault("logging.level", def.Logging.Level)
	viper.SetDefault("logging.color", def.Logging.Color)
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
