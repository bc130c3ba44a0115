package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
	ShowDeck bool   `toml:"show_deck"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "warn",
		ShowDeck: true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file, falling back to defaults when it does
// not exist, then applies BLACKJACK_* environment overrides. A .env file in
// the working directory is loaded first if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := Default()
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BLACKJACK_COLOR"); v != "" {
		c.Color = strings.ToLower(v)
	}
	if v := os.Getenv("BLACKJACK_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("BLACKJACK_SHOW_DECK"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BLACKJACK_SHOW_DECK %q: %w", v, err)
		}
		c.ShowDeck = show
	}
	return nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

// UseColor resolves the color mode for an output that may be a terminal
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// WriteDefaultConfig creates the config file with default values and returns
// its path. An existing file is left untouched.
func WriteDefaultConfig() (string, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return "", fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return "", fmt.Errorf("error encoding config: %w", err)
	}

	return configPath, nil
}
