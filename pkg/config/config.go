// Package config provides configuration management.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"Conexoes/pkg/state"
)

// Config holds all configuration settings
type Config struct {
	// Documentation fields (present in JSON only)
	StartDoc string `json:"// start_screen,omitempty"`
	LogDoc   string `json:"// logging,omitempty"`
	UIDoc    string `json:"// ui_settings,omitempty"`

	// Screen held in state before sign-in. Unknown values fall back to discover.
	StartScreen string `json:"start_screen"`

	// Logging settings
	LogLevel string `json:"log_level"` // DEBUG, INFO, WARN, ERROR
	LogDir   string `json:"log_dir"`   // debug.log is written here

	// UI settings
	UI UIConfig `json:"ui"`
}

// UIConfig holds terminal UI configuration
type UIConfig struct {
	Theme    string `json:"theme"`     // "dark" or "light"
	ShowHelp bool   `json:"show_help"` // help bar under the navigation
	Mouse    bool   `json:"mouse"`     // mouse wheel scrolling
	MaxWidth int    `json:"max_width"` // content column width cap, 0 = terminal width
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		StartDoc: "Screen held in state before sign-in: discover, community, messages, profile",
		LogDoc:   "Log level and directory for debug.log (the terminal is owned by the UI)",
		UIDoc:    "Terminal UI theme, help bar, mouse and width settings",

		StartScreen: string(state.ScreenProfile),
		LogLevel:    "INFO",
		LogDir:      ".conexoes",

		UI: UIConfig{
			Theme:    "dark",
			ShowHelp: true,
			Mouse:    true,
			MaxWidth: 72,
		},
	}
}

// InitialState returns the UI state the app starts from. Unknown start
// screens fall back to the default screen.
func (c *Config) InitialState() state.UIState {
	s := state.Initial()
	if c.StartScreen != "" {
		s.Screen = state.ParseScreen(c.StartScreen)
	}
	return s
}

// GetConfigPaths returns a prioritized list of configuration file paths
func GetConfigPaths(cliPath string) []string {
	var paths []string

	// 1. CLI Override
	if cliPath != "" {
		return append(paths, cliPath)
	}

	// 2. Project local paths
	paths = append(paths, ".conexoes/config.json")
	paths = append(paths, "config.json")

	// 3. User global path
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".conexoes", "config.json"))
	}

	return paths
}

// Load loads configuration from the first available path in the prioritized
// list. When none exists the defaults are returned with the project-local path;
// nothing is written.
func Load(cliPath string) (*Config, string, error) {
	loadDotEnv(".env")

	for _, path := range GetConfigPaths(cliPath) {
		data, err := os.ReadFile(path)
		if err != nil {
			if cliPath != "" {
				return nil, path, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			continue
		}
		cfg := DefaultConfig()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, path, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
		}
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, path, fmt.Errorf("configuration validation failed in %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("default configuration validation failed: %w", err)
	}
	return cfg, ".conexoes/config.json", nil
}

// allowedEnvVars is a whitelist of environment variable names that may be set from .env
var allowedEnvVars = map[string]bool{
	"CONEXOES_LOG_LEVEL":    true,
	"CONEXOES_LOG_DIR":      true,
	"CONEXOES_START_SCREEN": true,
	"CONEXOES_THEME":        true,
	"CONEXOES_MOUSE":        true,
}

// loadDotEnv loads whitelisted variables from a .env file without overriding
// ones already set.
func loadDotEnv(envFile string) {
	file, err := os.Open(envFile)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !allowedEnvVars[key] {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("CONEXOES_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if dir := os.Getenv("CONEXOES_LOG_DIR"); dir != "" {
		cfg.LogDir = dir
	}
	if screen := os.Getenv("CONEXOES_START_SCREEN"); screen != "" {
		cfg.StartScreen = screen
	}
	if theme := os.Getenv("CONEXOES_THEME"); theme != "" {
		cfg.UI.Theme = theme
	}
	if mouse := os.Getenv("CONEXOES_MOUSE"); mouse != "" {
		if v, err := strconv.ParseBool(mouse); err == nil {
			cfg.UI.Mouse = v
		}
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns any errors. An unknown
// start screen is not an error; it falls back at use.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("log_level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel)
	}

	if c.LogDir == "" {
		return fmt.Errorf("log_dir is required")
	}

	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme)
	}

	if c.UI.MaxWidth < 0 {
		return fmt.Errorf("ui.max_width must not be negative, got %d", c.UI.MaxWidth)
	}
	if c.UI.MaxWidth > 0 && c.UI.MaxWidth < 30 {
		return fmt.Errorf("ui.max_width must be 0 or at least 30, got %d", c.UI.MaxWidth)
	}

	return nil
}
