package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines behavior settings and the locations of the files trooper
// reads and writes. The vim-style binding file it points at keeps its own
// INI format; this file only configures where to find it.
type Config struct {
	Settings struct {
		ShowHidden bool     `yaml:"show_hidden"` // Include dot-prefixed entries in listings
		TickRate   int      `yaml:"tick_rate"`   // Render tick in milliseconds
		Debug      bool     `yaml:"debug"`       // Enable debug logging
		Ignore     []string `yaml:"ignore"`      // Glob patterns always excluded from listings
	} `yaml:"settings"`
	Directories struct {
		Start string `yaml:"start"` // Startup directory (empty = current directory)
	} `yaml:"directories"`
	Paths struct {
		Bindings  string `yaml:"bindings"`  // Key binding file (INI format)
		Bookmarks string `yaml:"bookmarks"` // Bookmark store (JSON array)
		YankFile  string `yaml:"yank_file"` // Yank register scratch file
		History   string `yaml:"history"`   // Command history file
		LogFile   string `yaml:"log_file"`  // Application log
	} `yaml:"paths"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// LoadConfig loads configuration from the default location
// (~/.config/trooper/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "trooper", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	cfg.Settings.ShowHidden = tempCfg.Settings.ShowHidden
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Settings.TickRate > 0 {
		cfg.Settings.TickRate = tempCfg.Settings.TickRate
	}
	if len(tempCfg.Settings.Ignore) > 0 {
		cfg.Settings.Ignore = tempCfg.Settings.Ignore
	}

	if tempCfg.Directories.Start != "" {
		cfg.Directories.Start = tempCfg.Directories.Start
	}

	if tempCfg.Paths.Bindings != "" {
		cfg.Paths.Bindings = tempCfg.Paths.Bindings
	}
	if tempCfg.Paths.Bookmarks != "" {
		cfg.Paths.Bookmarks = tempCfg.Paths.Bookmarks
	}
	if tempCfg.Paths.YankFile != "" {
		cfg.Paths.YankFile = tempCfg.Paths.YankFile
	}
	if tempCfg.Paths.History != "" {
		cfg.Paths.History = tempCfg.Paths.History
	}
	if tempCfg.Paths.LogFile != "" {
		cfg.Paths.LogFile = tempCfg.Paths.LogFile
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configDir := filepath.Join(home, ".config", "trooper")

	cfg.Settings.ShowHidden = false
	cfg.Settings.TickRate = 100
	cfg.Settings.Debug = false
	cfg.Settings.Ignore = []string{}

	cfg.Directories.Start = ""

	cfg.Paths.Bindings = filepath.Join(configDir, "config.ini")
	cfg.Paths.Bookmarks = filepath.Join(home, ".trooper", "bookmarks.txt")
	cfg.Paths.YankFile = filepath.Join(os.TempDir(), "trooper_yank.txt")
	cfg.Paths.History = filepath.Join(configDir, "history")
	cfg.Paths.LogFile = filepath.Join(configDir, "trooper.log")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Settings.TickRate < 1 {
		return fmt.Errorf("tick rate must be >= 1 millisecond")
	}

	for _, pattern := range c.Settings.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// CompiledIgnores compiles the ignore patterns for listing filters.
// Validate rejects bad patterns up front, so failures here are skipped.
func (c *Config) CompiledIgnores() []glob.Glob {
	out := make([]glob.Glob, 0, len(c.Settings.Ignore))
	for _, pattern := range c.Settings.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	return out
}
