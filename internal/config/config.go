package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LocalConfigFile is looked up in the working directory before the XDG path
const LocalConfigFile = "sitegen.yaml"

// Config represents the sitegen configuration
type Config struct {
	ContentDir   string `yaml:"content_dir"`
	StaticDir    string `yaml:"static_dir,omitempty"`
	TemplatePath string `yaml:"template"`
	OutputDir    string `yaml:"output_dir"`
	BasePath     string `yaml:"base_path"`
	LogFile      string `yaml:"log_file,omitempty"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		ContentDir:   "content",
		StaticDir:    "static",
		TemplatePath: "template.html",
		OutputDir:    "public",
		BasePath:     "/",
		LogFile:      "",
		LogLevel:     "info",
	}
}

// ConfigPath returns the path to the config file.
// ./sitegen.yaml wins when present, otherwise the XDG config directory is used.
// Can be overridden for testing
var ConfigPath = func() string {
	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile
	}
	return filepath.Join(xdg.ConfigHome, "sitegen", "config.yaml")
}

// Load reads configuration from ConfigPath
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads configuration from path. Fields missing from the file keep
// their defaults; a missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to ConfigPath
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes configuration to path as YAML
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir cannot be empty")
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	// output_dir is wiped on every build
	out := filepath.Clean(c.OutputDir)
	if out == filepath.Clean(c.ContentDir) || (c.StaticDir != "" && out == filepath.Clean(c.StaticDir)) {
		return fmt.Errorf("output_dir '%s' must differ from content_dir and static_dir", c.OutputDir)
	}
	if out == string(filepath.Separator) || out == "." {
		return fmt.Errorf("refusing to use '%s' as output_dir", c.OutputDir)
	}

	if !strings.HasPrefix(c.BasePath, "/") || !strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path '%s': must start and end with '/'", c.BasePath)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}

	return nil
}

// Level parses LogLevel for the logger
func (c *Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.LogLevel)
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.ContentDir, err = expandPath(c.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to expand content_dir: %w", err)
	}

	c.StaticDir, err = expandPath(c.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to expand static_dir: %w", err)
	}

	c.TemplatePath, err = expandPath(c.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to expand template: %w", err)
	}

	c.OutputDir, err = expandPath(c.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to expand output_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
