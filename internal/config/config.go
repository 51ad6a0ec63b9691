package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config controls how the X display connection is established. Every field
// is optional; an empty value defers to the environment.
type Config struct {
	// Display overrides the DISPLAY environment variable when non-empty.
	Display string `yaml:"display"`
	// XAuthority overrides the XAUTHORITY environment variable when non-empty.
	XAuthority string `yaml:"xauthority"`
}

// DefaultConfig returns the built-in defaults: everything comes from the
// environment.
func DefaultConfig() *Config {
	return &Config{}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "hydrix", "config.yaml"), nil
}

// Validate checks field syntax.
func (c *Config) Validate() error {
	if c.Display != "" && !strings.Contains(c.Display, ":") {
		return &ValidationError{
			Path: "display",
			Err:  fmt.Errorf("%q is not an X display name (expected host:number or :number)", c.Display),
		}
	}
	return nil
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}
