// Package config handles the XDG configuration directory and server address.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "todos"

	// SettingsFile is the optional settings filename.
	SettingsFile = "config.json"

	// DefaultServerURL is used when no other source names the server.
	DefaultServerURL = "http://localhost:8080"

	// ServerEnvVar overrides the configured server address.
	ServerEnvVar = "TODOS_SERVER"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// ServerURL is the base address of the todosd server.
	ServerURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

type fileSettings struct {
	ServerURL string `json:"server_url"`
}

// New creates a Config with the default or specified config directory.
// The server address is resolved in precedence order: the serverFlag value,
// the TODOS_SERVER environment variable, server_url in config.json, then
// DefaultServerURL.
func New(configDir, serverFlag string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, ServerURL: DefaultServerURL}

	if raw, err := os.ReadFile(filepath.Join(dir, SettingsFile)); err == nil {
		var settings fileSettings
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
		}
		if settings.ServerURL != "" {
			cfg.ServerURL = settings.ServerURL
		}
	}
	if env := os.Getenv(ServerEnvVar); env != "" {
		cfg.ServerURL = env
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
