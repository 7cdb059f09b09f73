// filepath: internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mediacheck/internal/shared"

	"github.com/BurntSushi/toml"
)

// Default values applied when neither config file, environment, nor flags
// provide one. A bare run checks list.txt against the local data server.
const (
	DefaultBaseURL  = "http://localhost/data"
	DefaultListFile = "list.txt"
	DefaultErrorLog = "error_log.txt"
	DefaultTimeout  = "30s"
	DefaultLogLevel = "info"
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Checker CheckerConfig `toml:"checker"`
	Logging LoggingConfig `toml:"logging"`

	TimeoutDuration time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the target server configuration.
type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

// CheckerConfig holds the check-run configuration.
type CheckerConfig struct {
	ListFile  string `toml:"list_file"`
	ErrorLog  string `toml:"error_log"`
	Timeout   string `toml:"timeout"` // e.g. "30s", "5m"; "0" disables the timeout
	UserAgent string `toml:"user_agent"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns a configuration populated with the default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{BaseURL: DefaultBaseURL},
		Checker: CheckerConfig{
			ListFile: DefaultListFile,
			ErrorLog: DefaultErrorLog,
			Timeout:  DefaultTimeout,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration to a TOML file.
// Used by the init-config command to bootstrap a starter file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses the timeout string.
func (c *Config) ParseAndValidate() error {
	// Default the HTTP timeout to 30s if not specified. The timeout is an
	// explicit setting, not the HTTP client's implicit default; "0" disables
	// it entirely (no deadline on a check).
	if c.Checker.Timeout == "" {
		c.Checker.Timeout = DefaultTimeout
	}

	timeout, err := ParseDuration(c.Checker.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	c.TimeoutDuration = timeout

	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("base_url %q: %w", c.Server.BaseURL, shared.ErrInvalidBaseURL)
	}

	return nil
}

// ParseDuration parses a duration string with support for days
// (e.g., "30d", "24h") into a time.Duration.
// A special value of "0" is allowed and returns 0 duration (disabling the timeout).
// Duplicated here to keep the config package self-contained.
func ParseDuration(durationStr string) (time.Duration, error) {
	trimmedStr := strings.TrimSpace(durationStr)
	// Handle "0" as a special case for "disabled"
	if trimmedStr == "0" {
		return 0, nil
	}

	re := regexp.MustCompile(`^(\d+)\s*(d|h|m|s)$`)
	matches := re.FindStringSubmatch(trimmedStr)

	if len(matches) < 3 {
		return 0, fmt.Errorf("invalid duration format: %s", durationStr)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", matches[1])
	}

	// If value is 0 (e.g., "0s"), return 0 duration
	if value == 0 {
		return 0, nil
	}

	unit := matches[2]
	switch unit {
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	case "s":
		return time.Duration(value) * time.Second, nil
	default:
		return 0, fmt.Errorf("unsupported duration unit: %s", unit)
	}
}
