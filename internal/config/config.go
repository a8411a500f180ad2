package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/freesound/pkg/freesound"
)

// Config captures the settings needed to talk to the Freesound API.
type Config struct {
	APIKey   string
	BaseURL  string
	LogLevel string
	LogFile  string
}

const (
	defaultConfigPath = "~/.config/freesound/config.toml"
	defaultLogFile    = "~/.local/share/freesound/freesound.log"
	defaultLogLevel   = "info"

	envAPIKey  = "FREESOUND_API_KEY"
	envBaseURL = "FREESOUND_BASE_URL"
)

// ErrMissingAPIKey is returned by Validate when no API key is configured.
var ErrMissingAPIKey = errors.New("api key not configured (set api_key in config or " + envAPIKey + ")")

// Load locates and parses the config file, falling back to defaults when it
// is missing. FREESOUND_API_KEY and FREESOUND_BASE_URL override the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:  freesound.DefaultBaseURL,
		LogLevel: defaultLogLevel,
		LogFile:  mustExpand(defaultLogFile),
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		if err := cfg.merge(file); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		cfg.APIKey = key
	}
	if base := strings.TrimSpace(os.Getenv(envBaseURL)); base != "" {
		cfg.BaseURL = base
	}
	return cfg, nil
}

func (c *Config) merge(r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIKey   string `toml:"api_key"`
		BaseURL  string `toml:"base_url"`
		LogLevel string `toml:"log_level"`
		LogFile  string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	c.APIKey = strings.TrimSpace(raw.APIKey)
	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		c.BaseURL = base
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		c.LogLevel = level
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		c.LogFile = mustExpand(logFile)
	}
	return nil
}

// Validate reports whether the config is usable for API calls.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// ExpandPath resolves "~" and relative paths to an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}
