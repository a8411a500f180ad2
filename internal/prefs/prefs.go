// Package prefs handles user preferences persistence for the search browser.
// Preferences are stored in ~/.config/freesound/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/freesound/pkg/freesound"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme    string `toml:"theme"`
	PageSize int    `toml:"page_size"`
	Sort     string `toml:"sort"`
}

const (
	defaultPrefsPath = "~/.config/freesound/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultPageSize  = 30
	maxPageSize      = 150
)

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{
		Theme:    defaultTheme,
		PageSize: defaultPageSize,
		Sort:     freesound.SortScore.String(),
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// SortOption returns the stored sort as a freesound.SortOption, falling back
// to score ordering when the value is unknown.
func (p Prefs) SortOption() freesound.SortOption {
	opt, err := freesound.ParseSortOption(p.Sort)
	if err != nil {
		return freesound.SortScore
	}
	return opt
}

// Load reads preferences from the given path, falling back to defaults if
// the file is missing or unreadable.
func Load(path string) Prefs {
	prefs := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs // Graceful degradation
	}

	var stored Prefs
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return prefs // Graceful degradation
	}

	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		prefs.Theme = theme
	}
	if stored.PageSize > 0 && stored.PageSize <= maxPageSize {
		prefs.PageSize = stored.PageSize
	}
	if _, err := freesound.ParseSortOption(stored.Sort); err == nil {
		prefs.Sort = strings.ToLower(strings.TrimSpace(stored.Sort))
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
