package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/freesound/pkg/freesound"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p != Default() {
		t.Fatalf("Load = %#v, want %#v", p, Default())
	}
	if p.SortOption() != freesound.SortScore {
		t.Fatalf("SortOption = %v, want score", p.SortOption())
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "freesound")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	content := "theme = \"Slate\"\npage_size = 50\nsort = \"Rating_Desc\"\n"
	if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" || p.PageSize != 50 || p.Sort != "rating_desc" {
		t.Fatalf("Load = %#v, want Slate/50/rating_desc", p)
	}
	if p.SortOption() != freesound.SortRatingDesc {
		t.Fatalf("SortOption = %v, want rating_desc", p.SortOption())
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	content := "theme = \"\"\npage_size = 9000\nsort = \"loudest\"\n"
	if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p != Default() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Theme: "Kanagawa", PageSize: 15, Sort: "created_desc"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(prefsFile)
	if loaded != p {
		t.Fatalf("Load = %#v, want %#v", loaded, p)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p != Default() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}
