package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePrefs(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_DefaultLocationUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Default() {
		t.Fatalf("Load without file = %+v, want %+v", p, Default())
	}

	writePrefs(t, filepath.Join(home, ".config", "todo", "prefs.toml"), "theme = \"Slate\"\nhide_finished = true\n")

	p, err = Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" || !p.HideFinished {
		t.Fatalf("Load = %+v, want Slate with finished tasks hidden", p)
	}
}

func TestLoad_FileContents(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Prefs
	}{
		{"theme only", "theme = \"Slate\"\n", Prefs{Theme: "Slate"}},
		{"filter only", "hide_finished = true\n", Prefs{Theme: defaultTheme, HideFinished: true}},
		{"blank theme", "theme = \"  \"\n", Prefs{Theme: defaultTheme}},
		{"padded theme", "theme = \" Slate \"\n", Prefs{Theme: "Slate"}},
		{"unknown keys", "colour = \"red\"\n", Default()},
		{"invalid toml", "not valid toml {{{\n", Default()},
		{"wrong type", "hide_finished = \"yes\"\n", Default()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			writePrefs(t, path, tc.body)

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Load = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLoad_UnreadablePathReturnsError(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file cannot be read.
	if _, err := Load(dir); err == nil {
		t.Fatalf("Load(%q) returned nil error, want read error", dir)
	}
}

func TestSave_RoundTripAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate", HideFinished: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hide_finished = true") {
		t.Fatalf("saved file = %q, want hide_finished key", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != (Prefs{Theme: "Slate", HideFinished: true}) {
		t.Fatalf("Load after Save = %+v", loaded)
	}
}

func TestSave_ReplacesWithoutLeavingTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	writePrefs(t, path, "theme = \"Slate\"\nhide_finished = true\n")

	if err := Save(path, Prefs{Theme: ""}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != Default() {
		t.Fatalf("Load after overwrite = %+v, want %+v", loaded, Default())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir entries = %v, want only prefs.toml", names)
	}
}
