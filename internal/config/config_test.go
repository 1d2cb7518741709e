package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scaffold.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
extension: calc
jobs: 8
debounce: 250ms
timeout: 2s
format: yaml
log_level: debug
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Extension: ".calc",
		Jobs:      8,
		Debounce:  250 * time.Millisecond,
		Timeout:   2 * time.Second,
		Format:    "yaml",
		LogLevel:  "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
	if level, _ := got.Level(); level != slog.LevelDebug {
		t.Errorf("Level() = %v", level)
	}
}

func TestLoadPartial(t *testing.T) {
	got, err := Load(writeFile(t, "jobs: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Jobs = 2
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}

func TestLoadMissingDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad yaml", "jobs: [1"},
		{"zero jobs", "jobs: 0"},
		{"bad format", "format: xml"},
		{"bad level", "log_level: loud"},
		{"bad duration", "debounce: soon"},
		{"empty extension", `extension: ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.text)); err == nil {
				t.Errorf("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing explicit file")
	}
}
