package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	got := LoadSettings(t.TempDir())
	if got != DefaultSettings {
		t.Errorf("LoadSettings = %+v, want defaults %+v", got, DefaultSettings)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "[server]\nport = 8080\nlog_level = debug\n"
	if err := os.WriteFile(filepath.Join(dir, "server.ini"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	got := LoadSettings(dir)
	if got.Port != 8080 {
		t.Errorf("Port = %d, want 8080", got.Port)
	}
	if got.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", got.LogLevel)
	}
	// Unset keys keep their defaults.
	if got.Streamlines != DefaultSettings.Streamlines {
		t.Errorf("Streamlines = %d, want default %d", got.Streamlines, DefaultSettings.Streamlines)
	}
}
