package server

import (
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Settings are the server runtime options read from server.ini in the
// project directory. Scenario physics stay in room.yaml; this file
// only holds host concerns.
type Settings struct {
	Port        int
	LogLevel    string
	Streamlines int
}

// DefaultSettings are used when no server.ini exists.
var DefaultSettings = Settings{
	Port:        3000,
	LogLevel:    "info",
	Streamlines: 20,
}

// LoadSettings reads server.ini from the project directory, falling
// back to defaults for missing keys or a missing file.
func LoadSettings(projectDir string) Settings {
	file, err := ini.Load(filepath.Join(projectDir, "server.ini"))
	if err != nil {
		return DefaultSettings
	}

	sec := file.Section("server")
	return Settings{
		Port:        sec.Key("port").MustInt(DefaultSettings.Port),
		LogLevel:    sec.Key("log_level").MustString(DefaultSettings.LogLevel),
		Streamlines: sec.Key("streamlines").MustInt(DefaultSettings.Streamlines),
	}
}
