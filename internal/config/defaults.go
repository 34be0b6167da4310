package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in platform settings.
func DefaultSettings() Settings {
	return Settings{
		TickRate: 60,
		DBPath:   "~/.arcade/scores.db",
		Input: InputSettings{
			RepeatDelay: 500 * time.Millisecond,
			HoldWindow:  150 * time.Millisecond,
		},
		SSH: SSHSettings{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default settings document.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
