// Package config provides YAML-based platform settings for the arcade.
// Game rules are compiled into each game and are not configurable here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Settings contains all platform configuration.
type Settings struct {
	TickRate int           `yaml:"tick_rate"`
	DBPath   string        `yaml:"db_path"`
	Input    InputSettings `yaml:"input"`
	SSH      SSHSettings   `yaml:"ssh"`
	Log      LogSettings   `yaml:"log"`
}

// InputSettings tunes keyboard handling.
type InputSettings struct {
	// RepeatDelay is how long a first key press stays down, covering the
	// terminal's delay before auto-repeat begins.
	RepeatDelay time.Duration `yaml:"repeat_delay"`

	// HoldWindow is how long each auto-repeat event keeps a key down.
	HoldWindow time.Duration `yaml:"hold_window"`
}

// SSHSettings configures `arcade serve`.
type SSHSettings struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.TickRate <= 0 || s.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d out of range (1-240)", s.TickRate)
	}
	if s.Input.HoldWindow < 0 {
		return fmt.Errorf("config: negative input.hold_window %s", s.Input.HoldWindow)
	}
	if s.Input.RepeatDelay < 0 {
		return fmt.Errorf("config: negative input.repeat_delay %s", s.Input.RepeatDelay)
	}
	if s.SSH.Address == "" {
		return fmt.Errorf("config: ssh.address is empty")
	}
	switch strings.ToLower(s.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", s.Log.Level)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
