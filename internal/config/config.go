// Package config loads the TOML configuration file and supplies
// defaults when it is absent.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Keymap remaps keys within a mode: encoded key -> encoded key.
// Visual remaps apply to both character and line visual.
type Keymap struct {
	Normal map[string]string `toml:"normal"`
	Visual map[string]string `toml:"visual"`
}

// Log configures the file logger.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Editor holds editor behavior options.
type Editor struct {
	// HistoryLimit caps the undo stack. 0 means the default.
	HistoryLimit int `toml:"history-limit"`

	// InitScript is a Lua script run at startup; it may return
	// additional keymaps.
	InitScript string `toml:"init-script"`
}

// Config is the full on-disk configuration.
type Config struct {
	Editor Editor `toml:"editor"`
	Log    Log    `toml:"log"`
	Keymap Keymap `toml:"keymap"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Keymap: Keymap{
			Normal: map[string]string{},
			Visual: map[string]string{},
		},
	}
}

// Load reads config.toml from the config directory, merging it over
// the defaults. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file, merging it over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var user Config
	if _, err := toml.Decode(string(data), &user); err != nil {
		return cfg, err
	}

	if user.Log.Level != "" {
		cfg.Log.Level = user.Log.Level
	}
	if user.Log.File != "" {
		cfg.Log.File = user.Log.File
	}
	if user.Editor.HistoryLimit > 0 {
		cfg.Editor.HistoryLimit = user.Editor.HistoryLimit
	}
	if user.Editor.InitScript != "" {
		cfg.Editor.InitScript = user.Editor.InitScript
	}
	for k, v := range user.Keymap.Normal {
		cfg.Keymap.Normal[k] = v
	}
	for k, v := range user.Keymap.Visual {
		cfg.Keymap.Visual[k] = v
	}
	return cfg, nil
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if v := os.Getenv("MODAL_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "modal"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "modal"), nil
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
