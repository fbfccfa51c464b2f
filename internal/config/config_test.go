package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Keymap.Normal == nil || cfg.Keymap.Visual == nil {
		t.Error("keymaps should be initialized")
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"

[editor]
history-limit = 50
init-script = "init.lua"

[keymap.normal]
"q" = "x"

[keymap.visual]
"s" = "y"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Editor.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.Editor.HistoryLimit)
	}
	if cfg.Editor.InitScript != "init.lua" {
		t.Errorf("InitScript = %q", cfg.Editor.InitScript)
	}
	if cfg.Keymap.Normal["q"] != "x" {
		t.Errorf("normal remap = %q, want x", cfg.Keymap.Normal["q"])
	}
	if cfg.Keymap.Visual["s"] != "y" {
		t.Errorf("visual remap = %q, want y", cfg.Keymap.Visual["s"])
	}
}

func TestLoadFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected a decode error")
	}
}

func TestDirHonorsOverride(t *testing.T) {
	t.Setenv("MODAL_CONFIG_HOME", "/tmp/modal-test")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/modal-test" {
		t.Errorf("Dir() = %q", dir)
	}
}
