// Package main is the entry point for the modal editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/editor"
	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/logger"
	"github.com/dshills/modal/internal/renderer"
	"github.com/dshills/modal/internal/script"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "modal - a vi-style modal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: modal [options] [file]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("modal %s\n", version)
		return 0
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: config: %v\n", err)
		return 1
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, closeLog, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		return 1
	}
	defer closeLog()

	path := flag.Arg(0)
	content := ""
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: open %s: %v\n", path, err)
			return 1
		}
		content = string(data)
	}

	ctrl := editor.NewController(content,
		editor.WithLogger(log),
		editor.WithHistoryLimit(cfg.Editor.HistoryLimit),
	)
	if err := installKeymaps(ctrl, cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: keymap: %v\n", err)
		return 1
	}

	term, err := renderer.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal: %v\n", err)
		return 1
	}
	defer term.Close()

	log.Info("editor started", zap.String("file", path), zap.String("version", version))

	term.Run(ctrl, func(ev key.Event) bool {
		switch ev.Encode() {
		case "Ctrl+q":
			return true
		case "Ctrl+s":
			if path != "" {
				if err := os.WriteFile(path, []byte(ctrl.Content()), 0o644); err != nil {
					log.Error("save failed", zap.Error(err))
				} else {
					log.Info("saved", zap.String("file", path))
				}
			}
			return false
		}
		ctrl.HandleKey(ev)
		return false
	})

	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// installKeymaps applies remaps from the config file and from the Lua
// init script, script entries winning.
func installKeymaps(ctrl *editor.Controller, cfg config.Config, log *zap.Logger) error {
	apply := func(mode editor.Mode, maps map[string]string) error {
		for from, to := range maps {
			if err := ctrl.Remap(mode, from, to); err != nil {
				return fmt.Errorf("%q -> %q: %w", from, to, err)
			}
		}
		return nil
	}

	if err := apply(editor.ModeNormal, cfg.Keymap.Normal); err != nil {
		return err
	}
	if err := apply(editor.ModeVisual, cfg.Keymap.Visual); err != nil {
		return err
	}

	if cfg.Editor.InitScript == "" {
		return nil
	}
	scriptPath := cfg.Editor.InitScript
	if !filepath.IsAbs(scriptPath) {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		scriptPath = filepath.Join(dir, scriptPath)
	}
	km, err := script.RunFile(scriptPath)
	if err != nil {
		log.Warn("init script failed", zap.Error(err))
		return nil
	}
	if err := apply(editor.ModeNormal, km.Normal); err != nil {
		return err
	}
	return apply(editor.ModeVisual, km.Visual)
}
