package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "modal.log")
	log, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hello")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewEmptyPathIsNop(t *testing.T) {
	log, closeFn, err := New("", "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn()
	log.Info("discarded")
}
