package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

func TestNewLoggerWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "dragon.log")

	logger, closeLog, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Info("round started")
	logger.Debug("hidden at info level")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "round started") || !strings.Contains(out, "dragon") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
}

func TestNewLoggerDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = ""

	logger, closeLog, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Info("dropped")
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Log.File = filepath.Join(blocker, "dragon.log") // parent is a file

	if _, closeLog, err := NewLogger(cfg); err == nil {
		t.Error("expected an error for an unusable log path")
	} else if closeLog == nil {
		t.Error("close function must never be nil")
	}
}
