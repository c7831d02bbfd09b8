package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// NewLogger creates the game logger described by cfg. The terminal
// belongs to the game, so logs normally go to a file. The returned close
// function releases that file and is never nil.
func NewLogger(cfg config.Config) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	var w io.Writer
	closer := noop
	switch cfg.Log.File {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		path := config.ExpandHome(cfg.Log.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("tui: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("tui: cannot open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragon",
		Level:           cfg.LogLevel(),
	})
	return logger, closer, nil
}
