package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var errNoTerminal = errors.New("stdout is not a terminal")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start the game at the main menu.

Controls:
  P / R / Enter  - Play from the menu, restart after game over
  Space / Up / W - Flap
  Q / Esc        - Quit from the menu or the game over screen
  Ctrl+C         - Exit at any time

Examples:
  dragon play
  dragon play --fps 30
  dragon play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := tui.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, closeLog) }()

	rt := cfg.Runtime()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		if w < rt.ScreenW || h <= rt.ScreenH {
			logger.Warn("terminal smaller than the game screen, view will be cropped",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH),
			)
		}
	}

	logger.Info("starting",
		"config", source,
		"screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH),
		"fps", rt.TickRate,
		"seed", rt.Seed,
	)

	state := flappy.NewState(rt, core.NewRNG(rt.Seed))
	if err = tui.Run(state, rt, logger); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("stopped", "score", state.Score())
	return nil
}

// joinClose runs closeFn and adds its error, if any, to err.
func joinClose(err error, closeFn func() error) error {
	if cerr := closeFn(); cerr != nil {
		return errors.Join(err, fmt.Errorf("closing log: %w", cerr))
	}
	return err
}
