// dragon is Flappy Dragon, a side-scrolling reflex game for the terminal.
//
// Usage:
//
//	dragon                   - Play the game (same as "dragon play")
//	dragon play              - Play the game
//	dragon config            - Print the effective configuration as YAML
//	dragon version           - Print the version
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.dragon/config.yaml, ./configs/dragon.yaml, built-in)
//	--fps <rate>        - Override the frame rate
//	--seed <value>      - Override the RNG seed for reproducible walls
//	--log-level <lvl>   - Override the log level (debug, info, warn, error)
//	--log-file <path>   - Override the log file ("-" for stderr, "" to disable)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - a side-scrolling reflex game for your terminal",
	Long: `Flappy Dragon puts you in charge of a dragon flying through an endless
line of walls. Flap to stay in the air and fly through the gaps; every
wall you pass scores a point and makes the next gap narrower.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  version  - Print the version

Examples:
  dragon
  dragon play --seed 42
  dragon config > ~/.dragon/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (\"-\" = stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	// Invalid values may still be fixed by a flag; validated again below
	if err != nil && !errors.Is(err, config.ErrInvalid) {
		return cfg, source, err
	}

	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("fps") {
		o.FPS = &flagFPS
	}
	if flags.Changed("seed") {
		o.Seed = &flagSeed
	}
	if flags.Changed("log-level") {
		o.LogLevel = &flagLogLevel
	}
	if flags.Changed("log-file") {
		o.LogFile = &flagLogFile
	}
	o.Apply(&cfg)

	return cfg, source, cfg.Validate()
}
