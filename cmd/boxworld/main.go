// boxworld is a tile-world adventure engine that plays in the terminal.
//
// Usage:
//
//	boxworld list              - List built-in worlds
//	boxworld play [world]      - Play a world (picker when omitted)
//	boxworld serve             - Start SSH server for remote play
//	boxworld journal [world]   - Browse recorded rewards and visits
//	boxworld check <dir>       - Validate a content directory
//
// Global flags:
//
//	--fps <rate>     - Override tick rate from config
//	--debug          - Fast movement and debug overlay
//	--config <path>  - Engine config YAML
//	--db <path>      - Journal database (default: ~/.boxworld/journal.db)
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxworld/internal/config"

	// Import worlds to register them
	_ "github.com/vovakirdan/boxworld/internal/worlds/hollow"
)

var (
	// Global flags
	flagFPS     int
	flagDebug   bool
	flagConfig  string
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxworld",
	Short: "boxworld - walk, talk and explore tile worlds in your terminal",
	Long: `boxworld runs small tile-based adventure worlds in the terminal:
walk an 11x11 view, talk to the people you meet, collect items and
move between connected areas.

Available commands:
  list     - Show built-in worlds
  play     - Play a world
  serve    - Start SSH server for remote play
  journal  - Browse what happened in past sessions
  check    - Validate a content directory

Examples:
  boxworld list
  boxworld play hollow
  boxworld play --dir ./my-world
  boxworld serve --ssh :2222
  boxworld check ./my-world`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Fast movement and debug overlay")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxworld/journal.db", "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig loads the engine config and applies global flag overrides.
func loadConfig() (config.EngineConfig, error) {
	cfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	if flagDebug {
		cfg.Loop.Debug = true
	}
	return cfg, nil
}

// newLogger returns a file logger when --log is set. fallback is used
// otherwise; nil fallback discards.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
