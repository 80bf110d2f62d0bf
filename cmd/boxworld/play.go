package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxworld/internal/config"
	"github.com/vovakirdan/boxworld/internal/platform/tui"
	"github.com/vovakirdan/boxworld/internal/registry"
	"github.com/vovakirdan/boxworld/internal/storage"
)

var (
	flagDir  string
	flagPace string
)

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Play a world",
	Long: `Start playing a built-in world, or a content directory with --dir.
Without arguments a picker lists the built-in worlds.

Controls:
  Arrows/WASD        - Walk
  Shift+Arrows/WASD  - Run
  Enter/Space        - Talk, choose, continue
  Up/Down            - Move between choices while talking
  ` + "`" + `                  - Toggle debug overlay
  ?                  - Help
  Q/Ctrl+C           - Quit

Pace options:
  stroll - Slow walk
  normal - Default
  brisk  - Fast walk

Examples:
  boxworld play hollow
  boxworld play --dir ./my-world
  boxworld play hollow --pace brisk
  boxworld play hollow --log ./boxworld.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDir, "dir", "", "Play a content directory instead of a built-in world")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Walking pace: stroll, normal, brisk")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPace != "" {
		pace, ok := config.ParsePace(flagPace)
		if !ok {
			return fmt.Errorf("unknown pace %q", flagPace)
		}
		config.ApplyPace(&cfg, pace)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	packID := ""
	switch {
	case flagDir != "":
	case len(args) == 1:
		packID = args[0]
		if !registry.Exists(packID) {
			return fmt.Errorf("unknown world %q (run 'boxworld list')", packID)
		}
	default:
		packID, err = tui.RunMenu(width, height)
		if err != nil || packID == "" {
			return err
		}
	}

	logger, closeLog, err := newLogger("boxworld", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal database", "error", err)
		// Continue without storage - the world still plays
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sess, err := tui.NewSession(tui.SessionConfig{
		PackID: packID,
		Dir:    flagDir,
		Engine: cfg,
		Store:  store,
		Logger: logger,
		Bell:   os.Stdout,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	return tui.Run(sess, cfg)
}
