package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var (
	flagLayout  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant, or pick one from a menu.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Grab the tile, then an arrow swipes it
  Mouse drag   - Swipe the tile under the pointer
  Esc          - Drop the grabbed tile
  P            - Pause
  R            - New board
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

The terminal belongs to the board while playing, so logs are discarded
unless --log-file is set.

Examples:
  match3 play
  match3 play match3_flipped
  match3 play match3 --layout ./layouts/cross.yaml --log-file match3.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Start from a board layout YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write engine logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	} else {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		cfg = result.Config
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'match3 list' to see variants)", gameID)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		defer f.Close()
		w = f
	}
	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	match3.SetConfigPath(flagConfig)
	match3.SetLayoutPath(flagLayout)
	match3.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Info("starting", "variant", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
