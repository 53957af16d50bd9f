// match3 runs the match-3 engine in the terminal.
//
// Usage:
//
//	match3 list                 - List board variants
//	match3 play [variant]       - Play a variant (picker when omitted)
//	match3 simulate             - Replay scripted swipes headlessly
//	match3 config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tiles, clear lines, watch the board cascade",
	Long: `Match-3 is a terminal match-3 board driven by an event engine.

Available commands:
  list      - Show all board variants
  play      - Play a variant interactively
  simulate  - Run scripted swipes without a terminal UI
  config    - Print the effective configuration as YAML

Examples:
  match3 list
  match3 play match3_flipped --seed 7
  match3 simulate --layout board.yaml --swipe 1,0,up
  match3 config --config ./configs/match3.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match-3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the engine logger at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	}), nil
}
