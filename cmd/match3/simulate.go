package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3/anim"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/clock"
	"github.com/vovakirdan/tui-match3/internal/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/match3/match"
	"github.com/vovakirdan/tui-match3/internal/match3/spawn"
)

// simTick is the logical clock step used to drain scheduled phases.
const simTick = 10 * time.Millisecond

var (
	flagSimLayout string
	flagSwipes    []string
	flagEvents    bool
	flagPlain     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay scripted swipes headlessly",
	Long: `Builds a board from --layout (or a seeded random board), applies each
--swipe in order and prints the board after every swipe has settled.

A swipe is "x,y,dir" where (x, y) is the dragged tile, row 0 is the bottom
row and dir is up, down, left or right.

Examples:
  match3 simulate --seed 3 --swipe 2,2,left
  match3 simulate --layout cross.yaml --swipe 1,0,up --events`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimLayout, "layout", "", "Board layout YAML (default: random board)")
	simulateCmd.Flags().StringArrayVar(&flagSwipes, "swipe", nil, "Swipe as x,y,dir (repeatable)")
	simulateCmd.Flags().BoolVar(&flagEvents, "events", false, "Print every engine event")
	simulateCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print boards without colors")
}

// swipe is one scripted drag.
type swipe struct {
	From board.Coord
	Dir  board.Dir
}

func (s swipe) String() string {
	return fmt.Sprintf("%v %v", s.From, s.Dir)
}

// parseSwipe parses "x,y,dir".
func parseSwipe(s string) (swipe, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return swipe{}, fmt.Errorf("swipe %q: want x,y,dir", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return swipe{}, fmt.Errorf("swipe %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return swipe{}, fmt.Errorf("swipe %q: bad y: %w", s, err)
	}
	var dir board.Dir
	switch strings.ToLower(strings.TrimSpace(parts[2])) {
	case "up", "u":
		dir = board.DirUp
	case "down", "d":
		dir = board.DirDown
	case "left", "l":
		dir = board.DirLeft
	case "right", "r":
		dir = board.DirRight
	default:
		return swipe{}, fmt.Errorf("swipe %q: unknown direction %q", s, parts[2])
	}
	return swipe{From: board.C(x, y), Dir: dir}, nil
}

// simOptions drives one headless run.
type simOptions struct {
	Config config.Match3Config
	Layout *layout.Layout // nil for a random board
	Seed   int64
	Swipes []swipe
	Events bool
	Plain  bool
	Logger *log.Logger
}

// simulation is an engine wired to instant collaborators.
type simulation struct {
	engine *engine.Engine
	board  *board.Board
	clock  *clock.Manual
	sens   float64
}

func newSimulation(opts simOptions) (*simulation, error) {
	cfg := opts.Config
	if opts.Layout != nil && opts.Layout.Gravity != "" {
		cfg.Board.Gravity = opts.Layout.Gravity
	}
	ecfg, err := engine.NewConfig(cfg)
	if err != nil {
		return nil, err
	}

	spawner := spawn.NewRandom(opts.Seed, cfg.Board.Colors)
	var b *board.Board
	if opts.Layout != nil {
		b = opts.Layout.Build(spawner.NextID)
	} else {
		b = board.New(cfg.Board.Width, cfg.Board.Height)
		spawner.Fill(b)
	}

	clk := clock.NewManual()
	mover := &anim.Instant{}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := engine.New(ecfg, b, match.NewLineChecker(b, cfg.Powers.BombRadius), spawner, mover, clk, engine.WithLogger(logger))
	mover.OnDone = e.MotionDone

	return &simulation{engine: e, board: b, clock: clk, sens: ecfg.Sensitivity}, nil
}

// apply drags the tile and drains every scheduled phase.
func (s *simulation) apply(sw swipe) error {
	dx, dy := sw.Dir.Delta()
	reach := max(1, s.sens+0.5)
	down := engine.Point{X: float64(sw.From.X), Y: float64(sw.From.Y)}
	up := engine.Point{X: down.X + float64(dx)*reach, Y: down.Y + float64(dy)*reach}

	if err := s.engine.Dispatch(engine.PointerDown{Point: down}); err != nil {
		return err
	}
	if err := s.engine.Dispatch(engine.PointerUp{Point: up}); err != nil {
		return err
	}
	if !s.clock.RunUntilIdle(simTick, 100000) {
		return fmt.Errorf("swipe %v did not settle", sw)
	}
	return nil
}

// simulate runs opts and writes each board to w.
func simulate(w io.Writer, opts simOptions) error {
	sim, err := newSimulation(opts)
	if err != nil {
		return err
	}

	outcome := ""
	sim.engine.Subscribe(func(ev engine.Event) {
		switch ev.(type) {
		case engine.SwipeRolledBack:
			outcome = "rolled back"
		case engine.BoardSettled:
			outcome = "settled"
		}
		if opts.Events {
			fmt.Fprintf(w, "  event %s\n", engine.EventName(ev))
		}
	})

	fmt.Fprintln(w, "start")
	fmt.Fprintln(w, renderBoard(sim.board, opts.Plain))

	for i, sw := range opts.Swipes {
		outcome = "ignored"
		if err := sim.apply(sw); err != nil {
			return err
		}
		fmt.Fprintf(w, "swipe %d: %v: %s (gravity %s)\n", i+1, sw, outcome, sim.engine.Gravity())
		fmt.Fprintln(w, renderBoard(sim.board, opts.Plain))
	}
	return nil
}

var tileStyles = map[board.Color]lipgloss.Style{
	board.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	board.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	board.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	board.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	board.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	board.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("245")).
	Padding(0, 1)

// renderBoard draws the board top row first using layout letters.
func renderBoard(b *board.Board, plain bool) string {
	if plain {
		return b.String()
	}

	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		for x := range b.Width() {
			t := b.Occupant(board.C(x, y))
			r := string(board.TileRune(t))
			if x > 0 {
				sb.WriteByte(' ')
			}
			if t == nil {
				sb.WriteString(r)
				continue
			}
			sb.WriteString(tileStyles[t.Color].Render(r))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return frameStyle.Render(sb.String())
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}

	var lay *layout.Layout
	if flagSimLayout != "" {
		if lay, err = layout.Load(flagSimLayout); err != nil {
			return err
		}
	}

	swipes := make([]swipe, 0, len(flagSwipes))
	for _, s := range flagSwipes {
		sw, err := parseSwipe(s)
		if err != nil {
			return err
		}
		swipes = append(swipes, sw)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return simulate(cmd.OutOrStdout(), simOptions{
		Config: cfg,
		Layout: lay,
		Seed:   seed,
		Swipes: swipes,
		Events: flagEvents,
		Plain:  flagPlain,
		Logger: logger,
	})
}
