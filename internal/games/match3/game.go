// Package match3 adapts the match-3 engine to the registry.Game surface.
// It owns the collaborators the engine leaves to its host: the seeded
// spawner, the line checker, the tick-driven animator and the logical clock.
package match3

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3/anim"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/clock"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
	"github.com/vovakirdan/tui-match3/internal/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/match3/match"
	"github.com/vovakirdan/tui-match3/internal/match3/spawn"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Variant selects the starting gravity.
type Variant string

const (
	VariantNormal  Variant = "match3"
	VariantFlipped Variant = "match3_flipped"
)

// Package-level variables for config
var (
	configPath string
	layoutPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayoutPath makes Reset start from a layout file instead of a random board.
func SetLayoutPath(path string) {
	layoutPath = path
}

// SetLogger sets the logger handed to every engine created by Reset.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(string(VariantNormal), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantFlipped), func() registry.Game {
		return NewFlipped()
	})
}

// Stats counts what happened since the last Reset.
type Stats struct {
	Moves     int // accepted swipes
	Rollbacks int
	Powers    int // powers fired
	Settles   int
}

// Game is a playable match-3 board.
type Game struct {
	variant Variant

	cfg      config.Match3Config
	engine   *engine.Engine
	board    *board.Board
	spawner  *spawn.Random
	animator *anim.Animator
	clock    *clock.Manual

	tick     uint64
	tickDur  time.Duration
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	cursor  board.Coord
	grabbed bool
	pressed bool // a mouse press is being tracked
	view    view
	stats   Stats
	lastErr error
}

// New creates a match-3 game with normal gravity.
func New() *Game {
	return &Game{variant: VariantNormal}
}

// NewFlipped creates a match-3 game whose tiles start falling upward.
func NewFlipped() *Game {
	return &Game{variant: VariantFlipped}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantFlipped {
		return "Match-3 (Flipped Gravity)"
	}
	return "Match-3"
}

// Reset builds a new board and engine.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	if g.variant == VariantFlipped {
		cfg.Board.Gravity = board.GravityFlipped.String()
	}

	var lay *layout.Layout
	if layoutPath != "" {
		lay, err = layout.Load(layoutPath)
		if err != nil {
			logger.Warn("ignoring layout", "path", layoutPath, "err", err)
			lay = nil
		} else if lay.Gravity != "" {
			cfg.Board.Gravity = lay.Gravity
		}
	}

	ecfg, err := engine.NewConfig(cfg)
	if err != nil {
		logger.Warn("using default engine config", "err", err)
		ecfg = engine.DefaultConfig()
	}

	g.cfg = cfg
	g.spawner = spawn.NewRandom(rc.Seed, cfg.Board.Colors)
	if lay != nil {
		g.board = lay.Build(g.spawner.NextID)
	} else {
		g.board = board.New(cfg.Board.Width, cfg.Board.Height)
		g.spawner.Fill(g.board)
	}

	g.clock = clock.NewManual()
	g.animator = anim.New(cfg.Animation.Speed, nil)
	checker := match.NewLineChecker(g.board, cfg.Powers.BombRadius)
	g.engine = engine.New(ecfg, g.board, checker, g.spawner, g.animator, g.clock, engine.WithLogger(logger))
	g.animator.SetDone(g.engine.MotionDone)
	g.engine.Subscribe(g.observe)

	g.tick = 0
	g.tickDur = rc.TickDuration()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.cursor = board.C(g.board.Width()/2, g.board.Height()/2)
	g.grabbed = false
	g.pressed = false
	g.stats = Stats{}
	g.lastErr = nil
	g.layoutView()
}

// observe tallies engine events for the HUD.
func (g *Game) observe(ev engine.Event) {
	switch ev.(type) {
	case engine.SwipeAccepted:
		g.stats.Moves++
	case engine.SwipeRolledBack:
		g.stats.Rollbacks++
	case engine.PowerActivated:
		g.stats.Powers++
	case engine.BoardSettled:
		g.stats.Settles++
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	for _, p := range in.Pointers {
		g.handlePointer(p)
	}

	g.clock.Advance(g.tickDur)
	g.animator.Step(g.tickDur)

	return core.StepResult{State: g.State()}
}

// dispatch forwards ev and keeps the last failure for the status line.
// Busy-slot rejections are expected while the board is resolving.
func (g *Game) dispatch(ev engine.Event) {
	err := g.engine.Dispatch(ev)
	if err == nil {
		return
	}
	if errors.Is(err, command.ErrSlotBusy) {
		logger.Debug("swipe ignored", "err", err)
		return
	}
	g.lastErr = err
	logger.Warn("dispatch failed", "event", engine.EventName(ev), "err", err)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	busy := g.engine != nil && (g.engine.State() == engine.StateWait || g.animator.Busy())
	return core.GameState{
		Busy:   busy,
		Paused: g.paused || g.tooSmall,
		Moves:  g.stats.Moves,
	}
}

// Stats returns the event tallies since the last Reset.
func (g *Game) Stats() Stats {
	return g.stats
}

// Engine exposes the running engine for scripted drivers.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}
