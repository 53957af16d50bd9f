// Package engine orchestrates a match-3 board: it validates swipes, confirms
// or rolls them back, and runs the destroy, power and refill cascade until the
// board settles.
//
// The engine is single-threaded. Every mutation happens inside Dispatch or a
// Scheduler callback, and collaborators report back through Dispatch or
// MotionDone on the same goroutine.
package engine

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
)

// MatchChecker finds matches. The engine treats its results as opaque.
type MatchChecker interface {
	// Check returns the cells matched through c, or fewer than three cells
	// when there is no match.
	Check(c board.Coord) []board.Coord
	// PowerEffect returns the cells cleared by a power of kind firing at c.
	PowerEffect(kind board.PowerKind, c board.Coord) []board.Coord
	// HasAnyMatch reports whether the board holds any match.
	HasAnyMatch() bool
}

// Spawner creates tiles. pos is where the tile enters the board.
type Spawner interface {
	SpawnTile(pos board.Coord) *board.Tile
	SpawnPower(kind board.PowerKind, color board.Color, pos board.Coord) *board.Tile
}

// Scheduler runs fn once after d.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// sentinel is the last tile spawned during a refill. Its landing triggers the
// rescan.
type sentinel struct {
	pos board.Coord
	id  uint64
}

// Engine is the match-3 orchestrator.
type Engine struct {
	cfg     Config
	board   *board.Board
	checker MatchChecker
	spawner Spawner
	mover   command.Mover
	sched   Scheduler
	logger  *log.Logger

	state       GameState
	queue       []Event
	dispatching bool
	subscribers []func(Event)

	// swipe cycle
	slot      command.Slot
	cycle     uuid.UUID
	swiped    [2]board.Coord
	confirm   bool // waiting for cell-finished-move
	confirmed int
	matched   bool
	rollback  int // move-backs still expected
	press     *Point

	// cascade
	matches    *MatchSet
	spawns     spawnQueue
	pending    pendingPowers
	destroying bool
	gravity    board.Gravity
	collapse   *command.Macro
	spawnRows  [][]board.Coord
	last       *sentinel
}

// New creates an engine in the Ready state. It panics if any collaborator is
// nil.
func New(cfg Config, b *board.Board, checker MatchChecker, spawner Spawner, mover command.Mover, sched Scheduler, opts ...Option) *Engine {
	switch {
	case b == nil:
		panic("engine: nil board")
	case checker == nil:
		panic("engine: nil match checker")
	case spawner == nil:
		panic("engine: nil spawner")
	case mover == nil:
		panic("engine: nil mover")
	case sched == nil:
		panic("engine: nil scheduler")
	}

	e := &Engine{
		cfg:     cfg,
		board:   b,
		checker: checker,
		spawner: spawner,
		mover:   mover,
		sched:   sched,
		logger:  log.New(io.Discard),
		state:   StateReady,
		matches: NewMatchSet(),
		gravity: cfg.Gravity,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current game state.
func (e *Engine) State() GameState {
	return e.state
}

// Gravity returns the current fall direction.
func (e *Engine) Gravity() board.Gravity {
	return e.gravity
}

// Board returns the board the engine drives.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Cycle returns the ID of the current or most recent swipe cycle.
func (e *Engine) Cycle() uuid.UUID {
	return e.cycle
}

// Subscribe registers fn to observe every dispatched event, after the state
// transition and before the engine handles it.
func (e *Engine) Subscribe(fn func(Event)) {
	e.subscribers = append(e.subscribers, fn)
}

// Dispatch delivers ev and every event raised while handling it, in FIFO
// order. Calls made while a dispatch is running only queue the event.
// Handler errors are joined and returned.
func (e *Engine) Dispatch(ev Event) error {
	return e.run(func() error {
		e.raise(ev)
		return nil
	})
}

// MotionDone converts a finished motion into its completion event.
func (e *Engine) MotionDone(m command.Motion) {
	var ev Event
	switch m.Kind {
	case command.MotionSwap:
		ev = CellFinishedMove{Cell: m.Cell}
	case command.MotionSwapBack:
		ev = CellFinishedMoveBack{Cell: m.Cell}
	case command.MotionFall:
		ev = CellFell{Cell: m.Cell}
	default:
		e.logger.Warn("unknown motion", "kind", m.Kind, "cell", m.Cell)
		return
	}
	e.report(e.Dispatch(ev))
}

func (e *Engine) raise(ev Event) {
	e.queue = append(e.queue, ev)
}

// run executes fn with the dispatch loop held, then drains the queue.
func (e *Engine) run(fn func() error) error {
	if e.dispatching {
		return fn()
	}
	e.dispatching = true
	defer func() { e.dispatching = false }()

	var errs []error
	if err := fn(); err != nil {
		errs = append(errs, err)
	}
	for len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue = e.queue[1:]
		if err := e.handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// after schedules fn on the scheduler and runs it inside the dispatch loop.
func (e *Engine) after(d time.Duration, fn func() error) {
	e.sched.After(d, func() {
		e.report(e.run(fn))
	})
}

// report logs errors that have no caller to return to.
func (e *Engine) report(err error) {
	if err != nil {
		e.logger.Error("engine error", "err", err)
	}
}

func (e *Engine) handle(ev Event) error {
	prev := e.state
	e.state = transition(prev, ev)
	if e.state != prev {
		e.logger.Debug("state", "from", prev, "to", e.state, "event", EventName(ev))
	}
	for _, fn := range e.subscribers {
		fn(ev)
	}

	switch ev := ev.(type) {
	case PointerDown:
		e.onPointerDown(ev)
	case PointerUp:
		return e.onPointerUp(ev)
	case SwipeAccepted:
		return e.onSwipeAccepted(ev)
	case CellFinishedMove:
		return e.onCellFinishedMove(ev)
	case CellFinishedMoveBack:
		return e.onCellFinishedMoveBack(ev)
	case CellFell:
		return e.onCellFell(ev)
	case PowerActivated:
		e.onPowerActivated(ev)
	case Collapse:
		return e.onCollapse()
	case DestructionComplete:
		return e.onDestructionComplete()
	case SwipeRolledBack, BoardSettled:
		e.idle()
	default:
		e.logger.Warn("dropping unknown event", "event", EventName(ev))
	}
	return nil
}

// idle returns every cell to CellIdle once the board is at rest.
func (e *Engine) idle() {
	for _, c := range e.board.Cells() {
		c.State = board.CellIdle
		c.Target = c.Pos
	}
}
