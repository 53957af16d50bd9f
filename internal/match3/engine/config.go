package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

// Config holds the engine's tuning parameters.
type Config struct {
	// Sensitivity is the drag length, in cells, a pointer must exceed on
	// either axis to count as a swipe.
	Sensitivity float64

	DestroySettle  time.Duration // after cleared tiles vanish
	CollapseSettle time.Duration // after columns compact
	SpawnInterval  time.Duration // between spawned rows

	Powers  PowerTable
	Gravity board.Gravity // initial direction
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Sensitivity:    0.3,
		DestroySettle:  250 * time.Millisecond,
		CollapseSettle: 200 * time.Millisecond,
		SpawnInterval:  80 * time.Millisecond,
		Powers:         DefaultPowerTable(),
		Gravity:        board.GravityNormal,
	}
}

// NewConfig converts a loaded YAML configuration.
func NewConfig(c config.Match3Config) (Config, error) {
	g, ok := board.ParseGravity(c.Board.Gravity)
	if !ok {
		return Config{}, fmt.Errorf("engine: unknown gravity %q", c.Board.Gravity)
	}

	tiers := make([]PowerTier, 0, len(c.Powers.Tiers))
	for _, t := range c.Powers.Tiers {
		kind, ok := board.ParsePowerKind(t.Kind)
		if !ok {
			return Config{}, fmt.Errorf("engine: unknown power kind %q", t.Kind)
		}
		tiers = append(tiers, PowerTier{MinSize: t.MinSize, Kind: kind})
	}
	table, err := NewPowerTable(tiers...)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Sensitivity:    c.Swipe.Sensitivity,
		DestroySettle:  c.Timing.DestroySettle,
		CollapseSettle: c.Timing.CollapseSettle,
		SpawnInterval:  c.Timing.SpawnInterval,
		Powers:         table,
		Gravity:        g,
	}, nil
}
