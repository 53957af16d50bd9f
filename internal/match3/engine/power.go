package engine

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

// MinPowerSize is the smallest match that can create a power tile.
const MinPowerSize = 4

// PowerTier grants Kind to matches of at least MinSize cells.
type PowerTier struct {
	MinSize int
	Kind    board.PowerKind
}

// PowerTable maps match sizes to power kinds.
type PowerTable struct {
	tiers []PowerTier // ascending MinSize
}

// NewPowerTable validates and sorts tiers.
func NewPowerTable(tiers ...PowerTier) (PowerTable, error) {
	sorted := make([]PowerTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinSize < sorted[j].MinSize
	})

	for i, t := range sorted {
		if t.MinSize < MinPowerSize {
			return PowerTable{}, fmt.Errorf("engine: power tier %v: min size %d is below %d", t.Kind, t.MinSize, MinPowerSize)
		}
		if t.Kind == board.PowerNone {
			return PowerTable{}, fmt.Errorf("engine: power tier at size %d has no kind", t.MinSize)
		}
		if i > 0 && sorted[i-1].MinSize == t.MinSize {
			return PowerTable{}, fmt.Errorf("engine: duplicate power tier at size %d", t.MinSize)
		}
	}
	return PowerTable{tiers: sorted}, nil
}

// DefaultPowerTable grants a line power for four and gravity for five or more.
func DefaultPowerTable() PowerTable {
	return PowerTable{tiers: []PowerTier{
		{MinSize: 4, Kind: board.PowerLine},
		{MinSize: 5, Kind: board.PowerGravity},
	}}
}

// Lookup returns the kind of the largest tier not above size, or PowerNone.
func (t PowerTable) Lookup(size int) board.PowerKind {
	kind := board.PowerNone
	if size < MinPowerSize {
		return kind
	}
	for _, tier := range t.tiers {
		if tier.MinSize > size {
			break
		}
		kind = tier.Kind
	}
	return kind
}

// Tiers returns the tiers in ascending order.
func (t PowerTable) Tiers() []PowerTier {
	return t.tiers
}
