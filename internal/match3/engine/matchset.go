package engine

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// MatchSet maps a match origin to the cells it clears. Keys are unique and
// iterate in insertion order.
type MatchSet struct {
	keys  []board.Coord
	lists map[board.Coord][]board.Coord
}

// NewMatchSet creates an empty set.
func NewMatchSet() *MatchSet {
	return &MatchSet{lists: make(map[board.Coord][]board.Coord)}
}

// Add records cells under origin. It returns false and changes nothing if
// origin is already present.
func (s *MatchSet) Add(origin board.Coord, cells []board.Coord) bool {
	if _, ok := s.lists[origin]; ok {
		return false
	}
	s.keys = append(s.keys, origin)
	s.lists[origin] = cells
	return true
}

// Get returns the cells recorded under origin.
func (s *MatchSet) Get(origin board.Coord) ([]board.Coord, bool) {
	cells, ok := s.lists[origin]
	return cells, ok
}

// Len returns the number of origins.
func (s *MatchSet) Len() int {
	return len(s.keys)
}

// Origins returns the origins in insertion order.
func (s *MatchSet) Origins() []board.Coord {
	return s.keys
}

// Clear empties the set.
func (s *MatchSet) Clear() {
	s.keys = nil
	clear(s.lists)
}

// PowerSpawn is a power tile waiting to be placed during refill.
type PowerSpawn struct {
	Pos   board.Coord
	Kind  board.PowerKind
	Color board.Color
}

// spawnQueue keeps power spawns by position; the first spawn at a position
// wins.
type spawnQueue struct {
	items []PowerSpawn
	seen  map[board.Coord]bool
}

func (q *spawnQueue) add(ps PowerSpawn) bool {
	if q.seen == nil {
		q.seen = make(map[board.Coord]bool)
	}
	if q.seen[ps.Pos] {
		return false
	}
	q.seen[ps.Pos] = true
	q.items = append(q.items, ps)
	return true
}

func (q *spawnQueue) reset() {
	q.items = nil
	clear(q.seen)
}

// pendingPowers keeps activated powers by position. A second activation at
// the same position replaces the kind but keeps the original order.
type pendingPowers struct {
	keys  []board.Coord
	kinds map[board.Coord]board.PowerKind
}

func (p *pendingPowers) put(pos board.Coord, kind board.PowerKind) {
	if p.kinds == nil {
		p.kinds = make(map[board.Coord]board.PowerKind)
	}
	if _, ok := p.kinds[pos]; !ok {
		p.keys = append(p.keys, pos)
	}
	p.kinds[pos] = kind
}

func (p *pendingPowers) len() int {
	return len(p.keys)
}

func (p *pendingPowers) reset() {
	p.keys = nil
	clear(p.kinds)
}
