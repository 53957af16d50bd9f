// Package clock provides the logical-time scheduler that stands in for
// animation delays. Time only moves when Advance is called, so a simulation
// can be replayed tick by tick.
package clock

import (
	"sort"
	"time"
)

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// Manual is a scheduler driven by explicit Advance calls.
// It is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []timer
}

// NewManual creates a scheduler at logical time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the current logical time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// After schedules fn to run once d has elapsed. Callbacks never run inside
// After, even for d <= 0; they run on the next Advance.
func (m *Manual) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.timers = append(m.timers, timer{at: m.now + d, seq: m.seq, fn: fn})
}

// Pending returns the number of callbacks waiting to run.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves time forward by d and runs every callback that became due,
// ordered by deadline then scheduling order. Callbacks scheduled by a running
// callback fire in the same Advance if they fall due within the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		idx := m.nextDue(end)
		if idx < 0 {
			break
		}
		t := m.timers[idx]
		m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
		if t.at > m.now {
			m.now = t.at
		}
		t.fn()
	}
	m.now = end
}

// RunUntilIdle keeps advancing in steps of tick until nothing is pending or
// limit steps have run. It returns false if the limit was hit.
func (m *Manual) RunUntilIdle(tick time.Duration, limit int) bool {
	for i := 0; i < limit; i++ {
		if len(m.timers) == 0 {
			return true
		}
		m.Advance(tick)
	}
	return len(m.timers) == 0
}

// nextDue returns the index of the earliest timer due by end, or -1.
func (m *Manual) nextDue(end time.Duration) int {
	if len(m.timers) == 0 {
		return -1
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at != m.timers[j].at {
			return m.timers[i].at < m.timers[j].at
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	if m.timers[0].at > end {
		return -1
	}
	return 0
}
