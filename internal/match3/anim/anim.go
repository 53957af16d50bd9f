// Package anim animates tile motions for the match-3 engine. The Animator is
// tick driven like the game loop: it only advances when Step is
// called, and reports finished motions through a callback.
package anim

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-match3/internal/match3/command"
)

// DoneFunc receives motions whose animation has finished.
type DoneFunc func(m command.Motion)

// Tween is one in-flight motion.
type Tween struct {
	Motion   command.Motion
	Duration time.Duration
	Elapsed  time.Duration
}

// Progress returns the completion ratio in [0, 1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	if p > 1 {
		p = 1
	}
	return p
}

// Position returns the eased current position in board units.
func (t *Tween) Position() (x, y float64) {
	e := easeOutQuad(t.Progress())
	from, to := t.Motion.From, t.Motion.To
	x = float64(from.X) + float64(to.X-from.X)*e
	y = float64(from.Y) + float64(to.Y-from.Y)*e
	return x, y
}

// Animator moves tiles at a fixed speed in cells per second.
type Animator struct {
	speed  float64
	onDone DoneFunc
	tweens []*Tween
}

// New creates an animator. speed <= 0 falls back to 8 cells per second.
func New(speed float64, onDone DoneFunc) *Animator {
	if speed <= 0 {
		speed = 8
	}
	return &Animator{speed: speed, onDone: onDone}
}

// SetDone replaces the completion callback. The game wires the engine in after
// both have been created.
func (a *Animator) SetDone(fn DoneFunc) {
	a.onDone = fn
}

// Move implements command.Mover.
func (a *Animator) Move(m command.Motion) {
	dx := float64(m.To.X - m.From.X)
	dy := float64(m.To.Y - m.From.Y)
	dist := math.Hypot(dx, dy)
	d := time.Duration(dist / a.speed * float64(time.Second))
	a.tweens = append(a.tweens, &Tween{Motion: m, Duration: d})
}

// Busy reports whether any motion is still animating.
func (a *Animator) Busy() bool {
	return len(a.tweens) > 0
}

// Tweens returns the motions in flight.
func (a *Animator) Tweens() []*Tween {
	return a.tweens
}

// Step advances every tween by dt and reports the ones that finished, in the
// order they were started.
func (a *Animator) Step(dt time.Duration) {
	var done []command.Motion
	kept := a.tweens[:0]
	for _, t := range a.tweens {
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			done = append(done, t.Motion)
			continue
		}
		kept = append(kept, t)
	}
	a.tweens = kept

	if a.onDone == nil {
		return
	}
	for _, m := range done {
		a.onDone(m)
	}
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// Instant is a Mover that finishes every motion immediately. Used by headless
// simulation and tests.
type Instant struct {
	OnDone DoneFunc
}

// Move implements command.Mover.
func (i *Instant) Move(m command.Motion) {
	if i.OnDone != nil {
		i.OnDone(m)
	}
}
