// Package registry maps board variants to game factories.
// Variants register themselves in init() functions so the CLI and the
// terminal host can list and start them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is the surface a playable board exposes to the terminal host.
// Implementations hold no Bubble Tea state; the host maps keys and mouse
// events to an InputFrame, drives Step at a fixed rate and renders into a Screen.
type Game interface {
	// ID returns the variant identifier (e.g., "match3", "match3_flipped").
	ID() string

	// Title returns a human-readable name for menus and help.
	Title() string

	// Reset builds a fresh board from the variant's configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances timers and animations by one tick and feeds input to the engine.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports whether a move is resolving and how many were accepted.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id.
// Panics if the id is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
