package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:   8,
			Height:  8,
			Colors:  5,
			Gravity: "normal",
		},
		Swipe: SwipeConfig{
			Sensitivity: 0.3,
		},
		Timing: TimingConfig{
			DestroySettle:  250 * time.Millisecond,
			CollapseSettle: 200 * time.Millisecond,
			SpawnInterval:  80 * time.Millisecond,
		},
		Powers: PowersConfig{
			Tiers: []PowerTier{
				{MinSize: 4, Kind: "line"},
				{MinSize: 5, Kind: "gravity"},
			},
			BombRadius: 1,
		},
		Animation: AnimationConfig{
			Speed: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_flipped":
		return defaultMatch3YAML
	default:
		return nil
	}
}
