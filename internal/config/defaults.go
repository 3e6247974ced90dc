package config

import (
	_ "embed"
)

//go:embed defaults/stairdash.yaml
var defaultStairDashYAML []byte

// DefaultStairDashConfig returns the default Stair Dash configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultStairDashConfig() StairDashConfig {
	return StairDashConfig{
		Lanes: LaneConfig{
			Count: 3,
		},
		Player: PlayerConfig{
			Width:           3,
			Height:          2,
			BottomOffset:    3,
			Lives:           3,
			FireCooldown:    30,
			InvincibleTicks: 90,
		},
		Spawn: SpawnConfig{
			Coin: SpawnWindow{
				MinDelay: 45,
				MaxDelay: 120,
				MinSpeed: 0.20,
				MaxSpeed: 0.35,
				PoolSize: 20,
			},
			Hazard: SpawnWindow{
				MinDelay: 90,
				MaxDelay: 210,
				MinSpeed: 0.25,
				MaxSpeed: 0.45,
				PoolSize: 15,
			},
			VIP: SpawnWindow{
				MinDelay: 600,
				MaxDelay: 1200,
				MinSpeed: 0.15,
				MaxSpeed: 0.25,
				PoolSize: 5,
			},
			DartPoolSize: 8,
			DartSpeed:    0.9,
		},
		Chaser: ChaserConfig{
			MinFollowDelay:   120,
			MaxFollowDelay:   240,
			MinSpeed:         0.30,
			MaxSpeed:         0.50,
			PoolSize:         5,
			RelaneIntervalMs: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialTier:     0,
			TimeThresholds:  []int{30, 60, 120},
			ScoreThresholds: []int{10, 25, 50},
			Tiers: []TierConfig{
				{Speed: 1.0, SpawnRate: 1.0, HazardVariety: 1, Aggressiveness: 1.0},
				{Speed: 1.15, SpawnRate: 1.3, HazardVariety: 2, Aggressiveness: 1.25},
				{Speed: 1.3, SpawnRate: 1.6, HazardVariety: 3, Aggressiveness: 1.5},
				{Speed: 1.5, SpawnRate: 2.0, HazardVariety: 3, Aggressiveness: 2.0},
			},
		},
	}
}
