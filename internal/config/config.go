// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// StairDashConfig contains all configuration for the Stair Dash game.
type StairDashConfig struct {
	Lanes      LaneConfig       `yaml:"lanes"`
	Player     PlayerConfig     `yaml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Chaser     ChaserConfig     `yaml:"chaser"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LaneConfig defines the lane layout of the stairwell.
type LaneConfig struct {
	Count int `yaml:"count"` // Number of vertical lanes (default 3)
}

// PlayerConfig defines player avatar parameters.
type PlayerConfig struct {
	Width           int `yaml:"width"`            // Collision box width in cells
	Height          int `yaml:"height"`           // Collision box height in cells
	BottomOffset    int `yaml:"bottom_offset"`    // Rows between player and bottom edge
	Lives           int `yaml:"lives"`            // Starting lives
	FireCooldown    int `yaml:"fire_cooldown"`    // Ticks between dart throws
	InvincibleTicks int `yaml:"invincible_ticks"` // Grace period after losing a life
}

// SpawnWindow defines the randomized timing and speed for one entity kind.
// Delays are in ticks; speeds in cells per tick.
type SpawnWindow struct {
	MinDelay int     `yaml:"min_delay"`
	MaxDelay int     `yaml:"max_delay"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	PoolSize int     `yaml:"pool_size"`
}

// SpawnConfig defines spawn windows for the timer-driven entity kinds.
// Chasers are not on a timer; they follow VIP spawns (see ChaserConfig).
type SpawnConfig struct {
	Coin   SpawnWindow `yaml:"coin"`
	Hazard SpawnWindow `yaml:"hazard"`
	VIP    SpawnWindow `yaml:"vip"`

	DartPoolSize int     `yaml:"dart_pool_size"` // Player projectile pool
	DartSpeed    float64 `yaml:"dart_speed"`     // Cells per tick, upward
}

// ChaserConfig defines the pursuer that trails a VIP spawn.
type ChaserConfig struct {
	MinFollowDelay   int     `yaml:"min_follow_delay"`   // Ticks after the VIP, before aggressiveness
	MaxFollowDelay   int     `yaml:"max_follow_delay"`   //
	MinSpeed         float64 `yaml:"min_speed"`          //
	MaxSpeed         float64 `yaml:"max_speed"`          //
	PoolSize         int     `yaml:"pool_size"`          //
	RelaneIntervalMs int     `yaml:"relane_interval_ms"` // Throttle for re-lane decisions
}

// DifficultyConfig defines the tiered difficulty progression system.
// Elapsed time and score each propose a tier; the effective tier is the
// maximum of both proposals and the previous tier (never decreases).
type DifficultyConfig struct {
	Enabled         bool         `yaml:"enabled"`
	InitialTier     int          `yaml:"initial_tier"`     // 0-based starting tier
	TimeThresholds  []int        `yaml:"time_thresholds"`  // Seconds to reach tiers 1..n
	ScoreThresholds []int        `yaml:"score_thresholds"` // Points to reach tiers 1..n
	Tiers           []TierConfig `yaml:"tiers"`            // Multipliers per tier
}

// TierConfig holds the output multipliers for one difficulty tier.
type TierConfig struct {
	Speed          float64 `yaml:"speed"`           // Entity speed multiplier
	SpawnRate      float64 `yaml:"spawn_rate"`      // Divides spawn delays
	HazardVariety  int     `yaml:"hazard_variety"`  // Hazard sub-kinds unlocked
	Aggressiveness float64 `yaml:"aggressiveness"`  // Divides chaser follow delay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialTierForPreset returns the starting tier for a difficulty preset.
func InitialTierForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
