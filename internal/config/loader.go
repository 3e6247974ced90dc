package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStairDash loads the Stair Dash configuration.
// Search order: customPath -> ~/.stairdash/configs/stairdash.yaml ->
// ./configs/stairdash.yaml -> embedded default.
// Out-of-range values in hand-edited files are clamped, not rejected.
func LoadStairDash(customPath string) (StairDashConfig, error) {
	cfg, err := readStairDash(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

func readStairDash(customPath string) (StairDashConfig, error) {
	var cfg StairDashConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stairdash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stairdash.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStairDashYAML, &cfg); err != nil {
		return DefaultStairDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// minEntitySpeed is the floor for any configured speed so entities always
// make progress down the screen.
const minEntitySpeed = 0.05

// normalize clamps values the simulation cannot work with to the smallest
// usable ones.
func (c *StairDashConfig) normalize() {
	if c.Lanes.Count < 1 {
		c.Lanes.Count = 1
	}

	if c.Player.Width < 1 {
		c.Player.Width = 1
	}
	if c.Player.Height < 1 {
		c.Player.Height = 1
	}
	if c.Player.BottomOffset < 1 {
		c.Player.BottomOffset = 1
	}
	if c.Player.Lives < 1 {
		c.Player.Lives = 1
	}
	if c.Player.FireCooldown < 0 {
		c.Player.FireCooldown = 0
	}
	if c.Player.InvincibleTicks < 0 {
		c.Player.InvincibleTicks = 0
	}

	normalizeWindow(&c.Spawn.Coin)
	normalizeWindow(&c.Spawn.Hazard)
	normalizeWindow(&c.Spawn.VIP)
	if c.Spawn.DartPoolSize < 1 {
		c.Spawn.DartPoolSize = 1
	}
	if c.Spawn.DartSpeed <= 0 {
		c.Spawn.DartSpeed = minEntitySpeed
	}

	if c.Chaser.MinFollowDelay < 1 {
		c.Chaser.MinFollowDelay = 1
	}
	if c.Chaser.MaxFollowDelay < c.Chaser.MinFollowDelay {
		c.Chaser.MaxFollowDelay = c.Chaser.MinFollowDelay
	}
	if c.Chaser.MinSpeed <= 0 {
		c.Chaser.MinSpeed = minEntitySpeed
	}
	if c.Chaser.MaxSpeed < c.Chaser.MinSpeed {
		c.Chaser.MaxSpeed = c.Chaser.MinSpeed
	}
	if c.Chaser.PoolSize < 1 {
		c.Chaser.PoolSize = 1
	}
	if c.Chaser.RelaneIntervalMs < 1 {
		c.Chaser.RelaneIntervalMs = 1
	}

	if len(c.Difficulty.Tiers) == 0 {
		c.Difficulty.Tiers = DefaultStairDashConfig().Difficulty.Tiers
	}
	if c.Difficulty.InitialTier < 0 {
		c.Difficulty.InitialTier = 0
	}
	if c.Difficulty.InitialTier >= len(c.Difficulty.Tiers) {
		c.Difficulty.InitialTier = len(c.Difficulty.Tiers) - 1
	}
}

// normalizeWindow clamps one spawn window so delays are at least a tick,
// ranges are ordered and the pool holds at least one entity.
func normalizeWindow(w *SpawnWindow) {
	if w.MinDelay < 1 {
		w.MinDelay = 1
	}
	if w.MaxDelay < w.MinDelay {
		w.MaxDelay = w.MinDelay
	}
	if w.MinSpeed <= 0 {
		w.MinSpeed = minEntitySpeed
	}
	if w.MaxSpeed < w.MinSpeed {
		w.MaxSpeed = w.MinSpeed
	}
	if w.PoolSize < 1 {
		w.PoolSize = 1
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stairdash", "configs", filename)
}

// ApplyStairDashPreset modifies the config based on a difficulty preset.
func ApplyStairDashPreset(cfg *StairDashConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialTier = InitialTierForPreset(preset)
}
