package config

// Tier is one of the ordered difficulty tiers.
type Tier int

const (
	TierWarmup Tier = iota
	TierBrisk
	TierHectic
	TierFrantic

	TierCount = 4
)

// String returns a display name for the tier.
func (t Tier) String() string {
	switch t {
	case TierWarmup:
		return "Warmup"
	case TierBrisk:
		return "Brisk"
	case TierHectic:
		return "Hectic"
	case TierFrantic:
		return "Frantic"
	default:
		return "?"
	}
}

// clampTier restricts a tier to the valid range.
func clampTier(t Tier) Tier {
	if t < TierWarmup {
		return TierWarmup
	}
	if t >= TierCount {
		return TierCount - 1
	}
	return t
}

// TierFromThresholds returns the tier implied by a value against ordered
// thresholds: crossing thresholds[i] proposes tier i+1.
func TierFromThresholds(value int, thresholds []int) Tier {
	tier := TierWarmup
	for _, th := range thresholds {
		if value >= th {
			tier++
		}
	}
	return clampTier(tier)
}

// MergeTiers combines the time- and score-implied tiers with the previous
// effective tier. The result is the maximum of the three, so a score-driven
// promotion is never reverted by a lower time-driven reading.
func MergeTiers(prev, timeTier, scoreTier Tier) Tier {
	merged := prev
	if timeTier > merged {
		merged = timeTier
	}
	if scoreTier > merged {
		merged = scoreTier
	}
	return clampTier(merged)
}

// DifficultyManager merges elapsed-time and score signals into a monotonic
// difficulty tier and exposes the per-tier multipliers consumed by the
// spawner and entity behavior.
type DifficultyManager struct {
	cfg      DifficultyConfig
	tickRate int

	tier       Tier
	highest    Tier
	promotions int
}

// NewDifficultyManager creates a new difficulty manager.
// tickRate converts the configured second-based time thresholds to ticks.
func NewDifficultyManager(cfg DifficultyConfig, tickRate int) *DifficultyManager {
	if tickRate <= 0 {
		tickRate = 60
	}
	initial := clampTier(Tier(cfg.InitialTier))
	return &DifficultyManager{
		cfg:      cfg,
		tickRate: tickRate,
		tier:     initial,
		highest:  initial,
	}
}

// Update recomputes the effective tier from elapsed ticks and score.
// Returns true if the tier was promoted this call.
func (d *DifficultyManager) Update(ticks, score int) bool {
	if !d.cfg.Enabled {
		return false
	}

	seconds := ticks / d.tickRate
	timeTier := TierFromThresholds(seconds, d.cfg.TimeThresholds)
	scoreTier := TierFromThresholds(score, d.cfg.ScoreThresholds)

	merged := MergeTiers(d.tier, timeTier, scoreTier)
	if merged == d.tier {
		return false
	}

	d.tier = merged
	if merged > d.highest {
		d.highest = merged
	}
	d.promotions++
	return true
}

// Reset returns the manager to its configured starting tier.
// This is the only way the tier can decrease.
func (d *DifficultyManager) Reset() {
	d.tier = clampTier(Tier(d.cfg.InitialTier))
	d.highest = d.tier
	d.promotions = 0
}

// CurrentTier returns the effective difficulty tier.
func (d *DifficultyManager) CurrentTier() Tier {
	return d.tier
}

// HighestReached returns the highest tier seen since the last reset.
func (d *DifficultyManager) HighestReached() Tier {
	return d.highest
}

// Promotions returns how many times the tier has increased since reset.
func (d *DifficultyManager) Promotions() int {
	return d.promotions
}

// tierConfig returns the multiplier set for the current tier, falling back
// to sane defaults if the config has fewer tier entries than tiers.
func (d *DifficultyManager) tierConfig() TierConfig {
	idx := int(d.tier)
	if idx < len(d.cfg.Tiers) {
		return d.cfg.Tiers[idx]
	}
	return TierConfig{Speed: 1.0, SpawnRate: 1.0, HazardVariety: 1, Aggressiveness: 1.0}
}

// SpeedMultiplier scales entity base speeds.
func (d *DifficultyManager) SpeedMultiplier() float64 {
	if m := d.tierConfig().Speed; m > 0 {
		return m
	}
	return 1.0
}

// SpawnRateMultiplier divides spawn delays (2.0 halves the mean delay).
func (d *DifficultyManager) SpawnRateMultiplier() float64 {
	if m := d.tierConfig().SpawnRate; m > 0 {
		return m
	}
	return 1.0
}

// HazardVariety returns the number of hazard sub-kinds unlocked.
func (d *DifficultyManager) HazardVariety() int {
	if v := d.tierConfig().HazardVariety; v > 0 {
		return v
	}
	return 1
}

// Aggressiveness divides the chaser follow delay.
func (d *DifficultyManager) Aggressiveness() float64 {
	if m := d.tierConfig().Aggressiveness; m > 0 {
		return m
	}
	return 1.0
}
