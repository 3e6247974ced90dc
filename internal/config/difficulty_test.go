package config

import "testing"

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
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
	}
}

func TestTierFromThresholds(t *testing.T) {
	thresholds := []int{10, 25, 50}

	tests := []struct {
		value int
		want  Tier
	}{
		{0, TierWarmup},
		{9, TierWarmup},
		{10, TierBrisk},
		{24, TierBrisk},
		{25, TierHectic},
		{50, TierFrantic},
		{9999, TierFrantic},
	}

	for _, tt := range tests {
		if got := TierFromThresholds(tt.value, thresholds); got != tt.want {
			t.Errorf("TierFromThresholds(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestMergeTiersTakesMaximum(t *testing.T) {
	tests := []struct {
		prev, timeT, scoreT, want Tier
	}{
		{TierWarmup, TierWarmup, TierWarmup, TierWarmup},
		{TierWarmup, TierBrisk, TierWarmup, TierBrisk},
		{TierWarmup, TierWarmup, TierHectic, TierHectic},
		// A score-driven promotion is never reverted by a lower time reading
		{TierHectic, TierWarmup, TierWarmup, TierHectic},
		{TierBrisk, TierFrantic, TierWarmup, TierFrantic},
	}

	for _, tt := range tests {
		if got := MergeTiers(tt.prev, tt.timeT, tt.scoreT); got != tt.want {
			t.Errorf("MergeTiers(%v, %v, %v) = %v, want %v",
				tt.prev, tt.timeT, tt.scoreT, got, tt.want)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig(), 60)

	// Score crosses the first threshold
	d.Update(0, 12)
	if got := d.CurrentTier(); got != TierBrisk {
		t.Fatalf("tier after score 12 = %v, want TierBrisk", got)
	}

	// Later, a time-only reading below the first time threshold must not
	// drop the tier back down
	d.Update(10*60, 0)
	if got := d.CurrentTier(); got != TierBrisk {
		t.Errorf("tier regressed to %v after time-only update", got)
	}

	// Monotone over an arbitrary update sequence
	prev := d.CurrentTier()
	updates := []struct{ ticks, score int }{
		{40 * 60, 5}, {45 * 60, 30}, {50 * 60, 8}, {125 * 60, 0},
	}
	for _, u := range updates {
		d.Update(u.ticks, u.score)
		if d.CurrentTier() < prev {
			t.Fatalf("tier decreased from %v to %v at update %+v", prev, d.CurrentTier(), u)
		}
		prev = d.CurrentTier()
	}
	if prev != TierFrantic {
		t.Errorf("final tier = %v, want TierFrantic", prev)
	}
}

func TestDifficultyPromotionCount(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig(), 60)

	if promoted := d.Update(0, 0); promoted {
		t.Error("Update with no signal should not promote")
	}
	if promoted := d.Update(31*60, 0); !promoted {
		t.Error("crossing the first time threshold should promote")
	}
	// Same signal again is not a promotion
	if promoted := d.Update(35*60, 0); promoted {
		t.Error("repeat reading should not promote again")
	}

	if d.Promotions() != 1 {
		t.Errorf("Promotions() = %d, want 1", d.Promotions())
	}
	if d.HighestReached() != TierBrisk {
		t.Errorf("HighestReached() = %v, want TierBrisk", d.HighestReached())
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig(), 60)
	d.Update(200*60, 100)
	if d.CurrentTier() != TierFrantic {
		t.Fatalf("setup: tier = %v", d.CurrentTier())
	}

	d.Reset()
	if d.CurrentTier() != TierWarmup {
		t.Errorf("Reset should return to initial tier, got %v", d.CurrentTier())
	}
	if d.Promotions() != 0 {
		t.Errorf("Reset should clear promotion count, got %d", d.Promotions())
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	cfg.InitialTier = 2
	d := NewDifficultyManager(cfg, 60)

	d.Update(500*60, 500)
	if d.CurrentTier() != TierHectic {
		t.Errorf("disabled manager should stay at initial tier, got %v", d.CurrentTier())
	}
	if d.SpeedMultiplier() != 1.3 {
		t.Errorf("SpeedMultiplier for tier 2 = %v, want 1.3", d.SpeedMultiplier())
	}
}

func TestDifficultyMultipliers(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig(), 60)

	if d.SpawnRateMultiplier() != 1.0 || d.HazardVariety() != 1 {
		t.Errorf("tier 0 multipliers wrong: rate=%v variety=%d",
			d.SpawnRateMultiplier(), d.HazardVariety())
	}

	d.Update(0, 60) // Max score tier
	if d.CurrentTier() != TierFrantic {
		t.Fatalf("tier = %v, want TierFrantic", d.CurrentTier())
	}
	if d.SpawnRateMultiplier() != 2.0 {
		t.Errorf("SpawnRateMultiplier = %v, want 2.0", d.SpawnRateMultiplier())
	}
	if d.Aggressiveness() != 2.0 {
		t.Errorf("Aggressiveness = %v, want 2.0", d.Aggressiveness())
	}
	if d.HazardVariety() != 3 {
		t.Errorf("HazardVariety = %d, want 3", d.HazardVariety())
	}
}

func TestDifficultyMissingTierConfig(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Tiers = cfg.Tiers[:1] // Config shorter than tier range
	d := NewDifficultyManager(cfg, 60)
	d.Update(0, 100)

	// Falls back to neutral multipliers rather than panicking
	if d.SpeedMultiplier() != 1.0 {
		t.Errorf("fallback SpeedMultiplier = %v, want 1.0", d.SpeedMultiplier())
	}
}
