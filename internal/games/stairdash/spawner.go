package stairdash

import (
	"math/rand"

	"github.com/vovakirdan/stair-dash/internal/config"
)

// pendingChase is a scheduled chaser spawn trailing a VIP. The VIP is held
// by weak handle; if it deactivates or gets escorted before the countdown
// elapses, the chase is called off. That check is deliberate race
// avoidance, not an error path.
type pendingChase struct {
	targetSlot int
	targetGen  int
	countdown  int
}

// Spawner feeds entities into the pools on randomized, difficulty-scaled
// countdown timers. All timers are logical tick countdowns checked once per
// Tick; nothing blocks.
type Spawner struct {
	rng        *rand.Rand
	cfg        *config.StairDashConfig
	difficulty *config.DifficultyManager
	lanes      *LaneManager

	coins   *Pool
	hazards *Pool
	vips    *Pool
	chasers *Pool

	coinTimer   int
	hazardTimer int
	vipTimer    int
	pending     []pendingChase

	paused    bool
	destroyed bool
}

// NewSpawner creates a spawner over the given pools.
func NewSpawner(seed int64, cfg *config.StairDashConfig, diff *config.DifficultyManager,
	lanes *LaneManager, coins, hazards, vips, chasers *Pool) *Spawner {

	s := &Spawner{
		cfg:        cfg,
		difficulty: diff,
		lanes:      lanes,
		coins:      coins,
		hazards:    hazards,
		vips:       vips,
		chasers:    chasers,
	}
	s.Reset(seed)
	return s
}

// Reset re-seeds the RNG and reschedules all timers.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.pending = s.pending[:0]
	s.paused = false
	s.destroyed = false
	s.coinTimer = s.delayFor(s.cfg.Spawn.Coin)
	s.hazardTimer = s.delayFor(s.cfg.Spawn.Hazard)
	s.vipTimer = s.delayFor(s.cfg.Spawn.VIP)
}

// Pause freezes all countdowns, preserving their remaining delays.
// Pending chaser spawns are preserved, not cancelled.
func (s *Spawner) Pause() {
	s.paused = true
}

// Resume unfreezes all countdowns.
func (s *Spawner) Resume() {
	s.paused = false
}

// Destroy cancels all timers and empties all pools. Shutdown only.
func (s *Spawner) Destroy() {
	s.destroyed = true
	s.pending = nil
	s.coins.DeactivateAll(s.lanes)
	s.hazards.DeactivateAll(s.lanes)
	s.vips.DeactivateAll(s.lanes)
	s.chasers.DeactivateAll(s.lanes)
}

// Tick advances all countdowns by one tick and fires any that elapse.
func (s *Spawner) Tick() {
	if s.paused || s.destroyed {
		return
	}

	s.coinTimer--
	if s.coinTimer <= 0 {
		s.spawnFromWindow(s.coins, s.cfg.Spawn.Coin)
		s.coinTimer = s.delayFor(s.cfg.Spawn.Coin)
	}

	s.hazardTimer--
	if s.hazardTimer <= 0 {
		if e := s.spawnFromWindow(s.hazards, s.cfg.Spawn.Hazard); e != nil {
			e.Variant = s.rng.Intn(s.difficulty.HazardVariety())
		}
		s.hazardTimer = s.delayFor(s.cfg.Spawn.Hazard)
	}

	s.vipTimer--
	if s.vipTimer <= 0 {
		if vip := s.spawnFromWindow(s.vips, s.cfg.Spawn.VIP); vip != nil {
			s.scheduleChase(vip)
		}
		s.vipTimer = s.delayFor(s.cfg.Spawn.VIP)
	}

	s.tickPending()
}

// delayFor draws a randomized delay from a window, divided by the current
// spawn-rate multiplier so higher difficulty spawns faster.
func (s *Spawner) delayFor(w config.SpawnWindow) int {
	base := w.MinDelay
	if w.MaxDelay > w.MinDelay {
		base += s.rng.Intn(w.MaxDelay - w.MinDelay + 1)
	}
	d := int(float64(base) / s.difficulty.SpawnRateMultiplier())
	if d < 1 {
		d = 1
	}
	return d
}

// speedFor draws a randomized base speed from a window, scaled by the
// current speed multiplier.
func (s *Spawner) speedFor(w config.SpawnWindow) float64 {
	base := w.MinSpeed
	if w.MaxSpeed > w.MinSpeed {
		base += s.rng.Float64() * (w.MaxSpeed - w.MinSpeed)
	}
	return base * s.difficulty.SpeedMultiplier()
}

// spawnFromWindow pulls a free instance from the pool and activates it in a
// uniformly random lane. Pool exhaustion drops the request.
func (s *Spawner) spawnFromWindow(pool *Pool, w config.SpawnWindow) *Entity {
	e := pool.Acquire()
	if e == nil {
		logger.Debug("pool exhausted, spawn dropped", "kind", pool.Kind())
		return nil
	}
	lane := s.rng.Intn(s.lanes.LaneCount())
	e.Spawn(s.lanes, lane, s.speedFor(w))
	return e
}

// scheduleChase queues a chaser spawn trailing the given VIP. The follow
// delay shrinks as difficulty aggressiveness rises.
func (s *Spawner) scheduleChase(vip *Entity) {
	base := s.cfg.Chaser.MinFollowDelay
	if s.cfg.Chaser.MaxFollowDelay > s.cfg.Chaser.MinFollowDelay {
		base += s.rng.Intn(s.cfg.Chaser.MaxFollowDelay - s.cfg.Chaser.MinFollowDelay + 1)
	}
	delay := int(float64(base) / s.difficulty.Aggressiveness())
	if delay < 1 {
		delay = 1
	}

	s.pending = append(s.pending, pendingChase{
		targetSlot: vip.Slot(),
		targetGen:  vip.Generation(),
		countdown:  delay,
	})
}

// tickPending counts down scheduled chases and fires the ones that elapse.
func (s *Spawner) tickPending() {
	remaining := s.pending[:0]
	for _, pc := range s.pending {
		pc.countdown--
		if pc.countdown > 0 {
			remaining = append(remaining, pc)
			continue
		}
		s.fireChase(pc)
	}
	s.pending = remaining
}

// fireChase spawns a chaser behind its VIP. Skipped silently if the VIP is
// gone or already escorted by the time the delay elapses.
func (s *Spawner) fireChase(pc pendingChase) {
	vip := s.vips.Get(pc.targetSlot)
	if vip == nil || !vip.Active || vip.Generation() != pc.targetGen || vip.Protected {
		logger.Debug("chase called off", "slot", pc.targetSlot)
		return
	}

	chaser := s.chasers.Acquire()
	if chaser == nil {
		logger.Debug("pool exhausted, spawn dropped", "kind", KindChaser)
		return
	}

	speed := s.cfg.Chaser.MinSpeed
	if s.cfg.Chaser.MaxSpeed > s.cfg.Chaser.MinSpeed {
		speed += s.rng.Float64() * (s.cfg.Chaser.MaxSpeed - s.cfg.Chaser.MinSpeed)
	}
	speed *= s.difficulty.SpeedMultiplier()

	chaser.Spawn(s.lanes, vip.Lane, speed)
	chaser.SetTarget(vip)
}

// PendingChases returns the number of scheduled chaser spawns. Diagnostic.
func (s *Spawner) PendingChases() int {
	return len(s.pending)
}
