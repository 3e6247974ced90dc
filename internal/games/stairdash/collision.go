package stairdash

import (
	"github.com/vovakirdan/stair-dash/internal/core"
)

// CollisionManager runs the per-tick overlap pass. Every declared pair type
// is gated through the lane filter before the geometric test: entities more
// than one lane apart can never overlap, so the AABB test is skipped and
// counted as avoided. Darts carry no lane and always pass the gate.
type CollisionManager struct {
	lanes   *LaneManager
	score   ScoreKeeper
	lives   LifeKeeper
	effects EffectSink

	enabled bool

	checksDone    int
	checksAvoided int
}

// NewCollisionManager creates an enabled manager wired to its sinks.
// A nil effect sink is replaced with a no-op.
func NewCollisionManager(lanes *LaneManager, score ScoreKeeper, lives LifeKeeper, effects EffectSink) *CollisionManager {
	if effects == nil {
		effects = NopEffectSink{}
	}
	return &CollisionManager{
		lanes:   lanes,
		score:   score,
		lives:   lives,
		effects: effects,
		enabled: true,
	}
}

// Enable turns dispatch back on after a Disable.
func (c *CollisionManager) Enable() {
	c.enabled = true
}

// Disable stops all dispatch. Used while the game is paused.
func (c *CollisionManager) Disable() {
	c.enabled = false
}

// Destroy disables the manager and drops its sinks. Shutdown only.
func (c *CollisionManager) Destroy() {
	c.enabled = false
	c.score = nil
	c.lives = nil
	c.effects = NopEffectSink{}
}

// Stats returns the running counts of geometric checks performed and checks
// avoided by the lane filter. Diagnostic only.
func (c *CollisionManager) Stats() (performed, avoided int) {
	return c.checksDone, c.checksAvoided
}

// FilterSavings returns the share of candidate pairs the lane gate rejected,
// in percent.
func (c *CollisionManager) FilterSavings() float64 {
	total := c.checksDone + c.checksAvoided
	if total == 0 {
		return 0
	}
	return float64(c.checksAvoided) / float64(total) * 100
}

// Process runs one collision pass over all declared pair types.
// Runs after movement, so lane occupancy is already current.
func (c *CollisionManager) Process(p *Player, coins, hazards, vips, chasers, darts *Pool) {
	if !c.enabled {
		return
	}

	c.playerPass(p, coins, c.handleCoin)
	c.playerPass(p, hazards, c.handleHazard)
	c.playerPass(p, vips, c.handleVIP)
	c.playerPass(p, chasers, c.handleChaser)
	c.dartPass(darts, chasers)
	c.chasePass(vips, chasers)
}

// laneGate reports whether a pair survives the lane filter and updates the
// diagnostic counters. Pairs with a laneless side pass ungated.
func (c *CollisionManager) laneGate(laneA, laneB int) bool {
	if laneA != NoLane && laneB != NoLane && core.Abs(laneA-laneB) > 1 {
		c.checksAvoided++
		return false
	}
	c.checksDone++
	return true
}

// playerPass tests the player against every active entity of one kind,
// dispatching at most one handler call per concrete pair.
func (c *CollisionManager) playerPass(p *Player, pool *Pool, handle func(*Player, *Entity)) {
	pr := p.Bounds()
	pool.ForEachActive(func(e *Entity) {
		if !c.laneGate(p.Lane, e.Lane) {
			return
		}
		if pr.Intersects(e.Bounds()) {
			handle(p, e)
		}
	})
}

// dartPass tests darts against chasers. Darts are laneless, so every pair
// reaches the geometric test.
func (c *CollisionManager) dartPass(darts, chasers *Pool) {
	darts.ForEachActive(func(d *Entity) {
		dr := d.Bounds()
		chasers.ForEachActive(func(ch *Entity) {
			if !d.Active { // Consumed earlier in this pass
				return
			}
			if !c.laneGate(d.Lane, ch.Lane) {
				return
			}
			if dr.Intersects(ch.Bounds()) {
				c.handleDartChaser(d, ch)
			}
		})
	})
}

// chasePass tests chasers against VIPs using the lane occupancy index:
// only VIPs in the chaser's own or adjacent lanes are candidates.
func (c *CollisionManager) chasePass(vips, chasers *Pool) {
	chasers.ForEachActive(func(ch *Entity) {
		// Snapshot before the loop: a handler below may consume the VIP,
		// and every candidate was active at snapshot time, so the avoided
		// count stays non-negative.
		activeVIPs := vips.ActiveCount()
		candidates := 0
		chr := ch.Bounds()
		for _, e := range c.lanes.EntitiesInAdjacentLanes(ch.Lane) {
			if e.Kind() != KindVIP || !e.Active {
				continue
			}
			candidates++
			c.checksDone++
			if !ch.Active { // Consumed by a dart or the player this pass
				continue
			}
			if chr.Intersects(e.Bounds()) {
				c.handleVIPChaser(e, ch)
			}
		}
		c.checksAvoided += activeVIPs - candidates
	})
}

// Resolution handlers. Each is idempotent against an already-inactive
// participant and dispatches its side effects exactly once per overlap.

func (c *CollisionManager) handleCoin(_ *Player, coin *Entity) {
	if !coin.Active {
		return
	}
	c.score.AddPoints(1)
	c.score.AddStreak()
	c.effects.PlayEffect(EffectCoinPickup, coin.X, coin.Y)
	coin.Deactivate(c.lanes)
}

func (c *CollisionManager) handleHazard(_ *Player, hazard *Entity) {
	if !hazard.Active || c.lives.IsInvincible() {
		return
	}
	c.score.AddPoints(-2)
	c.score.ResetStreak()
	c.lives.LoseLife()
	c.effects.PlayEffect(EffectHazardHit, hazard.X, hazard.Y)
	hazard.Deactivate(c.lanes)
}

func (c *CollisionManager) handleVIP(_ *Player, vip *Entity) {
	if !vip.Active || vip.Protected {
		return
	}
	c.score.AddPoints(5)
	c.score.AddStreak()
	vip.Protected = true // Escorted: chasers lose interest, not consumed
	c.effects.PlayEffect(EffectVIPEscort, vip.X, vip.Y)
}

func (c *CollisionManager) handleChaser(_ *Player, chaser *Entity) {
	if !chaser.Active || c.lives.IsInvincible() {
		return
	}
	c.score.ResetStreak()
	c.lives.LoseLife()
	c.effects.PlayEffect(EffectChaserHit, chaser.X, chaser.Y)
	chaser.Deactivate(c.lanes)
}

func (c *CollisionManager) handleDartChaser(dart, chaser *Entity) {
	if !dart.Active || !chaser.Active {
		return
	}
	c.score.AddPoints(2)
	c.effects.PlayEffect(EffectDartHit, chaser.X, chaser.Y)
	dart.Deactivate(c.lanes)
	chaser.Deactivate(c.lanes)
}

func (c *CollisionManager) handleVIPChaser(vip, chaser *Entity) {
	if !vip.Active || !chaser.Active || vip.Protected {
		return
	}
	c.score.AddPoints(-5)
	c.score.ResetStreak()
	c.lives.LoseLife()
	c.lives.LoseLife()
	c.effects.PlayEffect(EffectVIPCaught, vip.X, vip.Y)
	vip.Deactivate(c.lanes)
	chaser.Deactivate(c.lanes)
}
