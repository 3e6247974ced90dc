package stairdash

import (
	"testing"
)

// recorder implements the collision sinks and records everything.
type recorder struct {
	points      int
	streaks     int
	resets      int
	livesLost   int
	invincible  bool
	effects     []EffectKind
}

func (r *recorder) AddPoints(n int)    { r.points += n }
func (r *recorder) AddStreak()         { r.streaks++ }
func (r *recorder) ResetStreak()       { r.resets++ }
func (r *recorder) LoseLife() bool     { r.livesLost++; return false }
func (r *recorder) IsInvincible() bool { return r.invincible }
func (r *recorder) PlayEffect(k EffectKind, _, _ float64) {
	r.effects = append(r.effects, k)
}

// collisionFixture builds a 3-lane playfield with one pool per kind and a
// player parked in the middle lane.
type collisionFixture struct {
	lanes   *LaneManager
	rec     *recorder
	cm      *CollisionManager
	player  Player
	coins   *Pool
	hazards *Pool
	vips    *Pool
	chasers *Pool
	darts   *Pool
}

func newCollisionFixture() *collisionFixture {
	f := &collisionFixture{
		lanes:   NewLaneManager(3, 90),
		rec:     &recorder{},
		coins:   NewPool(KindCoin, 4, 1, 1),
		hazards: NewPool(KindHazard, 4, 3, 1),
		vips:    NewPool(KindVIP, 4, 3, 2),
		chasers: NewPool(KindChaser, 4, 3, 2),
		darts:   NewPool(KindDart, 4, 1, 1),
	}
	f.cm = NewCollisionManager(f.lanes, f.rec, f.rec, f.rec)
	f.player = Player{W: 3, H: 2, Y: 20}
	f.player.MoveTo(1, f.lanes)
	return f
}

// spawnAtPlayer activates a pool entity directly on top of the player.
func (f *collisionFixture) spawnAtPlayer(p *Pool, lane int) *Entity {
	e := p.Acquire()
	e.SpawnAt(f.lanes, lane, 0, f.player.X, f.player.Y)
	return e
}

func (f *collisionFixture) process() {
	f.cm.Process(&f.player, f.coins, f.hazards, f.vips, f.chasers, f.darts)
}

func TestCoinPickup(t *testing.T) {
	f := newCollisionFixture()
	coin := f.spawnAtPlayer(f.coins, 1)

	f.process()

	if f.rec.points != 1 {
		t.Errorf("points = %d, want 1", f.rec.points)
	}
	if f.rec.streaks != 1 {
		t.Errorf("streak increments = %d, want 1", f.rec.streaks)
	}
	if coin.Active {
		t.Error("coin should be consumed")
	}
	if len(f.rec.effects) != 1 || f.rec.effects[0] != EffectCoinPickup {
		t.Errorf("effects = %v, want [coin pickup]", f.rec.effects)
	}
}

func TestHazardHit(t *testing.T) {
	f := newCollisionFixture()
	hazard := f.spawnAtPlayer(f.hazards, 1)

	f.process()

	if f.rec.points != -2 {
		t.Errorf("points = %d, want -2", f.rec.points)
	}
	if f.rec.resets != 1 {
		t.Errorf("streak resets = %d, want 1", f.rec.resets)
	}
	if f.rec.livesLost != 1 {
		t.Errorf("lives lost = %d, want 1", f.rec.livesLost)
	}
	if hazard.Active {
		t.Error("hazard should be consumed")
	}
}

func TestHazardIgnoredWhileInvincible(t *testing.T) {
	f := newCollisionFixture()
	f.rec.invincible = true
	hazard := f.spawnAtPlayer(f.hazards, 1)

	f.process()

	if f.rec.points != 0 || f.rec.livesLost != 0 {
		t.Error("invincible player should take no hazard damage")
	}
	if !hazard.Active {
		t.Error("hazard should survive an invincible contact")
	}
}

func TestVIPEscort(t *testing.T) {
	f := newCollisionFixture()
	vip := f.spawnAtPlayer(f.vips, 1)

	f.process()

	if f.rec.points != 5 {
		t.Errorf("points = %d, want 5", f.rec.points)
	}
	if !vip.Protected {
		t.Error("escorted VIP should be flagged protected")
	}
	if !vip.Active {
		t.Error("escorted VIP keeps scrolling, it is not consumed")
	}

	// Touching the same VIP again must not award again
	f.process()
	if f.rec.points != 5 {
		t.Errorf("points after second touch = %d, want 5", f.rec.points)
	}
}

func TestChaserHitsPlayer(t *testing.T) {
	f := newCollisionFixture()
	chaser := f.spawnAtPlayer(f.chasers, 1)

	f.process()

	if f.rec.points != 0 {
		t.Errorf("points = %d, want 0 (chaser contact scores nothing)", f.rec.points)
	}
	if f.rec.resets != 1 || f.rec.livesLost != 1 {
		t.Error("chaser contact should reset the streak and cost a life")
	}
	if chaser.Active {
		t.Error("chaser should be consumed")
	}
}

func TestDartDestroysChaser(t *testing.T) {
	f := newCollisionFixture()
	chaser := f.spawnAtPlayer(f.chasers, 0)

	dart := f.darts.Acquire()
	dart.SpawnAt(f.lanes, NoLane, 0, chaser.X, chaser.Y)

	// Park the player away from both
	f.player.MoveTo(2, f.lanes)
	f.process()

	if f.rec.points != 2 {
		t.Errorf("points = %d, want 2", f.rec.points)
	}
	if dart.Active || chaser.Active {
		t.Error("dart and chaser should both be consumed")
	}
	if f.rec.livesLost != 0 {
		t.Error("a dart kill should not touch lives")
	}
}

func TestChaserCatchesVIP(t *testing.T) {
	f := newCollisionFixture()
	f.player.MoveTo(2, f.lanes)

	vip := f.vips.Acquire()
	vip.SpawnAt(f.lanes, 0, 0, f.lanes.PositionOf(0), 10)
	chaser := f.chasers.Acquire()
	chaser.SpawnAt(f.lanes, 0, 0, f.lanes.PositionOf(0), 10)

	f.process()

	if f.rec.points != -5 {
		t.Errorf("points = %d, want -5", f.rec.points)
	}
	if f.rec.livesLost != 2 {
		t.Errorf("lives lost = %d, want 2", f.rec.livesLost)
	}
	if f.rec.resets != 1 {
		t.Errorf("streak resets = %d, want 1", f.rec.resets)
	}
	if vip.Active || chaser.Active {
		t.Error("both VIP and chaser should be consumed")
	}
}

func TestChaseCatchKeepsAvoidedCountNonNegative(t *testing.T) {
	f := newCollisionFixture()

	// The only VIP in play is consumed mid-pass; the avoided tally must
	// not dip below zero because of the post-catch active count.
	vip := f.vips.Acquire()
	vip.SpawnAt(f.lanes, 1, 0, f.lanes.PositionOf(1), 5)
	chaser := f.chasers.Acquire()
	chaser.SpawnAt(f.lanes, 1, 0, f.lanes.PositionOf(1), 5)

	f.process()

	if vip.Active || chaser.Active {
		t.Fatal("catch should consume both participants")
	}
	_, avoided := f.cm.Stats()
	if avoided != 0 {
		t.Errorf("avoided checks = %d, want 0", avoided)
	}
	if pct := f.cm.FilterSavings(); pct < 0 {
		t.Errorf("filter savings = %.1f%%, want >= 0", pct)
	}
}

func TestProtectedVIPImmuneToChaser(t *testing.T) {
	f := newCollisionFixture()
	f.player.MoveTo(2, f.lanes)

	vip := f.vips.Acquire()
	vip.SpawnAt(f.lanes, 0, 0, f.lanes.PositionOf(0), 10)
	vip.Protected = true
	chaser := f.chasers.Acquire()
	chaser.SpawnAt(f.lanes, 0, 0, f.lanes.PositionOf(0), 10)

	f.process()

	if f.rec.points != 0 || f.rec.livesLost != 0 {
		t.Error("a protected VIP cannot be caught")
	}
	if !vip.Active || !chaser.Active {
		t.Error("neither side is consumed on a protected overlap")
	}
}

func TestLaneGateSkipsDistantPairs(t *testing.T) {
	f := newCollisionFixture()
	f.player.MoveTo(0, f.lanes)

	// Coin two lanes away: geometric test must be skipped entirely
	coin := f.coins.Acquire()
	coin.SpawnAt(f.lanes, 2, 0, f.lanes.PositionOf(2), f.player.Y)

	f.process()

	performed, avoided := f.cm.Stats()
	if performed != 0 {
		t.Errorf("checks performed = %d, want 0", performed)
	}
	if avoided != 1 {
		t.Errorf("checks avoided = %d, want 1", avoided)
	}
	if f.rec.points != 0 {
		t.Error("distant coin must not be picked up")
	}
}

func TestLaneGatePassesAdjacentPairs(t *testing.T) {
	f := newCollisionFixture()
	f.player.MoveTo(0, f.lanes)

	// Adjacent lane: gate passes, geometry decides (here: no overlap)
	coin := f.coins.Acquire()
	coin.SpawnAt(f.lanes, 1, 0, f.lanes.PositionOf(1), f.player.Y)

	f.process()

	performed, _ := f.cm.Stats()
	if performed != 1 {
		t.Errorf("checks performed = %d, want 1", performed)
	}
	if f.rec.points != 0 {
		t.Error("adjacent-lane coin does not overlap the player here")
	}
}

func TestDartsBypassLaneGate(t *testing.T) {
	f := newCollisionFixture()
	f.player.MoveTo(1, f.lanes)

	// Chaser in lane 0, dart launched from lane 2's x: still checked
	chaser := f.chasers.Acquire()
	chaser.SpawnAt(f.lanes, 0, 0, f.lanes.PositionOf(0), 5)
	dart := f.darts.Acquire()
	dart.SpawnAt(f.lanes, NoLane, 0, f.lanes.PositionOf(0), 5)

	f.process()

	if chaser.Active || dart.Active {
		t.Error("laneless dart should reach and destroy any chaser it overlaps")
	}
}

func TestDisabledManagerDispatchesNothing(t *testing.T) {
	f := newCollisionFixture()
	coin := f.spawnAtPlayer(f.coins, 1)

	f.cm.Disable()
	f.process()

	if f.rec.points != 0 || !coin.Active {
		t.Error("disabled manager must not dispatch")
	}

	f.cm.Enable()
	f.process()
	if f.rec.points != 1 {
		t.Error("re-enabled manager should dispatch again")
	}
}

func TestFilterSavings(t *testing.T) {
	f := newCollisionFixture()
	f.player.MoveTo(0, f.lanes)

	near := f.coins.Acquire()
	near.SpawnAt(f.lanes, 1, 0, f.lanes.PositionOf(1), 5)
	far := f.coins.Acquire()
	far.SpawnAt(f.lanes, 2, 0, f.lanes.PositionOf(2), 5)

	f.process()

	performed, avoided := f.cm.Stats()
	if performed != 1 || avoided != 1 {
		t.Fatalf("stats = (%d, %d), want (1, 1)", performed, avoided)
	}
	if got := f.cm.FilterSavings(); got != 50.0 {
		t.Errorf("filter savings = %f%%, want 50%%", got)
	}
}
