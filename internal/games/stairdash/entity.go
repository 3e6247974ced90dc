// Package stairdash implements Stair Dash, a vertically scrolling stairwell
// runner. Coins, hazards, VIPs and chasers scroll down fixed lanes toward the
// player, who switches lanes, throws darts and tries to keep both their lives
// and their escort streak intact.
package stairdash

import (
	"github.com/vovakirdan/stair-dash/internal/core"
)

// Kind identifies what a pooled entity is.
type Kind int

const (
	KindCoin Kind = iota
	KindHazard
	KindVIP
	KindChaser
	KindDart
)

// String returns the name of an entity kind.
func (k Kind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindHazard:
		return "hazard"
	case KindVIP:
		return "vip"
	case KindChaser:
		return "chaser"
	case KindDart:
		return "dart"
	default:
		return "?"
	}
}

// NoLane marks an entity that does not occupy a lane (darts fly free and
// skip the lane filter entirely).
const NoLane = -1

// exitMargin is how far past a screen edge an entity may travel before it
// is recycled.
const exitMargin = 2.0

// spawnY is the default vertical spawn position, just above the screen.
const spawnY = -2.0

// StepEnv carries the per-tick dependencies entity updates need.
type StepEnv struct {
	Lanes       *LaneManager
	VIPs        *Pool   // Chaser target lookups
	BottomY     float64 // Far screen edge for downward scrollers
	RelaneTicks int     // Chaser re-lane throttle interval
}

// Entity is one pooled simulation object. Instances are constructed once at
// pool pre-warm time and recycled forever after: Dormant -> Active -> Dormant.
type Entity struct {
	kind Kind
	slot int // Index of this entity in its pool
	gen  int // Bumped on every spawn; validates weak handles

	Active bool
	Lane   int // NoLane for darts
	Speed  float64
	X, Y   float64
	W, H   int

	// VIP state
	Protected bool

	// Hazard state
	Variant int

	// Chaser state: weak handle into the VIP pool, re-validated before use
	targetSlot int
	targetGen  int
	relaneLeft int
}

// Kind returns the entity's kind.
func (e *Entity) Kind() Kind {
	return e.kind
}

// Slot returns the entity's index in its owning pool.
func (e *Entity) Slot() int {
	return e.slot
}

// Generation returns the spawn generation, used to validate weak handles.
func (e *Entity) Generation() int {
	return e.gen
}

// Bounds returns the entity's collision box in screen cells.
func (e *Entity) Bounds() core.Rect {
	return core.RectAt(e.X, e.Y, e.W, e.H)
}

// Spawn activates a dormant entity into the given lane at the lane's center,
// just above the screen. Only valid from Dormant; a spawn request against an
// active entity is dropped.
func (e *Entity) Spawn(lanes *LaneManager, lane int, speed float64) {
	e.SpawnAt(lanes, lane, speed, lanes.PositionOf(lane), spawnY)
}

// SpawnAt activates a dormant entity at an explicit position.
// lane may be NoLane for entities that skip lane occupancy (darts).
func (e *Entity) SpawnAt(lanes *LaneManager, lane int, speed float64, x, y float64) {
	if e.Active {
		logger.Warn("spawn request for active entity dropped", "kind", e.kind, "slot", e.slot)
		return
	}

	e.gen++
	e.Active = true
	e.Lane = lane
	e.Speed = speed
	e.X = x
	e.Y = y

	if lane != NoLane {
		lanes.Register(e, lane)
	}

	e.onSpawn()
}

// onSpawn runs kind-specific setup after activation.
func (e *Entity) onSpawn() {
	switch e.kind {
	case KindVIP:
		e.Protected = false
	case KindChaser:
		e.relaneLeft = 0 // First re-lane decision allowed immediately
	}
}

// SetTarget points a chaser at a VIP pool slot. The handle is weak: it is
// re-validated against the VIP's generation on every use.
func (e *Entity) SetTarget(vip *Entity) {
	e.targetSlot = vip.slot
	e.targetGen = vip.gen
}

// target resolves the chaser's weak handle, returning nil if the VIP has
// deactivated or been recycled since the handle was taken.
func (e *Entity) target(vips *Pool) *Entity {
	if e.kind != KindChaser || vips == nil {
		return nil
	}
	t := vips.Get(e.targetSlot)
	if t == nil || !t.Active || t.gen != e.targetGen {
		return nil
	}
	return t
}

// Step advances the entity by one tick. No-op while Dormant.
func (e *Entity) Step(env StepEnv) {
	if !e.Active {
		return
	}

	e.Y += e.Speed

	// Recycle on screen exit: downward scrollers past the bottom edge,
	// darts past the top.
	if e.Y > env.BottomY+exitMargin || e.Y < spawnY-exitMargin {
		e.Deactivate(env.Lanes)
		return
	}

	e.onStep(env)
}

// onStep runs kind-specific per-tick behavior.
func (e *Entity) onStep(env StepEnv) {
	if e.kind != KindChaser {
		return
	}

	// Re-lane toward the target, throttled so a weaving VIP cannot make the
	// chaser thrash between lanes.
	if e.relaneLeft > 0 {
		e.relaneLeft--
		return
	}

	t := e.target(env.VIPs)
	if t == nil || t.Lane == e.Lane {
		return
	}

	e.relaneLeft = env.RelaneTicks

	next := e.Lane + 1
	if t.Lane < e.Lane {
		next = e.Lane - 1
	}

	env.Lanes.Unregister(e, e.Lane)
	e.Lane = next
	e.X = env.Lanes.PositionOf(next)
	env.Lanes.Register(e, next)
}

// Deactivate recycles the entity back into its pool. Idempotent: calling it
// on a dormant entity is a no-op.
func (e *Entity) Deactivate(lanes *LaneManager) {
	if !e.Active {
		return
	}

	e.Active = false
	e.Speed = 0

	if e.Lane != NoLane && lanes != nil {
		lanes.Unregister(e, e.Lane)
	}
	e.Lane = NoLane

	e.onDeactivate()
}

// onDeactivate runs kind-specific teardown.
func (e *Entity) onDeactivate() {
	switch e.kind {
	case KindVIP:
		e.Protected = false
	case KindChaser:
		e.targetSlot = 0
		e.targetGen = 0
	case KindHazard:
		e.Variant = 0
	}
}
