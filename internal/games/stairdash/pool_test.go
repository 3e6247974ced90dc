package stairdash

import (
	"testing"
)

func TestPoolPreWarm(t *testing.T) {
	p := NewPool(KindCoin, 5, 1, 1)

	if p.Capacity() != 5 {
		t.Errorf("capacity = %d, want 5", p.Capacity())
	}
	if p.ActiveCount() != 0 {
		t.Errorf("fresh pool should have no active entities, got %d", p.ActiveCount())
	}
	for slot := 0; slot < 5; slot++ {
		e := p.Get(slot)
		if e == nil {
			t.Fatalf("slot %d should be pre-warmed", slot)
		}
		if e.Active {
			t.Errorf("slot %d should start dormant", slot)
		}
		if e.Kind() != KindCoin {
			t.Errorf("slot %d kind = %v, want coin", slot, e.Kind())
		}
	}
}

func TestPoolExhaustion(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	p := NewPool(KindHazard, 3, 1, 1)

	for i := 0; i < 3; i++ {
		e := p.Acquire()
		if e == nil {
			t.Fatalf("acquire %d should succeed", i)
		}
		e.Spawn(lanes, i, 0.5)
	}

	if e := p.Acquire(); e != nil {
		t.Error("acquire on exhausted pool should return nil")
	}
	if p.ActiveCount() != 3 {
		t.Errorf("active count = %d, want 3", p.ActiveCount())
	}
}

func TestPoolRecycling(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	p := NewPool(KindCoin, 2, 1, 1)

	a := p.Acquire()
	a.Spawn(lanes, 0, 0.5)
	gen := a.Generation()

	a.Deactivate(lanes)
	if p.ActiveCount() != 0 {
		t.Fatalf("active count after deactivate = %d, want 0", p.ActiveCount())
	}

	// The recycled instance must be reusable and must bump its generation
	b := p.Acquire()
	b.Spawn(lanes, 1, 0.5)
	if b.Generation() <= gen && b == a {
		t.Error("respawned instance should have a newer generation")
	}

	// No new instances are ever constructed
	c := p.Acquire()
	c.Spawn(lanes, 2, 0.5)
	if p.Acquire() != nil {
		t.Error("pool should still be bounded by its capacity")
	}
}

func TestDeactivateIdempotent(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	p := NewPool(KindCoin, 1, 1, 1)

	e := p.Acquire()
	e.Spawn(lanes, 0, 0.5)
	e.Deactivate(lanes)
	e.Deactivate(lanes) // Second call must be a no-op

	if p.ActiveCount() != 0 {
		t.Errorf("active count = %d, want 0", p.ActiveCount())
	}
	if lanes.OccupancyCount() != 0 {
		t.Errorf("occupancy = %d, want 0", lanes.OccupancyCount())
	}
}

func TestSpawnOnActiveEntityDropped(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	p := NewPool(KindCoin, 1, 1, 1)

	e := p.Acquire()
	e.Spawn(lanes, 0, 0.5)
	gen := e.Generation()

	// A second spawn against a live entity is dropped, not applied
	e.Spawn(lanes, 2, 9.9)
	if e.Lane != 0 || e.Generation() != gen {
		t.Error("spawn against an active entity should be dropped")
	}
}

func TestStepRecyclesOnScreenExit(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	p := NewPool(KindCoin, 1, 1, 1)
	env := StepEnv{Lanes: lanes, BottomY: 23}

	e := p.Acquire()
	e.Spawn(lanes, 0, 1.0)

	for i := 0; i < 40 && e.Active; i++ {
		p.StepAll(env)
	}
	if e.Active {
		t.Fatal("entity should deactivate after scrolling off the bottom")
	}
	if lanes.OccupancyCount() != 0 {
		t.Errorf("occupancy after exit = %d, want 0", lanes.OccupancyCount())
	}
	if p.Acquire() == nil {
		t.Error("exited entity should be reusable")
	}
}

func TestChaserWeakHandle(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	vips := NewPool(KindVIP, 1, 3, 2)
	chasers := NewPool(KindChaser, 1, 3, 2)

	vip := vips.Acquire()
	vip.Spawn(lanes, 0, 0.2)

	ch := chasers.Acquire()
	ch.Spawn(lanes, 0, 0.3)
	ch.SetTarget(vip)

	if ch.target(vips) != vip {
		t.Fatal("fresh handle should resolve to the VIP")
	}

	// Recycle the VIP slot: the stale handle must not resolve
	vip.Deactivate(lanes)
	if ch.target(vips) != nil {
		t.Error("handle to a deactivated VIP should not resolve")
	}

	vip2 := vips.Acquire()
	vip2.Spawn(lanes, 2, 0.2)
	if ch.target(vips) != nil {
		t.Error("handle must not resolve to the slot's new occupant")
	}
}

func TestChaserRelaneThrottle(t *testing.T) {
	lanes := NewLaneManager(3, 80)
	vips := NewPool(KindVIP, 1, 3, 2)
	chasers := NewPool(KindChaser, 1, 3, 2)

	vip := vips.Acquire()
	vip.Spawn(lanes, 2, 0)

	ch := chasers.Acquire()
	ch.Spawn(lanes, 0, 0)
	ch.SetTarget(vip)

	env := StepEnv{Lanes: lanes, VIPs: vips, BottomY: 100, RelaneTicks: 10}

	// First decision is allowed immediately and moves one lane only
	chasers.StepAll(env)
	if ch.Lane != 1 {
		t.Fatalf("chaser lane after first step = %d, want 1", ch.Lane)
	}

	// The next decision is throttled for RelaneTicks ticks
	for i := 0; i < 10; i++ {
		chasers.StepAll(env)
	}
	if ch.Lane != 1 {
		t.Errorf("chaser re-laned during throttle window, lane = %d", ch.Lane)
	}

	chasers.StepAll(env)
	if ch.Lane != 2 {
		t.Errorf("chaser lane after throttle elapsed = %d, want 2", ch.Lane)
	}
}
