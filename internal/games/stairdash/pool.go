package stairdash

// Pool is a fixed-capacity arena of reusable entities of one kind.
// All instances are constructed up front; Acquire hands out dormant slots
// and exhaustion means the spawn request is dropped, never an error.
type Pool struct {
	kind  Kind
	slots []Entity
}

// NewPool creates a pre-warmed pool of the given capacity.
func NewPool(kind Kind, capacity, w, h int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{
		kind:  kind,
		slots: make([]Entity, capacity),
	}
	for i := range p.slots {
		e := &p.slots[i]
		e.kind = kind
		e.slot = i
		e.Lane = NoLane
		e.W = w
		e.H = h
	}
	return p
}

// Kind returns the entity kind this pool holds.
func (p *Pool) Kind() Kind {
	return p.kind
}

// Capacity returns the fixed slot count.
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Acquire returns a dormant entity, or nil when the pool is exhausted.
// Callers must treat nil as "drop the spawn request".
func (p *Pool) Acquire() *Entity {
	for i := range p.slots {
		if !p.slots[i].Active {
			return &p.slots[i]
		}
	}
	return nil
}

// Get returns the entity at the given slot, or nil if out of range.
// Used to resolve weak handles; callers must check Active and Generation.
func (p *Pool) Get(slot int) *Entity {
	if slot < 0 || slot >= len(p.slots) {
		return nil
	}
	return &p.slots[slot]
}

// ActiveCount returns the number of active entities.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// ForEachActive calls fn for every active entity.
// fn may deactivate the entity it receives.
func (p *Pool) ForEachActive(fn func(*Entity)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}

// StepAll advances every active entity by one tick.
func (p *Pool) StepAll(env StepEnv) {
	for i := range p.slots {
		p.slots[i].Step(env)
	}
}

// DeactivateAll recycles every active entity. Used on reset and shutdown.
func (p *Pool) DeactivateAll(lanes *LaneManager) {
	for i := range p.slots {
		p.slots[i].Deactivate(lanes)
	}
}
