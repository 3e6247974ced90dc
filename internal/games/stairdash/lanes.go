package stairdash

// Lane is one fixed vertical corridor of the stairwell.
// Lanes partition [0, width) with no gaps or overlaps.
type Lane struct {
	Index   int
	CenterX float64
	Left    float64
	Right   float64
}

// LaneManager partitions the playfield width into fixed lanes, maps lane
// indices to screen coordinates, and tracks which entities occupy which lane.
// Occupancy is membership only: the owning pools control entity lifetime.
type LaneManager struct {
	lanes     []Lane
	width     float64
	occupancy []map[*Entity]struct{}
}

// NewLaneManager creates a manager with the given lane count and playfield
// width. Counts below 1 are clamped to 1.
func NewLaneManager(count int, width float64) *LaneManager {
	if count < 1 {
		logger.Warn("lane count below 1, using 1", "count", count)
		count = 1
	}

	m := &LaneManager{
		lanes:     make([]Lane, count),
		occupancy: make([]map[*Entity]struct{}, count),
	}
	for i := range m.occupancy {
		m.occupancy[i] = make(map[*Entity]struct{})
	}
	m.RecomputeForWidth(width)
	return m
}

// LaneCount returns the fixed number of lanes.
func (m *LaneManager) LaneCount() int {
	return len(m.lanes)
}

// Lane returns the lane descriptor for an index.
// Out-of-range indices are clamped to the middle lane.
func (m *LaneManager) Lane(index int) Lane {
	return m.lanes[m.clampIndex(index)]
}

// RecomputeForWidth recomputes all lane bounds in place for a new playfield
// width. Existing occupancy is not migrated; callers re-register entities
// after a resize.
func (m *LaneManager) RecomputeForWidth(width float64) {
	if width <= 0 {
		logger.Warn("non-positive playfield width, using 1", "width", width)
		width = 1
	}
	m.width = width

	laneWidth := width / float64(len(m.lanes))
	for i := range m.lanes {
		left := laneWidth * float64(i)
		right := left + laneWidth
		if i == len(m.lanes)-1 {
			right = width // Absorb float error so lanes exactly cover [0, width)
		}
		m.lanes[i] = Lane{
			Index:   i,
			CenterX: left + laneWidth/2,
			Left:    left,
			Right:   right,
		}
	}
}

// clampIndex maps an out-of-range lane index to the middle lane, logging a
// recoverable warning. Lookups never fail.
func (m *LaneManager) clampIndex(lane int) int {
	if lane >= 0 && lane < len(m.lanes) {
		return lane
	}
	mid := len(m.lanes) / 2
	logger.Warn("lane index out of range, using middle lane", "lane", lane, "middle", mid)
	return mid
}

// PositionOf returns the center x-coordinate of a lane.
// Out-of-range indices resolve to the middle lane.
func (m *LaneManager) PositionOf(lane int) float64 {
	return m.lanes[m.clampIndex(lane)].CenterX
}

// LaneOf returns the lane containing the given x position by scanning lane
// bounds. Positions outside the playfield clamp to the nearest edge lane.
func (m *LaneManager) LaneOf(x float64) int {
	if x < m.lanes[0].Left {
		return 0
	}
	for i := range m.lanes {
		if x >= m.lanes[i].Left && x < m.lanes[i].Right {
			return i
		}
	}
	return len(m.lanes) - 1
}

// Register adds an entity to a lane's occupancy set. Idempotent; invalid
// lane indices are silently ignored.
func (m *LaneManager) Register(e *Entity, lane int) {
	if e == nil || lane < 0 || lane >= len(m.lanes) {
		return
	}
	m.occupancy[lane][e] = struct{}{}
}

// Unregister removes an entity from a lane's occupancy set. Idempotent;
// invalid lane indices are silently ignored.
func (m *LaneManager) Unregister(e *Entity, lane int) {
	if e == nil || lane < 0 || lane >= len(m.lanes) {
		return
	}
	delete(m.occupancy[lane], e)
}

// EntitiesInLane returns the entities currently occupying a lane.
// Invalid lane indices return nothing.
func (m *LaneManager) EntitiesInLane(lane int) []*Entity {
	if lane < 0 || lane >= len(m.lanes) {
		return nil
	}
	out := make([]*Entity, 0, len(m.occupancy[lane]))
	for e := range m.occupancy[lane] {
		out = append(out, e)
	}
	return out
}

// EntitiesInAdjacentLanes returns the entities in the given lane and its
// immediate neighbors. This is the building block for lane-based collision
// filtering: anything outside this set cannot overlap a resident of lane.
func (m *LaneManager) EntitiesInAdjacentLanes(lane int) []*Entity {
	var out []*Entity
	for l := lane - 1; l <= lane+1; l++ {
		if l < 0 || l >= len(m.lanes) {
			continue
		}
		for e := range m.occupancy[l] {
			out = append(out, e)
		}
	}
	return out
}

// OccupancyCount returns the total number of registered entities across all
// lanes. Diagnostic only.
func (m *LaneManager) OccupancyCount() int {
	n := 0
	for i := range m.occupancy {
		n += len(m.occupancy[i])
	}
	return n
}
