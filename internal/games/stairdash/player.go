package stairdash

import (
	"github.com/vovakirdan/stair-dash/internal/core"
)

// Player is the avatar the human steers. It is not pooled: exactly one
// exists per run, it never despawns, and it does not occupy the lane
// occupancy index. Collision passes use its lane directly.
type Player struct {
	Lane int
	X    float64
	Y    float64
	W    int
	H    int
}

// Bounds returns the player's screen-space box.
func (p *Player) Bounds() core.Rect {
	return core.RectAt(p.X, p.Y, p.W, p.H)
}

// MoveTo snaps the player to the given lane's center.
func (p *Player) MoveTo(lane int, lanes *LaneManager) {
	p.Lane = lane
	p.X = lanes.PositionOf(lane)
}

// MoveLeft steps one lane left, clamping at the edge.
func (p *Player) MoveLeft(lanes *LaneManager) {
	if p.Lane > 0 {
		p.MoveTo(p.Lane-1, lanes)
	}
}

// MoveRight steps one lane right, clamping at the edge.
func (p *Player) MoveRight(lanes *LaneManager) {
	if p.Lane < lanes.LaneCount()-1 {
		p.MoveTo(p.Lane+1, lanes)
	}
}
