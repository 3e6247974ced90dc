package stairdash

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger receives recoverable-input warnings from the simulation (lane
// clamps, dropped spawns). Discarded by default so the TUI stays clean;
// the platform can point it at a file via SetLogOutput.
var logger = log.New(io.Discard)

// SetLogOutput redirects the game's diagnostic log to the given writer.
func SetLogOutput(w io.Writer) {
	logger = log.NewWithOptions(w, log.Options{Prefix: "stairdash"})
}

// EffectKind identifies a visual/audio effect requested by a collision
// resolution. Effects are fire-and-forget notifications; the simulation
// never depends on what the sink does with them.
type EffectKind int

const (
	EffectCoinPickup EffectKind = iota
	EffectHazardHit
	EffectVIPEscort
	EffectChaserHit
	EffectDartHit
	EffectVIPCaught
)

// String returns the name of the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectCoinPickup:
		return "coin-pickup"
	case EffectHazardHit:
		return "hazard-hit"
	case EffectVIPEscort:
		return "vip-escort"
	case EffectChaserHit:
		return "chaser-hit"
	case EffectDartHit:
		return "dart-hit"
	case EffectVIPCaught:
		return "vip-caught"
	default:
		return "?"
	}
}

// ScoreKeeper is the authoritative score/streak sink the collision manager
// calls synchronously inside resolution handlers.
type ScoreKeeper interface {
	AddPoints(delta int)
	AddStreak()
	ResetStreak()
}

// LifeKeeper owns the player's lives and invincibility state.
type LifeKeeper interface {
	// LoseLife removes a life and reports whether the game is over.
	LoseLife() (gameOver bool)
	// IsInvincible reports whether damage handlers should short-circuit.
	IsInvincible() bool
}

// EffectSink receives fire-and-forget effect notifications at a position.
type EffectSink interface {
	PlayEffect(kind EffectKind, x, y float64)
}

// NopEffectSink discards all effect notifications.
type NopEffectSink struct{}

// PlayEffect implements EffectSink.
func (NopEffectSink) PlayEffect(EffectKind, float64, float64) {}
