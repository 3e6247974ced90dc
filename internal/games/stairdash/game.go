package stairdash

import (
	"github.com/vovakirdan/stair-dash/internal/config"
	"github.com/vovakirdan/stair-dash/internal/core"
	"github.com/vovakirdan/stair-dash/internal/registry"
)

// Entity collision-box sizes in screen cells.
const (
	coinW, coinH     = 1, 1
	hazardW, hazardH = 3, 1
	vipW, vipH       = 3, 2
	chaserW, chaserH = 3, 2
	dartW, dartH     = 1, 1
)

// maxFlashes bounds the visual effect buffer.
const maxFlashes = 16

// flashTTL is how many ticks a collision flash stays on screen.
const flashTTL = 12

// flash is a short-lived visual marker left behind by a collision.
type flash struct {
	kind EffectKind
	x, y float64
	ttl  int
}

// Game implements the Stair Dash game logic. It owns the lane layout, the
// entity pools, the spawner and the collision manager, and acts as the
// score/life/effect sink for collision resolution.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.StairDashConfig
	difficulty *config.DifficultyManager

	lanes  *LaneManager
	player Player

	coins   *Pool
	hazards *Pool
	vips    *Pool
	chasers *Pool
	darts   *Pool

	spawner    *Spawner
	collisions *CollisionManager

	score      int
	streak     int
	bestStreak int
	lives      int
	gameOver   bool
	paused     bool

	tickCount      int
	invincibleLeft int
	fireCooldown   int
	relaneTicks    int

	flashes []flash
}

// CLI overrides applied on the next Reset.
var (
	configPath        string
	difficultyPreset  config.DifficultyPreset
	laneCountOverride int
	debugHUD          bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetLaneCount overrides the configured lane count. Zero keeps the config.
func SetLaneCount(count int) {
	laneCountOverride = count
}

// SetDebugHUD toggles the collision-filter diagnostic line in the HUD.
func SetDebugHUD(enabled bool) {
	debugHUD = enabled
}

// New creates a new Stair Dash game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stairdash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stair Dash"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadStairDash(configPath)
	if err != nil {
		cfg = config.DefaultStairDashConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStairDashPreset(&cfg, difficultyPreset)
	}
	if laneCountOverride > 0 {
		cfg.Lanes.Count = laneCountOverride
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty, runtime.TickRate)

	g.lanes = NewLaneManager(cfg.Lanes.Count, float64(runtime.ScreenW))

	// Pools are pre-warmed once per reset; after this point spawn and
	// deactivate only flip instances between dormant and active.
	g.coins = NewPool(KindCoin, cfg.Spawn.Coin.PoolSize, coinW, coinH)
	g.hazards = NewPool(KindHazard, cfg.Spawn.Hazard.PoolSize, hazardW, hazardH)
	g.vips = NewPool(KindVIP, cfg.Spawn.VIP.PoolSize, vipW, vipH)
	g.chasers = NewPool(KindChaser, cfg.Chaser.PoolSize, chaserW, chaserH)
	g.darts = NewPool(KindDart, cfg.Spawn.DartPoolSize, dartW, dartH)

	g.spawner = NewSpawner(runtime.Seed, &g.cfg, g.difficulty, g.lanes,
		g.coins, g.hazards, g.vips, g.chasers)
	g.collisions = NewCollisionManager(g.lanes, g, g, g)

	g.player = Player{
		W: cfg.Player.Width,
		H: cfg.Player.Height,
		Y: float64(runtime.ScreenH - cfg.Player.BottomOffset),
	}
	g.player.MoveTo(cfg.Lanes.Count/2, g.lanes)

	g.score = 0
	g.streak = 0
	g.bestStreak = 0
	g.lives = cfg.Player.Lives
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.invincibleLeft = 0
	g.fireCooldown = 0
	g.flashes = g.flashes[:0]

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.relaneTicks = cfg.Chaser.RelaneIntervalMs * tickRate / 1000
	if g.relaneTicks < 1 {
		g.relaneTicks = 1
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.player.MoveLeft(g.lanes)
	}
	if in.Has(core.ActionRight) {
		g.player.MoveRight(g.lanes)
	}
	if in.Has(core.ActionFire) {
		g.throwDart()
	}

	g.tickCount++

	if g.difficulty.Update(g.tickCount, g.score) {
		logger.Debug("difficulty promoted", "tier", g.difficulty.CurrentTier())
	}

	g.spawner.Tick()

	env := StepEnv{
		Lanes:       g.lanes,
		VIPs:        g.vips,
		BottomY:     float64(g.runtime.ScreenH - 1),
		RelaneTicks: g.relaneTicks,
	}
	g.coins.StepAll(env)
	g.hazards.StepAll(env)
	g.vips.StepAll(env)
	g.chasers.StepAll(env)
	g.darts.StepAll(env)

	g.collisions.Process(&g.player, g.coins, g.hazards, g.vips, g.chasers, g.darts)

	if g.invincibleLeft > 0 {
		g.invincibleLeft--
	}
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	g.tickFlashes()

	return core.StepResult{State: g.State()}
}

// setPaused toggles the pause state, freezing spawn timers and collision
// dispatch together so nothing advances behind the frozen screen.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.spawner.Pause()
		g.collisions.Disable()
	} else {
		g.spawner.Resume()
		g.collisions.Enable()
	}
}

// throwDart launches a dart straight up from the player, subject to the
// fire cooldown. Darts occupy no lane.
func (g *Game) throwDart() {
	if g.fireCooldown > 0 {
		return
	}
	d := g.darts.Acquire()
	if d == nil {
		return // All darts in flight
	}
	d.SpawnAt(g.lanes, NoLane, -g.cfg.Spawn.DartSpeed, g.player.X, g.player.Y-1)
	g.fireCooldown = g.cfg.Player.FireCooldown
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Streak:     g.streak,
		BestStreak: g.bestStreak,
		Lives:      g.lives,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// ScoreKeeper implementation.

// AddPoints adjusts the score. Negative deltas are allowed and the score
// may go below zero.
func (g *Game) AddPoints(n int) {
	g.score += n
}

// AddStreak extends the pickup streak by one.
func (g *Game) AddStreak() {
	g.streak++
	if g.streak > g.bestStreak {
		g.bestStreak = g.streak
	}
}

// ResetStreak drops the streak back to zero.
func (g *Game) ResetStreak() {
	g.streak = 0
}

// LifeKeeper implementation.

// LoseLife removes one life and opens the invincibility window. Returns
// true only when this loss (or an earlier one) ended the run.
func (g *Game) LoseLife() bool {
	if g.lives <= 0 {
		return true
	}
	g.lives--
	g.invincibleLeft = g.cfg.Player.InvincibleTicks
	if g.lives <= 0 {
		g.gameOver = true
	}
	return g.gameOver
}

// IsInvincible reports whether the post-hit grace period is active.
func (g *Game) IsInvincible() bool {
	return g.invincibleLeft > 0
}

// EffectSink implementation.

// PlayEffect records a short-lived visual flash at the collision point.
func (g *Game) PlayEffect(kind EffectKind, x, y float64) {
	if len(g.flashes) >= maxFlashes {
		g.flashes = g.flashes[1:]
	}
	g.flashes = append(g.flashes, flash{kind: kind, x: x, y: y, ttl: flashTTL})
}

// tickFlashes ages the effect buffer.
func (g *Game) tickFlashes() {
	live := g.flashes[:0]
	for _, f := range g.flashes {
		f.ttl--
		if f.ttl > 0 {
			live = append(live, f)
		}
	}
	g.flashes = live
}

func init() {
	registry.Register("stairdash", func() registry.Game {
		return New()
	})
}
