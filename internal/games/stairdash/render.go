package stairdash

import (
	"fmt"

	"github.com/vovakirdan/stair-dash/internal/core"
)

// Visual characters for rendering
const (
	LaneDividerChar = '┊'
	PlayerBody      = '█'
	PlayerHead      = '◉'
	CoinChar        = '●'
	VIPChar         = '♦'
	ChaserChar      = '▲'
	DartChar        = '|'
	FlashChar       = '✶'
)

// hazardGlyphs maps hazard variants to their sprites. Higher difficulty
// tiers unlock later entries.
var hazardGlyphs = []struct {
	r rune
	c core.Color
}{
	{'▓', core.ColorRed},
	{'▞', core.ColorOrange},
	{'╳', core.ColorBrightRed},
}

// flashColors maps effect kinds to flash colors.
var flashColors = map[EffectKind]core.Color{
	EffectCoinPickup: core.ColorBrightYellow,
	EffectHazardHit:  core.ColorBrightRed,
	EffectVIPEscort:  core.ColorBrightCyan,
	EffectChaserHit:  core.ColorBrightRed,
	EffectDartHit:    core.ColorBrightGreen,
	EffectVIPCaught:  core.ColorBrightMagenta,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawLanes(dst)

	g.coins.ForEachActive(func(e *Entity) {
		dst.SetColored(core.RoundF(e.X), core.RoundF(e.Y), CoinChar, core.ColorYellow)
	})
	g.hazards.ForEachActive(func(e *Entity) {
		g.drawHazard(dst, e)
	})
	g.vips.ForEachActive(func(e *Entity) {
		g.drawVIP(dst, e)
	})
	g.chasers.ForEachActive(func(e *Entity) {
		g.drawSprite(dst, e, ChaserChar, core.ColorBrightRed)
	})
	g.darts.ForEachActive(func(e *Entity) {
		dst.SetColored(core.RoundF(e.X), core.RoundF(e.Y), DartChar, core.ColorBrightWhite)
	})

	g.drawFlashes(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best streak: %d  |  Press R to restart", g.score, g.bestStreak))
	}
}

// drawLanes renders the vertical dividers between lanes.
func (g *Game) drawLanes(dst *core.Screen) {
	h := dst.Height()
	for i := 1; i < g.lanes.LaneCount(); i++ {
		x := core.RoundF(g.lanes.Lane(i).Left)
		dst.DrawVLineColored(x, 1, h-1, LaneDividerChar, core.ColorGray)
	}
}

// drawSprite fills an entity's collision box with a single glyph.
func (g *Game) drawSprite(dst *core.Screen, e *Entity, r rune, c core.Color) {
	b := e.Bounds()
	for dy := 0; dy < b.H; dy++ {
		for dx := 0; dx < b.W; dx++ {
			dst.SetColored(b.X+dx, b.Y+dy, r, c)
		}
	}
}

// drawHazard picks the glyph for the hazard's variant.
func (g *Game) drawHazard(dst *core.Screen, e *Entity) {
	v := e.Variant
	if v < 0 || v >= len(hazardGlyphs) {
		v = 0
	}
	g.drawSprite(dst, e, hazardGlyphs[v].r, hazardGlyphs[v].c)
}

// drawVIP renders a VIP, dimmed once escorted.
func (g *Game) drawVIP(dst *core.Screen, e *Entity) {
	c := core.ColorBrightCyan
	if e.Protected {
		c = c.Dim()
	}
	g.drawSprite(dst, e, VIPChar, c)
}

// drawPlayer renders the avatar. While the post-hit grace period is active
// the sprite blinks.
func (g *Game) drawPlayer(dst *core.Screen) {
	if g.invincibleLeft > 0 && (g.tickCount/4)%2 == 0 {
		return
	}

	b := g.player.Bounds()
	for dy := 0; dy < b.H; dy++ {
		for dx := 0; dx < b.W; dx++ {
			dst.SetColored(b.X+dx, b.Y+dy, PlayerBody, core.ColorBrightGreen)
		}
	}
	headX, _ := b.Center()
	dst.SetColored(headX, b.Y, PlayerHead, core.ColorBrightWhite)
}

// drawFlashes renders the short-lived collision markers.
func (g *Game) drawFlashes(dst *core.Screen) {
	for _, f := range g.flashes {
		c, ok := flashColors[f.kind]
		if !ok {
			c = core.ColorWhite
		}
		dst.SetColored(core.RoundF(f.x), core.RoundF(f.y), FlashChar, c)
	}
}

// drawHUD renders score, streak, lives and the current difficulty tier on
// the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Streak: %d ", g.score, g.streak)
	dst.DrawText(2, 0, hud)

	livesX := dst.Width()/2 - g.lives
	dst.DrawText(livesX-7, 0, " Lives ")
	for i := 0; i < g.lives; i++ {
		dst.SetColored(livesX+i*2, 0, '♥', core.ColorBrightRed)
	}

	tierText := fmt.Sprintf(" %s ", g.difficulty.CurrentTier())
	dst.DrawText(dst.Width()-len(tierText)-2, 0, tierText)

	if debugHUD {
		performed, avoided := g.collisions.Stats()
		diag := fmt.Sprintf(" checks %d  skipped %d (%.0f%%) ", performed, avoided, g.collisions.FilterSavings())
		dst.DrawText(2, dst.Height()-1, diag)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
