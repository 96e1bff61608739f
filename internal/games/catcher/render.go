package catcher

import (
	"fmt"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

const hudRows = 2

type glyph struct {
	r rune
	c core.Color
}

func (g *Game) loadGlyphs() {
	g.glyphs = make(map[string]glyph, len(g.cfg.Spawn.Table))
	for _, e := range g.cfg.Spawn.Table {
		r, _ := core.Glyph(e.Glyph)
		g.glyphs[e.Key] = glyph{r: r, c: core.ParseColor(e.Color)}
	}
	g.playerGlyph, _ = core.Glyph(g.cfg.Player.Glyph)
}

// Render draws lanes, falling items and the basket scaled to the screen.
func (g *Game) Render(dst *core.Screen, snap sim.Snapshot) {
	w := dst.Width()
	field := dst.Height() - hudRows
	if w <= 0 || field <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	sx := float64(w) / snap.Width
	sy := float64(field) / snap.Height

	// Lane dividers
	laneW := snap.Width / float64(max(snap.Lanes, 1))
	for i := 1; i < snap.Lanes; i++ {
		x := int(laneW * float64(i) * sx)
		dst.DrawVLine(x, hudRows, field, '┊', core.ColorGray)
	}

	for _, o := range snap.Objects {
		if o.Box.Bottom() <= 0 {
			continue
		}
		r := o.Box.Cells(sx, sy)
		r.Y += hudRows
		gl, ok := g.glyphs[o.Key]
		if !ok {
			gl = glyph{r: core.PlaceholderGlyph}
		}
		dst.DrawRect(r, gl.r, gl.c)
	}

	basket := snap.Player.Cells(sx, sy)
	basket.Y += hudRows
	dst.DrawRect(basket, g.playerGlyph, core.ColorBrightCyan)

	g.drawHUD(dst, snap)
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	w := dst.Width()
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Level: %d ", snap.Score, snap.Level))

	timer := fmt.Sprintf(" Time: %ds ", snap.Remaining)
	color := core.ColorWhite
	if snap.Remaining <= 10 {
		color = core.ColorBrightRed
	}
	if snap.MaxWarnings > 0 {
		timer = fmt.Sprintf(" Warnings: %d/%d ", snap.Warnings, snap.MaxWarnings) + timer
	}
	dst.DrawTextColored(w-len(timer)-1, 0, timer, color)
	dst.DrawHLine(0, 1, w, '─', core.ColorGray)
}
