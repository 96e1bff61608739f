package runner

import (
	"fmt"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 2

const groundChar = '═'

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

// Render draws the playfield scaled to the screen, then the HUD.
func (g *Game) Render(dst *core.Screen, snap sim.Snapshot) {
	w := dst.Width()
	field := dst.Height() - hudRows
	if w <= 0 || field <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	sx := float64(w) / snap.Width
	sy := float64(field) / snap.Height

	groundRow := hudRows + int(g.cfg.Playfield.GroundY()*sy)
	dst.DrawHLine(0, groundRow, w, groundChar, core.ColorOrange)

	for _, o := range snap.Objects {
		r := o.Box.Cells(sx, sy)
		r.Y += hudRows
		gl, ok := g.glyphs[o.Key]
		if !ok {
			gl = glyph{r: core.PlaceholderGlyph}
		}
		dst.DrawRect(r, gl.r, gl.c)
	}

	body := snap.Player.Translate(0, -snap.Lift).Cells(sx, sy)
	body.Y += hudRows
	dst.DrawRect(body, g.playerGlyph, core.ColorBrightCyan)
	if snap.Lift > 0 {
		shadow := snap.Player.Cells(sx, sy)
		dst.DrawHLine(shadow.X, groundRow-1, shadow.W, '_', core.ColorGray)
		dst.DrawTextColored(body.X, body.Y-1, "JUMP!", core.ColorBlue)
	}

	g.drawHUD(dst, snap)
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	w := dst.Width()
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Distance: %dm ", snap.Score, int(snap.Progress)))

	warn := fmt.Sprintf(" Warnings: %d/%d ", snap.Warnings, snap.MaxWarnings)
	color := core.ColorYellow
	if snap.MaxWarnings > 0 && snap.Warnings >= snap.MaxWarnings-1 {
		warn = " DANGER!" + warn
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(w-len(warn)-1, 0, warn, color)
	dst.DrawHLine(0, 1, w, '─', core.ColorGray)
}
