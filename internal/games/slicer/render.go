package slicer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
)

// Visual characters for rendering
const (
	BodyChar      = '█'
	HazardChar    = '▓'
	FuseChar      = '*'
	StemChar      = '\''
	TrailHeadChar = '█'
	TrailChar     = '▪'
	TrailTailChar = '·'
	LeftHalfChar  = '◐'
	RightHalfChar = '◑'
	LifeChar      = '♥'
	LostLifeChar  = '♡'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()

	for _, d := range snap.Debris {
		drawDebris(dst, d)
	}
	for _, e := range snap.Entities {
		drawEntity(dst, e)
	}
	for _, p := range snap.Particles {
		drawParticle(dst, p)
	}
	drawTrail(dst, snap.Trail)
	for _, t := range snap.Texts {
		x := int(t.Pos.X) - len([]rune(t.Text))/2
		dst.DrawTextColored(x, row(t.Pos.Y), t.Text, t.Color)
	}

	g.drawHUD(dst, snap)

	switch {
	case snap.State == sim.StateStart:
		drawCenteredMessage(dst, core.ColorBrightGreen,
			"S L I C E R",
			"Drag the mouse to slice fruit",
			"Never cut a bomb",
			"",
			"SPACE to start  |  Q to quit")
	case snap.State == sim.StateGameOver:
		title := "GAME OVER"
		if snap.Reason == sim.EndHazard {
			title = "BOOM! GAME OVER"
		}
		best := fmt.Sprintf("Best: %d", snap.HighScore)
		if snap.NewHighScore {
			best = "NEW BEST SCORE!"
		}
		drawCenteredMessage(dst, core.ColorBrightRed,
			title,
			fmt.Sprintf("Score: %d", snap.Score),
			best,
			"",
			"R to restart  |  Q to quit")
	case g.paused:
		drawCenteredMessage(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	}
}

// row converts a simulation Y coordinate to a screen row.
func row(y float64) int {
	return int(math.Floor(y / 2))
}

// drawDisc fills every cell whose center lies inside the circle.
func drawDisc(dst *core.Screen, center core.Vec2, radius float64, r rune, c core.Color) {
	minX := int(math.Floor(center.X - radius))
	maxX := int(math.Ceil(center.X + radius))
	minRow := row(center.Y - radius)
	maxRow := row(center.Y + radius)
	rSq := radius * radius

	for y := minRow; y <= maxRow; y++ {
		for x := minX; x <= maxX; x++ {
			cell := core.V(float64(x)+0.5, float64(2*y)+1)
			if core.DistSq(cell, center) <= rSq {
				dst.SetColored(x, y, r, c)
			}
		}
	}
	// Small bodies still occupy their own cell
	dst.SetColored(int(center.X), row(center.Y), r, c)
}

// rim returns the point on a circle at the given angle.
func rim(center core.Vec2, radius, angle float64) core.Vec2 {
	return core.V(center.X+math.Cos(angle)*radius, center.Y+math.Sin(angle)*radius)
}

func drawEntity(dst *core.Screen, e sim.Entity) {
	if e.Kind == sim.KindHazard {
		drawDisc(dst, e.Pos, e.Radius, HazardChar, core.ColorGray)
		dst.SetColored(int(e.Pos.X), row(e.Pos.Y), 'X', core.ColorBrightRed)
		fuse := rim(e.Pos, e.Radius+1, e.Rotation-math.Pi/2)
		dst.SetColored(int(fuse.X), row(fuse.Y), FuseChar, core.ColorOrange)
		return
	}

	info := e.Subtype.Info()
	drawDisc(dst, e.Pos, e.Radius, BodyChar, info.Skin)
	dst.SetColored(int(e.Pos.X), row(e.Pos.Y), info.Glyph, info.Flesh)
	stem := rim(e.Pos, e.Radius, e.Rotation-math.Pi/2)
	dst.SetColored(int(stem.X), row(stem.Y), StemChar, core.ColorGreen)
}

func drawDebris(dst *core.Screen, d sim.Debris) {
	info := d.Subtype.Info()
	ch := LeftHalfChar
	if d.Side == sim.SideRight {
		ch = RightHalfChar
	}
	dst.SetColored(int(d.Pos.X), row(d.Pos.Y), ch, info.Skin)
	seed := rim(d.Pos, 1, d.Rotation)
	dst.SetColored(int(seed.X), row(seed.Y), info.Seed, info.Flesh)
}

func drawParticle(dst *core.Screen, p sim.Particle) {
	glyph, color := p.Glyph, p.Color
	if p.MaxLife > 0 && p.Life*3 < p.MaxLife {
		glyph, color = TrailTailChar, color.Dim()
	}
	dst.SetColored(int(p.Pos.X), row(p.Pos.Y), glyph, color)
}

// drawTrail rasterizes the blade: newest segments bright, older ones fading.
func drawTrail(dst *core.Screen, pts []sim.TrailPoint) {
	n := len(pts)
	for i := 1; i < n; i++ {
		a, b := pts[i-1].Pos, pts[i].Pos
		ch, c := TrailChar, core.ColorBrightCyan
		if i < n/2 {
			ch, c = TrailTailChar, c.Dim()
		}

		steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)/2)))
		for s := 0; s <= steps; s++ {
			t := 0.0
			if steps > 0 {
				t = float64(s) / float64(steps)
			}
			p := a.Add(b.Sub(a).Scale(t))
			dst.SetColored(int(p.X), row(p.Y), ch, c)
		}
	}
	if n > 0 {
		head := pts[n-1].Pos
		dst.SetColored(int(head.X), row(head.Y), TrailHeadChar, core.ColorBrightWhite)
	}
}

// drawHUD draws score, best, lives and status on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	dst.DrawTextCentered(0, fmt.Sprintf("Best: %d", max(snap.HighScore, snap.Score)), core.ColorGold)

	lives := g.opts.Config.Gameplay.Lives
	var sb strings.Builder
	for i := 0; i < lives; i++ {
		if i < snap.Lives {
			sb.WriteRune(LifeChar)
		} else {
			sb.WriteRune(LostLifeChar)
		}
	}
	hearts := sb.String()
	dst.DrawTextColored(dst.Width()-lives-1, 0, hearts, core.ColorRed)

	status := ""
	if snap.Combo >= 2 {
		status = fmt.Sprintf("COMBO x%d", snap.Combo)
	}
	if snap.Freeze > 0 {
		status = strings.TrimSpace(status + "  FREEZE")
	}
	if status != "" {
		dst.DrawTextColored(1, 1, status, core.ColorIce)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}
