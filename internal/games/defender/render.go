package defender

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender/sim"
)

const hudRows = 1

// shipGlyphs are indexed by presentation angle in 45° steps, starting
// with the sprite's native "up".
var shipGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// laserGlyphs are indexed by heading in 45° steps, modulo 180°.
var laserGlyphs = [4]rune{'─', '╲', '│', '╱'}

// viewport maps world units onto terminal cells, keeping the player centered.
// The configured arena size spans the whole playfield.
type viewport struct {
	cols, rows int
	top        int
	arenaW     int
	arenaH     int
	center     core.Point
}

func newViewport(cols, rows int, arena core.Point, center core.Point) viewport {
	return viewport{
		cols:   cols,
		rows:   rows,
		top:    hudRows,
		arenaW: max(arena.X, 1),
		arenaH: max(arena.Y, 1),
		center: center,
	}
}

// cell returns the screen cell of a world point and whether it is visible.
func (v viewport) cell(p core.Point) (int, int, bool) {
	d := p.Sub(v.center)
	x := v.cols/2 + floorDiv(d.X*v.cols, v.arenaW)
	y := v.top + v.rows/2 + floorDiv(d.Y*v.rows, v.arenaH)
	return x, y, x >= 0 && x < v.cols && y >= v.top && y < v.top+v.rows
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}

// ShipGlyph returns the arrow for a ship heading.
func ShipGlyph(heading float64) rune {
	i := int(math.Round(sim.PresentationAngle(heading)/45)) % len(shipGlyphs)
	return shipGlyphs[i]
}

// LaserGlyph returns the line segment character for a laser heading.
func LaserGlyph(heading float64) rune {
	i := int(math.Round(core.NormalizeDegrees(heading)/45)) % len(laserGlyphs)
	return laserGlyphs[i]
}

// Render draws the world around the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := dst.Height() - hudRows
	if dst.Width() < 20 || rows < 5 {
		dst.DrawTextCentered(dst.Height()/2, "Too small")
		return
	}

	arena := core.Pt(g.cfg.Arena.Width, g.cfg.Arena.Height)
	v := newViewport(dst.Width(), rows, arena, g.world.Player.Position)

	g.drawStars(dst, v)

	for _, l := range g.world.EnemyLasers {
		if x, y, ok := v.cell(l.Position); ok {
			dst.SetColor(x, y, LaserGlyph(l.Angle), core.ColorRed)
		}
	}
	for _, l := range g.world.PlayerLasers {
		if x, y, ok := v.cell(l.Position); ok {
			dst.SetColor(x, y, LaserGlyph(l.Angle), core.ColorBrightGreen)
		}
	}
	for _, e := range g.world.Enemies {
		if x, y, ok := v.cell(e.Position); ok {
			dst.SetColor(x, y, ShipGlyph(e.Angle), core.ColorBrightRed)
		}
	}

	p := g.world.Player
	if x, y, ok := v.cell(p.Position); ok {
		color := core.ColorBrightWhite
		if p.Sprite() == sim.SpritePlayerMoving {
			color = core.ColorBrightYellow
		}
		dst.SetColor(x, y, ShipGlyph(p.Angle), color)
	}

	g.drawHUD(dst)
}

// drawStars scatters a fixed starfield so that motion is visible even when
// no other object is on screen. Stars are tied to world cells, not screen cells.
func (g *Game) drawStars(dst *core.Screen, v viewport) {
	offX := floorDiv(v.center.X*v.cols, v.arenaW)
	offY := floorDiv(v.center.Y*v.rows, v.arenaH)
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			if starAt(x-v.cols/2+offX, y-v.rows/2+offY) {
				dst.SetColor(x, v.top+y, '·', core.ColorGray)
			}
		}
	}
}

func starAt(gx, gy int) bool {
	h := uint32(gx)*73856093 ^ uint32(gy)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h%61 == 0
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player
	left := fmt.Sprintf(" SCORE %d  SPEED %2d  HEADING %3.0f°", g.stats.Kills, p.Speed, p.Angle)
	right := fmt.Sprintf("ENEMIES %d  HITS %d ", len(g.world.Enemies), g.stats.HitsTaken)

	dst.DrawTextColor(0, 0, left, core.ColorCyan)
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorCyan)
}
