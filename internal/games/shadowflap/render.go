package shadowflap

import (
	"fmt"

	"github.com/vovakirdan/shadowflap/internal/core"
)

// Life bar layout in world units.
const (
	heartX   = 100
	heartY   = 30
	heartGap = 50
)

// Screen text.
const (
	textStart   = "PRESS SPACE TO START"
	textShoot   = "PRESS 'S' TO SHOOT"
	textLevelUp = "LEVEL-UP!"
	textLost    = "GAME OVER"
	textWon     = "CONGRATULATIONS!"
	textPaused  = "PAUSED"
)

// glyph is how a visual looks in a terminal cell.
type glyph struct {
	fill  rune
	edge  rune // gap-facing row of pipes, wing marker of the flyer
	color core.Color
}

var glyphs = map[Visual]glyph{
	VisualFlyerWingsDown:        {fill: '▓', edge: 'v', color: core.ColorYellow},
	VisualFlyerWingsUp:          {fill: '▓', edge: '^', color: core.ColorYellow},
	VisualFlyerPoweredWingsDown: {fill: '▓', edge: 'v', color: core.ColorOrange},
	VisualFlyerPoweredWingsUp:   {fill: '▓', edge: '^', color: core.ColorOrange},
	VisualSoftPipe:              {fill: '█', edge: '▓', color: core.ColorGreen},
	VisualHardPipe:              {fill: '█', edge: '▓', color: core.ColorGray},
	VisualHazard:                {fill: '▒', color: core.ColorBrightRed},
	VisualRock:                  {fill: '●', color: core.ColorWhite},
	VisualBomb:                  {fill: '◉', color: core.ColorRed},
	VisualHeartFull:             {fill: '♥', color: core.ColorRed},
	VisualHeartEmpty:            {fill: '♡', color: core.ColorGray},
}

// backgrounds tints the playfield per level.
var backgrounds = []core.Color{core.ColorBlue, core.ColorMagenta}

// screenCanvas maps world coordinates onto a cell buffer.
type screenCanvas struct {
	dst     *core.Screen
	sprites Sprites
	scaleX  float64
	scaleY  float64
}

func newScreenCanvas(dst *core.Screen, sprites Sprites, world World) *screenCanvas {
	return &screenCanvas{
		dst:     dst,
		sprites: sprites,
		scaleX:  float64(world.W) / float64(core.Max(1, dst.Width())),
		scaleY:  float64(world.H) / float64(core.Max(1, dst.Height())),
	}
}

// Present implements Canvas.
func (c *screenCanvas) Present(v Visual, x, y float64, flipped bool) {
	g := glyphs[v]

	if v == VisualHeartFull || v == VisualHeartEmpty {
		c.dst.SetColor(int(x/c.scaleX), int(y/c.scaleY), g.fill, g.color)
		return
	}

	r := c.sprites.For(v).BoundsAt(x, y).Cells(c.scaleX, c.scaleY)
	c.dst.DrawRect(r, g.fill, g.color)
	if g.edge == 0 {
		return
	}

	switch v {
	case VisualSoftPipe, VisualHardPipe:
		// top pipe faces the gap with its bottom row, the flipped one with its top row
		row := r.Bottom() - 1
		if flipped {
			row = r.Y
		}
		c.dst.DrawRect(core.NewRect(r.X, row, r.W, 1), g.edge, g.color)
	default:
		c.dst.SetColor(r.X+r.W/2, r.Y, g.edge, g.color)
	}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.drawBackground(dst)
	g.Present(newScreenCanvas(dst, g.sprites, g.world))

	phase := g.level.Phase()
	mid := dst.Height() / 2

	switch phase {
	case PhaseStart:
		dst.DrawTextCentered(mid, textStart, core.ColorWhite)
		if g.level.Rules().Projectiles {
			dst.DrawTextCentered(mid+2, textShoot, core.ColorWhite)
		}
	case PhaseLevelingUp:
		dst.DrawTextCentered(mid, textLevelUp, core.ColorBrightYellow)
	case PhaseLost:
		dst.DrawTextCentered(mid, textLost, core.ColorBrightRed)
		dst.DrawTextCentered(mid+2, fmt.Sprintf("SCORE: %d", g.score.Total()), core.ColorWhite)
	case PhaseWon:
		dst.DrawTextCentered(mid, textWon, core.ColorBrightGreen)
		dst.DrawTextCentered(mid+2, fmt.Sprintf("SCORE: %d", g.score.Total()), core.ColorWhite)
	}

	if phase == PhasePlaying {
		g.drawHUD(dst)
	}
	if g.paused {
		dst.DrawTextCentered(mid, textPaused, core.ColorBrightYellow)
	}
}

// drawBackground sprinkles a level-tinted star field.
func (g *Game) drawBackground(dst *core.Screen) {
	tint := backgrounds[g.levelIndex%len(backgrounds)]
	for y := 0; y < dst.Height(); y += 3 {
		for x := (y * 7) % 11; x < dst.Width(); x += 11 {
			dst.SetColor(x, y, '·', tint)
		}
	}
}

// drawHUD writes score, level and timescale on the second row; the
// first row holds the life bar.
func (g *Game) drawHUD(dst *core.Screen) {
	ts := g.level.Timescale()
	left := fmt.Sprintf(" SCORE: %d ", g.score.Level())
	right := fmt.Sprintf(" %s  x%d ", g.level.Rules().Name, ts.Level())
	dst.DrawTextColor(1, 1, left, core.ColorWhite)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 1, right, core.ColorCyan)
}
