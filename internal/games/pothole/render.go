package pothole

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	CoinChar     = '$'
	PlatformChar = '▀'
	GroundChar   = '▓'
	GapChar      = ' '
	GapEdgeChar  = '│'
	SkyChar      = ' '
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// projection maps world units to screen cells.
type projection struct {
	sx, sy   float64 // Cells per world unit
	dx, dy   int     // Shake offset in cells
	top      int     // First playfield row
	cols     int
	rows     int
	platform int // Row of the platform line
}

func (g *Game) projection(dst *core.Screen) projection {
	p := projection{
		top:  hudRows,
		cols: dst.Width(),
		rows: core.Max(dst.Height()-hudRows, 0),
	}
	if g.view.Width > 0 {
		p.sx = float64(p.cols) / g.view.Width
	}
	if g.view.Height > 0 {
		p.sy = float64(p.rows) / g.view.Height
	}

	if g.phase == PhaseGameOver {
		if ox, oy, ok := g.fx.Shake(); ok {
			p.dx = int(math.Round(ox / ShakeMagnitude))
			p.dy = int(math.Round(oy / ShakeMagnitude))
		}
	}

	p.platform = p.row(g.view.PlatformY)
	return p
}

func (p projection) col(x float64) int {
	return int(math.Floor(x*p.sx)) + p.dx
}

func (p projection) row(y float64) int {
	return p.top + int(math.Floor(y*p.sy)) + p.dy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}

	p := g.projection(dst)

	g.drawGround(dst, p)
	g.drawGaps(dst, p)
	g.drawCoins(dst, p)
	g.drawBall(dst, p)
	g.drawEffects(dst, p)
	g.drawHUD(dst)

	switch g.phase {
	case PhaseStart:
		g.drawPanel(dst, core.ColorCyan,
			"POTHOLE JUMPER",
			"",
			"Enter a nickname and press Enter",
			"SPACE to Jump | P to Pause",
			"Avoid potholes! Collect coins!",
		)
	case PhasePaused:
		g.drawPanel(dst, core.ColorOrange,
			"PAUSED",
			"",
			"Press P to resume",
		)
	case PhaseGameOver:
		g.drawPanel(dst, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Final Score: %d", g.finalScore),
			fmt.Sprintf("Thank you for playing, %s!", g.nickname),
			"",
			"Press R to replay",
		)
	}
}

// drawGround fills the platform and everything below it.
func (g *Game) drawGround(dst *core.Screen, p projection) {
	if p.platform < p.top {
		return
	}
	dst.DrawHLine(0, p.platform, p.cols, PlatformChar, core.ColorBrightGreen)
	for y := p.platform + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, p.cols, GroundChar, core.ColorGreen)
	}
}

// drawGaps carves the potholes out of the ground.
func (g *Game) drawGaps(dst *core.Screen, p projection) {
	for _, gap := range g.run.Gaps {
		left := p.col(gap.X)
		right := p.col(gap.Trailing())
		if right < 0 || left >= p.cols {
			continue
		}
		if right <= left {
			right = left + 1
		}
		for y := p.platform; y < dst.Height(); y++ {
			for x := left; x < right; x++ {
				dst.SetColored(x, y, GapChar, core.ColorDefault)
			}
			if right-left > 2 {
				dst.SetColored(left, y, GapEdgeChar, core.ColorGray)
				dst.SetColored(right-1, y, GapEdgeChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawCoins(dst *core.Screen, p projection) {
	for _, c := range g.run.Coins {
		dst.SetColored(p.col(c.X), p.row(c.BobY()), CoinChar, core.ColorYellow)
	}
}

func (g *Game) drawBall(dst *core.Screen, p projection) {
	b := g.run.Ball
	x := p.col(b.X)
	top := p.row(b.Top())
	bottom := p.row(b.Bottom())
	if bottom > top {
		bottom-- // the bottom edge row belongs to what the ball rests on
	}
	for y := top; y <= bottom; y++ {
		dst.SetColored(x, y, BallChar, core.ColorRed)
	}
}

func (g *Game) drawEffects(dst *core.Screen, p projection) {
	for _, pt := range g.fx.Particles() {
		dst.SetColored(p.col(pt.X), p.row(pt.Y), particleRune(pt.Alpha), pt.Color)
	}
	for _, pu := range g.fx.Popups() {
		x := p.col(pu.X) - len(pu.Text)/2
		dst.DrawTextColored(x, p.row(pu.Y), pu.Text, pu.Color)
	}
}

// particleRune picks a glyph that thins out as the particle fades.
func particleRune(alpha float64) rune {
	switch {
	case alpha > 170:
		return '*'
	case alpha > 85:
		return '+'
	default:
		return '·'
	}
}

// drawHUD renders the score line above the playfield.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.displayScore()), core.ColorWhite)

	if g.phase == PhasePlaying || g.phase == PhasePaused {
		dst.DrawTextCentered(0, g.nickname, core.ColorCyan)
	}

	right := fmt.Sprintf("Speed x%.2f", g.difficulty.Level(g.run.Speed))
	switch g.phase {
	case PhasePlaying:
		right += "  [P] Pause"
	case PhasePaused:
		right += "  PAUSED"
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)
}

// drawPanel draws a bordered message box in the center of the playfield.
func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	boxW := core.Min(inner+4, w)
	boxH := core.Min(len(lines)+2, h-hudRows)
	box := core.NewRect((w-boxW)/2, hudRows+(h-hudRows-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, l := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(y, strings.TrimSpace(l), color)
	}
}
