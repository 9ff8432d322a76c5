package invasion

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Minimum terminal size the playfield can be squeezed into.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// Visual characters for rendering
const (
	PlayerSprite = "/^\\"
	LaserChar    = '|'
	BombChar     = 'o'
	StarChar     = '.'
	ShieldOn     = "■"
	ShieldOff    = "□"
)

var enemySprites = [kindCount]string{
	KindHorse: "/M\\",
	KindPig:   "(oo)",
	KindDeer:  "}Y{",
	KindWolf:  "/W\\",
	KindBird:  "<v>",
}

var enemyColors = [kindCount]core.Color{
	KindHorse: core.ColorBrightMagenta,
	KindPig:   core.ColorPink,
	KindDeer:  core.ColorYellow,
	KindWolf:  core.ColorGray,
	KindBird:  core.ColorBrightCyan,
}

// Render draws the current session into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	DrawWorld(dst, g.World())
}

// DrawWorld scales the logical playfield onto dst. Row 0 holds the HUD.
func DrawWorld(dst *core.Screen, w World) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	v := viewport{cols: dst.Width(), rows: dst.Height() - 1}

	for i, s := range w.Stars {
		c := core.ColorGray
		if i%3 == 0 {
			c = core.ColorPink
		}
		x, y := v.cell(s.X, s.Y)
		dst.SetColored(x, y, StarChar, c)
	}

	if w.Screen == ScreenTitle {
		drawTitle(dst)
		return
	}

	for _, p := range w.Particles {
		r, c, ok := particleGlyph(p.Alpha)
		if !ok {
			continue
		}
		x, y := v.cell(p.X, p.Y)
		dst.SetColored(x, y, r, c)
	}

	for _, e := range w.Enemies {
		x, y := v.cell(e.X, e.Y)
		drawSprite(dst, x, y, enemySprites[e.Kind()], enemyColors[e.Kind()])
	}

	if w.Laser != nil {
		x, y := v.cell(w.Laser.X, w.Laser.Y)
		dst.SetColored(x, y, LaserChar, core.ColorBrightCyan)
	}
	if w.Bomb != nil {
		x, y := v.cell(w.Bomb.X, w.Bomb.Y)
		dst.SetColored(x, y, BombChar, core.ColorBrightRed)
	}
	if !w.Player.Dead {
		x, y := v.cell(w.Player.X, w.Player.Y)
		drawSprite(dst, x, y, PlayerSprite, core.ColorBrightBlue)
	}

	drawHUD(dst, w)

	mid := dst.Height() / 2
	switch {
	case w.Screen == ScreenReady:
		dst.DrawTextCentered(mid, "GET READY", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("%d", int(math.Ceil(max(w.ReadyLeft, 0)))), core.ColorYellow)
	case w.Screen == ScreenGameOver:
		dst.DrawTextCentered(mid, "GAME OVER", core.ColorBrightRed)
	case w.Paused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightWhite)
		dst.DrawTextCentered(mid+1, "press p to resume", core.ColorGray)
	}

	if w.Debug {
		drawDebug(dst, w)
	}
}

// viewport maps logical pixels to terminal cells below the HUD row.
type viewport struct {
	cols, rows int
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x / ScreenWidth * float64(v.cols))
	cy := int(y/ScreenHeight*float64(v.rows)) + 1
	return core.Clamp(cx, 0, v.cols-1), core.Clamp(cy, 1, v.rows)
}

// drawSprite centers text horizontally on x.
func drawSprite(dst *core.Screen, x, y int, sprite string, c core.Color) {
	dst.DrawText(x-utf8.RuneCountInString(sprite)/2, y, sprite, c)
}

// particleGlyph picks a glyph that dims as the particle fades.
func particleGlyph(alpha float64) (rune, core.Color, bool) {
	switch {
	case alpha > 0.6:
		return '*', core.ColorBrightYellow, true
	case alpha > 0.3:
		return '+', core.ColorOrange, true
	case alpha > 0:
		return '.', core.ColorRed, true
	default:
		return 0, core.ColorDefault, false
	}
}

func drawHUD(dst *core.Screen, w World) {
	health := max(w.Player.Health, 0)
	shield := "SHIELD " + strings.Repeat(ShieldOn, health) + strings.Repeat(ShieldOff, max(w.MaxHealth-health, 0))
	dst.DrawText(1, 0, shield, core.ColorBrightGreen)

	score := fmt.Sprintf("SCORE %05d", w.Score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)
}

func drawTitle(dst *core.Screen) {
	top := dst.Height() / 3
	dst.DrawTextCentered(top, "I N V A S I O N", core.ColorBrightMagenta)
	dst.DrawTextCentered(top+2, "press enter to start", core.ColorBrightWhite)
	dst.DrawTextCentered(top+4, "←/→ move   space fire   p pause   q quit", core.ColorGray)
}

func drawDebug(dst *core.Screen, w World) {
	s := w.Swarm
	lines := []string{
		fmt.Sprintf("tick %d  screen %s  enemies %d", w.Tick, w.Screen, len(w.Enemies)),
		fmt.Sprintf("row %d  dir %+.0f  down %.0f  restart %v", s.RowIndex, s.Direction, s.Down, s.RowRestart),
		fmt.Sprintf("cycle %.2fs  frame %.2fs  v (%.1f, %.1f)", s.Cycle, s.Frame, s.VelocityX, s.VelocityY),
		fmt.Sprintf("ship x %.1f vx %.1f  bomb cd %.2f  particles %d", w.Player.X, w.Player.VelocityX, w.BombInterval, len(w.Particles)),
	}
	y := dst.Height() - len(lines)
	for i, line := range lines {
		dst.DrawText(1, y+i, line, core.ColorGreen)
	}
}
