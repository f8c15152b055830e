package mazechase

import (
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Glyphs drawn for maze content.
const (
	glyphWall       = '#'
	glyphGate       = '-'
	glyphItem       = '·'
	glyphPower      = 'o'
	glyphHunter     = 'M'
	glyphFrightened = 'w'
	glyphRunnerShut = '@'
)

// Frightened hunters flash when their timer drops below this.
const flashBelow = core.Fixed(2000)

var roleColors = map[engine.Role]core.Color{
	engine.RoleBlinky: core.ColorBrightRed,
	engine.RolePinky:  core.ColorPink,
	engine.RoleInky:   core.ColorBrightCyan,
	engine.RoleClyde:  core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.maze.Width(), g.maze.Height()+hudHeight+1))
		return
	}

	snap := g.sim.Snapshot()
	g.renderMaze(dst, snap)
	g.renderItems(dst, snap)
	g.renderHunters(dst, snap)
	g.renderRunner(dst, snap)

	if msg := g.Toast(); msg != "" {
		dst.DrawTextCentered(g.offsetY+snap.Height, msg)
	}

	switch snap.Phase {
	case engine.PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  R to restart", snap.State.Score))
	case engine.PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " MAZE CHASE  " + g.sim.HUD().String()
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderMaze(dst *core.Screen, snap engine.Snapshot) {
	for y, row := range snap.Rows {
		for x, ch := range []rune(row) {
			switch maze.TileFromRune(ch) {
			case maze.TileWall:
				g.plot(dst, core.P(x, y), glyphWall, core.ColorBlue)
			case maze.TileGate:
				g.plot(dst, core.P(x, y), glyphGate, core.ColorPink)
			}
		}
	}
}

func (g *Game) renderItems(dst *core.Screen, snap engine.Snapshot) {
	// Power items blink while the game runs.
	powerOn := snap.Phase != engine.PhasePlaying || (snap.Anim/15)%2 == 0

	for _, it := range snap.Items {
		if it.Eaten {
			continue
		}
		if it.Power {
			if powerOn {
				g.plot(dst, it.Pos(), glyphPower, core.ColorBrightWhite)
			}
			continue
		}
		g.plot(dst, it.Pos(), glyphItem, core.ColorWhite)
	}
}

func (g *Game) renderHunters(dst *core.Screen, snap engine.Snapshot) {
	for _, h := range snap.Hunters {
		if h.Frightened {
			color := core.ColorBrightBlue
			if h.Timer < flashBelow && (snap.Anim/10)%2 == 1 {
				color = core.ColorBrightWhite
			}
			g.plot(dst, h.Tile, glyphFrightened, color)
			continue
		}
		color, ok := roleColors[h.Role]
		if !ok {
			color = core.ColorRed
		}
		g.plot(dst, h.Tile, glyphHunter, color)
	}
}

func (g *Game) renderRunner(dst *core.Screen, snap engine.Snapshot) {
	g.plot(dst, snap.Runner.Tile, runnerGlyph(snap.Runner.Dir, snap.Anim), core.ColorYellow)
}

// runnerGlyph opens and closes the mouth every eight animation ticks.
// A stopped runner keeps its mouth shut.
func runnerGlyph(dir core.Dir, anim uint64) rune {
	if dir.IsZero() || (anim/8)%2 == 1 {
		return glyphRunnerShut
	}
	switch dir {
	case core.DirRight:
		return '>'
	case core.DirLeft:
		return '<'
	case core.DirUp:
		return '^'
	default:
		return 'v'
	}
}

// plot draws a maze cell at its screen position.
func (g *Game) plot(dst *core.Screen, p core.Point, r rune, c core.Color) {
	dst.SetColored(g.offsetX+p.X, g.offsetY+p.Y, r, c)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
