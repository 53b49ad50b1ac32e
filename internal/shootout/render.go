package shootout

import (
	"fmt"

	"github.com/mkazakov/tui-shootout/internal/core"
)

// Visual characters for rendering
const (
	GoalieChar     = '█'
	ButterflyChar  = '▄'
	StickChar      = '/'
	ShooterChar    = '◄'
	PuckChar       = '●'
	TrailChar      = '·'
	GoalPostChar   = '╬'
	GoalLineChar   = '║'
	BoardChar      = '═'
	CenterLineChar = '┆'
	CapChar        = '∩'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()

	g.drawRink(dst, w, h)
	g.drawDecorations(dst, w, h)
	g.drawShooter(dst, w, h)
	g.drawPuck(dst, w, h)
	g.drawGoalie(dst, w, h)
	g.drawHUD(dst, w, h)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		verdict := fmt.Sprintf("Saves %d - Goals %d  |  R or Enter restarts", g.score, g.goals)
		g.drawCenteredMessage(dst, "SHOOTOUT OVER", verdict)
	}
}

// drawRink paints the boards and the goal mouth.
func (g *Game) drawRink(dst *core.Screen, w, h int) {
	dst.DrawHLine(0, 0, w, BoardChar)
	dst.DrawHLine(0, h-1, w, BoardChar)

	// Center-ice line; entities drawn later paint over it
	dst.DrawVLine(w/2, 1, h-2, CenterLineChar)

	f := g.cfg.Field
	goalX, topY := g.fieldToScreen(core.Vec2{X: f.GoalX, Y: f.GoalTop}, w, h)
	_, botY := g.fieldToScreen(core.Vec2{X: f.GoalX, Y: f.GoalBottom}, w, h)

	dst.DrawVLineColored(goalX, topY+1, botY-topY-1, GoalLineChar, core.ColorBrightRed)
	dst.SetColored(goalX, topY, GoalPostChar, core.ColorBrightRed)
	dst.SetColored(goalX, botY, GoalPostChar, core.ColorBrightRed)
}

// drawGoalie paints the goalie body, sliding into the butterfly pose as
// the stance lerp rises, plus a one-cell stick blade marker.
func (g *Game) drawGoalie(dst *core.Screen, w, h int) {
	x, y := g.fieldToScreen(g.goalie.Pos, w, h)

	body := GoalieChar
	if g.goalie.Stance > 0.6 {
		body = ButterflyChar
	}
	dst.SetColored(x, y-1, GoalieChar, core.ColorBrightBlue)
	dst.SetColored(x, y, body, core.ColorBrightBlue)

	// Butterfly spreads the pads sideways as the crouch completes
	if g.goalie.Stance > 0.85 {
		dst.SetColored(x-1, y, ButterflyChar, core.ColorBrightBlue)
		dst.SetColored(x+1, y, ButterflyChar, core.ColorBrightBlue)
	}

	sx, sy := g.fieldToScreen(g.stickZoneCenter(), w, h)
	stick := StickChar
	if g.goalie.Stick == StickDown {
		stick = '\\'
	}
	dst.SetColored(sx, sy, stick, core.ColorYellow)
}

// drawShooter paints the shooter, flashing during the wind-up.
func (g *Game) drawShooter(dst *core.Screen, w, h int) {
	x, y := g.fieldToScreen(g.shooter.Pos, w, h)

	color := core.ColorBrightRed
	if g.phase == PhaseWindup && (g.tick/4)%2 == 0 {
		color = core.ColorBrightYellow
	}
	dst.SetColored(x, y-1, GoalieChar, color)
	dst.SetColored(x, y, ShooterChar, color)
}

// drawPuck paints the trail oldest-to-newest so the fade reads correctly,
// then the puck itself.
func (g *Game) drawPuck(dst *core.Screen, w, h int) {
	n := len(g.puck.Trail)
	for i, p := range g.puck.Trail {
		x, y := g.fieldToScreen(p, w, h)
		c := core.ColorGray
		if i > n-5 {
			c = core.ColorWhite
		}
		dst.SetColored(x, y, TrailChar, c)
	}

	x, y := g.fieldToScreen(g.puck.Pos, w, h)
	dst.SetColored(x, y, PuckChar, core.ColorBrightWhite)
}

// drawDecorations paints falling caps and the mascot.
func (g *Game) drawDecorations(dst *core.Screen, w, h int) {
	for _, c := range g.caps {
		x, y := g.fieldToScreen(c.Pos, w, h)
		dst.SetColored(x, y, CapChar, core.ColorBrightMagenta)
	}
	if g.mascot != nil {
		x, y := g.fieldToScreen(g.mascot.Pos, w, h)
		dst.DrawTextColored(x-1, y, "~o~", core.ColorMagenta)
	}
}

// drawHUD paints the status line, the round banner and the commentary.
func (g *Game) drawHUD(dst *core.Screen, w, h int) {
	status := fmt.Sprintf(" Round %d/10  Saves: %d  Goals: %d ", g.roundNum, g.score, g.goals)
	dst.DrawText(2, 0, status)

	if tag := g.modifierTag(); tag != "" {
		dst.DrawTextColored(w-len(tag)-2, 0, tag, core.ColorBrightYellow)
	}

	if g.phase == PhaseRoundOver && !g.gameOver {
		banner := g.outcome.String()
		color := core.ColorBrightGreen
		if g.outcome == OutcomeGoal {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored((w-len(banner))/2, h/2-3, banner, color)
	}

	if g.commentary != "" {
		line := g.commentary
		if len(line) > w-4 {
			line = line[:w-4]
		}
		dst.DrawTextColored(2, h-1, " "+line+" ", core.ColorCyan)
	}
}

// modifierTag returns the HUD label for the round's active modifier.
func (g *Game) modifierTag() string {
	switch {
	case g.round.SlapShot:
		return "[SLAPSHOT]"
	case g.round.Magnet:
		return "[MAGNET]"
	case g.round.SpeedPowerUp:
		return "[SPEED UP]"
	default:
		return ""
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
