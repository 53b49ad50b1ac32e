package shootout

import (
	"math"

	"github.com/mkazakov/tui-shootout/internal/core"
)

// capCount is how many caps rain down during a hat-trick celebration.
const capCount = 12

// Cap is a single falling cap prop. Purely cosmetic; caps never interact
// with the puck or the goalie.
type Cap struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Sway float64 // Phase offset for the horizontal sway
}

// Mascot is the single celebration prop thrown on the ice after a long
// save streak. At most one exists at a time.
type Mascot struct {
	Pos core.Vec2
	bob float64
}

// hatTrick reports whether the opposition has scored three in a row.
func (g *Game) hatTrick() bool {
	return g.goalStreak >= 3
}

// octopus reports whether the goalie has saved six in a row.
func (g *Game) octopus() bool {
	return g.saveStreak >= 6
}

// syncDecorations reconciles decoration state with the streak flags after
// a round outcome: caps spawn once when the hat-trick flag turns true and
// clear when it turns false; same for the single mascot.
func (g *Game) syncDecorations() {
	if g.hatTrick() {
		if len(g.caps) == 0 {
			g.spawnCaps()
		}
	} else {
		g.caps = nil
	}

	if g.octopus() {
		if g.mascot == nil {
			f := g.cfg.Field
			g.mascot = &Mascot{Pos: core.Vec2{X: f.Width / 2, Y: f.Height * 0.75}}
		}
	} else {
		g.mascot = nil
	}
}

// spawnCaps scatters caps above the top edge with randomized fall speeds.
func (g *Game) spawnCaps() {
	f := g.cfg.Field
	g.caps = make([]Cap, 0, capCount)
	for i := 0; i < capCount; i++ {
		g.caps = append(g.caps, Cap{
			Pos:  core.Vec2{X: g.rng.Float64() * f.Width, Y: -g.rng.Float64() * f.Height},
			Vel:  core.Vec2{Y: 0.3 + g.rng.Float64()*0.5},
			Sway: g.rng.Float64() * 2 * math.Pi,
		})
	}
}

// stepDecorations animates caps and the mascot. Runs every tick including
// between rounds; decoration motion never touches gameplay state.
func (g *Game) stepDecorations() {
	f := g.cfg.Field

	for i := range g.caps {
		c := &g.caps[i]
		c.Pos.Y += c.Vel.Y
		c.Pos.X += math.Sin(float64(g.tick)*0.05+c.Sway) * 0.3
		// Loop back above the rink while the celebration lasts
		if c.Pos.Y > f.Height {
			c.Pos.Y = -2
			c.Pos.X = g.rng.Float64() * f.Width
		}
	}

	if g.mascot != nil {
		g.mascot.bob += 0.08
		g.mascot.Pos.Y += math.Sin(g.mascot.bob) * 0.05
	}
}
