package shootout

import (
	"math"

	"github.com/mkazakov/tui-shootout/internal/core"
)

// stepShooter advances the shooter AI state machine for one tick.
//
// Approaching: skate toward the goal at the round's shooter speed, weaving
// laterally with a time-based sine plus uniform jitter, puck glued ahead of
// the stick. Once the horizontal distance to the goal line drops under the
// per-round threshold, either start the wind-up (slap-shot rounds, first
// crossing only) or shoot immediately.
//
// Winding up: hold position; after the wind-up delay has accumulated,
// shoot. The accumulator lives on the game and is cleared by resetRound,
// so a wind-up can never leak into the next round.
func (g *Game) stepShooter() {
	sh := &g.shooter
	f := g.cfg.Field

	switch g.phase {
	case PhaseApproach:
		sh.Pos.X -= g.round.ShooterSpeed

		wobble := math.Sin(float64(g.tick)*g.cfg.Shooter.WobbleFreq) * g.round.ShooterSpeed * 2
		jitter := (g.rng.Float64()*2 - 1) * g.round.Jitter * 3
		sh.Pos.Y = core.ClampF(sh.BaseY+wobble+jitter, 2, f.Height-2)

		g.puck.Pos = g.puckCarryPos()

		if sh.Pos.X-f.GoalX <= g.shootThreshold {
			if g.round.SlapShot {
				g.phase = PhaseWindup
				g.windupTicks = 0
			} else {
				g.takeShot()
			}
		}

	case PhaseWindup:
		g.windupTicks++
		needed := g.cfg.Shooter.WindupMillis * g.tickRate() / 1000
		if g.windupTicks >= needed {
			g.takeShot()
		}
	}
}

// takeShot releases the puck: picks a target in the goal mouth and assigns
// the puck velocity. The target is the mouth center biased toward one
// randomly chosen post in proportion to the round's intelligence, with the
// leftover inaccuracy spread as uniform scatter - a weak shooter sprays
// around the middle, a smart one picks a corner.
func (g *Game) takeShot() {
	f := g.cfg.Field

	post := 1.0
	if g.rng.Intn(2) == 0 {
		post = -1.0
	}

	center := (f.GoalTop + f.GoalBottom) / 2
	halfMouth := (f.GoalBottom - f.GoalTop) / 2
	intel := g.round.Intelligence

	aimY := center +
		post*intel*(halfMouth-2) +
		(g.rng.Float64()*2-1)*(1-intel)*halfMouth

	target := core.Vec2{X: f.GoalX, Y: aimY}
	dir := target.Sub(g.puck.Pos).Norm()
	g.puck.Vel = dir.Scale(g.round.ShotSpeed)

	g.shooter.Released = true
	g.phase = PhaseReleased
}
