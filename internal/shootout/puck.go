package shootout

import "math"

// magnetCone is the half-angle of the magnetic-assist cone, measured from
// the goalie's facing axis (+X, toward the play). Everything except a 90
// degree dead wedge directly behind the goalie is inside it.
const magnetCone = 135.0 * math.Pi / 180.0

// stepPuck advances the released puck by one tick: magnetic assist (when
// the round's magnet modifier is on), velocity integration, stochastic
// curve drift, and the trail ring.
func (g *Game) stepPuck() {
	p := &g.puck

	if g.round.Magnet {
		toGoalie := g.goalie.Pos.Sub(p.Pos)
		dist := toGoalie.Len()
		if dist > 0 && dist <= g.cfg.Puck.MagnetRadius {
			angle := math.Atan2(p.Pos.Y-g.goalie.Pos.Y, p.Pos.X-g.goalie.Pos.X)
			if math.Abs(angle) <= magnetCone {
				// A nudge, not a homing lock: the puck's own momentum
				// can still carry it past.
				p.Vel = p.Vel.Add(toGoalie.Norm().Scale(g.cfg.Puck.MagnetGain))
			}
		}
	}

	p.Pos = p.Pos.Add(p.Vel)

	// Continuous random walk on the vertical velocity, not a one-shot
	// curve: re-perturbed every frame the factor is nonzero.
	if g.round.Curve > 0 {
		p.Vel.Y += (g.rng.Float64() - 0.5) * g.round.Curve * g.cfg.Puck.CurveGain
	}

	p.pushTrail(g.cfg.Puck.TrailLen)
}
