package shootout

import "github.com/mkazakov/tui-shootout/internal/core"

// resolve tests the puck against the goalie's save zones, the goal mouth
// and the field bounds, in fixed priority order. The first match wins and
// is terminal; OutcomeNone means the round is still live.
//
// Order: body, stick, glove (stick UP only), butterfly (stick DOWN only),
// goal, miss.
func (g *Game) resolve() Outcome {
	p := g.puck.Pos
	f := g.cfg.Field
	puckR := g.cfg.Puck.Radius

	// 1. Body save
	if core.Dist(p, g.goalie.Pos) <= g.cfg.Goalie.Radius+puckR {
		return OutcomeBodySave
	}

	// 2. Stick save
	if core.Dist(p, g.stickZoneCenter()) <= g.cfg.Zones.StickRadius+puckR {
		return OutcomeStickSave
	}

	// 3. Glove save, only with the stick raised
	if g.goalie.Stick == StickUp && g.gloveZone().ContainsPoint(p) {
		return OutcomeGloveSave
	}

	// 4. Butterfly save, only with the stick dropped
	if g.goalie.Stick == StickDown && g.butterflyZone().ContainsPoint(p) {
		return OutcomeButterflySave
	}

	// 5/6. Goal line: a goal needs the puck strictly inside the mouth;
	// crossing at or outside the posts is a miss.
	if p.X <= f.GoalX {
		if p.Y > f.GoalTop && p.Y < f.GoalBottom {
			return OutcomeGoal
		}
		return OutcomeMiss
	}

	// 6. Out of the playfield on any other edge
	if p.X > f.Width || p.Y < 0 || p.Y > f.Height {
		return OutcomeMiss
	}

	return OutcomeNone
}

// stickZoneCenter returns the center of the circular stick-blade zone:
// offset from the goalie toward the play, raised or lowered with the
// stick selector.
func (g *Game) stickZoneCenter() core.Vec2 {
	z := g.cfg.Zones
	c := core.Vec2{X: g.goalie.Pos.X + z.StickOffsetX, Y: g.goalie.Pos.Y}
	switch g.goalie.Stick {
	case StickUp:
		c.Y -= z.StickRaiseY
	case StickDown:
		c.Y += z.StickRaiseY
	}
	return c
}

// gloveZone returns the glove box: above the goalie, shifted slightly
// toward the play. Active only while the stick is up.
func (g *Game) gloveZone() core.RectF {
	z := g.cfg.Zones
	return core.RectF{
		X: g.goalie.Pos.X - 2,
		Y: g.goalie.Pos.Y - g.cfg.Goalie.Radius - z.GloveHeight,
		W: z.GloveWidth,
		H: z.GloveHeight,
	}
}

// butterflyZone returns the wide low box under the goalie, covering the
// ice while crouched. Active only while the stick is down.
func (g *Game) butterflyZone() core.RectF {
	z := g.cfg.Zones
	return core.RectF{
		X: g.goalie.Pos.X - z.ButterflyWidth/2,
		Y: g.goalie.Pos.Y + g.cfg.Goalie.Radius/2,
		W: z.ButterflyWidth,
		H: z.ButterflyHeight,
	}
}
