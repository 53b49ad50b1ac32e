package shootout

import "github.com/mkazakov/tui-shootout/internal/core"

// stepGoalie applies one frame of control intent to the goaltender.
//
// A pointer drag fully overrides keyboard movement: the goalie is placed
// directly at the drag position and the drag's vertical third selects the
// stick (top third up, bottom third down). Without a drag, held directional
// actions integrate the position per axis, doubled under the speed power-up.
// Either way the position is clamped to the movement box and the stance
// lerp advances.
func (g *Game) stepGoalie(in core.InputFrame) {
	// Stick keys first, drag zone after: whichever wrote last this frame
	// wins, which is the plain latest-write-wins policy the inputs use.
	switch {
	case in.Has(core.ActionStickUp):
		g.goalie.Stick = StickUp
	case in.Has(core.ActionStickStraight):
		g.goalie.Stick = StickStraight
	case in.Has(core.ActionStickDown):
		g.goalie.Stick = StickDown
	}

	minX, maxX, minY, maxY := g.goalieBox()

	if in.Pointer.Dragging {
		p := g.screenToField(in.Pointer.X, in.Pointer.Y)
		g.goalie.Pos.X = core.ClampF(p.X, minX, maxX)
		g.goalie.Pos.Y = core.ClampF(p.Y, minY, maxY)

		third := g.cfg.Field.Height / 3
		switch {
		case p.Y < third:
			g.goalie.Stick = StickUp
		case p.Y > 2*third:
			g.goalie.Stick = StickDown
		default:
			g.goalie.Stick = StickStraight
		}
	} else {
		speed := g.cfg.Goalie.Speed
		if g.round.SpeedPowerUp {
			speed *= 2
		}
		if in.Has(core.ActionUp) {
			g.goalie.Pos.Y -= speed
		}
		if in.Has(core.ActionDown) {
			g.goalie.Pos.Y += speed
		}
		if in.Has(core.ActionLeft) {
			g.goalie.Pos.X -= speed
		}
		if in.Has(core.ActionRight) {
			g.goalie.Pos.X += speed
		}
		g.goalie.Pos.X = core.ClampF(g.goalie.Pos.X, minX, maxX)
		g.goalie.Pos.Y = core.ClampF(g.goalie.Pos.Y, minY, maxY)
	}

	// Stance eases toward the butterfly pose while the stick is down and
	// back up otherwise. The fixed smoothing factor gives the fluid crouch
	// instead of an instant pose switch.
	target := 0.0
	if g.goalie.Stick == StickDown {
		target = 1.0
	}
	g.goalie.Stance += (target - g.goalie.Stance) * g.cfg.Goalie.StanceSmoothing
	g.goalie.Stance = core.ClampF(g.goalie.Stance, 0, 1)
}
