package shootout

import (
	"math"
	"testing"

	"github.com/mkazakov/tui-shootout/internal/core"
)

// armFlight puts the game into a released state with a hand-placed puck so
// physics properties can be probed without running the whole approach.
func armFlight(g *Game, pos, vel core.Vec2) {
	g.phase = PhaseReleased
	g.shooter.Released = true
	g.puck.Pos = pos
	g.puck.Vel = vel
	g.puck.Trail = nil
}

func TestPuckTrailCap(t *testing.T) {
	g := newTestGame(1)
	g.round.Curve = 0
	g.round.Magnet = false
	armFlight(g, core.Vec2{X: 150, Y: 50}, core.Vec2{X: -0.001, Y: 0})

	maxLen := g.cfg.Puck.TrailLen
	for i := 1; i <= maxLen*3; i++ {
		g.stepPuck()

		want := core.Min(i, maxLen)
		if len(g.puck.Trail) != want {
			t.Fatalf("after %d steps trail has %d entries, expected %d", i, len(g.puck.Trail), want)
		}
	}

	// Newest entry is the current position, oldest entries were dropped
	last := g.puck.Trail[len(g.puck.Trail)-1]
	if last != g.puck.Pos {
		t.Errorf("trail tail %v should be the current position %v", last, g.puck.Pos)
	}
}

func TestPuckStraightFlightWithoutModifiers(t *testing.T) {
	g := newTestGame(1)
	g.round.Curve = 0
	g.round.Magnet = false

	vel := core.Vec2{X: -2, Y: 0.5}
	armFlight(g, core.Vec2{X: 150, Y: 50}, vel)

	for i := 0; i < 20; i++ {
		g.stepPuck()
		if g.puck.Vel != vel {
			t.Fatalf("velocity drifted without curve or magnet: %v -> %v", vel, g.puck.Vel)
		}
	}
}

func TestPuckMagnetNudgesTowardGoalie(t *testing.T) {
	g := newTestGame(1)
	g.round.Curve = 0
	g.round.Magnet = true

	// Straight ahead of the goalie, inside the magnet radius, flying
	// parallel to the goal line so any x-deceleration is the magnet's.
	start := g.goalie.Pos.Add(core.Vec2{X: 50, Y: 0})
	vel := core.Vec2{X: 0, Y: -2}
	armFlight(g, start, vel)

	g.stepPuck()

	if g.puck.Vel.X >= vel.X {
		t.Errorf("magnet should pull velocity toward the goalie, vel.X %f -> %f", vel.X, g.puck.Vel.X)
	}
	wantPull := g.cfg.Puck.MagnetGain
	if math.Abs((vel.X-g.puck.Vel.X)-wantPull) > 1e-9 {
		t.Errorf("head-on pull should equal the magnet gain %f, got %f", wantPull, vel.X-g.puck.Vel.X)
	}
}

func TestPuckMagnetRespectsRadius(t *testing.T) {
	g := newTestGame(1)
	g.round.Curve = 0
	g.round.Magnet = true

	start := g.goalie.Pos.Add(core.Vec2{X: g.cfg.Puck.MagnetRadius + 5, Y: 0})
	vel := core.Vec2{X: -1, Y: 0}
	armFlight(g, start, vel)

	g.stepPuck()

	if g.puck.Vel != vel {
		t.Errorf("puck outside the magnet radius should not be pulled, vel %v -> %v", vel, g.puck.Vel)
	}
}

func TestPuckMagnetDeadWedgeBehindGoalie(t *testing.T) {
	g := newTestGame(1)
	g.round.Curve = 0
	g.round.Magnet = true

	// Directly behind the goalie (toward the goal): inside the radius but
	// outside the attraction cone.
	start := g.goalie.Pos.Add(core.Vec2{X: -3, Y: 0})
	vel := core.Vec2{X: -1, Y: 0}
	armFlight(g, start, vel)

	g.stepPuck()

	if g.puck.Vel != vel {
		t.Errorf("puck behind the goalie should not be pulled, vel %v -> %v", vel, g.puck.Vel)
	}
}

func TestPuckCurveDrift(t *testing.T) {
	g := newTestGame(1)
	g.round.Magnet = false
	g.round.Curve = 1.5

	vel := core.Vec2{X: -3, Y: 0}
	armFlight(g, core.Vec2{X: 150, Y: 50}, vel)

	maxStep := g.round.Curve * g.cfg.Puck.CurveGain / 2
	drifted := false
	prevY := vel.Y
	for i := 0; i < 50; i++ {
		g.stepPuck()

		dy := math.Abs(g.puck.Vel.Y - prevY)
		if dy > maxStep+1e-9 {
			t.Fatalf("curve kick %f exceeds per-tick bound %f", dy, maxStep)
		}
		if dy > 0 {
			drifted = true
		}
		prevY = g.puck.Vel.Y

		if g.puck.Vel.X != vel.X {
			t.Fatal("curve must only perturb the vertical velocity")
		}
	}

	if !drifted {
		t.Error("curve factor 1.5 produced no vertical drift in 50 ticks")
	}
}
