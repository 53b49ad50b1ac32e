package shootout

import (
	"math"
	"testing"

	"github.com/mkazakov/tui-shootout/internal/core"
)

func TestGoalieClampInvariant(t *testing.T) {
	directions := [][]core.Action{
		{core.ActionUp, core.ActionLeft},
		{core.ActionDown, core.ActionRight},
		{core.ActionUp, core.ActionRight},
		{core.ActionDown, core.ActionLeft},
	}

	for _, dirs := range directions {
		g := newTestGame(7)
		minX, maxX, minY, maxY := g.goalieBox()

		// Hold the keys far longer than the box is wide
		for i := 0; i < 500; i++ {
			in := core.NewInputFrame()
			for _, a := range dirs {
				in.Set(a)
			}
			g.stepGoalie(in)

			p := g.goalie.Pos
			if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
				t.Fatalf("goalie escaped movement box at tick %d: %v (box [%f,%f]x[%f,%f])",
					i, p, minX, maxX, minY, maxY)
			}
		}
	}
}

func TestGoalieSpeedPowerUp(t *testing.T) {
	base := newTestGame(1)
	boosted := newTestGame(1)
	boosted.round.SpeedPowerUp = true

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	base.stepGoalie(in)
	boosted.stepGoalie(in)

	baseMove := base.goalie.Pos.Y - base.cfg.Field.Height/2
	boostedMove := boosted.goalie.Pos.Y - boosted.cfg.Field.Height/2

	if math.Abs(boostedMove-2*baseMove) > 1e-9 {
		t.Errorf("speed power-up should double movement: base=%f boosted=%f", baseMove, boostedMove)
	}
}

func TestGoalieDragOverridesKeys(t *testing.T) {
	g := newTestGame(1)
	minX, _, _, _ := g.goalieBox()

	in := core.NewInputFrame()
	in.Set(core.ActionRight) // Would move away from the goal...
	in.SetPointer(2, 12)     // ...but the drag pins the goalie left

	g.stepGoalie(in)

	if g.goalie.Pos.X != minX {
		t.Errorf("drag should place (and clamp) the goalie directly, got X=%f want %f", g.goalie.Pos.X, minX)
	}
}

func TestGoalieDragStickZones(t *testing.T) {
	tests := []struct {
		name string
		y    int // Pointer row on a 24-row screen
		want StickPos
	}{
		{"top third raises the stick", 2, StickUp},
		{"middle keeps it straight", 12, StickStraight},
		{"bottom third drops it", 21, StickDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			in := core.NewInputFrame()
			in.SetPointer(40, tc.y)
			g.stepGoalie(in)

			if g.goalie.Stick != tc.want {
				t.Errorf("drag at row %d selected %v, expected %v", tc.y, g.goalie.Stick, tc.want)
			}
		})
	}
}

func TestGoalieStickKeys(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionStickDown)
	g.stepGoalie(in)
	if g.goalie.Stick != StickDown {
		t.Errorf("stick = %v after ActionStickDown", g.goalie.Stick)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionStickUp)
	g.stepGoalie(in)
	if g.goalie.Stick != StickUp {
		t.Errorf("stick = %v after ActionStickUp", g.goalie.Stick)
	}

	// No stick action: the previous selection stays
	g.stepGoalie(core.NewInputFrame())
	if g.goalie.Stick != StickUp {
		t.Errorf("stick selection should persist, got %v", g.goalie.Stick)
	}
}

func TestStanceLerpConvergence(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionStickDown)
	g.stepGoalie(in)

	hold := core.NewInputFrame()
	prev := g.goalie.Stance
	for n := 1; n <= 60; n++ {
		g.stepGoalie(hold)

		s := g.goalie.Stance
		if s < 0 || s > 1 {
			t.Fatalf("stance %f escaped [0,1] at frame %d", s, n)
		}
		if s < prev {
			t.Fatalf("stance should be monotone toward 1 while stick is down, %f -> %f", prev, s)
		}
		prev = s

		// Geometric convergence bound: |stance - 1| <= (1-0.15)^(n+1)
		bound := math.Pow(1-g.cfg.Goalie.StanceSmoothing, float64(n+1))
		if math.Abs(s-1) > bound+1e-9 {
			t.Fatalf("stance converging too slowly at frame %d: |%f-1| > %f", n, s, bound)
		}
	}

	// Releasing the crouch eases back toward 0
	up := core.NewInputFrame()
	up.Set(core.ActionStickStraight)
	g.stepGoalie(up)
	high := g.goalie.Stance
	for i := 0; i < 60; i++ {
		g.stepGoalie(core.NewInputFrame())
	}
	if g.goalie.Stance >= high || g.goalie.Stance > 0.01 {
		t.Errorf("stance should ease back toward 0, got %f", g.goalie.Stance)
	}
}
