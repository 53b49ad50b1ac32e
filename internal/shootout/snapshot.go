package shootout

// Snapshot captures the simulation state as primitive values for
// determinism testing. Float positions are fixed-pointed to milliunits so
// the hash is stable.
type Snapshot struct {
	Tick     int
	Round    int
	Phase    int
	Score    int
	Goals    int
	GoalieX  int
	GoalieY  int
	Stick    int
	Stance   int
	ShooterX int
	ShooterY int
	Released bool
	PuckX    int
	PuckY    int
	PuckVX   int
	PuckVY   int
	TrailLen int
}

// milli converts a field coordinate to a stable integer representation.
func milli(v float64) int {
	return int(v * 1000)
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Round:    g.roundNum,
		Phase:    int(g.phase),
		Score:    g.score,
		Goals:    g.goals,
		GoalieX:  milli(g.goalie.Pos.X),
		GoalieY:  milli(g.goalie.Pos.Y),
		Stick:    int(g.goalie.Stick),
		Stance:   milli(g.goalie.Stance),
		ShooterX: milli(g.shooter.Pos.X),
		ShooterY: milli(g.shooter.Pos.Y),
		Released: g.shooter.Released,
		PuckX:    milli(g.puck.Pos.X),
		PuckY:    milli(g.puck.Pos.Y),
		PuckVX:   milli(g.puck.Vel.X),
		PuckVY:   milli(g.puck.Vel.Y),
		TrailLen: len(g.puck.Trail),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	vals := []int{
		snap.Tick, snap.Round, snap.Phase, snap.Score, snap.Goals,
		snap.GoalieX, snap.GoalieY, snap.Stick, snap.Stance,
		snap.ShooterX, snap.ShooterY,
		snap.PuckX, snap.PuckY, snap.PuckVX, snap.PuckVY, snap.TrailLen,
	}

	h := uint64(17)
	for _, v := range vals {
		h = h*31 + uint64(uint32(int32(v)))
	}
	if snap.Released {
		h = h*31 + 1
	}
	return h
}
