package config

// TotalRounds is the length of a shootout match.
const TotalRounds = 10

// RoundConfig is the per-round difficulty contract consumed by the
// simulation. It is produced once per round by ForRound and is immutable
// for the duration of that round.
type RoundConfig struct {
	Round        int
	ShooterSpeed float64 // Units per tick, 2 -> 6
	ShotSpeed    float64 // Units per tick, 8 -> 20 (x1.2 on slap-shot rounds)
	Intelligence float64 // Shot placement accuracy, 0.2 -> 1.0
	Curve        float64 // Stochastic curve factor
	Jitter       float64 // Lateral weave noise, 0 -> 0.8

	SlapShot     bool // Wind-up delay before release, faster shot
	SpeedPowerUp bool // Goalie movement speed doubled
	Magnet       bool // Puck attracted toward the goalie in range
}

// ForRound returns the difficulty settings for round n (1..TotalRounds).
// Rounds outside the range are clamped, so a caller iterating past the end
// keeps getting round-10 settings.
//
// The curve is piecewise linear: shooter speed, shot speed, intelligence
// and jitter interpolate across the match; curve drift stays at zero until
// round 6 and round 7 is pinned to a heavy 1.5. Rounds 4, 5 and 9 carry
// the slap-shot, magnet and speed power-up modifiers.
func ForRound(n int) RoundConfig {
	if n < 1 {
		n = 1
	}
	if n > TotalRounds {
		n = TotalRounds
	}
	ratio := float64(n-1) / float64(TotalRounds-1)

	rc := RoundConfig{
		Round:        n,
		ShooterSpeed: 2 + ratio*4,
		ShotSpeed:    8 + ratio*12,
		Intelligence: 0.2 + ratio*0.8,
		Jitter:       ratio * 0.8,
	}

	switch {
	case n < 6:
		rc.Curve = 0
	case n == 7:
		rc.Curve = 1.5
	default:
		rc.Curve = ratio
	}

	switch n {
	case 4:
		rc.SlapShot = true
		rc.ShotSpeed *= 1.2
	case 5:
		rc.Magnet = true
	case 9:
		rc.SpeedPowerUp = true
	}

	return rc
}

// ShotType returns the label reported to the commentary service for this
// round's shot.
func (rc RoundConfig) ShotType() string {
	if rc.SlapShot {
		return "slapshot"
	}
	return "wrist"
}
