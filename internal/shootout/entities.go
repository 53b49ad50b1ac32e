// Package shootout implements a penalty-shot hockey game: a player-controlled
// goaltender against an AI shooter, one shot per round across a ten-round
// match. The package contains pure simulation logic with no external
// dependencies; the platform layer handles input mapping, timing and display.
package shootout

import "github.com/mkazakov/tui-shootout/internal/core"

// StickPos is the goalie's stick-position selector.
type StickPos int

const (
	StickStraight StickPos = iota
	StickUp
	StickDown
)

// String returns a human-readable name for the stick position.
func (s StickPos) String() string {
	switch s {
	case StickUp:
		return "Up"
	case StickDown:
		return "Down"
	default:
		return "Straight"
	}
}

// Goalie is the player-controlled goaltender. Position is clamped to a
// movement box in front of the goal mouth. Stance tracks the visual
// transition toward the crouched butterfly pose: it exponentially
// approaches 1 while the stick is DOWN and 0 otherwise.
type Goalie struct {
	Pos    core.Vec2
	Stick  StickPos
	Stance float64 // In [0, 1]
}

// Shooter is the AI attacker. It advances toward the goalie until its
// distance to the goal crosses the round's release threshold, optionally
// winds up (slap-shot rounds), then releases the puck and goes inert.
type Shooter struct {
	Pos      core.Vec2
	BaseY    float64 // Lateral anchor the weave oscillates around
	Released bool
}

// Puck is the projectile. Until release it rides rigidly ahead of the
// shooter's stick; after release it belongs to the physics step. Trail
// holds the most recent positions, oldest first, for the rendering fade.
type Puck struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Trail []core.Vec2
}

// pushTrail appends the current position, dropping the oldest entry once
// the trail is at capacity.
func (p *Puck) pushTrail(maxLen int) {
	p.Trail = append(p.Trail, p.Pos)
	if len(p.Trail) > maxLen {
		p.Trail = p.Trail[1:]
	}
}

// Outcome classifies how a round ended. Every outcome except OutcomeGoal
// counts as a save for the goaltender.
type Outcome int

const (
	OutcomeNone Outcome = iota // Round still live
	OutcomeBodySave
	OutcomeStickSave
	OutcomeGloveSave
	OutcomeButterflySave
	OutcomeMiss
	OutcomeGoal
)

// IsSave reports whether the outcome is a success for the goaltender.
func (o Outcome) IsSave() bool {
	return o != OutcomeNone && o != OutcomeGoal
}

// SaveType returns the save classification tag, or empty for a goal or an
// unresolved round.
func (o Outcome) SaveType() string {
	switch o {
	case OutcomeBodySave:
		return "body"
	case OutcomeStickSave:
		return "stick"
	case OutcomeGloveSave:
		return "glove"
	case OutcomeButterflySave:
		return "butterfly"
	case OutcomeMiss:
		return "miss"
	default:
		return ""
	}
}

// String returns a display label for the outcome banner.
func (o Outcome) String() string {
	switch o {
	case OutcomeBodySave:
		return "BODY SAVE!"
	case OutcomeStickSave:
		return "STICK SAVE!"
	case OutcomeGloveSave:
		return "GLOVE SAVE!"
	case OutcomeButterflySave:
		return "BUTTERFLY SAVE!"
	case OutcomeMiss:
		return "WIDE OF THE NET!"
	case OutcomeGoal:
		return "GOAL!"
	default:
		return ""
	}
}
