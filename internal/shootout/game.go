package shootout

import (
	"math/rand"

	"github.com/mkazakov/tui-shootout/internal/config"
	"github.com/mkazakov/tui-shootout/internal/core"
	"github.com/mkazakov/tui-shootout/internal/registry"
)

// Phase is the per-round simulation phase. The shooter AI owns the first
// three phases; after resolution the round is frozen until the transition
// countdown arms the next one.
type Phase int

const (
	PhaseApproach Phase = iota
	PhaseWindup
	PhaseReleased
	PhaseRoundOver
	PhaseMatchOver
)

// transitionSeconds is the pause between a round outcome and the next faceoff.
const transitionSeconds = 2

// Game implements the penalty shootout. It owns all simulation state and is
// the single writer of every entity field; input arrives only through the
// InputFrame snapshot passed to Step.
type Game struct {
	cfg     config.ShootoutConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	round    config.RoundConfig
	roundNum int

	goalie  Goalie
	shooter Shooter
	puck    Puck

	phase          Phase
	tick           int     // Ticks since match start
	windupTicks    int     // Elapsed wind-up ticks (slap-shot rounds)
	transitionTick int     // Countdown between rounds
	shootThreshold float64 // Release distance, drawn once per round

	score      int // Saves
	goals      int // Goals conceded
	saveStreak int
	goalStreak int

	caps   []Cap
	mascot *Mascot

	outcome    Outcome // Last resolved outcome, for the banner
	commentary string  // Commentary line pushed back by the platform

	pendingReports []registry.RoundReport

	paused   bool
	gameOver bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new shootout game with the given tuning.
func New(cfg config.ShootoutConfig) *Game {
	return &Game{cfg: cfg}
}

// NewDefault creates a shootout game with tuning from the config search
// path (or the custom path set via SetConfigPath). Used by the registry
// factory.
func NewDefault() *Game {
	cfg, err := config.LoadShootout(configPath)
	if err != nil {
		cfg = config.DefaultShootoutConfig()
	}
	return New(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shootout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Penalty Shootout"
}

// Reset initializes or restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.roundNum = 1
	g.score = 0
	g.goals = 0
	g.saveStreak = 0
	g.goalStreak = 0
	g.tick = 0
	g.caps = nil
	g.mascot = nil
	g.commentary = ""
	g.pendingReports = nil
	g.paused = false
	g.gameOver = false

	g.resetRound(g.roundNum)
}

// resetRound arms round n: fresh entity state, a fresh RoundConfig from the
// difficulty curve, and a fresh release-threshold draw. Any wind-up or
// transition accumulator from the previous round is cleared here, so a
// stale timer can never fire into the new round.
func (g *Game) resetRound(n int) {
	g.round = config.ForRound(n)

	f := g.cfg.Field
	boxMinX, _, _, _ := g.goalieBox()

	g.goalie = Goalie{
		Pos:   core.Vec2{X: boxMinX + 2, Y: f.Height / 2},
		Stick: StickStraight,
	}

	spawn := core.Vec2{X: f.Width - g.cfg.Shooter.SpawnMarginX, Y: f.Height / 2}
	g.shooter = Shooter{Pos: spawn, BaseY: spawn.Y}

	g.puck = Puck{Pos: g.puckCarryPos(), Trail: nil}

	g.phase = PhaseApproach
	g.windupTicks = 0
	g.transitionTick = 0
	g.outcome = OutcomeNone

	// Single per-round draw: the shooter releases once its horizontal
	// distance to the goal line drops below this.
	tMin, tMax := g.cfg.Shooter.ThresholdMin, g.cfg.Shooter.ThresholdMax
	g.shootThreshold = tMin + g.rng.Float64()*(tMax-tMin)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Decorations are cosmetic and keep animating between rounds.
	g.stepDecorations()

	if g.phase == PhaseRoundOver {
		g.stepTransition()
		return core.StepResult{State: g.State()}
	}

	g.stepGoalie(in)

	switch g.phase {
	case PhaseApproach, PhaseWindup:
		g.stepShooter()
	case PhaseReleased:
		g.stepPuck()
	}

	// Resolution runs after physics; a release this same tick is already
	// eligible for collision.
	if g.phase == PhaseReleased {
		if outcome := g.resolve(); outcome != OutcomeNone {
			g.finishRound(outcome)
		}
	}

	return core.StepResult{State: g.State()}
}

// stepTransition counts down the pause between rounds and arms the next
// round (or ends the match after the last one).
func (g *Game) stepTransition() {
	g.transitionTick--
	if g.transitionTick > 0 {
		return
	}
	if g.roundNum >= config.TotalRounds {
		g.phase = PhaseMatchOver
		g.gameOver = true
		return
	}
	g.roundNum++
	g.resetRound(g.roundNum)
}

// finishRound records the outcome exactly once, updates score and streak
// state, and freezes the simulation for the transition pause.
func (g *Game) finishRound(outcome Outcome) {
	g.outcome = outcome
	g.phase = PhaseRoundOver
	g.transitionTick = transitionSeconds * g.tickRate()

	if outcome.IsSave() {
		g.score++
		g.saveStreak++
		g.goalStreak = 0
	} else {
		g.goals++
		g.goalStreak++
		g.saveStreak = 0
	}

	g.syncDecorations()

	g.pendingReports = append(g.pendingReports, registry.RoundReport{
		Round:    g.roundNum,
		Success:  outcome.IsSave(),
		ShotType: g.round.ShotType(),
		SaveType: outcome.SaveType(),
	})
}

// TakeRoundReport pops the oldest unreported round outcome.
// Implements registry.RoundReporter; the platform polls this after every
// step to drive persistence and commentary.
func (g *Game) TakeRoundReport() (registry.RoundReport, bool) {
	if len(g.pendingReports) == 0 {
		return registry.RoundReport{}, false
	}
	r := g.pendingReports[0]
	g.pendingReports = g.pendingReports[1:]
	return r, true
}

// SetCommentary installs the commentary line shown in the HUD.
// Implements registry.CommentarySink.
func (g *Game) SetCommentary(line string) {
	g.commentary = line
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Goals:    g.goals,
		Round:    g.roundNum,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// tickRate returns the configured tick rate, defaulting to 60.
func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// goalieBox returns the goalie movement rectangle: a horizontal band just
// in front of the goal line and a vertical band spanning the field minus a
// margin.
func (g *Game) goalieBox() (minX, maxX, minY, maxY float64) {
	f := g.cfg.Field
	gc := g.cfg.Goalie
	return f.GoalX + 2, f.GoalX + 2 + gc.BoxDepth, gc.BoxMarginY, f.Height - gc.BoxMarginY
}

// puckCarryPos returns where the puck sits while attached to the shooter:
// slightly goal-side of the stick so it visually leads the rush.
func (g *Game) puckCarryPos() core.Vec2 {
	return core.Vec2{X: g.shooter.Pos.X - g.cfg.Shooter.PuckLead, Y: g.shooter.Pos.Y}
}

// screenToField maps terminal cell coordinates into field units.
func (g *Game) screenToField(x, y int) core.Vec2 {
	f := g.cfg.Field
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	if w <= 0 || h <= 0 {
		return core.Vec2{}
	}
	return core.Vec2{
		X: (float64(x) + 0.5) * f.Width / float64(w),
		Y: (float64(y) + 0.5) * f.Height / float64(h),
	}
}

// fieldToScreen maps field units to terminal cell coordinates.
func (g *Game) fieldToScreen(p core.Vec2, screenW, screenH int) (int, int) {
	f := g.cfg.Field
	return int(p.X * float64(screenW) / f.Width), int(p.Y * float64(screenH) / f.Height)
}

// Register the game with the registry.
func init() {
	registry.Register("shootout", func() registry.Game {
		return NewDefault()
	})
}
