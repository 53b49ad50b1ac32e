package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mkazakov/tui-shootout/internal/commentary"
	"github.com/mkazakov/tui-shootout/internal/core"
	"github.com/mkazakov/tui-shootout/internal/registry"
	"github.com/mkazakov/tui-shootout/internal/storage"
)

// commentaryMsg delivers a fetched commentary line back into the UI loop.
type commentaryMsg struct {
	line string
}

// Model is the Bubble Tea model that runs the shootout.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	announcer  *commentary.Client
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	matchID    int64
	quitting   bool
	matchSaved bool // Whether the finished match has been marked complete
}

// NewModel creates a new Bubble Tea model for the given game.
// Both store and announcer may be nil; persistence and commentary are
// best-effort features.
func NewModel(game registry.Game, store *storage.Store, announcer *commentary.Client, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		announcer: announcer,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "shootout",
		}),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	m.matchID = m.startMatch()

	return m
}

// startMatch opens a persistence record for a fresh match.
func (m *Model) startMatch() int64 {
	if m.store == nil {
		return 0
	}
	id, err := m.store.StartMatch()
	if err != nil {
		m.logger.Warn("cannot start match record", "error", err)
		return 0
	}
	return id
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case commentaryMsg:
		if sink, ok := m.game.(registry.CommentarySink); ok {
			sink.SetCommentary(msg.line)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Esc backs out of the match.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart the match with the new dimensions: positions are mapped from
	// field units, so a live round would otherwise jump mid-flight.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// R or Enter restarts from the match-over prompt
	restart := m.inputFrame.Has(core.ActionRestart) || m.inputFrame.Has(core.ActionConfirm)
	if restart && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.matchSaved = false
		m.matchID = m.startMatch()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	// Drain finished rounds: persist each one and fire the commentary
	// fetch from its own command so the tick loop never blocks on the
	// network.
	if reporter, ok := m.game.(registry.RoundReporter); ok {
		for {
			report, ok := reporter.TakeRoundReport()
			if !ok {
				break
			}
			if m.store != nil && m.matchID != 0 {
				if err := m.store.RecordRound(m.matchID, report); err != nil {
					m.logger.Warn("cannot record round", "round", report.Round, "error", err)
				}
			}
			if m.announcer != nil {
				cmds = append(cmds, m.fetchCommentary(report))
			}
		}
	}

	// Mark the match complete once
	if m.gameState.GameOver && !m.matchSaved {
		if m.store != nil && m.matchID != 0 {
			if err := m.store.FinishMatch(m.matchID); err != nil {
				m.logger.Warn("cannot finish match record", "error", err)
			}
		}
		m.matchSaved = true
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmds...)
}

// fetchCommentary returns a command that asks the commentary service for a
// line describing the round. Commands run on their own goroutines, so the
// round-trip happens off the UI loop.
func (m Model) fetchCommentary(report registry.RoundReport) tea.Cmd {
	announcer := m.announcer
	return func() tea.Msg {
		return commentaryMsg{line: announcer.Line(context.Background(), report)}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, announcer *commentary.Client, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, announcer, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag-to-position goalie control
	)

	_, err := p.Run()
	return err
}
