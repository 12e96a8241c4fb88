package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpRows is the space reserved below the playfield for the help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game session.
// Key presses are queued in an input frame and applied, in arrival order,
// right before the next tick.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	anim       *Animator
	logger     *log.Logger
	inputFrame core.InputFrame
	snapshot   flappy.Snapshot
	gameOver   *flappy.GameOver
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		anim:       NewAnimator(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		snapshot:   game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.snapshot.Score, "phase", m.snapshot.Phase)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize follows the terminal size. The playfield is scaled, so the
// game itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies queued input, advances the simulation by the time
// since the previous tick and continues the loop.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.config.FrameDuration()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.applyInput()

	prev := m.game.Phase()
	result := m.game.Tick(elapsed)
	m.snapshot = result.Snapshot
	if m.snapshot.Phase != prev {
		m.logger.Debug("phase changed", "from", prev, "to", m.snapshot.Phase, "variant", m.snapshot.Variant)
	}

	if result.GameOver != nil {
		m.gameOver = result.GameOver
		m.anim.ShowBanner()
		m.logger.Info("game over",
			"score", result.GameOver.Score,
			"ticks", result.GameOver.Tick,
			"variant", result.GameOver.Variant,
		)
	}

	m.anim.Update(elapsed)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// applyInput forwards queued actions to the game in arrival order.
func (m *Model) applyInput() {
	if m.inputFrame.Empty() {
		return
	}
	for _, a := range m.inputFrame.Actions() {
		switch a {
		case core.ActionSelectA, core.ActionSelectB:
			// Outside the selection screen the bird keys flap too.
			if m.game.Phase() == flappy.PhaseRunning {
				m.flap()
				continue
			}
			if a == core.ActionSelectA {
				m.selectVariant(flappy.VariantA)
			} else {
				m.selectVariant(flappy.VariantB)
			}
		case core.ActionFlap:
			m.flap()
		case core.ActionRestart:
			if m.game.Phase() == flappy.PhaseEnded {
				m.game.Reset()
				m.gameOver = nil
				m.anim.Reset()
				m.logger.Debug("game reset")
			}
		}
	}
}

// flap is ignored once the bird is at or above the top edge.
func (m *Model) flap() {
	if m.game.Bird().Y > 0 {
		m.game.Flap()
	}
}

func (m *Model) selectVariant(v flappy.Variant) {
	if m.game.SelectVariant(v) {
		m.logger.Info("bird selected", "variant", v)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.snapshot, m.anim.Effects())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Snapshot returns the snapshot from the latest tick.
func (m Model) Snapshot() flappy.Snapshot {
	return m.snapshot
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.snapshot, m.anim.Effects())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
