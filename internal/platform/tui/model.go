package tui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configures a game session.
type Options struct {
	Rules         tetris.Rules
	Palette       map[tetris.Kind]core.Color
	Runtime       core.RuntimeConfig
	Logger        *log.Logger // nil discards log output
	ScreenshotDir string      // Defaults to ~/.tetris/screenshots
}

// Model is the Bubble Tea model driving one tetris engine.
type Model struct {
	engine     *tetris.Engine
	rules      tetris.Rules
	palette    map[tetris.Kind]core.Color
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	shotDir    string

	game      int // Games started this session
	lastTick  time.Time
	lastLines int
	lastLevel int
	overSeen  bool // Whether game over has been reported for current game
	quitting  bool
}

// NewModel creates a new Bubble Tea model and starts the first game.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("run", uuid.NewString())

	palette := opts.Palette
	if palette == nil {
		palette = map[tetris.Kind]core.Color{}
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		rules:      opts.Rules,
		palette:    palette,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last row holds the help line
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		shotDir:    shotDir,
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}

	logger.Info("session started",
		"seed", cfg.Seed,
		"width", opts.Rules.Width,
		"height", opts.Rules.Height,
		"tick_rate", cfg.TickRate,
	)
	return m, nil
}

// newGame replaces the engine with a fresh one seeded from config.
func (m *Model) newGame() error {
	engine, err := tetris.New(m.rules, rand.New(rand.NewSource(m.config.Seed)))
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	m.engine = engine
	m.game++
	m.lastLines = 0
	m.lastLevel = engine.Level()
	m.overSeen = false
	return nil
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game, "score", m.engine.Score())
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
	default:
		// Applied in order on the next tick
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick forwards the frame's commands and elapsed time to the engine.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	for _, action := range m.inputFrame.Actions {
		m.apply(action)
	}
	m.engine.Tick(dt)
	m.observe()

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// apply issues one command to the engine.
func (m *Model) apply(action core.Action) {
	switch action {
	case core.ActionLeft:
		m.engine.MoveLeft()
	case core.ActionRight:
		m.engine.MoveRight()
	case core.ActionSoftDrop:
		m.engine.SoftDrop()
	case core.ActionRotate:
		m.engine.Rotate()
	case core.ActionHardDrop:
		m.engine.HardDrop()
	case core.ActionPause:
		m.engine.TogglePause()
	case core.ActionRestart:
		m.restart()
	}
}

// restart throws the current engine away and starts a new game.
func (m *Model) restart() {
	score := m.engine.Score()
	// Reset seed for new game
	m.config.Seed = time.Now().UnixNano()
	if err := m.newGame(); err != nil {
		m.logger.Error("restart failed", "err", err)
		return
	}
	m.logger.Info("restart", "game", m.game, "previous_score", score, "seed", m.config.Seed)
}

// observe logs progress made by the last batch of commands and the tick.
func (m *Model) observe() {
	lines, level := m.engine.Lines(), m.engine.Level()
	if lines > m.lastLines {
		m.logger.Debug("lines cleared",
			"count", lines-m.lastLines,
			"lines", lines,
			"score", m.engine.Score(),
		)
	}
	if level != m.lastLevel {
		m.logger.Info("level up", "level", level, "interval", m.engine.FallInterval())
	}
	m.lastLines, m.lastLevel = lines, level

	if m.engine.GameOver() && !m.overSeen {
		m.overSeen = true
		m.logger.Info("game over",
			"game", m.game,
			"score", m.engine.Score(),
			"lines", lines,
			"level", level,
		)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	// Render current state
	drawGame(m.screen, m.engine.Snapshot(), m.palette)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}

	rows := make([]string, m.screen.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(m.screen.Row(y), " ")
	}
	data := []byte(strings.Join(rows, "\n") + "\n")

	// Generate filename with timestamp, adding a counter on collision
	base := "tetris_" + time.Now().Format("20060102_150405.000")
	for n := 1; ; n++ {
		name := base
		if n > 1 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		path := filepath.Join(m.shotDir, name+".txt")
		err := writeNewFile(path, data)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return path, nil
	}
}

// writeNewFile writes data to path, failing if the file already exists.
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close() //nolint:errcheck // The write error is more useful
		return err
	}
	return f.Close()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.engine.Snapshot(), m.palette)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
