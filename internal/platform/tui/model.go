package tui

import (
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colormatch/internal/config"
	"github.com/vovakirdan/colormatch/internal/core"
	"github.com/vovakirdan/colormatch/internal/game"
	"github.com/vovakirdan/colormatch/internal/storage"
)

// Deps bundles what the screens need from the outside world.
type Deps struct {
	Config  config.GameConfig
	History *storage.Store      // finished sessions; nil disables history
	Best    game.BestScoreStore // best-score slot; nil keeps it in memory
	Logger  *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// NewEngine builds an engine for d. A zero seed uses the current time.
func NewEngine(deps Deps, d game.Difficulty, seed int64) *game.Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))
	return game.New(src, deps.Best, d, deps.Config.EngineOptions()...)
}

// GameModel is the Bubble Tea model for the game screen.
type GameModel struct {
	engine     *game.Engine
	deps       Deps
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	config     core.RuntimeConfig
	cursor     int
	hint       string
	newBest    bool
	standalone bool // back key exits the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game screen driving engine.
func NewGameModel(engine *game.Engine, deps Deps, cfg core.RuntimeConfig) GameModel {
	keys := DefaultGameKeyMap()
	keys.Hint.SetEnabled(deps.Config.Hint.Enabled)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		engine: engine,
		deps:   deps,
		logger: deps.logger(),
		keys:   keys,
		help:   h,
		config: cfg,
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TransitionMsg:
		return m.handleTransition(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.engine.Round().Candidates)
	cols := core.Clamp(n, 1, gridColumns)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.engine.Cancel()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NewGame):
		m.restart(m.engine.Session().Difficulty)

	case key.Matches(msg, m.keys.Difficulty):
		m.restart(m.engine.Session().Difficulty.Next())

	case key.Matches(msg, m.keys.Hint):
		m.hint = m.engine.RevealHint()

	case key.Matches(msg, m.keys.Left):
		if m.cursor%cols > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor%cols < cols-1 && m.cursor+1 < n {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < n {
			m.cursor += cols
		}

	case key.Matches(msg, m.keys.Guess):
		return m.guess(m.cursor)

	case key.Matches(msg, m.keys.Pick):
		i := int(msg.String()[0] - '1')
		if i < n {
			m.cursor = i
			return m.guess(i)
		}
	}

	return m, nil
}

// handleMouse maps a left click to the swatch under it.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	i := m.layout().cellAt(msg.X, msg.Y)
	if i < 0 {
		return m, nil
	}
	m.cursor = i
	return m.guess(i)
}

// handleTransition resolves a deferred transition once its delay elapsed.
func (m GameModel) handleTransition(msg TransitionMsg) (tea.Model, tea.Cmd) {
	if !m.engine.Resolve(msg.Token) {
		m.logger.Debug("stale transition dropped", "token", msg.Token, "kind", msg.Kind)
		return m, nil
	}
	m.hint = ""
	m.newBest = false
	m.cursor = core.Clamp(m.cursor, 0, len(m.engine.Round().Candidates)-1)
	return m, nil
}

// guess submits candidate i and schedules whatever the engine asks for.
func (m GameModel) guess(i int) (tea.Model, tea.Cmd) {
	round := m.engine.Round()
	if i < 0 || i >= len(round.Candidates) {
		return m, nil
	}

	out := m.engine.SubmitGuess(round.Candidates[i])
	if out.Ignored {
		return m, nil
	}
	if out.NewBest {
		m.newBest = true
	}
	if out.Status == game.StatusGameOver {
		m.recordSession(out.FinalScore)
	}
	if out.Deferred == nil {
		return m, nil
	}

	m.logger.Debug("transition scheduled",
		"kind", out.Deferred.Kind,
		"token", out.Deferred.Token,
		"delay", out.Deferred.Delay,
	)
	return m, transitionCmd(*out.Deferred)
}

// restart drops the session and deals a fresh one at d.
func (m *GameModel) restart(d game.Difficulty) {
	m.engine.ResetSession(d)
	m.hint = ""
	m.newBest = false
	m.cursor = 0
}

// recordSession saves a lost session to the history.
func (m GameModel) recordSession(score int) {
	if m.deps.History == nil || score <= 0 {
		return
	}
	s := m.engine.Session()
	if _, err := m.deps.History.SaveSession(s.Difficulty.String(), score, s.Hints); err != nil {
		m.logger.Warn("could not save session", "score", score, "error", err)
	}
}

func (m GameModel) layout() layout {
	return computeLayout(m.config.ScreenW, len(m.engine.Round().Candidates), m.deps.Config.Display)
}

// View renders the game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	round := m.engine.Round()
	session := m.engine.Session()
	lay := m.layout()

	blocks := []block{swatch(round.Target, lay.target, "")}
	for i, c := range round.Candidates {
		blocks = append(blocks, swatch(c, lay.cells[i], swatchLabel(i, c, round, i == m.cursor)))
	}

	indent := strings.Repeat(" ", lay.left)
	lines := make([]string, lay.helpY)
	lines[titleY] = centerText(titleStyle.Render("C O L O R   M A T C H"), m.config.ScreenW)
	lines[headerY] = indent + spread(
		bestStyle.Render("BEST: ")+strconv.Itoa(session.BestScore),
		"SCORE: "+strconv.Itoa(session.Score),
		lay.width,
	)
	lines[promptY] = indent + padCenter(
		"Guess the correct color! "+dimStyle.Render("("+session.Difficulty.Title()+")"),
		lay.width,
	)
	for y := lay.target.Y; y < lay.statusY-1; y++ {
		lines[y] = composeLine(y, blocks)
	}
	lines[lay.statusY] = indent + padCenter(statusLine(round, m.newBest), lay.width)
	if m.hint != "" {
		lines[lay.hintY] = indent + padCenter(hintStyle.Render(m.hint), lay.width)
	}

	return strings.Join(lines, "\n") + "\n" + indent + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Engine returns the engine behind the screen.
func (m GameModel) Engine() *game.Engine {
	return m.engine
}

// Run plays a session at difficulty d in its own Bubble Tea program.
// It reports whether the player asked to go back to the menu.
func Run(deps Deps, d game.Difficulty, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(NewEngine(deps, d, cfg.Seed), deps, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swatches are clickable
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
