package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colormatch/internal/core"
)

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel runs menu, game and scoreboard inside one program, for SSH
// connections where the CLI's loop of separate programs is not available.
// Child screens end with tea.Quit when run on their own, so that command is
// dropped whenever a child hands control back.
type SessionModel struct {
	deps       Deps
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel opens on the difficulty menu.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(deps, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes msg to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.deps, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, nil

	case m.menu.Selected() != nil:
		d := m.menu.Selected().Difficulty
		engine := NewEngine(m.deps, d, m.config.Seed)
		m.config.Seed = 0 // later games reseed from the clock
		m.gameModel = NewGameModel(engine, m.deps, m.config)
		m.screen = screenGame
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	m.gameModel = next.(GameModel)

	switch {
	case m.gameModel.IsQuitting():
		return m.quit()
	case m.gameModel.BackToMenu():
		// Remember the difficulty for the menu cursor.
		m.deps.Config.Difficulty = m.gameModel.Engine().Session().Difficulty.String()
		return m.showMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.showMenu()
	}
	return m, cmd
}

// showMenu rebuilds the menu so it reflects scores from the last game.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.deps, m.config)
	return m, nil
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.gameModel.View()
	case m.screen == screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
