package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/engine"
)

// MatchFactory builds a fresh match and the opponent profile it plays.
// Called once at startup and again for each rematch.
type MatchFactory func() (*engine.Match, engine.Profile, error)

// MatchModel is the Bubble Tea model driving one on-screen match.
type MatchModel struct {
	newMatch MatchFactory
	match    *engine.Match
	opponent engine.Profile

	screen *core.Screen
	keys   MatchKeyMap
	help   help.Model

	width    int
	height   int
	quitting bool
}

// NewMatchModel creates a model and starts its first match.
func NewMatchModel(factory MatchFactory, width, height int) (MatchModel, error) {
	match, opponent, err := factory()
	if err != nil {
		return MatchModel{}, err
	}

	h := help.New()
	h.ShowAll = false

	return MatchModel{
		newMatch: factory,
		match:    match,
		opponent: opponent,
		screen:   core.NewScreen(core.Max(width, 80), core.Max(height-2, 22)),
		keys:     DefaultMatchKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}, nil
}

// Init schedules the computer if it opens the match on serve.
func (m MatchModel) Init() tea.Cmd {
	if m.match.Turn() == engine.TurnOpponent {
		return opponentCmd()
	}
	return nil
}

// Update handles messages and advances the match.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen = core.NewScreen(core.Max(msg.Width, 80), core.Max(msg.Height-2, 22))
		return m, nil

	case opponentMoveMsg:
		return m.advanceOpponent()
	}

	return m, nil
}

// handleKey processes keyboard input for the side whose turn it is.
func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Rematch):
		if m.match.Turn() != engine.TurnDone {
			return m, nil
		}
		match, opponent, err := m.newMatch()
		if err != nil {
			return m, nil
		}
		m.match = match
		m.opponent = opponent
		return m, m.Init()
	}

	switch m.match.Turn() {
	case engine.TurnHumanServe:
		if key.Matches(msg, m.keys.Serve) {
			return m.playHuman(m.match.HumanShots()[0])
		}

	case engine.TurnHumanShot:
		if idx := digitIndex(msg.String()); idx >= 0 {
			shots := m.match.HumanShots()
			if idx < len(shots) {
				return m.playHuman(shots[idx])
			}
		}
	}

	return m, nil
}

// playHuman submits the human's serve or rally shot.
func (m MatchModel) playHuman(shot engine.ShotType) (tea.Model, tea.Cmd) {
	var err error
	if shot.IsServe() {
		_, err = m.match.ServeChoice(shot)
	} else {
		_, err = m.match.PlayShot(shot)
	}
	if err != nil {
		// Rejected input leaves the match untouched; just redraw.
		return m, nil
	}

	if m.match.Turn() == engine.TurnOpponent {
		return m, opponentCmd()
	}
	return m, nil
}

// advanceOpponent runs one computer action and keeps the pace going while it
// is still the computer's turn.
func (m MatchModel) advanceOpponent() (tea.Model, tea.Cmd) {
	if m.match.Turn() != engine.TurnOpponent {
		return m, nil
	}
	if _, err := m.match.ContinueRally(); err != nil {
		return m, nil
	}
	if m.match.Turn() == engine.TurnOpponent {
		return m, opponentCmd()
	}
	return m, nil
}

// View renders the court, HUD and help footer.
func (m MatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawMatch()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

const (
	courtX = 2
	courtY = 2
	panelX = courtX + courtW + 4
)

func (m *MatchModel) drawMatch() {
	s := m.screen
	snap := m.match.Score()

	title := fmt.Sprintf("TUI TENNIS  ·  You vs %s (%s)", m.opponent.Name, m.opponent.Style)
	s.DrawTextColored(courtX, 0, title, core.ColorBrightCyan)

	human := m.match.Player(engine.Human)
	opp := m.match.Player(engine.Opponent)

	ballWith := engine.NoPlayer
	switch m.match.Turn() {
	case engine.TurnHumanServe, engine.TurnHumanShot:
		ballWith = engine.Human
	case engine.TurnOpponent:
		ballWith = engine.Opponent
	}
	DrawCourt(s, courtX, courtY, human.Zone, opp.Zone, ballWith)

	m.drawScore(panelX, courtY, snap)
	m.drawPlayers(panelX, courtY+7, human, opp)
	m.drawLog(panelX, courtY+12)
	m.drawPrompt(courtX, courtY+courtH+1, snap)
}

func (m *MatchModel) drawScore(x, y int, snap engine.ScoreSnapshot) {
	s := m.screen
	s.DrawTextColored(x, y, "        Sets Games Points", core.ColorGray)

	serveMark := func(p engine.PlayerID) rune {
		if !snap.Done && snap.Server == p {
			return '●'
		}
		return ' '
	}
	s.DrawText(x, y+1, fmt.Sprintf("%c You      %d    %d    %s",
		serveMark(engine.Human), snap.Sets[engine.Human], snap.Games[engine.Human], snap.Points[engine.Human]))
	s.DrawText(x, y+2, fmt.Sprintf("%c Opp      %d    %d    %s",
		serveMark(engine.Opponent), snap.Sets[engine.Opponent], snap.Games[engine.Opponent], snap.Points[engine.Opponent]))

	switch {
	case snap.Tiebreak:
		s.DrawTextColored(x, y+4, "Tiebreak", core.ColorBrightYellow)
	case snap.Deuce:
		s.DrawTextColored(x, y+4, "Deuce", core.ColorBrightYellow)
	case snap.Advantage != engine.NoPlayer:
		s.DrawTextColored(x, y+4, fmt.Sprintf("Advantage %s", sideLabel(snap.Advantage)), core.ColorBrightYellow)
	case m.match.SecondServe():
		s.DrawTextColored(x, y+4, "Second serve", core.ColorOrange)
	}
	if n := m.match.RallyLength(); n > 0 {
		s.DrawTextColored(x, y+5, fmt.Sprintf("Rally: %d shots", n), core.ColorGray)
	}
}

func (m *MatchModel) drawPlayers(x, y int, human, opp engine.PlayerState) {
	s := m.screen
	s.DrawText(x, y, fmt.Sprintf("You %s %s", StaminaBar(human.Stamina, 12), engine.FatigueLabel(human.Stamina)))
	s.DrawText(x, y+1, fmt.Sprintf("Opp %s %s", StaminaBar(opp.Stamina, 12), engine.FatigueLabel(opp.Stamina)))
	s.DrawTextColored(x, y+3, fmt.Sprintf("You at %s, opponent at %s", human.Zone, opp.Zone), core.ColorGray)
}

func (m *MatchModel) drawLog(x, y int) {
	for i, line := range m.match.History(5) {
		m.screen.DrawTextColored(x, y+i, clip(line, m.screen.Width()-x-1), core.ColorGray)
	}
}

// drawPrompt shows what input the match expects right now.
func (m *MatchModel) drawPrompt(x, y int, snap engine.ScoreSnapshot) {
	s := m.screen

	switch m.match.Turn() {
	case engine.TurnHumanServe:
		serve := "first serve"
		if m.match.SecondServe() {
			serve = "second serve"
		}
		s.DrawTextColored(x, y, fmt.Sprintf("Your %s. Press enter to serve.", serve), core.ColorBrightGreen)

	case engine.TurnHumanShot:
		s.DrawTextColored(x, y, "Your shot:", core.ColorBrightGreen)
		for i, shot := range m.match.HumanShots() {
			col := x + (i%3)*25
			row := y + 1 + i/3
			s.DrawText(col, row, fmt.Sprintf("%d. %s", i+1, shot))
		}

	case engine.TurnOpponent:
		s.DrawTextColored(x, y, "Opponent is playing...", core.ColorGray)

	case engine.TurnDone:
		result := "You win the match!"
		if snap.Winner == engine.Opponent {
			result = fmt.Sprintf("%s wins the match.", m.opponent.Name)
		}
		s.DrawTextColored(x, y, result, core.ColorBrightYellow)
		s.DrawTextColored(x, y+1, "Press n for a new match, q to quit.", core.ColorGray)
	}
}

// RunMatch starts the Bubble Tea program for a local match.
func RunMatch(factory MatchFactory, width, height int) error {
	model, err := NewMatchModel(factory, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func digitIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

func sideLabel(p engine.PlayerID) string {
	if p == engine.Human {
		return "You"
	}
	return "Opponent"
}

func clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
