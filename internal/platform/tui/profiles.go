package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tennis/internal/engine"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

// ProfilesModel is the Bubble Tea model for browsing saved opponents.
type ProfilesModel struct {
	store    *storage.Store
	profiles []storage.SavedProfile
	table    table.Model
	help     help.Model
	keys     ProfilesKeyMap
	width    int
	height   int
	quitting bool
}

// NewProfilesModel creates the browser and loads the stored profiles.
func NewProfilesModel(store *storage.Store, width, height int) ProfilesModel {
	h := help.New()
	h.ShowAll = false

	m := ProfilesModel{
		store:  store,
		keys:   DefaultProfilesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadProfiles()
	return m
}

func (m *ProfilesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Style", Width: 14},
		{Title: "Serve", Width: 8},
		{Title: "Forehand", Width: 9},
		{Title: "Backhand", Width: 9},
		{Title: "Volley", Width: 8},
		{Title: "Saved", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ProfilesModel) loadProfiles() {
	profiles, err := m.store.ListProfiles()
	if err != nil {
		m.profiles = nil
	} else {
		m.profiles = profiles
	}
	m.updateTableRows()
}

func (m *ProfilesModel) updateTableRows() {
	rows := make([]table.Row, len(m.profiles))
	for i, sp := range m.profiles {
		p := sp.Profile
		rows[i] = table.Row{
			p.Name,
			p.Style.String(),
			engine.SkillLabel(p.Skill(engine.FirstServe)),
			engine.SkillLabel(p.Skill(engine.ForehandCrossCourt)),
			engine.SkillLabel(p.Skill(engine.BackhandCrossCourt)),
			engine.SkillLabel(p.Skill(engine.Volley)),
			sp.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the profiles model.
func (m ProfilesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the profile browser.
func (m ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			if len(m.profiles) > 0 {
				idx := m.table.Cursor()
				if idx >= 0 && idx < len(m.profiles) {
					if err := m.store.DeleteProfile(m.profiles[idx].Profile.Name); err == nil {
						m.loadProfiles()
					}
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the profile browser.
func (m ProfilesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("SAVED OPPONENTS (%d)", len(m.profiles))))
	b.WriteString("\n\n")

	if len(m.profiles) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No opponents saved yet.\nFinish a match and save your opponent to see them here."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunProfiles runs the saved opponent browser.
func RunProfiles(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewProfilesModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
