// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Tabbed full-screen browser for activities, accounts, and win/loss
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ptrack/store"
)

// Tab is one of the top-level TUI tabs.
type Tab int

const (
	TabActivities Tab = iota
	TabAccounts
	TabWinLoss
	TabDashboard
)

var tabNames = []string{"Activities", "Accounts", "Win/Loss", "Dashboard"}

// Model is the main bubbletea model.
type Model struct {
	store *store.Store
	tab   Tab

	selectedRow int

	width  int
	height int
	err    error
}

// NewModel creates a new TUI model.
func NewModel(st *store.Store) Model {
	return Model{
		store:  st,
		tab:    TabActivities,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		m.selectedRow = 0
		return m, nil
	case "shift+tab", "left", "h":
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		m.selectedRow = 0
		return m, nil
	case "down", "j":
		m.selectedRow++
		return m, nil
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil
	}
	return m, nil
}

// Run starts the TUI event loop.
func Run(st *store.Store) error {
	p := tea.NewProgram(NewModel(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
