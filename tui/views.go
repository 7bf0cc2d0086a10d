// ABOUTME: TUI view rendering: tab bar and per-tab tables
// ABOUTME: Tables read live from the store on every render
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"ptrack/models"
	"ptrack/report"
	"ptrack/viz"
)

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PTRACK"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.tab {
	case TabActivities:
		s.WriteString(m.renderActivitiesTable())
	case TabAccounts:
		s.WriteString(m.renderAccountsTable())
	case TabWinLoss:
		s.WriteString(m.renderWinLossTable())
	case TabDashboard:
		s.WriteString(m.renderDashboard())
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("tab/←→: switch  ↑↓: move  q: quit"))
	return s.String()
}

func (m Model) renderTabs() string {
	var rendered []string
	for i, tab := range tabNames {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderActivitiesTable() string {
	activities, err := m.store.AllActivities()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 22},
		{Title: "Account", Width: 22},
		{Title: "Project / Topic", Width: 24},
		{Title: "User", Width: 12},
	}

	var rows []table.Row
	for _, act := range activities {
		account := act.AccountName
		project := act.ProjectName
		if act.IsInternal {
			account = "(internal)"
			project = act.Topic
		}
		rows = append(rows, table.Row{
			act.Date, models.ActivityTypeLabel(act.Type), account, project, act.UserName,
		})
	}
	return m.renderTable(columns, rows)
}

func (m Model) renderAccountsTable() string {
	accounts, err := m.store.Accounts()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Name", Width: 26},
		{Title: "Industry", Width: 24},
		{Title: "Sales Rep", Width: 18},
		{Title: "Projects", Width: 10},
	}

	var rows []table.Row
	for _, a := range accounts {
		rows = append(rows, table.Row{
			a.Name, a.Industry, a.SalesRep, fmt.Sprintf("%d", len(a.Projects)),
		})
	}
	return m.renderTable(columns, rows)
}

func (m Model) renderWinLossTable() string {
	entries, err := report.WinLoss(m.store)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Account", Width: 22},
		{Title: "Project", Width: 24},
		{Title: "Status", Width: 8},
		{Title: "Reason", Width: 28},
		{Title: "MRR", Width: 10},
	}

	var rows []table.Row
	for _, e := range entries {
		rows = append(rows, table.Row{e.AccountName, e.ProjectName, e.Status, e.Reason, e.MRR})
	}
	return m.renderTable(columns, rows)
}

func (m Model) renderDashboard() string {
	stats, err := report.Dashboard(m.store)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return viz.RenderDashboard(stats)
}

func (m Model) renderTable(columns []table.Column, rows []table.Row) string {
	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	} else if len(rows) > 0 {
		t.SetCursor(len(rows) - 1)
	}
	return t.View()
}
