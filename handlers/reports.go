// ABOUTME: Report MCP tool handlers
// ABOUTME: Implements monthly_report and dashboard_stats tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"ptrack/report"
	"ptrack/store"
)

type ReportHandlers struct {
	store *store.Store
}

func NewReportHandlers(st *store.Store) *ReportHandlers {
	return &ReportHandlers{store: st}
}

type MonthlyReportInput struct {
	Month string `json:"month,omitempty" jsonschema:"Month YYYY-MM (defaults to all months)"`
}

type MonthlyReportEntry struct {
	Month    string         `json:"month"`
	Total    int            `json:"total"`
	External int            `json:"external"`
	Internal int            `json:"internal"`
	ByType   map[string]int `json:"by_type"`
	ByUser   map[string]int `json:"by_user"`
}

type MonthlyReportOutput struct {
	Months []MonthlyReportEntry `json:"months"`
}

func (h *ReportHandlers) MonthlyReport(_ context.Context, request *mcp.CallToolRequest, input MonthlyReportInput) (*mcp.CallToolResult, MonthlyReportOutput, error) {
	months, err := report.Monthly(h.store)
	if err != nil {
		return nil, MonthlyReportOutput{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	var out MonthlyReportOutput
	for _, m := range months {
		if input.Month != "" && m.Month != input.Month {
			continue
		}
		out.Months = append(out.Months, MonthlyReportEntry{
			Month:    m.Month,
			Total:    m.Total,
			External: m.External,
			Internal: m.Internal,
			ByType:   m.ByType,
			ByUser:   m.ByUser,
		})
	}
	return nil, out, nil
}

type DashboardInput struct{}

type DashboardOutput struct {
	TotalAccounts      int            `json:"total_accounts"`
	TotalProjects      int            `json:"total_projects"`
	ActiveProjects     int            `json:"active_projects"`
	WonProjects        int            `json:"won_projects"`
	LostProjects       int            `json:"lost_projects"`
	TotalActivities    int            `json:"total_activities"`
	ExternalActivities int            `json:"external_activities"`
	InternalActivities int            `json:"internal_activities"`
	ActivitiesByType   map[string]int `json:"activities_by_type"`
}

func (h *ReportHandlers) DashboardStats(_ context.Context, request *mcp.CallToolRequest, input DashboardInput) (*mcp.CallToolResult, DashboardOutput, error) {
	stats, err := report.Dashboard(h.store)
	if err != nil {
		return nil, DashboardOutput{}, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return nil, DashboardOutput{
		TotalAccounts:      stats.TotalAccounts,
		TotalProjects:      stats.TotalProjects,
		ActiveProjects:     stats.ActiveProjects,
		WonProjects:        stats.WonProjects,
		LostProjects:       stats.LostProjects,
		TotalActivities:    stats.TotalActivities,
		ExternalActivities: stats.ExternalActivities,
		InternalActivities: stats.InternalActivities,
		ActivitiesByType:   stats.ActivitiesByType,
	}, nil
}
