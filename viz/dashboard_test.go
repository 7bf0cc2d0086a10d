// ABOUTME: Tests dashboard rendering output
package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ptrack/models"
	"ptrack/report"
)

func TestRenderDashboard(t *testing.T) {
	stats := &report.DashboardStats{
		TotalAccounts:      2,
		TotalProjects:      3,
		ActiveProjects:     1,
		WonProjects:        1,
		LostProjects:       1,
		TotalActivities:    5,
		ExternalActivities: 4,
		InternalActivities: 1,
		ActivitiesByType: map[string]int{
			models.TypeCustomerCall: 3,
			models.TypePOC:          1,
			"Training":              1,
		},
		RecentActivities: []models.Activity{
			{Date: "2026-02-11", Type: "Training", Topic: "Voice AI onboarding", IsInternal: true},
			{Date: "2026-02-05", Type: models.TypeCustomerCall, AccountName: "Globex"},
		},
	}

	out := RenderDashboard(stats)
	assert.Contains(t, out, "PTRACK DASHBOARD")
	assert.Contains(t, out, "2 accounts")
	assert.Contains(t, out, "3 projects")
	assert.Contains(t, out, "4 external / 1 internal")
	assert.Contains(t, out, "Customer Call")
	assert.Contains(t, out, "won")
	assert.Contains(t, out, "RECENT ACTIVITY")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "Voice AI onboarding")
}

func TestRenderDashboardEmpty(t *testing.T) {
	out := RenderDashboard(&report.DashboardStats{ActivitiesByType: map[string]int{}})
	assert.Contains(t, out, "0 accounts")
	assert.NotContains(t, out, "ACTIVITY TYPES")
	assert.NotContains(t, out, "RECENT ACTIVITY")
}
