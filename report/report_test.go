// ABOUTME: Tests for dashboard stats, monthly buckets, and report filters
// ABOUTME: Seeds an in-memory store with a small mixed activity history
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptrack/models"
	"ptrack/store"
)

func seedHistory(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	acme := &models.Account{Name: "Acme", SalesRep: "John Doe", Industry: "BFSI"}
	require.NoError(t, st.AddAccount(acme))
	_, err = st.AddProject(acme.ID, &models.Project{Name: "Alpha", Status: models.StatusActive})
	require.NoError(t, err)
	_, err = st.AddProject(acme.ID, &models.Project{
		Name:    "Beta",
		Status:  models.StatusWon,
		WinLoss: &models.WinLossData{Reason: "Better agent handoff", MRR: "5000"},
	})
	require.NoError(t, err)

	globex := &models.Account{Name: "Globex", SalesRep: "Jane Smith", Industry: "Telecom"}
	require.NoError(t, st.AddAccount(globex))
	_, err = st.AddProject(globex.ID, &models.Project{
		Name:    "Gamma",
		Status:  models.StatusLost,
		WinLoss: &models.WinLossData{Reason: "Priced out", MRR: "2000"},
	})
	require.NoError(t, err)

	for _, a := range []models.Activity{
		{UserName: "user", AccountID: acme.ID, SalesRep: "John Doe", Date: "2026-01-10", Type: models.TypeCustomerCall},
		{UserName: "user", AccountID: acme.ID, SalesRep: "John Doe", Date: "2026-01-20", Type: models.TypePOC},
		{UserName: "admin", AccountID: globex.ID, SalesRep: "Jane Smith", Date: "2026-02-05", Type: models.TypeCustomerCall},
	} {
		act := a
		require.NoError(t, st.AddActivity(&act))
	}
	require.NoError(t, st.AddInternalActivity(&models.Activity{
		UserName: "user", Date: "2026-02-11", Type: "Training", Topic: "Voice AI onboarding",
	}))
	return st
}

func TestDashboard(t *testing.T) {
	st := seedHistory(t)
	stats, err := Dashboard(st)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.WonProjects)
	assert.Equal(t, 1, stats.LostProjects)
	assert.Equal(t, 4, stats.TotalActivities)
	assert.Equal(t, 3, stats.ExternalActivities)
	assert.Equal(t, 1, stats.InternalActivities)
	assert.Equal(t, 2, stats.ActivitiesByType[models.TypeCustomerCall])

	// Recent feed is the head of the unified stream, newest first.
	require.Len(t, stats.RecentActivities, 4)
	assert.Equal(t, "2026-02-11", stats.RecentActivities[0].Date)
	assert.Equal(t, "2026-01-10", stats.RecentActivities[3].Date)
}

func TestDashboardRecentFeedCapped(t *testing.T) {
	st := seedHistory(t)
	for i := 0; i < 12; i++ {
		require.NoError(t, st.AddActivity(&models.Activity{
			UserName: "user", Date: "2026-03-01", Type: models.TypeCustomerCall,
		}))
	}

	stats, err := Dashboard(st)
	require.NoError(t, err)
	assert.Len(t, stats.RecentActivities, 10)
}

func TestMonthlyBucketsNewestFirst(t *testing.T) {
	st := seedHistory(t)
	months, err := Monthly(st)
	require.NoError(t, err)
	require.Len(t, months, 2)

	assert.Equal(t, "2026-02", months[0].Month)
	assert.Equal(t, 2, months[0].Total)
	assert.Equal(t, 1, months[0].Internal)
	assert.Equal(t, "2026-01", months[1].Month)
	assert.Equal(t, 2, months[1].External)
	assert.Equal(t, 2, months[1].ByUser["user"])
}

func TestWinLoss(t *testing.T) {
	st := seedHistory(t)
	entries, err := WinLoss(st)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byProject := map[string]WinLossEntry{}
	for _, e := range entries {
		byProject[e.ProjectName] = e
	}
	assert.Equal(t, models.StatusWon, byProject["Beta"].Status)
	assert.Equal(t, "Better agent handoff", byProject["Beta"].Reason)
	assert.Equal(t, models.StatusLost, byProject["Gamma"].Status)
}

func TestManagementFilters(t *testing.T) {
	st := seedHistory(t)

	byUser, err := Management(st, Filter{User: "admin"})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Jane Smith", byUser[0].SalesRep)

	byType, err := Management(st, Filter{Type: models.TypeCustomerCall})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	byMonth, err := Management(st, Filter{Month: "2026-01"})
	require.NoError(t, err)
	assert.Len(t, byMonth, 2)

	// Region resolves through the seeded roster: John Doe is India South.
	byRegion, err := Management(st, Filter{Region: "India South"})
	require.NoError(t, err)
	require.Len(t, byRegion, 2)
	for _, a := range byRegion {
		assert.Equal(t, "John Doe", a.SalesRep)
	}

	// Internal activities carry no rep, so a region filter excludes them.
	all, err := Management(st, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
